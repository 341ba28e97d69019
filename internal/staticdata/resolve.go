// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package staticdata

// ResolveField applies the two-tier content strategy: static data is only
// fully populated in the default language, so a non-default locale takes
// the translated string entirely. In the default locale static content
// wins, with the translated string as the fallback for absent fields.
func ResolveField(isDefaultLocale bool, staticValue, translated string) string {
	if !isDefaultLocale {
		return translated
	}
	if staticValue != "" {
		return staticValue
	}
	return translated
}
