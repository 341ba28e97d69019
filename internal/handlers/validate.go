// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. The API is the authority on
// acceptance; the panel only does required-field checks.
var validate = validator.New(validator.WithRequiredStructEnabled())

// checkPayload validates a decoded request payload and returns a
// human-readable message for the first violation.
func checkPayload(payload any) string {
	err := validate.Struct(payload)
	if err == nil {
		return ""
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request payload"
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Field %q is required", field)
	case "email":
		return fmt.Sprintf("Field %q must be a valid email address", field)
	case "min":
		return fmt.Sprintf("Field %q must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("Field %q must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("Field %q must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("Field %q must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("Field %q must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("Field %q is invalid", field)
	}
}
