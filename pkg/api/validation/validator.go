// Marquee
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Marquee.
//
// Marquee is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Marquee is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Marquee.  If not, see <http://www.gnu.org/licenses/>.

// Package validation checks API request bodies with go-playground/validator
// and formats failures for clients.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const MaxRating = 10.0

var ErrInvalidBody = errors.New("invalid request body")

// Validator validates request structs.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator with the custom tags registered.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("rating", validateRating)
	_ = v.RegisterValidation("nonblank", validateNonBlank)

	return &Validator{validate: v}
}

// DefaultValidator is a shared validator instance for API use.
var DefaultValidator = NewValidator()

// Validate validates a struct and returns an *Error if any field fails.
func (v *Validator) Validate(params any) error {
	if err := v.validate.Struct(params); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return NewError(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// validateRating accepts an empty string or a number from 0 to MaxRating.
func validateRating(fl validator.FieldLevel) bool {
	val := strings.TrimSpace(fl.Field().String())
	if val == "" {
		return true
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return false
	}
	return f >= 0 && f <= MaxRating
}

// validateNonBlank rejects strings made only of whitespace.
func validateNonBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ValidateAndUnmarshal decodes JSON params into dest and validates it.
// Empty params leave dest at its zero value, which is still validated.
func ValidateAndUnmarshal[T any](params json.RawMessage, dest *T) error {
	if len(params) > 0 {
		if err := json.Unmarshal(params, dest); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
	}
	return DefaultValidator.Validate(dest)
}
