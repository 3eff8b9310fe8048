// Package validation provides input validation utilities for loader
// configuration and request payloads.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection.
//
// # Struct Tag Validation
//
//	type ResolveRequest struct {
//	    Provider string `validate:"required" mapstructure:"provider"`
//	}
//	err := validation.Validate(req)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("provider", name).Provider("provider", name)
//	err := v.Validate()
package validation
