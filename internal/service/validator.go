package service

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator that reports fields by their JSON name,
// so validation details line up with request payload keys.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func trim(s string) string {
	return strings.TrimSpace(s)
}

// apply copies a supplied patch value over dst after trimming it.
func apply(dst *string, patch *string) {
	if patch != nil {
		*dst = trim(*patch)
	}
}
