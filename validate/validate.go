// Package validate contains custom validation functions
package validate

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// JamfURL is a custom validation function that is used to validate the Jamf Pro base url
//
// The base url must be http or https with a host, and must not carry the api path, a query or a fragment
// since the api paths are appended to it
func JamfURL(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
	if raw == "" {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	if u.Host == "" || u.RawQuery != "" || u.Fragment != "" {
		return false
	}

	return !strings.HasPrefix(strings.TrimLeft(u.Path, "/"), "api/")
}

// New is a function that is used to get a validator with the custom validations registered
func New() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("validate_jamf_url", JamfURL)
	return v
}
