package profile

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Form is the transient profile edit input. The password triple follows the
// old_password gate: changing the password requires all three, otherwise all
// three may stay empty.
type Form struct {
	Name                 string `json:"name" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	OldPassword          string `json:"old_password"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the wire field names rather than Go struct names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var fieldMessages = map[string]map[string]string{
	"name": {
		"required": "name is required",
	},
	"email": {
		"required": "e-mail is required",
		"email":    "enter a valid e-mail",
	},
}

const (
	msgPasswordRequired = "field is required when changing your password"
	msgPasswordTooShort = "at least 6 characters"
	msgPasswordMismatch = "passwords don't match"
)

// Validate runs the full two-phase validation and returns every failed field
// keyed by name; an empty map means the form may be submitted.
//
// Phase one checks each field independently (name and e-mail). Phase two
// applies the cross-field password rules, which only bind when old_password
// is non-empty; an empty confirmation next to an empty password is a
// trivially-matching placeholder, not a mismatch.
func (f Form) Validate() map[string]string {
	fieldErrs := map[string]string{}

	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				msg := "is invalid"
				if byTag, ok := fieldMessages[fe.Field()]; ok {
					if m, ok := byTag[fe.Tag()]; ok {
						msg = m
					}
				}
				if _, seen := fieldErrs[fe.Field()]; !seen {
					fieldErrs[fe.Field()] = msg
				}
			}
		}
	}

	if f.OldPassword != "" {
		if msg := passwordRuleError(f.Password); msg != "" {
			fieldErrs["password"] = msg
		}
		if msg := passwordRuleError(f.PasswordConfirmation); msg != "" {
			fieldErrs["password_confirmation"] = msg
		}
	}

	if f.Password != "" && f.PasswordConfirmation != "" && f.Password != f.PasswordConfirmation {
		fieldErrs["password_confirmation"] = msgPasswordMismatch
	}

	return fieldErrs
}

func passwordRuleError(value string) string {
	if value == "" {
		return msgPasswordRequired
	}
	if len(value) < 6 {
		return msgPasswordTooShort
	}
	return ""
}
