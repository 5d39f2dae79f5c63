package middleware

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ssnPattern accepts raw digits, dashed or spaced groups, and
// already-masked values so a masked SSN can round-trip through update
// forms.
var ssnPattern = regexp.MustCompile(`^[0-9*]{3}[- ]?[0-9*]{2}[- ]?[0-9]{4}$`)

// RegisterValidators installs the portal's custom binding validators
// and switches validation errors to report JSON field names.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	if err := v.RegisterValidation("ssn", func(fl validator.FieldLevel) bool {
		return ssnPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return fld.Name
		}
		return name
	})
}
