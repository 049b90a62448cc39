// Package validation normalizes raw request input into domain values.
// Every field is checked independently and all violations are reported together.
package validation

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"lifecover/internal/core/domain"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// engine returns the shared validator instance; *validator.Validate is safe for concurrent use
func engine() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their json name
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		mustRegister(v, "integer", isInteger)
		mustRegister(v, "nonzero", isNonZero)
		mustRegister(v, "maxbytes", hasMaxBytes)

		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("validation: register " + tag + ": " + err.Error())
	}
}

// isInteger accepts numbers without a fractional part
func isInteger(fl validator.FieldLevel) bool {
	field := reflect.Indirect(fl.Field())
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		f := field.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// isNonZero rejects numeric zero, including through a non-nil pointer
func isNonZero(fl validator.FieldLevel) bool {
	field := reflect.Indirect(fl.Field())
	if !field.IsValid() {
		return false
	}
	return !field.IsZero()
}

// hasMaxBytes limits the byte length of a string; max counts runes
func hasMaxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		panic("validation: maxbytes needs an integer parameter")
	}
	field := reflect.Indirect(fl.Field())
	if field.Kind() != reflect.String {
		return false
	}
	return len(field.String()) <= limit
}

// messages maps field -> failing tag -> user-facing message
type messages map[string]map[string]string

// check runs the struct rules and returns the first message per failing field
func check(input interface{}, msgs messages) (map[string]string, error) {
	err := engine().Struct(input)
	if err == nil {
		return nil, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, domain.NewInternalError(err)
	}

	details := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.Field()
		if _, seen := details[field]; seen {
			continue
		}
		details[field] = msgs.lookup(field, fe.Tag())
	}
	return details, nil
}

func (m messages) lookup(field, tag string) string {
	if byTag, ok := m[field]; ok {
		if msg, ok := byTag[tag]; ok {
			return msg
		}
		if msg, ok := byTag["*"]; ok {
			return msg
		}
	}
	return "Invalid value"
}
