package validation

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/Payphone-Digital/transportadora/internal/constants"
	"github.com/go-playground/validator/v10"
)

var (
	cpfRegex   = regexp.MustCompile(constants.CPFPattern)
	phoneRegex = regexp.MustCompile(constants.PhonePattern)
	cnhRegex   = regexp.MustCompile(constants.CNHPattern)
	placaRegex = regexp.MustCompile(constants.PlacaPattern)
)

// New returns a validator that reports JSON field names and knows the
// Brazilian document rules (cpf, telefone, cnh, placa, data) plus the
// bcrypt byte limit for passwords (bcryptmax).
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("cpf", matches(cpfRegex))
	_ = v.RegisterValidation("telefone", matches(phoneRegex))
	_ = v.RegisterValidation("cnh", matches(cnhRegex))
	_ = v.RegisterValidation("placa", matches(placaRegex))
	_ = v.RegisterValidation("bcryptmax", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= constants.MaxPasswordBytes
	})
	_ = v.RegisterValidation("data", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(constants.DateLayout, fl.Field().String())
		return err == nil
	})

	return v
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// Messages turns a validator error into one message per violated rule.
// It returns nil for errors that are not validation errors.
func Messages(err error) []string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(errs))
	for _, e := range errs {
		if fieldMessages := CustomMessage(e.Field()); fieldMessages != nil {
			if msg, exists := fieldMessages[e.Tag()]; exists {
				out = append(out, msg)
				continue
			}
		}
		out = append(out, DefaultMessage(e.Field(), e.Tag(), e.Param()))
	}
	return out
}
