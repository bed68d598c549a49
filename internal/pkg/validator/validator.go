package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"starblog/internal/domain"
)

var validate *validator.Validate

// jsonName reports a field by the key the client sends, so failures
// read like the request body.
func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func init() {
	validate = validator.New()
	validate.SetTagName("binding")
	validate.RegisterTagNameFunc(jsonName)

	// gin runs the same binding tags at decode time; report JSON names
	// there too.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonName)
	}
}

// Check runs the binding tags on a request struct. Absent required
// fields come back as a domain.ValidationError naming them in
// declaration order.
func Check(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	if missing := Missing(err); len(missing) > 0 {
		return &domain.ValidationError{Missing: missing}
	}
	return err
}

// Missing extracts the JSON names of failed "required" rules, whether
// the error was raised here or by gin's binder.
func Missing(err error) []string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return nil
	}
	var missing []string
	for _, fe := range vErrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		}
	}
	return missing
}
