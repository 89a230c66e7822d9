package validator

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var fleetNameValidRegex = regexp.MustCompile("^[a-zA-Z0-9+-_.]+$")

func nameValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return fleetNameValidRegex.MatchString(val)
}

// dateValidator accepts "2006-01-02" formatted dates.
func dateValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := time.Parse("2006-01-02", val)
	return err == nil
}

func reportFormatValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	switch val {
	case "csv":
		fallthrough
	case "xlsx":
		return true
	default:
		return false
	}
}
