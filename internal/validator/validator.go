package validator

import (
	"errors"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"humspot-backend/internal/apperror"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their wire names: json tag for bodies, path tag for URL params.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "path"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	// id: a BIGINT key, in range
	validate.RegisterValidation("id", func(fl validator.FieldLevel) bool {
		_, err := strconv.ParseInt(fl.Field().String(), 10, 64)
		return err == nil
	})

	validate.RegisterValidation("photo_type", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "jpeg", "jpg", "png", "webp", "heic":
			return true
		}
		return false
	})
}

// Validate validates a struct and returns a map of field errors
func Validate(s any) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			out[field] = field + " is required"
		case "min", "gte":
			out[field] = field + " must be at least " + fe.Param()
		case "max", "lte":
			out[field] = field + " must be at most " + fe.Param()
		case "id":
			out[field] = field + " must be a valid id"
		case "url":
			out[field] = field + " must be a valid URL"
		case "photo_type":
			out[field] = field + " must be one of jpeg, jpg, png, webp, heic"
		default:
			out[field] = field + " is invalid"
		}
	}
	return out
}

// Check runs Validate and folds the result into a single validation AppError.
func Check(s any) error {
	fields := Validate(s)
	if len(fields) == 0 {
		return nil
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	msgs := make([]string, 0, len(names))
	for _, name := range names {
		msgs = append(msgs, fields[name])
	}
	return apperror.ValidationFailed(names[0], strings.Join(msgs, "; "))
}
