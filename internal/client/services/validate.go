package services

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/addressbook/internal/client/directory"
	"github.com/dmitrijs2005/addressbook/internal/common"
	"github.com/go-playground/validator/v10"
)

// ValidationError is a user-facing input problem detected before any call
// leaves the process. It matches common.ErrValidation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == common.ErrValidation }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("filterkey", func(fl validator.FieldLevel) bool {
		_, ok := directory.FindKey(fl.Field().String())
		return ok
	})
	return v
}

// messages maps "Struct.Field.tag" to the text shown to the user.
var messages = map[string]string{
	"Credentials.Username.required": "Please enter your username",
	"Credentials.Password.required": "Please enter your password",
	"FilterInput.Key.required":      "Please choose a filter",
	"FilterInput.Key.filterkey":     "Unknown filter",
	"FilterInput.Value.required":    "Please enter a value",
}

// FilterInput is the raw filter form: a key (path or label) and a value.
type FilterInput struct {
	Key   string `validate:"required,filterkey"`
	Value string `validate:"required"`
}

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	ns := fe.StructNamespace() + "." + fe.Tag()
	msg, ok := messages[ns]
	if !ok {
		msg = strings.ToLower(fe.Field()) + " is invalid"
	}
	return &ValidationError{Field: fe.Field(), Message: msg}
}

// ParseFilter trims and validates a filter form and resolves the key to its
// dot path.
func ParseFilter(key, value string) (directory.Query, error) {
	in := FilterInput{Key: strings.TrimSpace(key), Value: strings.TrimSpace(value)}
	if err := validateStruct(in); err != nil {
		return directory.Query{}, err
	}
	k, _ := directory.FindKey(in.Key)
	return directory.Query{Key: k.Path, Value: in.Value}, nil
}
