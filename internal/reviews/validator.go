package reviews

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const MaxTextLength = 2000

const (
	msgTextRequired = "Review text is required"
	msgTextTooLong  = "Review text must be under 2000 characters"
	msgToneRequired = "Tone is required"
	msgInvalidBody  = "Invalid request body"
)

// Validator checks GenerateRequest values. It is safe for concurrent use.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	// Registration only fails for an empty tag or nil func.
	if err := v.RegisterValidation("tone", func(fl validator.FieldLevel) bool {
		return Tone(fl.Field().String()).Valid()
	}); err != nil {
		panic(err)
	}
	return &Validator{v: v}
}

// Validate returns a *ValidationError describing the first violated rule.
func (val *Validator) Validate(req GenerateRequest) error {
	err := val.v.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ValidationError{Message: msgInvalidBody}
	}

	return &ValidationError{Message: message(verrs[0], req)}
}

func message(fe validator.FieldError, req GenerateRequest) string {
	switch fe.Field() {
	case "Text":
		if fe.Tag() == "max" {
			return msgTextTooLong
		}
		return msgTextRequired
	case "Tone":
		if fe.Tag() == "required" {
			return msgToneRequired
		}
		return invalidToneMessage(req.Tone)
	default:
		return msgInvalidBody
	}
}

func invalidToneMessage(got Tone) string {
	quoted := make([]string, len(Tones))
	for i, t := range Tones {
		quoted[i] = "'" + string(t) + "'"
	}
	return fmt.Sprintf("Invalid tone. Expected %s, received '%s'", strings.Join(quoted, " | "), got)
}
