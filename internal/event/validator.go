package event

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

// ErrMalformed marks payloads missing required fields or failing validation.
// Such events are dropped, never relayed.
var ErrMalformed = errors.New("malformed event")

// Validator: validation and sanitization of incoming events
type Validator struct {
	validate  *validator.Validate
	sanitizer *bluemonday.Policy
}

func NewValidator() *Validator {
	// removes all HTML/scripts from client-supplied strings
	policy := bluemonday.StrictPolicy()

	return &Validator{
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		sanitizer: policy,
	}
}

// ParseDraw: decodes and validates a draw message, sanitizing string fields
// that will be echoed back to the room
func (v *Validator) ParseDraw(raw []byte) (*Draw, error) {
	var d Draw
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := v.validate.Struct(&d); err != nil {
		return nil, wrapValidationError(err)
	}
	d.Color = v.sanitizer.Sanitize(d.Color)
	return &d, nil
}

// ParseSnapshot: decodes and validates a save-snapshot message. The snapshot
// must look like an image data URL; size is bounded by the transport's
// message-size limit before it ever reaches here.
func (v *Validator) ParseSnapshot(raw []byte) (*SaveSnapshot, error) {
	var s SaveSnapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := v.validate.Struct(&s); err != nil {
		return nil, wrapValidationError(err)
	}
	return &s, nil
}

// ParseCursor: decodes a cursor message
func (v *Validator) ParseCursor(raw []byte) (*Cursor, error) {
	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &c, nil
}

// SanitizeString: strips HTML/scripts from a string before broadcast
func (v *Validator) SanitizeString(s string) string {
	return v.sanitizer.Sanitize(s)
}

// wrapValidationError converts validator errors into a single ErrMalformed
// with the first offending field named
func wrapValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		switch first.Tag() {
		case "required":
			return fmt.Errorf("%w: '%s' is required", ErrMalformed, first.Field())
		case "oneof":
			return fmt.Errorf("%w: '%s' has an unknown value", ErrMalformed, first.Field())
		case "gte", "lte", "max":
			return fmt.Errorf("%w: '%s' out of allowed range", ErrMalformed, first.Field())
		case "startswith":
			return fmt.Errorf("%w: '%s' is not an image data URL", ErrMalformed, first.Field())
		default:
			return fmt.Errorf("%w: '%s' is invalid", ErrMalformed, first.Field())
		}
	}
	return fmt.Errorf("%w: %v", ErrMalformed, err)
}
