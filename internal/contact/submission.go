package contact

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

var (
	ErrUnknownField      = errors.New("unknown contact field")
	ErrInvalidSubmission = errors.New("invalid contact submission")
	ErrDeliveryFailed    = errors.New("submission delivery failed")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Submission is the contact form's three text fields.
type Submission struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Message string `json:"message" form:"message" validate:"required"`
}

// With returns a copy of s with one field replaced.
func (s Submission) With(field Field, value string) (Submission, error) {
	switch field {
	case FieldName:
		s.Name = value
	case FieldEmail:
		s.Email = value
	case FieldMessage:
		s.Message = value
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return s, nil
}

func (s Submission) IsEmpty() bool {
	return s == Submission{}
}

// Validate enforces the same rules a browser applies to required inputs and
// type="email" fields before it lets a form submit.
func (s Submission) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed %s", ErrInvalidSubmission, verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidSubmission, err)
	}
	return nil
}
