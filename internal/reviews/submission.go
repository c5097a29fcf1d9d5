package reviews

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	pkgerrors "github.com/angelmondragon/storefront/pkg/errors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DateLayout is the format of Review.Date.
const DateLayout = "2006-01-02"

// Submission is the review form a shopper fills in.
type Submission struct {
	Name    string `json:"name" validate:"required,min=1,max=30"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,min=4,max=350"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// Normalize trims the free-text fields.
func (s Submission) Normalize() Submission {
	s.Name = strings.TrimSpace(s.Name)
	s.Comment = strings.TrimSpace(s.Comment)
	return s
}

// Validate checks the trimmed submission and returns a CodeValidation error
// whose details map each failing field to a message.
func (s Submission) Validate() error {
	if err := validate.Struct(s.Normalize()); err != nil {
		return validationError(err)
	}
	return nil
}

func validationError(err error) *pkgerrors.Error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid review")
	}
	details := map[string]string{}
	for _, fe := range errs {
		details[fe.Field()] = fieldMessage(fe)
	}
	return pkgerrors.New(pkgerrors.CodeValidation, "invalid review").WithDetails(details)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() + "." + fe.Tag() {
	case "name.required", "name.min":
		return "Name is required"
	case "rating.required", "rating.min", "rating.max":
		return "Please select a rating"
	case "comment.required", "comment.min":
		return "Comment should be at least 4 characters"
	}
	if fe.Tag() == "max" {
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	}
	return "is invalid"
}

// New validates sub and turns it into a review dated at now.
func New(sub Submission, now time.Time) (Review, error) {
	if err := sub.Validate(); err != nil {
		return Review{}, err
	}
	sub = sub.Normalize()
	return Review{
		ID:      uuid.NewString(),
		Name:    sub.Name,
		Rating:  sub.Rating,
		Comment: sub.Comment,
		Date:    now.UTC().Format(DateLayout),
	}, nil
}
