package service

import (
	"errors"
	"fmt"
	"html"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

const MaxContentLength = 5000

var (
	validate  *validator.Validate
	sanitizer = bluemonday.StrictPolicy()

	authorNamePattern = regexp.MustCompile(`^[\p{L}\p{M}\p{N}_\s\-.,']+$`)
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("authorname", func(fl validator.FieldLevel) bool {
		return authorNamePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

type authorInput struct {
	AuthorName  string `json:"author_name" validate:"required,min=2,max=100,authorname"`
	AuthorEmail string `json:"author_email" validate:"required,email,max=255"`
}

// normalizeAuthor trims and validates the author identity of a new comment.
func normalizeAuthor(name, email string) (string, string, error) {
	input := authorInput{
		AuthorName:  strings.TrimSpace(name),
		AuthorEmail: strings.TrimSpace(email),
	}

	if err := validate.Struct(input); err != nil {
		return "", "", toValidationError(err)
	}

	return input.AuthorName, input.AuthorEmail, nil
}

// normalizeContent strips markup from comment content and stores the remaining text unescaped.
// Length and emptiness are checked on the value that is persisted.
func normalizeContent(content string) (string, error) {
	content = strings.TrimSpace(html.UnescapeString(sanitizer.Sanitize(content)))
	if content == "" {
		return "", newValidationError("content", "must not be empty")
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return "", newValidationError("content", fmt.Sprintf("must be at most %d characters", MaxContentLength))
	}

	return content, nil
}

func toValidationError(err error) error {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return err
	}

	fields := make([]FieldError, 0, len(vErrs))
	for _, fe := range vErrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}

	return &ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "authorname":
		return "may contain only letters, digits, spaces and the characters _ - . , '"
	default:
		return fmt.Sprintf("failed on %q", fe.Tag())
	}
}
