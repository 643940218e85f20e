package validation_test

import (
	"errors"
	"testing"

	"github.com/JRamonda/my-cv/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string `validate:"required"`
	Email string `validate:"omitempty,email"`
	Level string `validate:"omitempty,oneof=beginner intermediate expert"`
}

func TestDescribe(t *testing.T) {
	v := validator.New()

	t.Run("Should name every offending field", func(t *testing.T) {
		err := v.Struct(sample{Email: "not-an-email", Level: "guru"})
		msg := validation.Describe(err)

		assert.Contains(t, msg, "Name is required")
		assert.Contains(t, msg, "Email must be a valid email address")
		assert.Contains(t, msg, "Level must be one of: beginner, intermediate, expert")
	})

	t.Run("Should pass through non-validation errors", func(t *testing.T) {
		err := errors.New("unexpected EOF")
		assert.Equal(t, "unexpected EOF", validation.Describe(err))
	})
}
