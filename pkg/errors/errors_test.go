package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromErrorKeepsTypedErrors(t *testing.T) {
	wrapped := fmt.Errorf("compute: %w", Clone(ErrInvalidInput, "tags misaligned"))
	appErr := FromError(wrapped)
	assert.Equal(t, ErrInvalidInput.Code, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "tags misaligned", appErr.Message)
}

func TestFromErrorDefaultsToInternal(t *testing.T) {
	appErr := FromError(errors.New("boom"))
	assert.Equal(t, ErrInternal.Code, appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Nil(t, FromError(nil))
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("question 3: matching_question")
	err := Wrap(cause, ErrUnsupportedQuestionType.Code, ErrUnsupportedQuestionType.Status, ErrUnsupportedQuestionType.Message)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "matching_question")
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("stored quiz: %w", Clonef(ErrInvalidInput, "expected %d tag lists, got %d", 3, 2))
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.Equal(t, "expected 3 tag lists, got 2", FromError(err).Message)
}
