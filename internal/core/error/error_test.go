package errx

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOfAndMessageOf(t *testing.T) {
	base := errors.New("boom")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"bad request", BadRequest(base, InvalidMessage), http.StatusBadRequest, InvalidMessage},
		{"unauthorized", Unauthorized(base), http.StatusUnauthorized, UnauthorizedMessage},
		{"unavailable", Unavailable(nil, ModelUnavailableMessage), http.StatusServiceUnavailable, ModelUnavailableMessage},
		{"plain error", base, http.StatusInternalServerError, SystemErrorMessage},
		{"custom status", New(base, http.StatusTooManyRequests, RateLimitedMessage), http.StatusTooManyRequests, RateLimitedMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, StatusOf(tt.err))
			assert.Equal(t, tt.wantMsg, MessageOf(tt.err))
		})
	}
}

func TestAppErrorUnwrapChain(t *testing.T) {
	base := errors.New("boom")
	wrapped := BadRequest(base, "bad input")

	assert.ErrorIs(t, wrapped, base)

	var app *AppError
	assert.ErrorAs(t, wrapped, &app)
	assert.Equal(t, http.StatusBadRequest, app.Status)
}

func TestAppErrorMessageFormatting(t *testing.T) {
	assert.Equal(t, "bad input: boom", BadRequest(errors.New("boom"), "bad input").Error())
	assert.Equal(t, "bad input", BadRequest(nil, "bad input").Error())
}
