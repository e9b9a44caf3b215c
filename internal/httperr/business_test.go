package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBusiness(t *testing.T) {
	err := ErrBusiness(CodeOutOfHours)

	assert.True(t, IsBusiness(err, CodeOutOfHours))
	assert.False(t, IsBusiness(err, CodeSlotConflict))
	assert.False(t, IsBusiness(errors.New("plain"), CodeOutOfHours))
	assert.False(t, IsBusiness(nil, CodeOutOfHours))

	// wrapped errors still match
	wrapped := fmt.Errorf("create booking: %w", err)
	assert.True(t, IsBusiness(wrapped, CodeOutOfHours))
}

func TestBusinessMeta(t *testing.T) {
	err := ErrBusinessMeta(CodeSlotConflict, map[string]any{"appointment_id": uint(5)})

	meta := BusinessMeta(err)
	require.NotNil(t, meta)
	assert.Equal(t, uint(5), meta["appointment_id"])

	assert.Nil(t, BusinessMeta(errors.New("plain")))
}

func TestWriteBusinessStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		code   string
		status int
	}{
		{CodeSlotConflict, http.StatusConflict},
		{CodeInvalidRequest, http.StatusBadRequest},
		{"client_not_found", http.StatusNotFound},
		{"appointment_not_found", http.StatusNotFound},
		{CodeOutOfHours, http.StatusUnprocessableEntity},
		{CodeInvalidTransition, http.StatusUnprocessableEntity},
		{CodeInvalidState, http.StatusUnprocessableEntity},
	}

	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			handled := WriteBusiness(c, ErrBusiness(tc.code))
			assert.True(t, handled)
			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.code)
		})
	}
}

func TestWriteBusinessIgnoresUnknownErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	handled := WriteBusiness(c, errors.New("pq: connection refused"))
	assert.False(t, handled)
	assert.Equal(t, http.StatusOK, w.Code) // nothing written
}
