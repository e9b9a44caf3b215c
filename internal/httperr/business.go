package httperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Business error codes used across the domain and use-case layers.
const (
	CodeInvalidRequest    = "invalid_request"
	CodeSlotConflict      = "slot_conflict"
	CodeOutOfHours        = "out_of_hours"
	CodeInvalidTransition = "invalid_transition"
	CodeInvalidState      = "invalid_state"
)

type BusinessError struct {
	Code string
	Meta map[string]any
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// ErrBusinessMeta attaches structured details to a business failure,
// e.g. the id of the colliding appointment on a slot conflict.
func ErrBusinessMeta(code string, meta map[string]any) error {
	return BusinessError{Code: code, Meta: meta}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessMeta(err error) map[string]any {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Meta
	}
	return nil
}

// WriteBusiness maps a business error onto an HTTP response and reports
// whether it handled the error. Unknown errors stay with the caller.
func WriteBusiness(c *gin.Context, err error) bool {
	var be BusinessError
	if !errors.As(err, &be) {
		return false
	}

	status := http.StatusUnprocessableEntity
	switch {
	case be.Code == CodeSlotConflict:
		status = http.StatusConflict
	case be.Code == CodeInvalidRequest:
		status = http.StatusBadRequest
	case strings.HasSuffix(be.Code, "_not_found"):
		status = http.StatusNotFound
	}

	c.JSON(status, HTTPError{
		Code:    be.Code,
		Message: be.Code,
		Meta:    be.Meta,
	})
	return true
}
