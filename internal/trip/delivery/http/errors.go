package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"trip-planner/internal/trip"
	"trip-planner/pkg/response"
)

// Error codes carried in response.Resp.ErrorCode.
const (
	errCodeInvalidInput    = 1
	errCodeInputTooLong    = 2
	errCodeSessionNotFound = 3
)

var errInvalidBody = errors.New("request body must be JSON with a \"text\" field")

// respondError translates domain errors into HTTP responses. Unknown errors become 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errInvalidBody):
		response.ErrorWithStatus(c, http.StatusBadRequest, errCodeInvalidInput, err.Error())
	case errors.Is(err, trip.ErrEmptyInput):
		response.ErrorWithStatus(c, http.StatusBadRequest, errCodeInvalidInput, "Tell me where you want to go and for how many days!")
	case errors.Is(err, trip.ErrInputTooLong):
		response.ErrorWithStatus(c, http.StatusBadRequest, errCodeInputTooLong,
			fmt.Sprintf("Input is too long! Please limit your message to %d characters.", h.maxInputLength))
	case errors.Is(err, trip.ErrSessionNotFound):
		response.ErrorWithStatus(c, http.StatusNotFound, errCodeSessionNotFound, "Chat session not found")
	default:
		response.InternalError(c, err)
	}
}
