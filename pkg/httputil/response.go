package httputil

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/records-api/pkg/errors"
)

// ContextRequestID is the gin context key holding the request id.
const ContextRequestID = "request_id"

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, err error) {
	appErr := errors.Wrap(err)
	status := appErr.StatusCode()

	if status >= http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", c.GetString(ContextRequestID)).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		Code:    status,
		Message: appErr.Message,
		TraceID: c.GetString(ContextRequestID),
	})
}

// RespondWithCreated sends 201 with a Location header pointing at the new resource.
func RespondWithCreated(c *gin.Context, location string, data interface{}) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, data)
}

// ParamInt reads a numeric path parameter, answering 400 itself when it is not one.
func ParamInt(c *gin.Context, name string) (int, bool) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		RespondWithError(c, errors.NewBadRequest(fmt.Sprintf("invalid %s: %q", name, raw), err))
		return 0, false
	}
	return id, true
}
