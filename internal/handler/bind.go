package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/jwalitptl/records-api/pkg/errors"
	"github.com/jwalitptl/records-api/pkg/httputil"
)

// BindJSON decodes the request body into obj, answering the error itself on
// failure: 413 when the body hit the size cap, 400 otherwise.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httputil.RespondWithError(c, apperrors.NewPayloadTooLarge(tooLarge.Limit, err))
			return false
		}
		httputil.RespondWithError(c, apperrors.NewBadRequest("Invalid request body: "+err.Error(), err))
		return false
	}
	return true
}
