package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/jwalitptl/records-api/pkg/errors"
	"github.com/jwalitptl/records-api/pkg/httputil"
)

// SizeLimit rejects bodies declared larger than maxBytes and caps the reader
// for bodies of unknown length. handler.BindJSON answers 413 when the cap is hit.
func SizeLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 || c.Request.Body == nil {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBytes {
			httputil.RespondWithError(c, apperrors.NewPayloadTooLarge(maxBytes, nil))
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
