package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/almaspay/backend/internal/constants"
	apperrors "github.com/almaspay/backend/internal/errors"
	ctxutil "github.com/almaspay/backend/pkg/context"
	"github.com/almaspay/backend/pkg/validation"
	"github.com/gin-gonic/gin"
)

// reqContext builds a request-scoped context tagged with the handler name
func reqContext(c *gin.Context, function string) context.Context {
	return ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", function)
}

// respondError writes the envelope for a failed operation
func respondError(c *gin.Context, err error) {
	status := apperrors.ToHTTPStatus(err)
	c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
}

// respondBindError writes a 400 with readable validation messages
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest,
		constants.BuildErrorResponse("Invalid request", validation.MessageForError(err)))
}

// idParam parses the :id path segment. Writes the 400 itself on failure.
func idParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid ID", nil))
		return 0, false
	}
	return uint(id), true
}

// boolQuery parses an optional boolean query parameter
func boolQuery(c *gin.Context, name string) *bool {
	raw, exists := c.GetQuery(name)
	if !exists {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}
