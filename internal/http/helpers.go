package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wishlist/internal/logger"
	"github.com/mrlokans/wishlist/internal/wishlist"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"` // machine-readable error code
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string, code wishlist.Kind) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Code: string(code)})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	logger.Get().Error().Err(err).Str("context", context).Str("path", c.Request.URL.Path).Msg("internal error")
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: string(wishlist.KindInternal)})
}

// respondServiceError maps a service error to its HTTP status.
func respondServiceError(c *gin.Context, err error, context string) {
	var svcErr *wishlist.Error
	if !errors.As(err, &svcErr) {
		respondInternalError(c, err, context)
		return
	}

	status := statusFor(svcErr.Kind)
	if status == http.StatusInternalServerError {
		respondInternalError(c, err, context)
		return
	}
	c.JSON(status, ErrorResponse{Error: svcErr.Message, Code: string(svcErr.Kind)})
}

func statusFor(kind wishlist.Kind) int {
	switch kind {
	case wishlist.KindValidation,
		wishlist.KindUserNotFound,
		wishlist.KindBookNotFound,
		wishlist.KindEntryExists:
		return http.StatusBadRequest
	case wishlist.KindWishlistNotFound, wishlist.KindEntryNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// --- Success Response Helpers ---

// respondOK sends a 200 OK response with a bare "OK" JSON string.
func respondOK(c *gin.Context) {
	c.JSON(http.StatusOK, "OK")
}

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, location string, data any) {
	if location != "" {
		c.Header("Location", location)
	}
	c.JSON(http.StatusCreated, data)
}
