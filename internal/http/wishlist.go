package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wishlist/internal/wishlist"
)

type WishlistController struct {
	service WishlistService
}

func NewWishlistController(service WishlistService) *WishlistController {
	return &WishlistController{service: service}
}

// AddEntry handles POST /wishlist_entry.
func (wc *WishlistController) AddEntry(c *gin.Context) {
	var req wishlist.AddEntryRequest
	if !bindBody(c, &req) {
		return
	}

	entry, err := wc.service.AddEntry(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "add wishlist entry")
		return
	}

	respondCreated(c, "/wishlist/"+entry.WishlistID, entry)
}

// RemoveEntry handles DELETE /wishlist_entry.
func (wc *WishlistController) RemoveEntry(c *gin.Context) {
	var req wishlist.RemoveEntryRequest
	if !bindBody(c, &req) {
		return
	}

	if err := wc.service.RemoveEntry(c.Request.Context(), req); err != nil {
		respondServiceError(c, err, "remove wishlist entry")
		return
	}

	respondOK(c)
}

// GetWishlist handles GET /wishlist/:wishlist_id.
func (wc *WishlistController) GetWishlist(c *gin.Context) {
	list, err := wc.service.ListEntries(c.Request.Context(), c.Param("wishlist_id"))
	if err != nil {
		respondServiceError(c, err, "get wishlist")
		return
	}

	c.JSON(http.StatusOK, list)
}

// bindBody decodes the JSON request body into req. An empty body decodes to
// the zero value so field validation can name the missing key. On failure it
// writes a 400 response and returns false.
func bindBody(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		respondBadRequest(c, fmt.Sprintf("%s must be valid UUID", typeErr.Field), wishlist.KindValidation)
		return false
	}

	respondBadRequest(c, "request body must be a JSON object", wishlist.KindValidation)
	return false
}
