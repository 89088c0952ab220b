package wishlist

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mrlokans/wishlist/internal/identifier"
)

// AddEntryRequest is the body of POST /wishlist_entry. An absent WishlistID
// starts a new wishlist.
type AddEntryRequest struct {
	BookID     string `json:"book_id" validate:"required,uuid"`
	UserID     string `json:"user_id" validate:"required,uuid"`
	WishlistID string `json:"wishlist_id,omitempty" validate:"omitempty,uuid"`
}

// RemoveEntryRequest is the body of DELETE /wishlist_entry.
type RemoveEntryRequest struct {
	WishlistID string `json:"wishlist_id" validate:"required,uuid"`
	BookID     string `json:"book_id" validate:"required,uuid"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON key rather than the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// "uuid" accepts exactly what the identifier generator produces.
	_ = v.RegisterValidation("uuid", func(fl validator.FieldLevel) bool {
		return identifier.Valid(fl.Field().String())
	})
	return v
}

// validateRequest checks req against its struct tags and returns the first
// failing field as a KindValidation error.
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return newError(KindInternal, "failed to validate request", err)
	}
	return newError(KindValidation, fieldMessage(fieldErrs[0].Field(), fieldErrs[0].Tag()), nil)
}

// ValidateWishlistID checks a wishlist identifier taken from a URL path.
func ValidateWishlistID(id string) error {
	if err := validate.Var(id, "required,uuid"); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return newError(KindValidation, fieldMessage("wishlist_id", fieldErrs[0].Tag()), nil)
		}
		return newError(KindInternal, "failed to validate request", err)
	}
	return nil
}

func fieldMessage(field, tag string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("missing required key: %s", field)
	case "uuid":
		return fmt.Sprintf("%s must be valid UUID", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
