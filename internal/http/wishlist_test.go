package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mrlokans/wishlist/internal/database"
	"github.com/mrlokans/wishlist/internal/database/books"
	"github.com/mrlokans/wishlist/internal/database/users"
	"github.com/mrlokans/wishlist/internal/database/wishlists"
	"github.com/mrlokans/wishlist/internal/entities"
	"github.com/mrlokans/wishlist/internal/wishlist"
)

type wishlistTestEnv struct {
	router *gin.Engine
	user   *entities.User
	book1  *entities.Book
	book2  *entities.Book
}

func setupWishlistTest(t *testing.T, opts wishlist.Options) *wishlistTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "wishlist.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	user, err := users.NewRepository(db.DB, bcrypt.MinCost).CreateUser(users.NewUser{
		Email:       "joe@schmoe.com",
		RawPassword: "superS3cr3t",
	})
	require.NoError(t, err)

	bookRepo := books.NewRepository(db.DB)
	book1, err := bookRepo.CreateBook(&entities.Book{
		Title:           "Chicken Soup for the Soul 20th Anniversary Edition",
		ISBN:            "978-1611599138",
		PublicationDate: entities.NewDate(2013, time.June, 25),
	})
	require.NoError(t, err)
	book2, err := bookRepo.CreateBook(&entities.Book{
		Title:           "The Go Programming Language",
		ISBN:            "978-0134190440",
		PublicationDate: entities.NewDate(2015, time.October, 26),
	})
	require.NoError(t, err)

	service := wishlist.NewService(wishlists.NewRepository(db.DB), opts)
	router := NewRouter(RouterConfig{Database: db, WishlistService: service, Version: "test"})

	return &wishlistTestEnv{router: router, user: user, book1: book1, book2: book2}
}

func (e *wishlistTestEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

type wishlistResponse struct {
	WishlistID string `json:"wishlist_id"`
	UserID     string `json:"user_id"`
	Books      []struct {
		ID              string  `json:"id"`
		Title           string  `json:"title"`
		Author          *string `json:"author"`
		ISBN            string  `json:"isbn"`
		PublicationDate string  `json:"publication_date"`
	} `json:"books"`
}

func TestWishlist_EndToEnd(t *testing.T) {
	env := setupWishlistTest(t, wishlist.Options{})

	// Start a new wishlist.
	w := env.do(t, http.MethodPost, "/wishlist_entry", map[string]string{
		"book_id": env.book1.ID,
		"user_id": env.user.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var entry entities.WishlistEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
	assert.Equal(t, env.book1.ID, entry.BookID)
	assert.Equal(t, env.user.ID, entry.UserID)
	require.NotEmpty(t, entry.WishlistID)
	assert.Equal(t, "/wishlist/"+entry.WishlistID, w.Header().Get("Location"))

	// Add a second book to the same wishlist.
	w = env.do(t, http.MethodPost, "/wishlist_entry", map[string]string{
		"book_id":     env.book2.ID,
		"user_id":     env.user.ID,
		"wishlist_id": entry.WishlistID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Read it back.
	w = env.do(t, http.MethodGet, "/wishlist/"+entry.WishlistID, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var list wishlistResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, entry.WishlistID, list.WishlistID)
	assert.Equal(t, env.user.ID, list.UserID)
	require.Len(t, list.Books, 2)

	byID := map[string]string{}
	for _, b := range list.Books {
		byID[b.ID] = b.PublicationDate
	}
	assert.Equal(t, "2013-06-25", byID[env.book1.ID])
	assert.Equal(t, "2015-10-26", byID[env.book2.ID])

	// Remove the first book.
	w = env.do(t, http.MethodDelete, "/wishlist_entry", map[string]string{
		"wishlist_id": entry.WishlistID,
		"book_id":     env.book1.ID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `"OK"`, w.Body.String())

	w = env.do(t, http.MethodGet, "/wishlist/"+entry.WishlistID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Books, 1)
	assert.Equal(t, env.book2.ID, list.Books[0].ID)
	assert.Equal(t, "The Go Programming Language", list.Books[0].Title)
	assert.Nil(t, list.Books[0].Author)

	// Remove the last book; the wishlist is gone.
	w = env.do(t, http.MethodDelete, "/wishlist_entry", map[string]string{
		"wishlist_id": entry.WishlistID,
		"book_id":     env.book2.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/wishlist/"+entry.WishlistID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "WISHLIST_NOT_FOUND", decodeError(t, w).Code)
}

func TestWishlist_AddEntryErrors(t *testing.T) {
	env := setupWishlistTest(t, wishlist.Options{})
	unknown := "00000000-0000-4000-8000-000000000000"

	tests := []struct {
		name    string
		body    any
		code    string
		message string
	}{
		{"empty object", map[string]string{}, "VALIDATION_ERROR", "missing required key: book_id"},
		{"missing user", map[string]string{"book_id": env.book1.ID}, "VALIDATION_ERROR", "missing required key: user_id"},
		{"malformed book id", map[string]string{"book_id": "123", "user_id": env.user.ID}, "VALIDATION_ERROR", "book_id must be valid UUID"},
		{"non-string book id", map[string]any{"book_id": 123, "user_id": env.user.ID}, "VALIDATION_ERROR", "book_id must be valid UUID"},
		{"malformed wishlist id", map[string]string{"book_id": env.book1.ID, "user_id": env.user.ID, "wishlist_id": "nope"}, "VALIDATION_ERROR", "wishlist_id must be valid UUID"},
		{"unknown user", map[string]string{"book_id": env.book1.ID, "user_id": unknown}, "USER_NOT_FOUND", "user not found"},
		{"unknown book", map[string]string{"book_id": unknown, "user_id": env.user.ID}, "BOOK_NOT_FOUND", "book not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/wishlist_entry", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.code, resp.Code)
			assert.Equal(t, tt.message, resp.Error)
		})
	}
}

func TestWishlist_AddEntryEmptyBody(t *testing.T) {
	env := setupWishlistTest(t, wishlist.Options{})

	w := env.do(t, http.MethodPost, "/wishlist_entry", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing required key: book_id", decodeError(t, w).Error)
}

func TestWishlist_AddEntryMalformedJSON(t *testing.T) {
	env := setupWishlistTest(t, wishlist.Options{})

	req, _ := http.NewRequest(http.MethodPost, "/wishlist_entry", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeError(t, w).Code)
}

func TestWishlist_AddEntryDuplicate(t *testing.T) {
	env := setupWishlistTest(t, wishlist.Options{})

	w := env.do(t, http.MethodPost, "/wishlist_entry", map[string]string{
		"book_id": env.book1.ID,
		"user_id": env.user.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var entry entities.WishlistEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))

	w = env.do(t, http.MethodPost, "/wishlist_entry", map[string]string{
		"book_id":     env.book1.ID,
		"user_id":     env.user.ID,
		"wishlist_id": entry.WishlistID,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ENTRY_EXISTS", decodeError(t, w).Code)

	w = env.do(t, http.MethodGet, "/wishlist/"+entry.WishlistID, nil)
	var list wishlistResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Books, 1)
}

func TestWishlist_GetWishlistErrors(t *testing.T) {
	env := setupWishlistTest(t, wishlist.Options{})

	t.Run("malformed id", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/wishlist/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Error, "must be valid UUID")
	})

	t.Run("unknown id", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/wishlist/00000000-0000-4000-8000-000000000000", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "wishlist not found", decodeError(t, w).Error)
	})
}

func TestWishlist_RemoveEntry(t *testing.T) {
	missing := map[string]string{
		"wishlist_id": "00000000-0000-4000-8000-000000000000",
		"book_id":     "00000000-0000-4000-8000-000000000001",
	}

	t.Run("missing entry succeeds by default", func(t *testing.T) {
		env := setupWishlistTest(t, wishlist.Options{})

		w := env.do(t, http.MethodDelete, "/wishlist_entry", missing)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing entry is 404 in strict mode", func(t *testing.T) {
		env := setupWishlistTest(t, wishlist.Options{StrictRemove: true})

		w := env.do(t, http.MethodDelete, "/wishlist_entry", missing)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "ENTRY_NOT_FOUND", decodeError(t, w).Code)
	})

	t.Run("validation", func(t *testing.T) {
		env := setupWishlistTest(t, wishlist.Options{})

		w := env.do(t, http.MethodDelete, "/wishlist_entry", map[string]string{"wishlist_id": missing["wishlist_id"]})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "missing required key: book_id", decodeError(t, w).Error)
	})
}

func TestRouter_Health(t *testing.T) {
	env := setupWishlistTest(t, wishlist.Options{})

	w := env.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `"OK"`, w.Body.String())
}
