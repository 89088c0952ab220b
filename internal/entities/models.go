package entities

import (
	"gorm.io/gorm"

	"github.com/mrlokans/wishlist/internal/identifier"
)

type User struct {
	ID        string  `gorm:"primaryKey;size:36" json:"id"`
	FirstName *string `gorm:"size:80" json:"first_name,omitempty"`
	LastName  *string `gorm:"size:80" json:"last_name,omitempty"`
	Email     string  `gorm:"size:80;not null" json:"email"`
	Password  string  `gorm:"size:60;not null" json:"-"` // bcrypt hash, never the raw password
}

// BeforeCreate assigns an identifier when the caller did not supply one.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = identifier.New()
	}
	return nil
}

func (User) TableName() string {
	return "users"
}

type Book struct {
	ID              string  `gorm:"primaryKey;size:36" json:"id"`
	Title           string  `gorm:"size:255;not null" json:"title"`
	Author          *string `gorm:"size:80" json:"author"`
	ISBN            string  `gorm:"column:isbn;size:20;not null" json:"isbn"` // 13 digits today, older formats vary
	PublicationDate Date    `gorm:"not null" json:"publication_date"`
}

// BeforeCreate assigns an identifier when the caller did not supply one.
func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = identifier.New()
	}
	return nil
}

func (Book) TableName() string {
	return "books"
}

// WishlistEntry is one row of the user/book association. A wishlist has no
// row of its own: it is the set of entries sharing a WishlistID.
type WishlistEntry struct {
	WishlistID string `gorm:"primaryKey;size:36" json:"wishlist_id"`
	UserID     string `gorm:"primaryKey;size:36" json:"user_id"`
	BookID     string `gorm:"primaryKey;size:36;index" json:"book_id"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Book Book `gorm:"foreignKey:BookID;references:ID" json:"-"`
}

func (WishlistEntry) TableName() string {
	return "wishlists"
}

// Wishlist is the read model assembled from all entries sharing a wishlist id.
type Wishlist struct {
	WishlistID string `json:"wishlist_id"`
	UserID     string `json:"user_id"`
	Books      []Book `json:"books"`
}
