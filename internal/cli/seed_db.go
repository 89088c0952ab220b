package cli

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mrlokans/wishlist/internal/config"
	"github.com/mrlokans/wishlist/internal/database"
	"github.com/mrlokans/wishlist/internal/database/books"
	"github.com/mrlokans/wishlist/internal/database/users"
	"github.com/mrlokans/wishlist/internal/entities"
)

// SeedDBCommand inserts a sample user and two sample books.
type SeedDBCommand struct {
	Database   config.Database
	BcryptCost int
}

func NewSeedDBCommand(cfg config.Database, bcryptCost int) *SeedDBCommand {
	return &SeedDBCommand{Database: cfg, BcryptCost: bcryptCost}
}

func (cmd *SeedDBCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed-db", flag.ContinueOnError)
	registerDatabaseFlags(fs, &cmd.Database)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed-db [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Insert a sample user and two sample books and print their ids.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *SeedDBCommand) Run() error {
	db, err := database.Open(cmd.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	seeded, err := Seed(db, cmd.BcryptCost)
	if err != nil {
		return err
	}

	fmt.Printf("User: %s (%s)\n", seeded.User.ID, seeded.User.Email)
	for _, book := range seeded.Books {
		fmt.Printf("Book: %s (%s)\n", book.ID, book.Title)
	}
	return nil
}

// Seeded holds the records created by Seed.
type Seeded struct {
	User  *entities.User
	Books []*entities.Book
}

// Seed inserts the sample data into db.
func Seed(db *database.Database, bcryptCost int) (*Seeded, error) {
	user, err := users.NewRepository(db.DB, bcryptCost).CreateUser(users.NewUser{
		Email:       "fredr@neighborhood.com",
		RawPassword: "won'tyoubemyneighbor",
		FirstName:   "fred",
		LastName:    "rogers",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seed user: %w", err)
	}

	canfield := "Jack Canfield, Mark Victor Hansen, Amy Newmark"
	carle := "Eric Carle"
	samples := []*entities.Book{
		{
			Title:           "Chicken Soup for the Soul 20th Anniversary Edition",
			Author:          &canfield,
			ISBN:            "978-1611599138",
			PublicationDate: entities.NewDate(2013, time.June, 25),
		},
		{
			Title:           "The Very Hungry Caterpillar",
			Author:          &carle,
			ISBN:            "978-0399226908",
			PublicationDate: entities.NewDate(1969, time.June, 3),
		},
	}

	bookRepo := books.NewRepository(db.DB)
	seeded := &Seeded{User: user}
	for _, sample := range samples {
		book, err := bookRepo.CreateBook(sample)
		if err != nil {
			return nil, fmt.Errorf("failed to seed book %q: %w", sample.Title, err)
		}
		seeded.Books = append(seeded.Books, book)
	}

	return seeded, nil
}
