package domain

import (
	"strings"
	"time"

	"github.com/Apurer/go-gin-storefront/internal/shared/validation"
)

const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = 5

	// DateLayout renders review dates as "Jan 12, 2025".
	DateLayout = "Jan 02, 2006"
)

// Review is a shopper's rating and comment on a product.
type Review struct {
	ID        string
	User      string
	Rating    int
	Comment   string
	Date      string
	CreatedAt time.Time
}

// Draft is an unsubmitted review.
type Draft struct {
	User    string
	Rating  int
	Comment string
}

// Validate applies the form rules; a zero rating defaults to DefaultRating.
func (d *Draft) Validate() error {
	fields := validation.FieldErrors{}
	fields.Required("user", d.User, "Name is required")
	fields.Required("comment", d.Comment, "Review is required")
	if d.Rating == 0 {
		d.Rating = DefaultRating
	}
	if d.Rating < MinRating || d.Rating > MaxRating {
		fields.Add("rating", "Rating must be between 1 and 5")
	}
	return fields.Err()
}

// NewReview stamps a validated draft with an identifier and time.
func NewReview(id string, d Draft, at time.Time) (Review, error) {
	if err := d.Validate(); err != nil {
		return Review{}, err
	}
	return Review{
		ID:        id,
		User:      strings.TrimSpace(d.User),
		Rating:    d.Rating,
		Comment:   strings.TrimSpace(d.Comment),
		Date:      at.Format(DateLayout),
		CreatedAt: at,
	}, nil
}

// SeedReviews returns the sample reviews every product view starts with.
func SeedReviews() []Review {
	return []Review{
		{
			ID:        "1",
			User:      "Elena V.",
			Rating:    5,
			Comment:   "Absolutely divine quality. The drape is incredible.",
			Date:      "Jan 12, 2025",
			CreatedAt: time.Date(2025, time.January, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        "2",
			User:      "Marcus K.",
			Rating:    4,
			Comment:   "Very soft. The color is slightly more muted in person, which I actually prefer.",
			Date:      "Dec 05, 2024",
			CreatedAt: time.Date(2024, time.December, 5, 0, 0, 0, 0, time.UTC),
		},
	}
}
