package mapper

import reviewdomain "github.com/Apurer/go-gin-storefront/internal/domains/reviews/domain"

// Review is the transport shape of a review.
type Review struct {
	ID      string `json:"id"`
	User    string `json:"user"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

// Draft is the request body for posting a review.
type Draft struct {
	User    string `json:"user"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func ToDomainDraft(d Draft) reviewdomain.Draft {
	return reviewdomain.Draft{User: d.User, Rating: d.Rating, Comment: d.Comment}
}

func FromDomainReview(r reviewdomain.Review) Review {
	return Review{ID: r.ID, User: r.User, Rating: r.Rating, Comment: r.Comment, Date: r.Date}
}

func FromDomainReviews(list []reviewdomain.Review) []Review {
	out := make([]Review, 0, len(list))
	for _, r := range list {
		out = append(out, FromDomainReview(r))
	}
	return out
}
