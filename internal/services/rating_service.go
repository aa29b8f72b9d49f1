package services

import (
	"fmt"

	"travelease/internal/domain"
	"travelease/internal/domain/models"
	"travelease/internal/repositories"
	"travelease/internal/utils"
)

// RatingService applies cumulative-mean rating updates to hotels and bus
// routes. The write is guarded on the rating_count the caller read, so two
// concurrent raters cannot silently lose an update.
type RatingService struct {
	Ratings   repositories.RatingRepository
	RequestID string
}

// RatingResult is the post-update state of the listing.
type RatingResult struct {
	Rating float64 `json:"rating"`
	Count  int64   `json:"rating_count"`
}

const maxRatingRetries = 2

// Rate accepts an integer score in [1,5] and folds it into the listing's
// running mean, incrementing rating_count by one.
func (s RatingService) Rate(rc domain.RequestContext, kind models.ServiceKind, id int64, score int) (RatingResult, error) {
	if !rc.Authenticated() {
		return RatingResult{}, domain.UnauthorizedError{Msg: "sign in to rate"}
	}
	if score < 1 || score > 5 {
		return RatingResult{}, domain.ValidationError{Field: "rating", Msg: "rating must be an integer between 1 and 5"}
	}
	if id <= 0 {
		return RatingResult{}, domain.ValidationError{Field: "id", Msg: "id is not valid"}
	}

	for attempt := 0; attempt < maxRatingRetries; attempt++ {
		rating, count, err := s.Ratings.Get(kind, id)
		if err != nil {
			return RatingResult{}, err
		}

		newCount := count + 1
		newRating := (rating*float64(count) + float64(score)) / float64(newCount)

		ok, err := s.Ratings.UpdateGuarded(kind, id, newRating, newCount, count)
		if err != nil {
			return RatingResult{}, err
		}
		if ok {
			utils.LogEvent(s.RequestID, "rating", "rate",
				fmt.Sprintf("type=%s id=%d score=%d rating=%.4f count=%d", kind, id, score, newRating, newCount))
			return RatingResult{Rating: newRating, Count: newCount}, nil
		}
		// Lost the race to another rater; re-read and retry once.
	}

	return RatingResult{}, domain.ConflictError{Resource: "rating", Msg: "concurrent update, try again"}
}
