package services

import (
	"math"
	"regexp"
	"testing"

	"travelease/internal/domain"
	"travelease/internal/domain/models"
	"travelease/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newRatingService(t *testing.T) (RatingService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	svc := RatingService{Ratings: repositories.RatingRepository{DB: db}}
	return svc, mock, func() { db.Close() }
}

var user = domain.RequestContext{UserID: 1, Role: "user"}

func TestRateAppliesCumulativeMean(t *testing.T) {
	svc, mock, cleanup := newRatingService(t)
	defer cleanup()

	expected := (4.0*10 + 5) / 11

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT rating, rating_count FROM hotels WHERE id=?`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"rating", "rating_count"}).AddRow(4.0, 10))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE hotels SET rating=?, rating_count=? WHERE id=? AND rating_count=?`)).
		WithArgs(expected, int64(11), int64(5), int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	res, err := svc.Rate(user, models.KindHotel, 5, 5)
	if err != nil {
		t.Fatalf("rate: %v", err)
	}
	if math.Abs(res.Rating-expected) > 1e-9 {
		t.Errorf("rating = %v, want %v", res.Rating, expected)
	}
	if res.Count != 11 {
		t.Errorf("count = %d, want 11", res.Count)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRateFirstRating(t *testing.T) {
	svc, mock, cleanup := newRatingService(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT rating, rating_count FROM buses WHERE id=?`)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"rating", "rating_count"}).AddRow(0.0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE buses SET rating=?, rating_count=? WHERE id=? AND rating_count=?`)).
		WithArgs(4.0, int64(1), int64(2), int64(0)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	res, err := svc.Rate(user, models.KindBus, 2, 4)
	if err != nil {
		t.Fatalf("rate: %v", err)
	}
	if res.Rating != 4.0 || res.Count != 1 {
		t.Errorf("got (%v, %d), want (4, 1)", res.Rating, res.Count)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRateRetriesOnceOnConcurrentUpdate(t *testing.T) {
	svc, mock, cleanup := newRatingService(t)
	defer cleanup()

	// First attempt loses the race (0 rows), second succeeds against the
	// re-read count.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT rating, rating_count FROM hotels WHERE id=?`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"rating", "rating_count"}).AddRow(4.0, 10))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE hotels SET rating=?, rating_count=? WHERE id=? AND rating_count=?`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT rating, rating_count FROM hotels WHERE id=?`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"rating", "rating_count"}).AddRow(4.1, 11))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE hotels SET rating=?, rating_count=? WHERE id=? AND rating_count=?`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	res, err := svc.Rate(user, models.KindHotel, 5, 5)
	if err != nil {
		t.Fatalf("rate: %v", err)
	}
	if res.Count != 12 {
		t.Errorf("count = %d, want 12", res.Count)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRateGivesUpAfterRetries(t *testing.T) {
	svc, mock, cleanup := newRatingService(t)
	defer cleanup()

	for i := 0; i < 2; i++ {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT rating, rating_count FROM hotels WHERE id=?`)).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"rating", "rating_count"}).AddRow(4.0, 10))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE hotels SET rating=?, rating_count=? WHERE id=? AND rating_count=?`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	_, err := svc.Rate(user, models.KindHotel, 5, 5)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestRateValidation(t *testing.T) {
	svc, mock, cleanup := newRatingService(t)
	defer cleanup()

	if _, err := svc.Rate(user, models.KindHotel, 5, 0); !domain.IsValidation(err) {
		t.Errorf("score 0: expected validation error, got %v", err)
	}
	if _, err := svc.Rate(user, models.KindHotel, 5, 6); !domain.IsValidation(err) {
		t.Errorf("score 6: expected validation error, got %v", err)
	}
	if _, err := svc.Rate(user, models.KindCab, 5, 3); !domain.IsValidation(err) {
		t.Errorf("cab: expected validation error, got %v", err)
	}
	if _, err := svc.Rate(domain.RequestContext{}, models.KindHotel, 5, 3); !domain.IsUnauthorized(err) {
		t.Errorf("anonymous: expected unauthorized, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no SQL should run on invalid input: %v", err)
	}
}
