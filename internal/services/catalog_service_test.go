package services

import (
	"database/sql"
	"regexp"
	"testing"

	"travelease/internal/domain"
	"travelease/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newCatalogService(t *testing.T) (CatalogService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	svc := CatalogService{
		Hotels: repositories.HotelRepository{DB: db},
		Buses:  repositories.BusRepository{DB: db},
		Cabs:   repositories.CabRepository{DB: db},
	}
	return svc, mock, func() { db.Close() }
}

func TestSearchHotelsFiltersByLocation(t *testing.T) {
	svc, mock, cleanup := newCatalogService(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM hotels WHERE LOWER(location) LIKE ?`)).
		WithArgs("%goa%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "provider_id", "name", "location", "description", "price_per_night", "amenities", "images", "rating", "rating_count"}).
			AddRow(7, 3, "Sea View", "Goa", "", 1200.0, `["wifi"]`, "[]", 4.2, 11))

	hotels, err := svc.SearchHotels("Goa")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(hotels) != 1 {
		t.Fatalf("got %d hotels, want 1", len(hotels))
	}
	if hotels[0].Name != "Sea View" {
		t.Errorf("name = %q", hotels[0].Name)
	}
	if len(hotels[0].Amenities) != 1 || hotels[0].Amenities[0] != "wifi" {
		t.Errorf("amenities = %v", hotels[0].Amenities)
	}
}

func TestSearchHotelsEmptyMatchIsNotAnError(t *testing.T) {
	svc, mock, cleanup := newCatalogService(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM hotels WHERE LOWER(location) LIKE ?`)).
		WithArgs("%nowhere%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "provider_id", "name", "location", "description", "price_per_night", "amenities", "images", "rating", "rating_count"}))

	hotels, err := svc.SearchHotels("Nowhere")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(hotels) != 0 {
		t.Errorf("got %d hotels, want 0", len(hotels))
	}
}

func TestSearchHotelsPropagatesFailure(t *testing.T) {
	svc, mock, cleanup := newCatalogService(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM hotels`)).
		WillReturnError(sql.ErrConnDone)

	_, err := svc.SearchHotels("")
	if !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestSearchBusesCombinesFilters(t *testing.T) {
	svc, mock, cleanup := newCatalogService(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM buses WHERE LOWER(source) LIKE ? AND LOWER(destination) LIKE ?`)).
		WithArgs("%pune%", "%mumbai%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "provider_id", "operator", "source", "destination", "departure_time", "arrival_time", "price", "available_seats", "rating", "rating_count"}))

	if _, err := svc.SearchBuses("Pune", "Mumbai"); err != nil {
		t.Fatalf("search: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListCabsOnlyAvailable(t *testing.T) {
	svc, mock, cleanup := newCatalogService(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM cabs WHERE available=1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "provider_id", "vehicle_type", "base_price", "price_per_km", "available"}).
			AddRow(9, 4, "sedan", 100.0, 12.0, true))

	cabs, err := svc.ListCabs()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(cabs) != 1 || cabs[0].VehicleType != "sedan" {
		t.Errorf("cabs = %+v", cabs)
	}
}
