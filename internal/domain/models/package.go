package models

// TourPackage is a curated read-only bundle shown on the packages page.
type TourPackage struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"duration_days"`
	Image        string  `json:"image"`
}
