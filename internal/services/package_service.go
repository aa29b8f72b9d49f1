package services

import (
	"travelease/internal/domain/models"
	"travelease/internal/repositories"
)

// PackageService lists curated tour packages. Read-only.
type PackageService struct {
	Packages repositories.PackageRepository
}

func (s PackageService) List() ([]models.TourPackage, error) {
	return s.Packages.List()
}
