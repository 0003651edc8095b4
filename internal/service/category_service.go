package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/sznajderm/budget-manager-sub002/internal/storage/category"
)

// Category represents a category in the service layer.
type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// CategoryService handles category read-side business logic.
type CategoryService struct {
	categories category.ICategoryTable
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categories category.ICategoryTable) *CategoryService {
	return &CategoryService{categories: categories}
}

// ListCategories returns the owner's categories.
func (s *CategoryService) ListCategories(ctx context.Context, userID uuid.UUID) ([]Category, error) {
	rows, err := s.categories.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	converted := make([]Category, len(rows))
	for i, row := range rows {
		converted[i] = Category{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt}
	}
	return converted, nil
}
