package category

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/sznajderm/budget-manager-sub002/internal/auth"
	"github.com/sznajderm/budget-manager-sub002/internal/handlers/v1/httperror"
	"github.com/sznajderm/budget-manager-sub002/internal/service"
)

type categoryLister interface {
	ListCategories(ctx context.Context, userID uuid.UUID) ([]service.Category, error)
}

// CategoryResponse is one category in the list response.
type CategoryResponse struct {
	ID        string `json:"id" doc:"Category UUID"`
	Name      string `json:"name" doc:"Category name"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body []CategoryResponse
}

// ListCategoriesHandler handles GET /v1/categories.
type ListCategoriesHandler struct {
	Service categoryLister
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{Service: svc}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Description: "Lists the authenticated owner's categories.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("unauthenticated")
	}

	categories, err := h.Service.ListCategories(ctx, userID)
	if err != nil {
		return nil, httperror.FromStorage(ctx, err, "failed to list categories")
	}

	body := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		body[i] = CategoryResponse{
			ID:        cat.ID.String(),
			Name:      cat.Name,
			CreatedAt: cat.CreatedAt.UTC().Format(time.RFC3339),
		}
	}

	return &ListCategoriesOutput{Body: body}, nil
}
