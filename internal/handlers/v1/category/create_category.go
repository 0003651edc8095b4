package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sznajderm/budget-manager-sub002/internal/auth"
	"github.com/sznajderm/budget-manager-sub002/internal/command"
	"github.com/sznajderm/budget-manager-sub002/internal/handlers/v1/httperror"
	"github.com/sznajderm/budget-manager-sub002/internal/operator/actions"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name string `json:"name" required:"true" minLength:"1" maxLength:"100" doc:"Category name, unique per owner ignoring case"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	Body CreateCategoryBody
}

// CreateCategoryResponse is the response body for a created category.
type CreateCategoryResponse struct {
	ID string `json:"id" doc:"Category UUID"`
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Body CreateCategoryResponse
}

// CreateCategoryHandler handles POST /v1/category.
type CreateCategoryHandler struct {
	Operator actionProcessor
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(op actionProcessor) *CreateCategoryHandler {
	return &CreateCategoryHandler{Operator: op}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/v1/category",
		Summary:       "Create category",
		Description:   "Creates a new category for the authenticated owner. Names are unique per owner, compared case-insensitively.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("unauthenticated")
	}

	cmd, fieldErrs := command.ParseCategoryCreate(input.Body.Name)
	if len(fieldErrs) > 0 {
		return nil, httperror.FromFieldErrors(fieldErrs)
	}

	id, err := h.Operator.Process(ctx, &actions.CreateCategory{UserID: userID, Name: cmd.Name})
	if err != nil {
		return nil, httperror.FromStorageConstraint(ctx, err, "failed to create category")
	}

	return &CreateCategoryOutput{Body: CreateCategoryResponse{ID: id.String()}}, nil
}
