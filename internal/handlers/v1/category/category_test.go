package category

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sznajderm/budget-manager-sub002/internal/auth"
	"github.com/sznajderm/budget-manager-sub002/internal/operator/actions"
	"github.com/sznajderm/budget-manager-sub002/internal/service"
	"github.com/sznajderm/budget-manager-sub002/internal/storage/pgdb"
)

type mockOperator struct {
	mock.Mock
}

func (m *mockOperator) Process(ctx context.Context, action actions.IAction) (uuid.UUID, error) {
	args := m.Called(ctx, action)
	if args.Get(0) == nil {
		return uuid.Nil, args.Error(1)
	}
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) ListCategories(ctx context.Context, userID uuid.UUID) ([]service.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Category), args.Error(1)
}

func newAuthedAPI(t *testing.T, userID uuid.UUID, register func(api huma.API)) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.WithUserID(ctx.Context(), userID)))
	})
	register(api)
	return api
}

func TestHTTP_CreateCategory_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	mockOp := new(mockOperator)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create, ok := a.(*actions.CreateCategory)
		return ok && create.UserID == userID && create.Name == "Groceries"
	})).Return(categoryID, nil)

	api := newAuthedAPI(t, userID, func(api huma.API) {
		NewCreateCategoryHandler(mockOp).Register(api)
	})

	resp := api.Post("/v1/category", CreateCategoryBody{Name: " Groceries "})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateCategoryResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, categoryID.String(), body.ID)
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateCategory_BlankName(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	mockOp := new(mockOperator)

	api := newAuthedAPI(t, userID, func(api huma.API) {
		NewCreateCategoryHandler(mockOp).Register(api)
	})

	resp := api.Post("/v1/category", CreateCategoryBody{Name: "   "})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateCategory_NameTooLong(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	mockOp := new(mockOperator)

	api := newAuthedAPI(t, userID, func(api huma.API) {
		NewCreateCategoryHandler(mockOp).Register(api)
	})

	resp := api.Post("/v1/category", CreateCategoryBody{Name: strings.Repeat("a", 101)})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateCategory_DuplicateName(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockOp := new(mockOperator)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(nil, errors.Join(pgdb.ErrConflict, errors.New("duplicate key")))

	api := newAuthedAPI(t, userID, func(api huma.API) {
		NewCreateCategoryHandler(mockOp).Register(api)
	})

	resp := api.Post("/v1/category", CreateCategoryBody{Name: "Groceries"})

	// Duplicate category names surface as a validation failure, not a conflict.
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_ListCategories_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	createdAt := time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)

	mockSvc := new(mockCategoryService)
	mockSvc.On("ListCategories", mock.Anything, userID).Return([]service.Category{
		{ID: categoryID, Name: "Groceries", CreatedAt: createdAt},
	}, nil)

	api := newAuthedAPI(t, userID, func(api huma.API) {
		NewListCategoriesHandler(mockSvc).Register(api)
	})

	resp := api.Get("/v1/categories")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body []CategoryResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body, 1)
	assert.Equal(t, "Groceries", body[0].Name)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListCategories_ServiceError(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockCategoryService)
	mockSvc.On("ListCategories", mock.Anything, userID).Return(nil, errors.New("database unavailable"))

	api := newAuthedAPI(t, userID, func(api huma.API) {
		NewListCategoriesHandler(mockSvc).Register(api)
	})

	resp := api.Get("/v1/categories")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteCategory_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	mockOp := new(mockOperator)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		del, ok := a.(*actions.DeleteCategory)
		return ok && del.ID == categoryID && del.UserID == userID
	})).Return(uuid.Nil, nil)

	api := newAuthedAPI(t, userID, func(api huma.API) {
		NewDeleteCategoryHandler(mockOp).Register(api)
	})

	resp := api.Delete("/v1/category/" + categoryID.String())

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_DeleteCategory_NotFound(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockOp := new(mockOperator)
	mockOp.On("Process", mock.Anything, mock.Anything).Return(nil, pgdb.ErrNotFound)

	api := newAuthedAPI(t, userID, func(api huma.API) {
		NewDeleteCategoryHandler(mockOp).Register(api)
	})

	resp := api.Delete("/v1/category/" + uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_DeleteCategory_MalformedID(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	mockOp := new(mockOperator)

	api := newAuthedAPI(t, userID, func(api huma.API) {
		NewDeleteCategoryHandler(mockOp).Register(api)
	})

	resp := api.Delete("/v1/category/not-a-uuid")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}
