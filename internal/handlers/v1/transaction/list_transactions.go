package transaction

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/sznajderm/budget-manager-sub002/internal/auth"
	"github.com/sznajderm/budget-manager-sub002/internal/handlers/v1/httperror"
	"github.com/sznajderm/budget-manager-sub002/internal/postgrest"
	"github.com/sznajderm/budget-manager-sub002/internal/service"
)

type transactionLister interface {
	ListTransactionViews(ctx context.Context, userID uuid.UUID, filter *service.TransactionFilter) ([]service.TransactionView, error)
}

// ListTransactionsInput captures the raw query string so PostgREST-style
// filters keep their original order.
type ListTransactionsInput struct {
	rawQuery string
}

// Resolve stores the unparsed query string for filter extraction.
func (i *ListTransactionsInput) Resolve(ctx huma.Context) []error {
	i.rawQuery = ctx.URL().RawQuery
	return nil
}

var _ huma.Resolver = (*ListTransactionsInput)(nil)

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body []service.TransactionView
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	Service transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{Service: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Lists the authenticated owner's transactions, newest first. Supports PostgREST-style equality filters on id, account_id, category_id and transaction_type, plus limit and offset pagination.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("unauthenticated")
	}

	filter, err := buildListFilter(input.rawQuery)
	if err != nil {
		return nil, err
	}

	views, err := h.Service.ListTransactionViews(ctx, userID, filter)
	if err != nil {
		return nil, httperror.FromStorage(ctx, err, "failed to list transactions")
	}

	return &ListTransactionsOutput{Body: views}, nil
}

// buildListFilter translates the query string into a service filter. Unknown
// columns and unsupported operators are rejected rather than ignored so a
// caller never silently receives an unfiltered list.
func buildListFilter(rawQuery string) (*service.TransactionFilter, error) {
	params, err := url.ParseQuery(rawQuery)
	if err != nil {
		return nil, huma.Error400BadRequest("malformed query string")
	}

	filter := &service.TransactionFilter{}
	filter.Limit, filter.Offset = postgrest.ParsePagination(params)

	if rawID, ok := postgrest.EqID(params); ok {
		id, err := parseFilterUUID("id", rawID)
		if err != nil {
			return nil, err
		}
		filter.ID = id
	} else if params.Has("id") {
		return nil, huma.Error400BadRequest(`id filter must use the form "id=eq.<uuid>"`)
	}

	for _, f := range postgrest.ParseFilters(rawQuery) {
		if f.Column == "id" {
			continue
		}
		if f.Operator != "eq" {
			return nil, huma.Error400BadRequest(fmt.Sprintf("unsupported operator %q for column %q", f.Operator, f.Column))
		}

		switch f.Column {
		case "account_id":
			id, err := parseFilterUUID(f.Column, f.Value)
			if err != nil {
				return nil, err
			}
			filter.AccountID = id
		case "category_id":
			id, err := parseFilterUUID(f.Column, f.Value)
			if err != nil {
				return nil, err
			}
			filter.CategoryID = id
		case "transaction_type":
			txType, ok := service.ParseTransactionType(f.Value)
			if !ok {
				return nil, huma.Error400BadRequest("transaction_type must be income or expense")
			}
			filter.Type = &txType
		default:
			return nil, huma.Error400BadRequest(fmt.Sprintf("unknown filter column %q", f.Column))
		}
	}

	return filter, nil
}

func parseFilterUUID(column, value string) (*uuid.UUID, error) {
	if !postgrest.IsUUID(value) {
		return nil, huma.Error400BadRequest(fmt.Sprintf("%s filter must be a UUID", column))
	}
	id, err := uuid.FromString(value)
	if err != nil {
		return nil, huma.Error400BadRequest(fmt.Sprintf("%s filter must be a UUID", column))
	}
	return &id, nil
}
