// Package summary contains the HTTP handler for dashboard summary totals.
package summary

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/sznajderm/budget-manager-sub002/internal/auth"
	"github.com/sznajderm/budget-manager-sub002/internal/command"
	"github.com/sznajderm/budget-manager-sub002/internal/handlers/v1/httperror"
	"github.com/sznajderm/budget-manager-sub002/internal/service"
)

type summarizer interface {
	Summarize(ctx context.Context, userID uuid.UUID, txType service.TransactionType, start, end time.Time) (service.Summary, error)
}

// SummaryInput is the Huma input for the summary endpoint.
type SummaryInput struct {
	Type      string `query:"transaction_type" required:"true" enum:"income,expense" doc:"Classification to total"`
	StartDate string `query:"start_date" required:"true" doc:"Range start in YYYY-MM-DD format"`
	EndDate   string `query:"end_date" required:"true" doc:"Range end in YYYY-MM-DD format, inclusive"`
}

// SummaryResponse is the response body for the summary endpoint.
type SummaryResponse struct {
	TotalCents       int64  `json:"total_cents" doc:"Sum of matching amounts in integer cents"`
	TransactionCount int    `json:"transaction_count" doc:"Number of matching transactions"`
	PeriodStart      string `json:"period_start" doc:"Range start in YYYY-MM-DD format"`
	PeriodEnd        string `json:"period_end" doc:"Range end in YYYY-MM-DD format"`
}

// SummaryOutput is the Huma output for the summary endpoint.
type SummaryOutput struct {
	Body SummaryResponse
}

// SummaryHandler handles GET /v1/summary.
type SummaryHandler struct {
	Service summarizer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(svc summarizer) *SummaryHandler {
	return &SummaryHandler{Service: svc}
}

// Register registers the summary endpoint with the Huma API.
func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary",
		Summary:     "Summarize transactions",
		Description: "Totals the authenticated owner's transactions of one classification over an inclusive date range.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("unauthenticated")
	}

	cmd, fieldErrs := command.ParseSummary(input.Type, input.StartDate, input.EndDate)
	if len(fieldErrs) > 0 {
		return nil, httperror.FromQueryFieldErrors(fieldErrs)
	}

	result, err := h.Service.Summarize(ctx, userID, cmd.Type, cmd.Start, cmd.End)
	if err != nil {
		return nil, httperror.FromStorage(ctx, err, "failed to summarize transactions")
	}

	return &SummaryOutput{Body: SummaryResponse{
		TotalCents:       result.TotalCents,
		TransactionCount: result.Count,
		PeriodStart:      result.PeriodStart.Format("2006-01-02"),
		PeriodEnd:        result.PeriodEnd.Format("2006-01-02"),
	}}, nil
}
