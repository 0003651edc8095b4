// Package status contains the service health endpoint.
package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// StatusResponse is the response body for the health endpoint.
type StatusResponse struct {
	Status   string `json:"status" enum:"ok,degraded" doc:"Overall service health"`
	Database string `json:"database" enum:"ok,unreachable" doc:"Database connectivity"`
}

// StatusOutput is the Huma output for the health endpoint.
type StatusOutput struct {
	Body StatusResponse
}

// Handler handles GET /v1/status.
type Handler struct {
	DB pinger
}

// NewHandler creates a new status Handler.
func NewHandler(db pinger) *Handler {
	return &Handler{DB: db}
}

// Register registers the health endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-status",
		Method:      http.MethodGet,
		Path:        "/status",
		Summary:     "Service health",
		Tags:        []string{"Status"},
		Metadata:    map[string]any{"public": true},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *struct{}) (*StatusOutput, error) {
	resp := StatusResponse{Status: "ok", Database: "ok"}
	if err := h.DB.Ping(ctx); err != nil {
		resp.Status = "degraded"
		resp.Database = "unreachable"
	}
	return &StatusOutput{Body: resp}, nil
}
