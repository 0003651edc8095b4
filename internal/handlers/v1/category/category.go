// Package category contains the HTTP handlers for category endpoints.
package category

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/sznajderm/budget-manager-sub002/internal/operator/actions"
)

// actionProcessor is the interface for performing write actions through the
// operator.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) (uuid.UUID, error)
}
