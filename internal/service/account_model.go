package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Account represents an account in the service layer.
type Account struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}
