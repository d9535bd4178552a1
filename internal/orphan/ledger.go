package orphan

import (
	"context"
	"time"
)

// Entry records an authentication identity that has no profile row because
// the profile insert failed after the identity was created.
type Entry struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// Ledger keeps orphaned identities for manual reconciliation. It never
// modifies the identity itself.
type Ledger interface {
	Record(ctx context.Context, e Entry) error
	Get(ctx context.Context, userID string) (*Entry, error)
	List(ctx context.Context) ([]Entry, error)
}

// Nop is used when no ledger backend is configured.
type Nop struct{}

func (Nop) Record(context.Context, Entry) error         { return nil }
func (Nop) Get(context.Context, string) (*Entry, error) { return nil, nil }
func (Nop) List(context.Context) ([]Entry, error)       { return nil, nil }
