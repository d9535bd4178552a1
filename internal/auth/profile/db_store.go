package profile

import (
	"context"
	"fmt"

	"staff-service/internal/db"

	"github.com/google/uuid"
)

// DBStore writes profiles straight into Postgres.
type DBStore struct {
	db *db.DB
}

func NewDBStore(db *db.DB) *DBStore {
	return &DBStore{db: db}
}

func (s *DBStore) Insert(ctx context.Context, p Profile) error {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", p.ID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO public.users (id, email, role)
		VALUES ($1, $2, $3)
	`,
		id,
		p.Email,
		p.Role,
	)

	return err
}
