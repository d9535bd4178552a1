package db

import (
	"context"
	"database/sql"
)

// profileMigration creates the application profile table. Ids come from
// the identity provider, so there is no default.
const profileMigration = `
CREATE TABLE IF NOT EXISTS public.users (
    id uuid PRIMARY KEY,
    email text NOT NULL,
    role text NOT NULL DEFAULT 'staff',
    created_at timestamptz NOT NULL DEFAULT NOW(),
    updated_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_unique
ON public.users (LOWER(email));

CREATE INDEX IF NOT EXISTS users_role_idx
ON public.users (role);
`

func RunMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, profileMigration)
	return err
}
