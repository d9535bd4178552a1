package profile

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"staff-service/internal/db"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "0b8c2f0e-5d2a-4a8e-9f39-4c2b1d7e9a10"

func newMockStore(t *testing.T) (*DBStore, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return NewDBStore(&db.DB{DB: sqlDB}), mock
}

func TestDBStore_Insert(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO public.users (id, email, role)")).
		WithArgs(testUserID, "a@b.com", "staff").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Insert(context.Background(), Profile{ID: testUserID, Email: "a@b.com", Role: RoleStaff})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBStore_InsertError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO public.users").
		WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "users_pkey"`))

	err := store.Insert(context.Background(), Profile{ID: testUserID, Email: "a@b.com", Role: RoleStaff})
	assert.EqualError(t, err, `pq: duplicate key value violates unique constraint "users_pkey"`)
}

func TestDBStore_RejectsNonUUID(t *testing.T) {
	store, mock := newMockStore(t)

	err := store.Insert(context.Background(), Profile{ID: "u1", Email: "a@b.com", Role: RoleStaff})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid user id "u1"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
