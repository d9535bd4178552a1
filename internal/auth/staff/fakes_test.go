package staff

import (
	"context"

	"staff-service/internal/auth"
	"staff-service/internal/auth/profile"
	"staff-service/internal/orphan"
)

type createCall struct {
	Email          string
	Password       string
	EmailConfirmed bool
}

type fakeProvider struct {
	user  *auth.User
	err   error
	calls []createCall
	// identities holds every account the provider has created.
	identities map[string]auth.User
}

func (f *fakeProvider) CreateUser(_ context.Context, email, password string, emailConfirmed bool) (*auth.User, error) {
	f.calls = append(f.calls, createCall{email, password, emailConfirmed})
	if f.err != nil || f.user == nil {
		return nil, f.err
	}
	if f.identities == nil {
		f.identities = map[string]auth.User{}
	}
	f.identities[f.user.ID] = *f.user
	u := *f.user
	return &u, nil
}

type fakeStore struct {
	err     error
	inserts []profile.Profile
}

func (f *fakeStore) Insert(_ context.Context, p profile.Profile) error {
	f.inserts = append(f.inserts, p)
	return f.err
}

type fakeLedger struct {
	orphan.Nop
	err     error
	entries []orphan.Entry
}

func (f *fakeLedger) Record(_ context.Context, e orphan.Entry) error {
	f.entries = append(f.entries, e)
	return f.err
}
