package profile

import (
	"context"

	"staff-service/internal/supabase"
)

// RESTStore inserts profiles through the Supabase REST (PostgREST) API.
type RESTStore struct {
	project *supabase.Project
}

func NewRESTStore(project *supabase.Project) *RESTStore {
	return &RESTStore{project: project}
}

func (s *RESTStore) Insert(ctx context.Context, p Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	client, err := s.project.Rest()
	if err != nil {
		return err
	}

	_, _, err = client.From(Table).Insert(p, false, "", "minimal", "").Execute()
	return err
}
