package supabase

import (
	"errors"
	"strings"

	gotrue "github.com/supabase-community/gotrue-go"
	postgrest "github.com/supabase-community/postgrest-go"
)

const (
	AuthPath = "/auth/v1"
	RestPath = "/rest/v1"

	schema = "public"
)

var (
	ErrMissingURL = errors.New("supabase url is not configured")
	ErrMissingKey = errors.New("supabase service role key is not configured")
)

// Project builds SDK clients for one Supabase project, authorized with
// the service role key. Missing url or key is not an error here; it is
// reported when a client is requested.
type Project struct {
	url string
	key string
}

func New(url string, serviceRoleKey string) *Project {
	return &Project{
		url: strings.TrimRight(url, "/"),
		key: serviceRoleKey,
	}
}

func (p *Project) check() error {
	if p.url == "" {
		return ErrMissingURL
	}
	if p.key == "" {
		return ErrMissingKey
	}
	return nil
}

// Auth returns a GoTrue client allowed to call the admin endpoints.
func (p *Project) Auth() (gotrue.Client, error) {
	if err := p.check(); err != nil {
		return nil, err
	}

	return gotrue.New("", p.key).
		WithCustomGoTrueURL(p.url + AuthPath).
		WithToken(p.key), nil
}

// Rest returns a fresh PostgREST client. postgrest-go keeps the first
// request-building error on the client, so clients are not shared.
func (p *Project) Rest() (*postgrest.Client, error) {
	if err := p.check(); err != nil {
		return nil, err
	}

	client := postgrest.NewClient(p.url+RestPath, schema, map[string]string{
		"apikey":        p.key,
		"Authorization": "Bearer " + p.key,
	})
	if client.ClientError != nil {
		return nil, client.ClientError
	}

	return client, nil
}
