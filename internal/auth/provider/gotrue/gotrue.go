package gotrue

import (
	"context"

	"staff-service/internal/auth"
	"staff-service/internal/logger"
	"staff-service/internal/supabase"

	"github.com/google/uuid"
	"github.com/supabase-community/gotrue-go/types"
)

// Provider creates accounts through the Supabase Auth (GoTrue) admin API.
type Provider struct {
	project *supabase.Project
}

func New(project *supabase.Project) *Provider {
	return &Provider{project: project}
}

// CreateUser calls POST /auth/v1/admin/users. A response without a user
// id is reported as no user.
func (p *Provider) CreateUser(
	ctx context.Context,
	email string,
	password string,
	emailConfirmed bool,
) (*auth.User, error) {

	// gotrue-go requests carry no context; stop before sending if the
	// caller is already gone.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client, err := p.project.Auth()
	if err != nil {
		return nil, err
	}

	resp, err := client.AdminCreateUser(types.AdminCreateUserRequest{
		Email:        email,
		Password:     &password,
		EmailConfirm: emailConfirmed,
	})
	if err != nil {
		logger.Error("gotrue create user failed", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	if resp == nil || resp.ID == uuid.Nil {
		return nil, nil
	}

	user := &auth.User{
		ID:    resp.ID.String(),
		Email: resp.Email,
	}

	logger.Info("gotrue user created", map[string]any{
		"user_id":       user.ID,
		"email_present": user.Email != "",
	})

	return user, nil
}
