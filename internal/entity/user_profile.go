package entity

import (
	"context"
	"time"
)

const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

// DefaultFunnelStage labels a freshly signed-up client with no invite.
const DefaultFunnelStage = "discovery"

// UserProfile is keyed by the auth provider's uid. FunnelStage is a
// free-form descriptive label, not a validated enum.
type UserProfile struct {
	UID         string    `json:"uid"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	FunnelStage string    `json:"funnel_stage"`
	CreatedAt   time.Time `json:"created_at"`
}

// Invite pre-assigns a role and funnel stage to an email address before the
// matching profile exists. It is consumed at signup.
type Invite struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	FunnelStage string    `json:"funnel_stage"`
	CreatedAt   time.Time `json:"created_at"`
}

type UserRepositoryInterface interface {
	CreateProfile(ctx context.Context, profile *UserProfile) error
	FindByUID(ctx context.Context, uid string) (*UserProfile, error)
}

type InviteRepositoryInterface interface {
	FindByEmail(ctx context.Context, email string) (*Invite, error)
	Consume(ctx context.Context, id string) error
}
