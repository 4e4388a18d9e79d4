package usecase

import (
	"context"
	"log"
	"net/mail"
	"strings"

	"github.com/arclight-digital/arclight-backend/internal/entity"
)

// SignupUseCase bootstraps a profile after the auth provider creates the
// identity. A pending invite matched by email pre-assigns role and funnel
// stage and is consumed in the process.
type SignupUseCase struct {
	Users   entity.UserRepositoryInterface
	Invites entity.InviteRepositoryInterface
}

func NewSignupUseCase(users entity.UserRepositoryInterface, invites entity.InviteRepositoryInterface) *SignupUseCase {
	return &SignupUseCase{Users: users, Invites: invites}
}

func (uc *SignupUseCase) Execute(ctx context.Context, uid, email string) (*entity.UserProfile, error) {
	if strings.TrimSpace(uid) == "" {
		return nil, &DomainError{Code: CodeValidation, Message: "uid is required"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: "email is invalid"}
	}

	profile := &entity.UserProfile{
		UID:         uid,
		Email:       email,
		Role:        entity.RoleClient,
		FunnelStage: entity.DefaultFunnelStage,
	}

	invite, err := uc.Invites.FindByEmail(ctx, email)
	if err == nil && invite != nil {
		profile.Role = invite.Role
		profile.FunnelStage = invite.FunnelStage
		if err := uc.Invites.Consume(ctx, invite.ID); err != nil {
			// The profile still gets created; a stale invite is harmless.
			log.Printf("signup %s: invite consume failed: %v", uid, err)
		}
	}

	if err := uc.Users.CreateProfile(ctx, profile); err != nil {
		return nil, NewStoreError(err)
	}
	return profile, nil
}
