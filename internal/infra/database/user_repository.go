package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/arclight-digital/arclight-backend/internal/entity"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) CreateProfile(ctx context.Context, p *entity.UserProfile) error {
	query := `
		INSERT INTO users (uid, email, role, funnel_stage, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at
	`

	return r.DB.QueryRowContext(ctx, query, p.UID, p.Email, p.Role, p.FunnelStage).Scan(&p.CreatedAt)
}

func (r *UserRepository) FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	query := `SELECT uid, email, role, funnel_stage, created_at FROM users WHERE uid = $1`

	var p entity.UserProfile
	err := r.DB.QueryRowContext(ctx, query, uid).Scan(&p.UID, &p.Email, &p.Role, &p.FunnelStage, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

type InviteRepository struct {
	DB *sql.DB
}

func NewInviteRepository(db *sql.DB) *InviteRepository {
	return &InviteRepository{DB: db}
}

func (r *InviteRepository) FindByEmail(ctx context.Context, email string) (*entity.Invite, error) {
	query := `
		SELECT id, email, role, funnel_stage, created_at
		FROM invites
		WHERE email = $1 AND consumed_at IS NULL
		ORDER BY created_at ASC
		LIMIT 1
	`

	var inv entity.Invite
	err := r.DB.QueryRowContext(ctx, query, email).Scan(&inv.ID, &inv.Email, &inv.Role, &inv.FunnelStage, &inv.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrInviteMissing
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InviteRepository) Consume(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE invites SET consumed_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
