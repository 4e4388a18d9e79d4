package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/arclight-digital/arclight-backend/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	// created_at comes from the database clock so ordering never depends on
	// the client.
	query := `
		INSERT INTO leads (id, name, email, message, primary_objective, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		lead.ID,
		lead.Name,
		lead.Email,
		nullString(lead.Message),
		nullString(lead.PrimaryObjective),
		string(lead.Status),
	).Scan(&lead.CreatedAt)
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `
		SELECT id, name, email, message, primary_objective, status, created_at
		FROM leads WHERE id = $1
	`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return lead, err
}

func (r *LeadRepository) List(ctx context.Context) ([]*entity.Lead, error) {
	query := `
		SELECT id, name, email, message, primary_objective, status, created_at
		FROM leads ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

// UpdateStatus overwrites the status column and nothing else. No updated_at
// exists on these records.
func (r *LeadRepository) UpdateStatus(ctx context.Context, id string, status entity.LeadStatus) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE leads SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var message, objective sql.NullString
	var status string

	err := row.Scan(&lead.ID, &lead.Name, &lead.Email, &message, &objective, &status, &lead.CreatedAt)
	if err != nil {
		return nil, err
	}

	lead.Message = stringOrEmpty(message)
	lead.PrimaryObjective = stringOrEmpty(objective)
	lead.Status = entity.LeadStatus(status)
	return &lead, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}
