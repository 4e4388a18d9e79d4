package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/arclight-digital/arclight-backend/internal/entity"
)

type ConsultationRepository struct {
	DB *sql.DB
}

func NewConsultationRepository(db *sql.DB) *ConsultationRepository {
	return &ConsultationRepository{DB: db}
}

func (r *ConsultationRepository) Create(ctx context.Context, b *entity.ConsultationBooking) error {
	query := `
		INSERT INTO consultations
			(id, name, email, website, social_media, business_info, message,
			 location, preferred_time, whatsapp, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING created_at
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		b.ID,
		b.Name,
		b.Email,
		nullString(b.Website),
		b.SocialMedia,
		b.BusinessInfo,
		b.Message,
		b.Location,
		b.PreferredTime,
		nullString(b.WhatsApp),
		string(b.Status),
	).Scan(&b.CreatedAt)
}

func (r *ConsultationRepository) FindByID(ctx context.Context, id string) (*entity.ConsultationBooking, error) {
	booking, err := scanConsultation(r.DB.QueryRowContext(ctx, consultationSelect+` WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return booking, err
}

func (r *ConsultationRepository) List(ctx context.Context) ([]*entity.ConsultationBooking, error) {
	rows, err := r.DB.QueryContext(ctx, consultationSelect+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*entity.ConsultationBooking
	for rows.Next() {
		b, err := scanConsultation(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *ConsultationRepository) UpdateStatus(ctx context.Context, id string, status entity.ConsultationStatus) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE consultations SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *ConsultationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM consultations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

const consultationSelect = `
	SELECT id, name, email, website, social_media, business_info, message,
	       location, preferred_time, whatsapp, status, created_at
	FROM consultations`

func scanConsultation(row rowScanner) (*entity.ConsultationBooking, error) {
	var b entity.ConsultationBooking
	var website, whatsapp sql.NullString
	var status string

	err := row.Scan(
		&b.ID, &b.Name, &b.Email, &website, &b.SocialMedia, &b.BusinessInfo,
		&b.Message, &b.Location, &b.PreferredTime, &whatsapp, &status, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Website = stringOrEmpty(website)
	b.WhatsApp = stringOrEmpty(whatsapp)
	b.Status = entity.ConsultationStatus(status)
	return &b, nil
}
