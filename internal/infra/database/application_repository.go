package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/arclight-digital/arclight-backend/internal/entity"
)

type ApplicationRepository struct {
	DB *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{DB: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *entity.CareerApplication) error {
	query := `
		INSERT INTO career_applications
			(id, full_name, email, portfolio_url, favorite_ai_tool, resume_url,
			 resume_link, experience, message_to_ceo, role_applied_for, status,
			 meeting_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NULL, NOW())
		RETURNING created_at
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		app.ID,
		app.FullName,
		app.Email,
		nullString(app.PortfolioURL),
		nullString(app.FavoriteAITool),
		nullString(app.ResumeURL),
		nullString(app.ResumeLink),
		nullString(app.Experience),
		nullString(app.MessageToCEO),
		app.RoleAppliedFor,
		string(app.Status),
	).Scan(&app.CreatedAt)
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*entity.CareerApplication, error) {
	app, err := scanApplication(r.DB.QueryRowContext(ctx, applicationSelect+` WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return app, err
}

func (r *ApplicationRepository) List(ctx context.Context) ([]*entity.CareerApplication, error) {
	rows, err := r.DB.QueryContext(ctx, applicationSelect+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []*entity.CareerApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status entity.ApplicationStatus) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE career_applications SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// SetMeeting writes the meeting instant and the status in one statement,
// matching the coupled schedule-and-mark flow of the admin surface.
func (r *ApplicationRepository) SetMeeting(ctx context.Context, id string, meeting time.Time, status entity.ApplicationStatus) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE career_applications SET meeting_time = $1, status = $2 WHERE id = $3`,
		meeting, string(status), id,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// ClearMeeting nulls the meeting instant. The status column is deliberately
// untouched.
func (r *ApplicationRepository) ClearMeeting(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE career_applications SET meeting_time = NULL WHERE id = $1`, id,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM career_applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

const applicationSelect = `
	SELECT id, full_name, email, portfolio_url, favorite_ai_tool, resume_url,
	       resume_link, experience, message_to_ceo, role_applied_for, status,
	       meeting_time, created_at
	FROM career_applications`

func scanApplication(row rowScanner) (*entity.CareerApplication, error) {
	var app entity.CareerApplication
	var portfolio, aiTool, resumeURL, resumeLink, experience, messageToCEO sql.NullString
	var rawStatus string
	var meeting sql.NullTime

	err := row.Scan(
		&app.ID, &app.FullName, &app.Email, &portfolio, &aiTool, &resumeURL,
		&resumeLink, &experience, &messageToCEO, &app.RoleAppliedFor,
		&rawStatus, &meeting, &app.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	app.PortfolioURL = stringOrEmpty(portfolio)
	app.FavoriteAITool = stringOrEmpty(aiTool)
	app.ResumeURL = stringOrEmpty(resumeURL)
	app.ResumeLink = stringOrEmpty(resumeLink)
	app.Experience = stringOrEmpty(experience)
	app.MessageToCEO = stringOrEmpty(messageToCEO)
	// Stored statuses are historically free text. Canonicalize on every read.
	app.Status = entity.CanonicalStatus(rawStatus)
	app.MeetingTime = timeOrNil(meeting)
	return &app, nil
}
