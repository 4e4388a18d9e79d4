package entity

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	StatusApplied            ApplicationStatus = "Applied"
	StatusScreening          ApplicationStatus = "Screening"
	StatusInterviewScheduled ApplicationStatus = "Interview Scheduled"
	StatusOfferSent          ApplicationStatus = "Offer Sent"
	StatusHired              ApplicationStatus = "Hired"
	StatusRejected           ApplicationStatus = "Rejected"
)

// Roles is the fixed catalog a candidate can apply for.
var Roles = []string{
	"AI Video Architect",
	"Creative Strategist",
	"Full-Stack Developer",
	"Motion Designer",
	"Growth Marketer",
}

// CareerApplication is a job application. Stored status strings are
// historically free text, so every read and write goes through
// CanonicalStatus. At most one of ResumeURL (hosted upload) and ResumeLink
// (external link) is meaningfully populated; both may be absent.
type CareerApplication struct {
	ID             string            `json:"id"`
	FullName       string            `json:"full_name"`
	Email          string            `json:"email"`
	PortfolioURL   string            `json:"portfolio_url,omitempty"`
	FavoriteAITool string            `json:"favorite_ai_tool,omitempty"`
	ResumeURL      string            `json:"resume_url,omitempty"`
	ResumeLink     string            `json:"resume_link,omitempty"`
	Experience     string            `json:"experience,omitempty"`
	MessageToCEO   string            `json:"message_to_ceo,omitempty"`
	RoleAppliedFor string            `json:"role_applied_for"`
	Status         ApplicationStatus `json:"status"`
	MeetingTime    *time.Time        `json:"meeting_time,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

type ApplicationRepositoryInterface interface {
	Create(ctx context.Context, app *CareerApplication) error
	FindByID(ctx context.Context, id string) (*CareerApplication, error)
	List(ctx context.Context) ([]*CareerApplication, error)
	UpdateStatus(ctx context.Context, id string, status ApplicationStatus) error
	// SetMeeting writes meeting_time and status in one merge-update.
	SetMeeting(ctx context.Context, id string, meeting time.Time, status ApplicationStatus) error
	// ClearMeeting nulls meeting_time and touches nothing else.
	ClearMeeting(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

func NewCareerApplication(fullName, email, portfolio, aiTool, experience, messageToCEO, role string) *CareerApplication {
	return &CareerApplication{
		ID:             uuid.New().String(),
		FullName:       fullName,
		Email:          email,
		PortfolioURL:   portfolio,
		FavoriteAITool: aiTool,
		Experience:     experience,
		MessageToCEO:   messageToCEO,
		RoleAppliedFor: role,
		Status:         StatusApplied,
	}
}

// CanonicalStatus maps a raw stored status string onto the fixed pipeline
// enum. It is total: garbage, mixed case and the empty string all resolve to
// the least-progressed state rather than an error.
func CanonicalStatus(raw string) ApplicationStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "new", "applied":
		return StatusApplied
	case "reviewing", "screening":
		return StatusScreening
	case "interview", "interview scheduled":
		return StatusInterviewScheduled
	case "offer", "offer sent":
		return StatusOfferSent
	case "hired":
		return StatusHired
	case "rejected", "dismissed":
		return StatusRejected
	default:
		return StatusApplied
	}
}

func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}
