package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusClosed    LeadStatus = "closed"
)

// Lead is a contact-form inquiry. Status transitions are intentionally
// unrestricted: operators may reopen a closed lead at any time.
type Lead struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Message          string     `json:"message,omitempty"`
	PrimaryObjective string     `json:"primary_objective,omitempty"`
	Status           LeadStatus `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, id string) (*Lead, error)
	List(ctx context.Context) ([]*Lead, error)
	UpdateStatus(ctx context.Context, id string, status LeadStatus) error
	Delete(ctx context.Context, id string) error
}

// NewLead builds a lead in its initial state. CreatedAt is assigned by the
// repository from the database clock, never the client clock.
func NewLead(name, email, message, objective string) *Lead {
	return &Lead{
		ID:               uuid.New().String(),
		Name:             name,
		Email:            email,
		Message:          message,
		PrimaryObjective: objective,
		Status:           LeadStatusNew,
	}
}

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusClosed:
		return true
	}
	return false
}
