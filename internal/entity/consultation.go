package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ConsultationStatus string

const (
	ConsultationStatusNew       ConsultationStatus = "new"
	ConsultationStatusContacted ConsultationStatus = "contacted"
	ConsultationStatusArchived  ConsultationStatus = "archived"
)

// ConsultationBooking is the richer inquiry behind the scheduled-call funnel.
// PreferredTime stays free text: it is the visitor's hint, not a booked slot.
type ConsultationBooking struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	Website       string             `json:"website,omitempty"`
	SocialMedia   string             `json:"social_media"`
	BusinessInfo  string             `json:"business_info"`
	Message       string             `json:"message"`
	Location      string             `json:"location"`
	PreferredTime string             `json:"preferred_time"`
	WhatsApp      string             `json:"whatsapp,omitempty"`
	Status        ConsultationStatus `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
}

type ConsultationRepositoryInterface interface {
	Create(ctx context.Context, booking *ConsultationBooking) error
	FindByID(ctx context.Context, id string) (*ConsultationBooking, error)
	List(ctx context.Context) ([]*ConsultationBooking, error)
	UpdateStatus(ctx context.Context, id string, status ConsultationStatus) error
	Delete(ctx context.Context, id string) error
}

func NewConsultationBooking(name, email, website, social, business, message, location, preferredTime, whatsapp string) *ConsultationBooking {
	return &ConsultationBooking{
		ID:            uuid.New().String(),
		Name:          name,
		Email:         email,
		Website:       website,
		SocialMedia:   social,
		BusinessInfo:  business,
		Message:       message,
		Location:      location,
		PreferredTime: preferredTime,
		WhatsApp:      whatsapp,
		Status:        ConsultationStatusNew,
	}
}

func (s ConsultationStatus) Valid() bool {
	switch s {
	case ConsultationStatusNew, ConsultationStatusContacted, ConsultationStatusArchived:
		return true
	}
	return false
}
