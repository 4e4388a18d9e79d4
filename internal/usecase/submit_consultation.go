package usecase

import (
	"context"
	"log"

	"github.com/arclight-digital/arclight-backend/internal/entity"
	"github.com/arclight-digital/arclight-backend/internal/infra/queue"
)

type SubmitConsultationUseCase struct {
	Repo  entity.ConsultationRepositoryInterface
	Queue NotificationProducerInterface
}

func NewSubmitConsultationUseCase(repo entity.ConsultationRepositoryInterface, producer NotificationProducerInterface) *SubmitConsultationUseCase {
	return &SubmitConsultationUseCase{Repo: repo, Queue: producer}
}

func (uc *SubmitConsultationUseCase) Execute(ctx context.Context, input SubmitConsultationInput) (*SubmitOutput, error) {
	if errs := ValidateSubmitConsultationInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	booking := entity.NewConsultationBooking(
		input.Name, input.Email, input.Website, input.SocialMedia,
		input.BusinessInfo, input.Message, input.Location,
		input.PreferredTime, input.WhatsApp,
	)

	if err := uc.Repo.Create(ctx, booking); err != nil {
		return nil, NewStoreError(err)
	}

	if uc.Queue != nil {
		payload := queue.NotificationPayload{
			Kind:  queue.KindConsultation,
			Name:  booking.Name,
			Email: booking.Email,
		}
		if err := uc.Queue.PublishNotification(ctx, payload); err != nil {
			log.Printf("consultation %s: notification publish failed: %v", booking.ID, err)
		}
	}

	return &SubmitOutput{ID: booking.ID, Status: string(booking.Status)}, nil
}
