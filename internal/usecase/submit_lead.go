package usecase

import (
	"context"
	"log"

	"github.com/arclight-digital/arclight-backend/internal/entity"
	"github.com/arclight-digital/arclight-backend/internal/infra/queue"
)

type SubmitLeadUseCase struct {
	Repo  entity.LeadRepositoryInterface
	Queue NotificationProducerInterface
}

func NewSubmitLeadUseCase(repo entity.LeadRepositoryInterface, producer NotificationProducerInterface) *SubmitLeadUseCase {
	return &SubmitLeadUseCase{Repo: repo, Queue: producer}
}

func (uc *SubmitLeadUseCase) Execute(ctx context.Context, input SubmitLeadInput) (*SubmitOutput, error) {
	if errs := ValidateSubmitLeadInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	lead := entity.NewLead(input.Name, input.Email, input.Message, input.PrimaryObjective)

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, NewStoreError(err)
	}

	// Acknowledgement email rides the queue; a publish failure never fails
	// the submission.
	if uc.Queue != nil {
		payload := queue.NotificationPayload{
			Kind:  queue.KindLead,
			Name:  lead.Name,
			Email: lead.Email,
		}
		if err := uc.Queue.PublishNotification(ctx, payload); err != nil {
			log.Printf("lead %s: notification publish failed: %v", lead.ID, err)
		}
	}

	return &SubmitOutput{ID: lead.ID, Status: string(lead.Status)}, nil
}
