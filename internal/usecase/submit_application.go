package usecase

import (
	"context"
	"log"

	"github.com/arclight-digital/arclight-backend/internal/entity"
	"github.com/arclight-digital/arclight-backend/internal/infra/queue"
)

// SubmitApplicationUseCase is the save-then-relay career intake. The store
// write comes first: if it fails the relay is never attempted. A relay
// failure after a successful write is reported on the output and never rolls
// the record back; there is no two-phase commit between the two.
type SubmitApplicationUseCase struct {
	Repo     entity.ApplicationRepositoryInterface
	Settings entity.SettingsRepositoryInterface
	Storage  ResumeStorageInterface
	Relay    WorkflowRelayInterface
	Queue    NotificationProducerInterface
}

func NewSubmitApplicationUseCase(
	repo entity.ApplicationRepositoryInterface,
	settings entity.SettingsRepositoryInterface,
	storage ResumeStorageInterface,
	relay WorkflowRelayInterface,
	producer NotificationProducerInterface,
) *SubmitApplicationUseCase {
	return &SubmitApplicationUseCase{
		Repo:     repo,
		Settings: settings,
		Storage:  storage,
		Relay:    relay,
		Queue:    producer,
	}
}

func (uc *SubmitApplicationUseCase) Execute(ctx context.Context, input SubmitApplicationInput) (*SubmitApplicationOutput, error) {
	if errs := ValidateSubmitApplicationInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	app := entity.NewCareerApplication(
		input.FullName, input.Email, input.PortfolioURL, input.FavoriteAITool,
		input.Experience, input.MessageToCEO, input.RoleAppliedFor,
	)

	// Upload variant stores the hosted URL; link variant stores the external
	// URL; neither field is required.
	if input.Resume != nil {
		if uc.Storage == nil {
			return nil, &TechnicalError{Code: CodeStorageError, Message: "resume storage is not configured"}
		}
		hostedURL, err := uc.Storage.Upload(ctx, input.Resume.Filename, input.Resume.ContentType, input.Resume.Data)
		if err != nil {
			return nil, &TechnicalError{Code: CodeStorageError, Message: "resume upload failed", Cause: err}
		}
		app.ResumeURL = hostedURL
	} else if input.ResumeLink != "" {
		app.ResumeLink = input.ResumeLink
	}

	if err := uc.Repo.Create(ctx, app); err != nil {
		return nil, NewStoreError(err)
	}

	out := &SubmitApplicationOutput{ID: app.ID, Status: string(app.Status)}

	if uc.Relay != nil {
		relayed, err := uc.forward(ctx, input)
		if err != nil {
			log.Printf("application %s: relay failed: %v", app.ID, err)
			out.RelayError = err.Error()
		} else {
			out.Relayed = relayed
		}
	}

	if uc.Queue != nil {
		payload := queue.NotificationPayload{
			Kind:  queue.KindApplication,
			Name:  app.FullName,
			Email: app.Email,
			Role:  app.RoleAppliedFor,
		}
		if err := uc.Queue.PublishNotification(ctx, payload); err != nil {
			log.Printf("application %s: notification publish failed: %v", app.ID, err)
		}
	}

	return out, nil
}

func (uc *SubmitApplicationUseCase) forward(ctx context.Context, input SubmitApplicationInput) (bool, error) {
	// The webhook URL is read at call time, never cached. A failed settings
	// read is a store failure, not "relay not configured" — the record is
	// already durable, so it surfaces on the output like a relay failure.
	settings, err := uc.Settings.Get(ctx)
	if err != nil {
		return false, NewStoreError(err)
	}
	if settings.WebhookURL == "" {
		return false, nil // relay not configured, nothing to do
	}

	payload := RelayPayload{
		Fields: map[string]string{
			"full_name":        input.FullName,
			"email":            input.Email,
			"portfolio_url":    input.PortfolioURL,
			"favorite_ai_tool": input.FavoriteAITool,
			"experience":       input.Experience,
			"message_to_ceo":   input.MessageToCEO,
			"role_applied_for": input.RoleAppliedFor,
			"resume_link":      input.ResumeLink,
		},
	}
	if input.Resume != nil {
		payload.Resume = &RelayAttachment{
			Filename:    input.Resume.Filename,
			ContentType: input.Resume.ContentType,
			Data:        input.Resume.Data,
		}
	}

	if err := uc.Relay.Forward(ctx, settings.WebhookURL, payload); err != nil {
		return false, NewRelayError(err)
	}
	return true, nil
}
