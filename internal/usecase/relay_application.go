package usecase

import (
	"context"

	"github.com/arclight-digital/arclight-backend/internal/entity"
)

// RelayApplicationUseCase is the proxy intake variant: the multipart payload
// is forwarded verbatim to the configured webhook and nothing is written to
// the record store. It exists alongside the save-then-relay variant and must
// not be merged with it.
type RelayApplicationUseCase struct {
	Settings entity.SettingsRepositoryInterface
	Relay    WorkflowRelayInterface
}

func NewRelayApplicationUseCase(settings entity.SettingsRepositoryInterface, relay WorkflowRelayInterface) *RelayApplicationUseCase {
	return &RelayApplicationUseCase{Settings: settings, Relay: relay}
}

func (uc *RelayApplicationUseCase) Execute(ctx context.Context, payload RelayPayload) error {
	settings, err := uc.Settings.Get(ctx)
	if err != nil {
		return NewStoreError(err)
	}
	if settings.WebhookURL == "" {
		return &DomainError{Code: CodeValidation, Message: "webhook relay is not configured"}
	}

	if err := uc.Relay.Forward(ctx, settings.WebhookURL, payload); err != nil {
		return NewRelayError(err)
	}
	return nil
}
