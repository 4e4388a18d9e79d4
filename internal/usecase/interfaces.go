package usecase

import (
	"context"

	"github.com/arclight-digital/arclight-backend/internal/infra/queue"
)

// ResumeStorageInterface uploads a candidate's resume to blob storage and
// returns the hosted URL.
type ResumeStorageInterface interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (string, error)
}

// RelayAttachment is the binary resume carried on the relay body.
type RelayAttachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// RelayPayload is forwarded verbatim as a multipart body to the configured
// workflow-automation webhook.
type RelayPayload struct {
	Fields map[string]string
	Resume *RelayAttachment
}

type WorkflowRelayInterface interface {
	Forward(ctx context.Context, url string, payload RelayPayload) error
}

type NotificationProducerInterface interface {
	PublishNotification(ctx context.Context, payload queue.NotificationPayload) error
}
