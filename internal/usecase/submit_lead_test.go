package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/arclight-digital/arclight-backend/internal/entity"
)

func TestSubmitLeadSuccess(t *testing.T) {
	ctx := context.Background()

	repo := new(MockLeadRepository)
	producer := new(MockNotificationProducer)

	var stored *entity.Lead
	repo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*entity.Lead)
	}).Return(nil)
	producer.On("PublishNotification", ctx, mock.Anything).Return(nil)

	uc := NewSubmitLeadUseCase(repo, producer)
	out, err := uc.Execute(ctx, SubmitLeadInput{
		Name:    "Acme Corp",
		Email:   "a@acme.co",
		Message: "hi",
	})

	assert.NoError(t, err)
	assert.NotNil(t, out)
	assert.Equal(t, "new", out.Status)
	assert.NotEmpty(t, out.ID)

	// Fields pass through untouched and the record starts as new.
	assert.Equal(t, "Acme Corp", stored.Name)
	assert.Equal(t, "a@acme.co", stored.Email)
	assert.Equal(t, "hi", stored.Message)
	assert.Equal(t, entity.LeadStatusNew, stored.Status)

	producer.AssertCalled(t, "PublishNotification", ctx, mock.Anything)
}

func TestSubmitLeadValidationFailure(t *testing.T) {
	ctx := context.Background()

	repo := new(MockLeadRepository)
	producer := new(MockNotificationProducer)

	uc := NewSubmitLeadUseCase(repo, producer)
	out, err := uc.Execute(ctx, SubmitLeadInput{Name: "Acme", Email: "not-an-email"})

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, IsDomainError(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitLeadStoreFailure(t *testing.T) {
	ctx := context.Background()

	repo := new(MockLeadRepository)
	producer := new(MockNotificationProducer)
	repo.On("Create", ctx, mock.Anything).Return(errors.New("connection refused"))

	uc := NewSubmitLeadUseCase(repo, producer)
	out, err := uc.Execute(ctx, SubmitLeadInput{Name: "Acme", Email: "a@acme.co"})

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, IsStoreError(err))
	// No notification for a record that never landed.
	producer.AssertNotCalled(t, "PublishNotification", mock.Anything, mock.Anything)
}

func TestSubmitLeadPublishFailureDoesNotFailSubmission(t *testing.T) {
	ctx := context.Background()

	repo := new(MockLeadRepository)
	producer := new(MockNotificationProducer)
	repo.On("Create", ctx, mock.Anything).Return(nil)
	producer.On("PublishNotification", ctx, mock.Anything).Return(errors.New("broker down"))

	uc := NewSubmitLeadUseCase(repo, producer)
	out, err := uc.Execute(ctx, SubmitLeadInput{Name: "Acme", Email: "a@acme.co"})

	assert.NoError(t, err)
	assert.NotNil(t, out)
}

func TestSubmitConsultationSuccess(t *testing.T) {
	ctx := context.Background()

	repo := new(MockConsultationRepository)
	producer := new(MockNotificationProducer)

	var stored *entity.ConsultationBooking
	repo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*entity.ConsultationBooking)
	}).Return(nil)
	producer.On("PublishNotification", ctx, mock.Anything).Return(nil)

	uc := NewSubmitConsultationUseCase(repo, producer)
	out, err := uc.Execute(ctx, SubmitConsultationInput{
		Name:          "Jo",
		Email:         "jo@x.co",
		SocialMedia:   "@jo",
		BusinessInfo:  "boutique retail",
		Message:       "need a site",
		Location:      "Berlin",
		PreferredTime: "weekday mornings",
	})

	assert.NoError(t, err)
	assert.Equal(t, "new", out.Status)
	assert.Equal(t, entity.ConsultationStatusNew, stored.Status)
	// PreferredTime stays a free-text hint, never parsed.
	assert.Equal(t, "weekday mornings", stored.PreferredTime)
}

func TestSubmitConsultationRequiresBusinessInfo(t *testing.T) {
	ctx := context.Background()

	repo := new(MockConsultationRepository)
	uc := NewSubmitConsultationUseCase(repo, nil)

	out, err := uc.Execute(ctx, SubmitConsultationInput{Name: "Jo", Email: "jo@x.co", Message: "hi"})

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, IsDomainError(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
