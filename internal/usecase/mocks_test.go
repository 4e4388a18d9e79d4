package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/arclight-digital/arclight-backend/internal/entity"
	"github.com/arclight-digital/arclight-backend/internal/infra/queue"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) List(ctx context.Context) ([]*entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id string, status entity.LeadStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockConsultationRepository
type MockConsultationRepository struct {
	mock.Mock
}

func (m *MockConsultationRepository) Create(ctx context.Context, b *entity.ConsultationBooking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockConsultationRepository) FindByID(ctx context.Context, id string) (*entity.ConsultationBooking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ConsultationBooking), args.Error(1)
}

func (m *MockConsultationRepository) List(ctx context.Context) ([]*entity.ConsultationBooking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ConsultationBooking), args.Error(1)
}

func (m *MockConsultationRepository) UpdateStatus(ctx context.Context, id string, status entity.ConsultationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockConsultationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockApplicationRepository
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, app *entity.CareerApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockApplicationRepository) FindByID(ctx context.Context, id string) (*entity.CareerApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CareerApplication), args.Error(1)
}

func (m *MockApplicationRepository) List(ctx context.Context) ([]*entity.CareerApplication, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.CareerApplication), args.Error(1)
}

func (m *MockApplicationRepository) UpdateStatus(ctx context.Context, id string, status entity.ApplicationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockApplicationRepository) SetMeeting(ctx context.Context, id string, meeting time.Time, status entity.ApplicationStatus) error {
	args := m.Called(ctx, id, meeting, status)
	return args.Error(0)
}

func (m *MockApplicationRepository) ClearMeeting(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockApplicationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Settings), args.Error(1)
}

func (m *MockSettingsRepository) Put(ctx context.Context, s *entity.Settings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

// MockResumeStorage
type MockResumeStorage struct {
	mock.Mock
}

func (m *MockResumeStorage) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, filename, contentType, data)
	return args.String(0), args.Error(1)
}

// MockWorkflowRelay
type MockWorkflowRelay struct {
	mock.Mock
}

func (m *MockWorkflowRelay) Forward(ctx context.Context, url string, payload RelayPayload) error {
	args := m.Called(ctx, url, payload)
	return args.Error(0)
}

// MockNotificationProducer
type MockNotificationProducer struct {
	mock.Mock
}

func (m *MockNotificationProducer) PublishNotification(ctx context.Context, payload queue.NotificationPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateProfile(ctx context.Context, p *entity.UserProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserProfile), args.Error(1)
}

// MockInviteRepository
type MockInviteRepository struct {
	mock.Mock
}

func (m *MockInviteRepository) FindByEmail(ctx context.Context, email string) (*entity.Invite, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Invite), args.Error(1)
}

func (m *MockInviteRepository) Consume(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
