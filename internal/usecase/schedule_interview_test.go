package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/arclight-digital/arclight-backend/internal/entity"
	"github.com/arclight-digital/arclight-backend/internal/infra/queue"
)

func TestScheduleSetsMeetingAndForcesStatus(t *testing.T) {
	ctx := context.Background()
	repo := new(MockApplicationRepository)

	want := time.Date(2025, 3, 10, 14, 30, 0, 0, time.Local)
	repo.On("SetMeeting", ctx, "app-1", want, entity.StatusInterviewScheduled).Return(nil)

	uc := NewScheduleInterviewUseCase(repo, nil)
	err := uc.Schedule(ctx, "app-1", "2025-03-10", "14:30")

	assert.NoError(t, err)
	repo.AssertCalled(t, "SetMeeting", ctx, "app-1", want, entity.StatusInterviewScheduled)
}

// Clearing a schedule nulls the meeting and must not touch the status, even
// on an application already marked Hired.
func TestScheduleClearLeavesStatusAlone(t *testing.T) {
	ctx := context.Background()
	repo := new(MockApplicationRepository)
	repo.On("ClearMeeting", ctx, "app-1").Return(nil)

	uc := NewScheduleInterviewUseCase(repo, nil)

	assert.NoError(t, uc.Schedule(ctx, "app-1", "", ""))
	assert.NoError(t, uc.Schedule(ctx, "app-1", "2025-03-10", ""))
	assert.NoError(t, uc.Schedule(ctx, "app-1", "", "14:30"))

	repo.AssertNumberOfCalls(t, "ClearMeeting", 3)
	repo.AssertNotCalled(t, "SetMeeting", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSchedulePublishesInterviewNotice(t *testing.T) {
	ctx := context.Background()
	repo := new(MockApplicationRepository)
	producer := new(MockNotificationProducer)

	want := time.Date(2025, 3, 10, 14, 30, 0, 0, time.Local)
	repo.On("SetMeeting", ctx, "app-1", want, entity.StatusInterviewScheduled).Return(nil)
	repo.On("FindByID", ctx, "app-1").Return(&entity.CareerApplication{
		ID:             "app-1",
		FullName:       "Sam Lee",
		Email:          "sam@x.co",
		RoleAppliedFor: "AI Video Architect",
	}, nil)

	var published queue.NotificationPayload
	producer.On("PublishNotification", ctx, mock.Anything).Run(func(args mock.Arguments) {
		published = args.Get(1).(queue.NotificationPayload)
	}).Return(nil)

	uc := NewScheduleInterviewUseCase(repo, producer)
	assert.NoError(t, uc.Schedule(ctx, "app-1", "2025-03-10", "14:30"))

	assert.Equal(t, queue.KindInterview, published.Kind)
	assert.Equal(t, "sam@x.co", published.Email)
	assert.Contains(t, published.MeetingTime, "14:30")
}

func TestScheduleRejectsUnparseableInputBeforeAnyWrite(t *testing.T) {
	ctx := context.Background()
	repo := new(MockApplicationRepository)

	uc := NewScheduleInterviewUseCase(repo, nil)
	err := uc.Schedule(ctx, "app-1", "not-a-date", "25:99")

	assert.Error(t, err)
	assert.True(t, IsInvalidSchedule(err))
	repo.AssertNotCalled(t, "SetMeeting", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "ClearMeeting", mock.Anything, mock.Anything)
}

func TestListUpcomingFiltersAndSorts(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)

	past := now.Add(-24 * time.Hour)
	inOneHour := now.Add(time.Hour)
	inThreeHours := now.Add(3 * time.Hour)

	repo := new(MockApplicationRepository)
	repo.On("List", ctx).Return([]*entity.CareerApplication{
		{ID: "late", FullName: "Late Candidate", MeetingTime: &inThreeHours},
		{ID: "past", FullName: "Past Candidate", MeetingTime: &past},
		{ID: "none", FullName: "Unscheduled"},
		{ID: "soon", FullName: "Soon Candidate", MeetingTime: &inOneHour},
	}, nil)

	uc := NewScheduleInterviewUseCase(repo, nil)
	upcoming, err := uc.ListUpcoming(ctx, now)

	assert.NoError(t, err)
	assert.Len(t, upcoming, 2)
	assert.Equal(t, "soon", upcoming[0].ApplicationID)
	assert.Equal(t, "late", upcoming[1].ApplicationID)
}

func TestListUpcomingExcludesExactlyNow(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	atNow := now

	repo := new(MockApplicationRepository)
	repo.On("List", ctx).Return([]*entity.CareerApplication{
		{ID: "edge", FullName: "Edge", MeetingTime: &atNow},
	}, nil)

	uc := NewScheduleInterviewUseCase(repo, nil)
	upcoming, err := uc.ListUpcoming(ctx, now)

	assert.NoError(t, err)
	assert.Empty(t, upcoming, "strictly-after filter excludes an interview at exactly now")
}

func TestListUpcomingStoreFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockApplicationRepository)
	repo.On("List", ctx).Return(nil, assert.AnError)

	uc := NewScheduleInterviewUseCase(repo, nil)
	_, err := uc.ListUpcoming(ctx, time.Now())

	assert.Error(t, err)
	assert.True(t, IsStoreError(err))
}
