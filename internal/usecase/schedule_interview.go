package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/arclight-digital/arclight-backend/internal/entity"
	"github.com/arclight-digital/arclight-backend/internal/infra/queue"
)

const (
	scheduleDateLayout = "2006-01-02"
	scheduleTimeLayout = "15:04"
)

// ScheduleInterviewUseCase owns the interview sub-flow of career
// applications.
type ScheduleInterviewUseCase struct {
	Repo  entity.ApplicationRepositoryInterface
	Queue NotificationProducerInterface
}

func NewScheduleInterviewUseCase(repo entity.ApplicationRepositoryInterface, producer NotificationProducerInterface) *ScheduleInterviewUseCase {
	return &ScheduleInterviewUseCase{Repo: repo, Queue: producer}
}

// Schedule combines a calendar date and a wall-clock time (local zone, no
// explicit offset) into the meeting instant and forces the status to
// Interview Scheduled in the same write. If either part is empty the meeting
// is cleared instead, and clearing never touches the status.
func (uc *ScheduleInterviewUseCase) Schedule(ctx context.Context, id, date, timeOfDay string) error {
	date = strings.TrimSpace(date)
	timeOfDay = strings.TrimSpace(timeOfDay)

	if date == "" || timeOfDay == "" {
		if err := uc.Repo.ClearMeeting(ctx, id); err != nil {
			return NewStoreError(err)
		}
		return nil
	}

	meeting, err := time.ParseInLocation(
		scheduleDateLayout+" "+scheduleTimeLayout,
		date+" "+timeOfDay,
		time.Local,
	)
	if err != nil {
		return &DomainError{
			Code:    CodeInvalidSchedule,
			Message: fmt.Sprintf("cannot parse %q %q as a date and time", date, timeOfDay),
		}
	}

	if err := uc.Repo.SetMeeting(ctx, id, meeting, entity.StatusInterviewScheduled); err != nil {
		return NewStoreError(err)
	}

	// Candidate notice rides the queue; a publish failure never fails the
	// scheduling itself.
	if uc.Queue != nil {
		if app, err := uc.Repo.FindByID(ctx, id); err == nil {
			payload := queue.NotificationPayload{
				Kind:        queue.KindInterview,
				Name:        app.FullName,
				Email:       app.Email,
				Role:        app.RoleAppliedFor,
				MeetingTime: meeting.Format("Monday, 02 Jan 2006 at 15:04"),
			}
			if err := uc.Queue.PublishNotification(ctx, payload); err != nil {
				log.Printf("application %s: interview notice publish failed: %v", id, err)
			}
		} else {
			log.Printf("application %s: interview notice skipped: %v", id, err)
		}
	}
	return nil
}

// UpcomingInterview is the projection shown next to the scheduling form: a
// bare time-plus-candidate list the operator scans by eye. It is not a
// collision detector and deliberately stays that way.
type UpcomingInterview struct {
	ApplicationID string    `json:"application_id"`
	Candidate     string    `json:"candidate"`
	Role          string    `json:"role"`
	MeetingTime   time.Time `json:"meeting_time"`
}

// ListUpcoming recomputes the future-interview list on every call. Nothing
// is cached or persisted.
func (uc *ScheduleInterviewUseCase) ListUpcoming(ctx context.Context, now time.Time) ([]UpcomingInterview, error) {
	apps, err := uc.Repo.List(ctx)
	if err != nil {
		return nil, NewStoreError(err)
	}

	var upcoming []UpcomingInterview
	for _, app := range apps {
		if app.MeetingTime == nil || !app.MeetingTime.After(now) {
			continue
		}
		upcoming = append(upcoming, UpcomingInterview{
			ApplicationID: app.ID,
			Candidate:     app.FullName,
			Role:          app.RoleAppliedFor,
			MeetingTime:   *app.MeetingTime,
		})
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].MeetingTime.Before(upcoming[j].MeetingTime)
	})

	return upcoming, nil
}
