package queue

// Submission kinds a notification can acknowledge.
const (
	KindLead         = "lead"
	KindConsultation = "consultation"
	KindApplication  = "career_application"
	KindInterview    = "interview_scheduled"
)

// NotificationPayload is the message published after a successful submission
// or a scheduled interview, consumed by the email worker.
type NotificationPayload struct {
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role,omitempty"`
	MeetingTime string `json:"meeting_time,omitempty"`
}
