package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type ackEmailData struct {
	Name     string
	FormName string
	Role     string
}

type interviewEmailData struct {
	Name    string
	Role    string
	Meeting string
}
