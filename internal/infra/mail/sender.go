package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

var ackTemplate = template.Must(template.New("ack").Parse(`
<p>Hi {{.Name}},</p>
<p>We received your {{.FormName}}{{if .Role}} for the <strong>{{.Role}}</strong> role{{end}}.
Our team reads every submission and will get back to you shortly.</p>
<p>— The Arclight team</p>
`))

var interviewTemplate = template.Must(template.New("interview").Parse(`
<p>Hi {{.Name}},</p>
<p>Your interview{{if .Role}} for the <strong>{{.Role}}</strong> role{{end}}
is scheduled for <strong>{{.Meeting}}</strong>.</p>
<p>— The Arclight team</p>
`))

var formNames = map[string]string{
	"lead":               "message",
	"consultation":       "consultation request",
	"career_application": "application",
}

func (s *EmailSender) SendInterviewNotice(to, name, role, meeting string) error {
	var body bytes.Buffer
	data := interviewEmailData{Name: name, Role: role, Meeting: meeting}
	if err := interviewTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}
	return s.send(to, "Your interview is scheduled", body.String())
}

func (s *EmailSender) SendSubmissionAck(to, name, kind, role string) error {
	formName, ok := formNames[kind]
	if !ok {
		formName = "submission"
	}

	var body bytes.Buffer
	if err := ackTemplate.Execute(&body, ackEmailData{Name: name, FormName: formName, Role: role}); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.send(to, fmt.Sprintf("We got your %s, %s", formName, name), body.String())
}

func (s *EmailSender) send(to, subject, html string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("SMTP send failed: %w", err)
	}

	return nil
}
