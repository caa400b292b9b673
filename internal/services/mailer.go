package services

import (
	"bytes"
	"fmt"
	"html/template"
	"log"

	"github.com/wneessen/go-mail"

	"github.com/a-team/clinic-booking-api/internal/config"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(
	`<h1>Email Confirmation</h1>
<h2>Hello {{.FirstName}}</h2>
<p>Thank you for subscribing. Please confirm your email by clicking on the following link</p>
<a href="{{.Link}}">Click here</a>`))

var passwordResetTmpl = template.Must(template.New("reset").Parse(
	`<h1>To reset your password click the link below</h1>
<a href="{{.Link}}">Reset Now</a>`))

// Mailer delivers account mail over SMTP.
type Mailer struct {
	client      *mail.Client
	from        string
	frontendURL string
}

func NewMailer(cfg config.EmailConfig, frontendURL string) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" && cfg.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create mail client: %w", err)
	}
	return &Mailer{client: client, from: cfg.From, frontendURL: frontendURL}, nil
}

// SendConfirmation mails the account-activation link. Callers fire this in a
// goroutine; a failed delivery is logged, not surfaced.
func (m *Mailer) SendConfirmation(to, firstName, confirmationCode string) error {
	body, err := renderConfirmation(firstName, m.frontendURL, confirmationCode)
	if err != nil {
		return err
	}
	return m.send(to, "Verify your Email", body)
}

func (m *Mailer) SendPasswordReset(to, resetToken string) error {
	body, err := renderPasswordReset(m.frontendURL, resetToken)
	if err != nil {
		return err
	}
	return m.send(to, "Reset your password", body)
}

// SendConfirmationAsync is the fire-and-forget path used on registration so
// the response is not held up by SMTP.
func (m *Mailer) SendConfirmationAsync(to, firstName, confirmationCode string) {
	go func() {
		if err := m.SendConfirmation(to, firstName, confirmationCode); err != nil {
			log.Printf("Failed to send confirmation mail to %s: %v", to, err)
		}
	}()
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("could not set from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("could not set to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)
	if err := m.client.DialAndSend(msg); err != nil {
		return fmt.Errorf("could not send mail to %s: %w", to, err)
	}
	return nil
}

func renderConfirmation(firstName, frontendURL, code string) (string, error) {
	var buf bytes.Buffer
	err := confirmationTmpl.Execute(&buf, map[string]string{
		"FirstName": firstName,
		"Link":      fmt.Sprintf("%s/confirm/%s", frontendURL, code),
	})
	if err != nil {
		return "", fmt.Errorf("could not render confirmation mail: %w", err)
	}
	return buf.String(), nil
}

func renderPasswordReset(frontendURL, token string) (string, error) {
	var buf bytes.Buffer
	err := passwordResetTmpl.Execute(&buf, map[string]string{
		"Link": fmt.Sprintf("%s/verifyToken/%s", frontendURL, token),
	})
	if err != nil {
		return "", fmt.Errorf("could not render reset mail: %w", err)
	}
	return buf.String(), nil
}
