package mailer

import (
	"bytes"
	"fmt"
	"net/smtp"
	"text/template"

	"media-review/pkg/utils"

	"go.uber.org/zap"
)

// Mailer sends outbound mail. Satisfied by the SMTP implementation and by
// test fakes.
type Mailer interface {
	SendActivationEmail(to, confirmationCode string) error
}

const activationTemplate = `Hi {{.Email}},

Welcome to {{.AppName}}. Use the confirmation code below to activate your account:

    {{.Code}}

Exchange it for an access token at POST /api/v1/auth/token with your email address.
`

type activationData struct {
	Email   string
	AppName string
	Code    string
}

type smtpMailer struct {
	config  utils.EmailConfig
	appName string
	tmpl    *template.Template
	log     *zap.Logger
}

func NewSMTPMailer(config utils.EmailConfig, appName string, log *zap.Logger) Mailer {
	return &smtpMailer{
		config:  config,
		appName: appName,
		tmpl:    template.Must(template.New("activation").Parse(activationTemplate)),
		log:     log.With(zap.String("component", "mailer")),
	}
}

// SendActivationEmail delivers the confirmation code to a new account.
// Blocking call, runs within the registration request.
func (m *smtpMailer) SendActivationEmail(to, confirmationCode string) error {
	var body bytes.Buffer
	err := m.tmpl.Execute(&body, activationData{
		Email:   to,
		AppName: m.appName,
		Code:    confirmationCode,
	})
	if err != nil {
		return fmt.Errorf("render activation email: %w", err)
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Activate your account\r\n\r\n%s",
		m.config.From, to, body.String())

	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	var auth smtp.Auth
	if m.config.User != "" {
		auth = smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)
	}

	if err := smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(msg)); err != nil {
		m.log.Error("Failed to send activation email",
			zap.Error(err),
			zap.String("to", to),
		)
		return fmt.Errorf("send activation email to %s: %w", to, err)
	}

	m.log.Info("Activation email sent", zap.String("to", to))
	return nil
}
