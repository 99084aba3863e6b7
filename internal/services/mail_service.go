package services

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"roamly/pkg/config"
	"roamly/pkg/logger"
)

type MailServiceInterface interface {
	SendPasswordReset(to, token string) error
}

// NewMailService returns an SMTP-backed mailer, or a logging no-op
// when no SMTP host is configured (the usual case in development).
func NewMailService(cfg *config.Config) MailServiceInterface {
	if cfg.SMTP.Host == "" {
		return &logMailService{}
	}
	return &smtpMailService{cfg: cfg.SMTP}
}

type logMailService struct{}

func (l *logMailService) SendPasswordReset(to, token string) error {
	logger.L().Info("password reset (mail disabled)",
		zap.String("to", to), zap.String("token", token))
	return nil
}

type smtpMailService struct {
	cfg config.SMTPConfig
}

func (s *smtpMailService) SendPasswordReset(to, token string) error {
	body := fmt.Sprintf(
		"Someone requested a password reset for this address.\r\n\r\n"+
			"Reset token: %s\r\n\r\n"+
			"If this wasn't you, ignore this mail.\r\n", token)
	return s.send(to, "Reset your password", body)
}

func (s *smtpMailService) send(to, subject, body string) error {
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)

	if s.cfg.UseSSL {
		return s.sendSMTPS(addr, auth, to, msg.String())
	}
	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg.String()))
}

// sendSMTPS handles implicit-TLS servers (port 465), which
// smtp.SendMail cannot speak to.
func (s *smtpMailService) sendSMTPS(addr string, auth smtp.Auth, to, msg string) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.cfg.Host})
	if err != nil {
		return err
	}
	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
