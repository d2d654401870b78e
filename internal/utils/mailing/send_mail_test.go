package mailing

import (
	"errors"
	"strings"
	"testing"
)

func TestSendMailDisabledWithoutHost(t *testing.T) {
	m := NewMailer(MailConfig{})
	if err := m.SendMail("a@b.c", "hi", "body"); !errors.Is(err, ErrMailerDisabled) {
		t.Errorf("SendMail() error = %v, want %v", err, ErrMailerDisabled)
	}
}

func TestSendMailBadPort(t *testing.T) {
	m := NewMailer(MailConfig{SMTPHost: "localhost", SMTPPort: "smtp"})
	if err := m.SendMail("a@b.c", "hi", "body"); err == nil {
		t.Error("SendMail() expected error for non-numeric port")
	}
}

func TestWelcomeMailBody(t *testing.T) {
	body := WelcomeMailBody("https://foodgram.example", "Anna")
	if !strings.Contains(body, "Hi Anna") || !strings.Contains(body, "https://foodgram.example") {
		t.Errorf("WelcomeMailBody() = %q", body)
	}
}
