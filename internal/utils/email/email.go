package email

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/Dan9191/fintrack/internal/config"
	"github.com/Dan9191/fintrack/internal/models"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendBillReminder sends an upcoming or overdue bill reminder
func (s *Sender) SendBillReminder(user models.User, bill models.Bill, dueDate time.Time, isOverdue bool) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{user.Email}
	e.Subject, e.Text = composeBillReminder(user, bill, dueDate, isOverdue)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", user.Email, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", user.Email, e.Subject)
	return nil
}

func composeBillReminder(user models.User, bill models.Bill, dueDate time.Time, isOverdue bool) (string, []byte) {
	name := user.FirstName
	if name == "" {
		name = user.Username
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", name)

	var subject string
	if isOverdue {
		subject = fmt.Sprintf("Overdue bill: %s", bill.Name)
		fmt.Fprintf(&b,
			"Your %s bill of %s was due on %s and is now overdue.\n"+
				"Please pay it as soon as possible.\n",
			bill.Name, bill.Amount, dueDate.Format("2006-01-02"))
	} else {
		subject = fmt.Sprintf("Upcoming bill: %s", bill.Name)
		fmt.Fprintf(&b,
			"This is a reminder that your %s bill of %s is due on %s.\n",
			bill.Name, bill.Amount, dueDate.Format("2006-01-02"))
	}
	b.WriteString("\nBest regards,\nFinTrack")

	return subject, []byte(b.String())
}
