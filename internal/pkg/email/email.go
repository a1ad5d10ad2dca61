package email

import (
	"fmt"
	"html"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// Notifier defines the outgoing mail the portal sends
type Notifier interface {
	// SendInquiryNotification tells the site owners about a new contact form submission
	SendInquiryNotification(msg InquiryMessage) error
}

// InquiryMessage is the content of a contact form submission
type InquiryMessage struct {
	ID      string
	Name    string
	Email   string
	Subject string
	Message string
}

// SMTPConfig holds configuration for SMTP server
type SMTPConfig struct {
	Host          string
	Port          int
	Username      string
	Password      string
	FromName      string
	FromEmail     string
	NotifyAddress string
}

// Sender abstracts gomail.Dialer so tests can capture messages
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPNotifier implements Notifier with gomail
type SMTPNotifier struct {
	config SMTPConfig
	sender Sender
	logger zerolog.Logger
}

// NewSMTPNotifier creates a notifier dialing the configured SMTP server
func NewSMTPNotifier(config SMTPConfig, logger zerolog.Logger) *SMTPNotifier {
	return NewNotifierWithSender(config, gomail.NewDialer(config.Host, config.Port, config.Username, config.Password), logger)
}

// NewNotifierWithSender creates a notifier with a custom transport
func NewNotifierWithSender(config SMTPConfig, sender Sender, logger zerolog.Logger) *SMTPNotifier {
	return &SMTPNotifier{
		config: config,
		sender: sender,
		logger: logger,
	}
}

// SendInquiryNotification sends the inquiry to the notify address with Reply-To set to the visitor
func (n *SMTPNotifier) SendInquiryNotification(msg InquiryMessage) error {
	if n.config.Host == "" || n.config.NotifyAddress == "" {
		n.logger.Warn().
			Str("inquiryId", msg.ID).
			Str("from", msg.Email).
			Msg("SMTP not configured - inquiry notification not sent")
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.fromEmail(), n.config.FromName)
	m.SetHeader("To", n.config.NotifyAddress)
	m.SetAddressHeader("Reply-To", msg.Email, msg.Name)
	m.SetHeader("Subject", fmt.Sprintf("New inquiry: %s", msg.Subject))
	m.SetBody("text/plain", inquiryText(msg))
	m.AddAlternative("text/html", inquiryHTML(msg))

	if err := n.sender.DialAndSend(m); err != nil {
		n.logger.Error().Err(err).Str("inquiryId", msg.ID).Msg("Failed to send inquiry notification")
		return fmt.Errorf("failed to send email: %w", err)
	}

	n.logger.Info().Str("inquiryId", msg.ID).Msg("Inquiry notification sent")
	return nil
}

func (n *SMTPNotifier) fromEmail() string {
	if n.config.FromEmail != "" {
		return n.config.FromEmail
	}
	return n.config.Username
}

func inquiryText(msg InquiryMessage) string {
	return fmt.Sprintf("From: %s <%s>\nSubject: %s\n\n%s\n", msg.Name, msg.Email, msg.Subject, msg.Message)
}

func inquiryHTML(msg InquiryMessage) string {
	body := strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>")
	return fmt.Sprintf(`<html>
<body>
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2 style="color: #333;">New inquiry</h2>
		<p><strong>From:</strong> %s &lt;%s&gt;</p>
		<p><strong>Subject:</strong> %s</p>
		<p>%s</p>
	</div>
</body>
</html>`, html.EscapeString(msg.Name), html.EscapeString(msg.Email), html.EscapeString(msg.Subject), body)
}
