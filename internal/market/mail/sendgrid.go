package mail

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridNotifier sends invitation emails through the SendGrid v3 API.
type SendGridNotifier struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewSendGridNotifier(apiKey, fromEmail, fromName string) *SendGridNotifier {
	return &SendGridNotifier{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *SendGridNotifier) SendInvite(ctx context.Context, email, link string) error {
	from := sgmail.NewEmail(s.fromName, s.fromEmail)
	to := sgmail.NewEmail("", email)

	subject := "You're invited to join as an influencer"
	plainText := fmt.Sprintf("You've been invited to register as an influencer. Complete your registration here: %s", link)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Influencer Invitation</h2>
				<p>You've been invited to register as an influencer.</p>
				<p><a href="%s">Complete your registration</a></p>
				<p>This invitation expires in 7 days.</p>
			</body>
		</html>
	`, link)

	message := sgmail.NewSingleEmail(from, subject, to, plainText, htmlContent)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("mail: send invite: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("mail: sendgrid status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}
