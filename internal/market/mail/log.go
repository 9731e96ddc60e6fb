package mail

import (
	"context"

	"github.com/kolmarket/kolmarket/pkg/slogx"
)

// LogNotifier writes the registration link to the log instead of sending
// email. Used in dev and tests when no SendGrid key is configured.
type LogNotifier struct{}

func (LogNotifier) SendInvite(ctx context.Context, email, link string) error {
	slogx.FromContext(ctx).Info("invite email (log only)",
		"email", email,
		"link", link,
	)
	return nil
}
