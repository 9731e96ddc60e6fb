// Package mail delivers invitation emails. Delivery is best-effort: the
// invite itself stays usable whether or not the email arrives.
package mail

import "context"

type Notifier interface {
	// SendInvite delivers a registration link to the invited address.
	SendInvite(ctx context.Context, email, link string) error
}
