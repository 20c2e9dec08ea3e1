package outbound

import (
	"github.com/sparkwave/sparkwave-login/domain/entity"
)

// Mailer dispatches user notifications. Every method is fire-and-forget:
// the message is handed to a background worker and the call returns
// immediately. Delivery failures are logged, never surfaced to the
// triggering request.
type Mailer interface {
	// SendWelcome greets a new account. plainPassword is non-empty only
	// when an admin created the account and the generated credentials are
	// mailed to the user.
	SendWelcome(user *entity.User, plainPassword string)
	SendAccountStatus(user *entity.User, active bool)
	SendPasswordReset(user *entity.User, newPassword string)
}
