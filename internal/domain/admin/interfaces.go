package admin

import "context"

// VerificationNotifier informs a shopkeeper about the outcome of their
// verification. Implemented by the notification service.
type VerificationNotifier interface {
	NotifyVerificationApproved(ctx context.Context, shopkeeperID int64, shopName string) error
	NotifyVerificationRejected(ctx context.Context, shopkeeperID int64, shopName, reason string) error
}
