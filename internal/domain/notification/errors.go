package notification

import "errors"

var (
	ErrAlreadySubscribed    = errors.New("already subscribed to this product")
	ErrNotificationNotFound = errors.New("notification not found")
)
