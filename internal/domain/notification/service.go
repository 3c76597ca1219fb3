package notification

import (
	"context"
	"database/sql"
	"fmt"
)

// Service exposes the notification and subscription stores to the API
// surface and to other domains (admin verification workflow).
type Service struct {
	notifications *NotificationRepository
	subs          *SubscriptionRepository
	hub           *Hub
}

func NewService(notifications *NotificationRepository, subs *SubscriptionRepository, hub *Hub) *Service {
	return &Service{notifications: notifications, subs: subs, hub: hub}
}

func (s *Service) Subscribe(ctx context.Context, customerID, productID int64) (*ProductSubscription, error) {
	return s.subs.Subscribe(ctx, customerID, productID)
}

func (s *Service) Unsubscribe(ctx context.Context, customerID, productID int64) error {
	return s.subs.Unsubscribe(ctx, customerID, productID)
}

func (s *Service) IsSubscribed(ctx context.Context, customerID, productID int64) (bool, error) {
	return s.subs.IsSubscribed(ctx, customerID, productID)
}

// List returns the user's notifications plus their unread count.
func (s *Service) List(ctx context.Context, userID int64, role Role, unreadOnly bool, limit, offset int) ([]Notification, int64, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}

	list, err := s.notifications.ListByUser(ctx, userID, role, unreadOnly, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	unread, err := s.notifications.CountUnread(ctx, userID, role)
	if err != nil {
		return nil, 0, err
	}

	return list, unread, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID int64, role Role) (int64, error) {
	return s.notifications.CountUnread(ctx, userID, role)
}

func (s *Service) MarkRead(ctx context.Context, id int64) error {
	return s.notifications.MarkRead(ctx, id)
}

func (s *Service) MarkAllRead(ctx context.Context, userID int64, role Role) error {
	return s.notifications.MarkAllRead(ctx, userID, role)
}

// Notify persists an in-app notification and pushes it to the user's
// live connection when one is open.
func (s *Service) Notify(ctx context.Context, userID int64, role Role, t Type, title, message, link string) error {
	n := &Notification{
		UserID:   userID,
		UserRole: role,
		Type:     t,
		Title:    title,
		Message:  message,
	}
	if link != "" {
		n.Link = sql.NullString{String: link, Valid: true}
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		return err
	}
	if s.hub != nil {
		s.hub.Push(role, userID, &Event{Type: EventNotification, Payload: toResponse(*n)})
	}
	return nil
}

func (s *Service) NotifyVerificationApproved(ctx context.Context, shopkeeperID int64, shopName string) error {
	return s.Notify(ctx, shopkeeperID, RoleShopkeeper,
		TypeVerificationApproved,
		"Account Verified",
		fmt.Sprintf("Your shop %q has been verified. You can now list products.", shopName),
		"/shopkeeper/dashboard",
	)
}

func (s *Service) NotifyVerificationRejected(ctx context.Context, shopkeeperID int64, shopName, reason string) error {
	msg := fmt.Sprintf("Verification for your shop %q was rejected", shopName)
	if reason != "" {
		msg = msg + ". Reason: " + reason
	}
	return s.Notify(ctx, shopkeeperID, RoleShopkeeper,
		TypeVerificationRejected,
		"Verification Rejected",
		msg,
		"/shopkeeper/dashboard",
	)
}
