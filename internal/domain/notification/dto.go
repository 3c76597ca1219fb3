package notification

import "time"

type SubscribeRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
}

type SubscriptionStatusResponse struct {
	Subscribed bool `json:"subscribed"`
}

type NotificationResponse struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Link      *string   `json:"link,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int64                  `json:"unread_count"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

func toResponse(n Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
	if n.Link.Valid {
		link := n.Link.String
		resp.Link = &link
	}
	return resp
}
