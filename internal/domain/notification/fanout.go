package notification

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
)

// CustomerDirectory resolves a subscriber's email contact.
type CustomerDirectory interface {
	GetContact(ctx context.Context, customerID int64) (email, name string, err error)
}

// RestockEmail carries everything the mail transport needs for one
// "back in stock" message.
type RestockEmail struct {
	To          string
	Name        string
	ProductName string
	Price       float64
	Stock       int
	Link        string
}

// Mailer sends a restock email to one recipient. It never returns an
// error: transport failures reduce to false so one broken mailbox or an
// SMTP outage cannot abort a fan-out.
type Mailer interface {
	SendRestockEmail(ctx context.Context, m RestockEmail) bool
}

// FanoutResult summarizes one fan-out invocation for logging.
type FanoutResult struct {
	Subscribers  int
	Notified     int
	EmailsSent   int
	EmailsFailed int
}

// Fanout notifies all un-notified subscribers of a product when its
// stock returns from zero, over both the in-app and email channels,
// then marks the processed subscriptions in one bulk update.
type Fanout struct {
	subs          *SubscriptionRepository
	notifications *NotificationRepository
	customers     CustomerDirectory
	mailer        Mailer
	hub           *Hub // optional live push channel
	baseURL       string
	log           zerolog.Logger
}

func NewFanout(
	subs *SubscriptionRepository,
	notifications *NotificationRepository,
	customers CustomerDirectory,
	mailer Mailer,
	hub *Hub,
	baseURL string,
	log zerolog.Logger,
) *Fanout {
	return &Fanout{
		subs:          subs,
		notifications: notifications,
		customers:     customers,
		mailer:        mailer,
		hub:           hub,
		baseURL:       baseURL,
		log:           log,
	}
}

// OnStockReplenished runs the fan-out for one product whose stock just
// moved from zero to newStock. The caller has already persisted the
// product write; nothing here can fail that write.
//
// Subscribers are processed sequentially in snapshot order. A failure
// on one subscriber (notification write or email) is logged and the
// loop continues. The final bulk mark covers exactly the snapshot,
// filtered by notified=false again, so concurrent fan-outs for the same
// product never double-mark a row.
func (f *Fanout) OnStockReplenished(ctx context.Context, productID int64, productName string, price float64, newStock int) (*FanoutResult, error) {
	subs, err := f.subs.ListUnnotified(ctx, productID)
	if err != nil {
		f.log.Error().Err(err).Int64("product_id", productID).Msg("restock fan-out: failed to load subscribers")
		return nil, err
	}

	res := &FanoutResult{Subscribers: len(subs)}
	if len(subs) == 0 {
		return res, nil
	}

	f.log.Info().
		Int64("product_id", productID).
		Str("product", productName).
		Int("subscribers", len(subs)).
		Msg("product back in stock, notifying subscribers")

	link := fmt.Sprintf("/product/%d", productID)
	emailLink := f.baseURL + link
	title := "Product Back in Stock!"
	message := fmt.Sprintf("%s is now available with %d units in stock", productName, newStock)

	ids := make([]int64, 0, len(subs))
	for _, sub := range subs {
		ids = append(ids, sub.ID)

		n := &Notification{
			UserID:   sub.CustomerID,
			UserRole: RoleCustomer,
			Type:     TypeProductAvailable,
			Title:    title,
			Message:  message,
			Link:     sql.NullString{String: link, Valid: true},
		}
		if err := f.notifications.Create(ctx, n); err != nil {
			f.log.Error().Err(err).
				Int64("product_id", productID).
				Int64("customer_id", sub.CustomerID).
				Msg("restock fan-out: failed to create notification")
		} else {
			res.Notified++
			if f.hub != nil {
				f.hub.Push(RoleCustomer, sub.CustomerID, &Event{Type: EventNotification, Payload: toResponse(*n)})
			}
		}

		email, name, err := f.customers.GetContact(ctx, sub.CustomerID)
		if err != nil {
			f.log.Warn().Err(err).
				Int64("customer_id", sub.CustomerID).
				Msg("restock fan-out: contact lookup failed, skipping email")
			res.EmailsFailed++
			continue
		}

		sent := f.mailer.SendRestockEmail(ctx, RestockEmail{
			To:          email,
			Name:        name,
			ProductName: productName,
			Price:       price,
			Stock:       newStock,
			Link:        emailLink,
		})
		if sent {
			res.EmailsSent++
		} else {
			res.EmailsFailed++
		}
	}

	marked, err := f.subs.MarkNotified(ctx, productID, ids)
	if err != nil {
		// Subscribers already notified in-app stay notified; the rows
		// remain un-marked and will be claimed on the next restock.
		f.log.Error().Err(err).Int64("product_id", productID).Msg("restock fan-out: failed to mark subscriptions notified")
		return res, nil
	}

	f.log.Info().
		Int64("product_id", productID).
		Int("subscribers", res.Subscribers).
		Int("in_app", res.Notified).
		Int("emails_sent", res.EmailsSent).
		Int("emails_failed", res.EmailsFailed).
		Int64("marked", marked).
		Msg("restock fan-out complete")
	return res, nil
}
