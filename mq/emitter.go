package mq

import (
	"context"
	"encoding/json"
	"log"

	"shubharambh/mailer"
	"shubharambh/rdx"
)

// Notification kinds
const (
	KindQuoteRequested       = "quote-requested"
	KindQuoteResponded       = "quote-responded"
	KindAppointmentRequested = "appointment-requested"
	KindAppointmentDecided   = "appointment-decided"
	KindVendorModerated      = "vendor-moderated"
)

const channel = "notification-events"

// Notification is one best-effort email to deliver. It carries everything
// the worker needs so delivery never goes back to the database.
type Notification struct {
	Kind    string                  `json:"kind"`
	To      string                  `json:"to"`
	Subject string                  `json:"subject"`
	Data    mailer.NotificationData `json:"data"`
}

// Emit publishes a notification to Redis. Failures are logged and swallowed:
// a lost email must never fail the write that triggered it.
func Emit(ctx context.Context, n Notification) {
	data, err := json.Marshal(n)
	if err != nil {
		log.Printf("[Emit] Failed to marshal notification: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, channel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish notification: %v", err)
		return
	}
}

// StartNotificationWorker consumes notification events and sends the emails.
// Runs for the life of the process; call from main in a goroutine.
func StartNotificationWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, channel)
	ch := sub.Channel()

	log.Println("[NotificationWorker] Listening for notification events...")

	for msg := range ch {
		var n Notification
		if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
			log.Printf("[NotificationWorker] Failed to parse event: %v", err)
			continue
		}

		body, err := RenderBody(n)
		if err != nil {
			log.Printf("[NotificationWorker] Failed to render %s: %v", n.Kind, err)
			continue
		}

		if err := mailer.Send(n.To, n.Subject, body); err != nil {
			log.Printf("[NotificationWorker] Send to %s failed: %v", n.To, err)
			continue
		}
	}
}

// RenderBody picks the template for a notification kind.
func RenderBody(n Notification) (string, error) {
	switch n.Kind {
	case KindQuoteRequested:
		return mailer.QuoteRequestedBody(n.Data)
	case KindQuoteResponded:
		return mailer.QuoteRespondedBody(n.Data)
	case KindAppointmentRequested:
		return mailer.AppointmentRequestedBody(n.Data)
	case KindAppointmentDecided:
		return mailer.AppointmentDecidedBody(n.Data)
	case KindVendorModerated:
		return mailer.VendorModeratedBody(n.Data)
	default:
		return "", ErrUnknownKind
	}
}
