package push

import (
	"context"
	"fmt"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/Goriishankar/Dolchem-backend/models"
)

const newProductsTopic = "new_products"

// Sender delivers fire-and-forget FCM pushes to the new_products topic
// subscription. Failures are logged and never retried.
type Sender struct {
	client *messaging.Client
	log    *zap.Logger
}

// NewSender initializes the Firebase app from a service-account file.
// An empty path or an init failure yields a disabled sender; every
// Send* call then becomes a logged no-op so product writes keep
// working without push credentials.
func NewSender(ctx context.Context, credentialsFile string, log *zap.Logger) *Sender {
	if credentialsFile == "" {
		log.Warn("FCM disabled: no credentials file configured")
		return &Sender{log: log}
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		log.Error("firebase init failed, FCM disabled", zap.Error(err))
		return &Sender{log: log}
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		log.Error("firebase messaging init failed, FCM disabled", zap.Error(err))
		return &Sender{log: log}
	}

	return &Sender{client: client, log: log}
}

// SendNewProduct announces a freshly created product. Runs in its own
// goroutine so the HTTP request never waits on FCM.
func (s *Sender) SendNewProduct(p models.Product) {
	body := fmt.Sprintf("%s - ₹%.2f", p.ProductName, p.FinalPrice())
	go s.send(&messaging.Message{
		Topic: newProductsTopic,
		Notification: &messaging.Notification{
			Title: "New Product!",
			Body:  body,
		},
		Data: map[string]string{
			"productId": p.Id.Hex(),
			"type":      "new_product",
			"screen":    "Notifications",
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound:       "default",
				ChannelID:   "default",
				ClickAction: "FLUTTER_NOTIFICATION_CLICK",
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound:            "default",
					ContentAvailable: true,
				},
			},
		},
	})
}

// SendProductUpdated announces a catalog edit with the recomputed
// discounted price.
func (s *Sender) SendProductUpdated(p models.Product) {
	body := fmt.Sprintf("%s - ₹%.2f", p.ProductName, p.FinalPrice())
	go s.send(&messaging.Message{
		Topic: newProductsTopic,
		Notification: &messaging.Notification{
			Title: "Product Updated!",
			Body:  body,
		},
		Data: map[string]string{"productId": p.Id.Hex()},
	})
}

func (s *Sender) send(msg *messaging.Message) {
	if s.client == nil {
		s.log.Debug("FCM skipped, sender disabled", zap.String("topic", msg.Topic))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := s.client.Send(ctx, msg); err != nil {
		s.log.Error("FCM send failed", zap.Error(err))
		return
	}
	s.log.Info("FCM sent", zap.String("topic", msg.Topic))
}
