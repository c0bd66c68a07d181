package ports

import "context"

// Channel names the transport a message goes out on.
type Channel string

const (
	ChannelSMS        Channel = "sms"
	ChannelRestaurant Channel = "restaurant"
)

// MessageSender performs the transport side effect of a notification.
type MessageSender interface {
	Send(ctx context.Context, channel Channel, recipient string, message string) error
}
