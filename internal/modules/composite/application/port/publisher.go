package port

import "context"

// EventPublisher hands one serialized change event to a named channel. The
// attached key determines relative ordering among messages sharing it; retry
// and redelivery belong to the channel, not to callers of this port.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key []byte, value []byte) error
}
