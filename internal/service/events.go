package service

import "context"

// Publisher emits domain events. Failures are logged by callers and never
// fail the request that produced the event.
type Publisher interface {
	PublishEvent(ctx context.Context, topic, key string, event map[string]any) error
}

const (
	TopicUserEvents  = "user_events"
	TopicOrderEvents = "order_events"
)
