package pubsub

import "firelink/internal/domain/service"

// eventAttributes are the message attributes subscribers filter on.
func eventAttributes(event *service.LinkEvent) map[string]string {
	attributes := map[string]string{
		"correlation_id": event.CorrelationID,
		"event_type":     string(event.Type),
	}
	if event.Provider != "" {
		attributes["provider"] = event.Provider
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
