package events

import "time"

const UserRegisteredTopic = "resto.user.registered.v1"

// UserRegisteredEvent fires once per completed owner registration. The
// verification consumer owns email delivery; delivery is at-least-once, so
// consumers must tolerate duplicates.
type UserRegisteredEvent struct {
	EventType    string    `json:"event_type"`
	UserID       string    `json:"user_id"`
	RestaurantID string    `json:"restaurant_id"`
	Email        string    `json:"email"`
	OccurredAt   time.Time `json:"occurred_at"`
}
