package events

import "time"

const PurchaseOrderRespondedTopic = "resto.purchaseorder.responded.v1"

type PurchaseOrderRespondedEvent struct {
	EventType    string    `json:"event_type"`
	PONumber     string    `json:"po_number"`
	RestaurantID string    `json:"restaurant_id"`
	Action       string    `json:"action"`
	OccurredAt   time.Time `json:"occurred_at"`
}
