package kafka

import "time"

const (
	Topic         = `storefront.catalog-updated`
	ConsumerGroup = `storefront.catalog-cache`
)

// Catalog mutation actions carried on the topic.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// CatalogEvent is published after every successful admin mutation so
// subscribed catalog caches re-read the affected collection.
type CatalogEvent struct {
	Collection string    `json:"collection"` // products or categories
	DocID      string    `json:"doc_id"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}
