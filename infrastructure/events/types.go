// Package events defines the layout change events the CMS backend writes to
// Redis Streams.
package events

import (
	"time"

	"github.com/google/uuid"
)

// StreamName is the Redis stream for layout events.
const StreamName = "nokair:layout-events"

// EventType represents the type of layout event.
type EventType string

const (
	// LayoutUpdated indicates a stored document was replaced.
	LayoutUpdated EventType = "layout.updated"
)

// LayoutEvent is the envelope for layout events. Slug is the site slug or
// page route the document is stored under.
type LayoutEvent struct {
	EventID   uuid.UUID `json:"event_id"`
	EventType EventType `json:"event_type"`
	Slug      string    `json:"slug"`
	Timestamp time.Time `json:"timestamp"`
}
