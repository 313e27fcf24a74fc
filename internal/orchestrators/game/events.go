package game

import "time"

// EventType tags a session lifecycle event
type EventType string

// Session event types
const (
	EventSessionCreated    EventType = "session.created"
	EventParticipantJoined EventType = "session.joined"
	EventSessionStarted    EventType = "session.started"
	EventAnswerScored      EventType = "session.scored"
	EventSessionCompleted  EventType = "session.completed"
	EventSessionCancelled  EventType = "session.cancelled"
)

// Event is a session lifecycle notification pushed to connected clients
type Event struct {
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id,omitempty"`
	At        time.Time `json:"at"`

	// Points carried on scored events
	Points int `json:"points,omitempty"`

	// Final standings carried on completed events
	Results []ParticipantResult `json:"results,omitempty"`
}

// EventPublisher pushes session events to interested clients. Publish
// must not block the caller; delivery is best effort.
type EventPublisher interface {
	Publish(event Event)
}

// NopPublisher discards every event
type NopPublisher struct{}

// Publish discards the event
func (NopPublisher) Publish(Event) {}
