package broker

type EventType string

const (
	// Standardized event types in format: <resource>.<action>
	TaskCreated EventType = "task.created"
	TaskUpdated EventType = "task.updated"
	TaskDeleted EventType = "task.deleted"

	UserCreated  EventType = "user.created"
	UserLoggedIn EventType = "user.logged_in"
)

// NATS subjects; the event type doubles as the subject name.
const (
	TaskSubject = "task.*"
	UserSubject = "user.*"
)
