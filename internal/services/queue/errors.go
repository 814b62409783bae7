package queue

// QueueError is a custom error type for queue-related errors
type QueueError string

// Error implements the error interface
func (e QueueError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrValidation            QueueError = "invalid or empty input"
	ErrTicketConflict        QueueError = "ticket number conflicts with an existing record"
	ErrAlreadyQueued         QueueError = "participant is already in the waiting queue"
	ErrAlreadyPlaying        QueueError = "participant is currently playing"
	ErrSimulatorNotIdle      QueueError = "simulator is not idle"
	ErrParticipantNotWaiting QueueError = "participant is not in the waiting queue"
	ErrNoActiveSession       QueueError = "simulator has no active session"
	ErrParticipantNotFound   QueueError = "participant not found"
	ErrSimulatorNotFound     QueueError = "simulator not found"
	ErrUnknownField          QueueError = "unknown editable field"
	ErrNilInput              QueueError = "input cannot be nil"
	ErrNilConfig             QueueError = "config cannot be nil"
	ErrNilSnapshotRepo       QueueError = "snapshot repository cannot be nil"
	ErrNilClock              QueueError = "clock cannot be nil"
	ErrNilService            QueueError = "service cannot be nil"
	ErrNilUUIDGenerator      QueueError = "UUID generator cannot be nil"
)
