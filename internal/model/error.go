package model

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeInvalidRequest     = "INVALID_REQUEST"
	ErrCodeInvalidPlayerCount = "INVALID_PLAYER_COUNT"
	ErrCodeRoomNotFound       = "ROOM_NOT_FOUND"
	ErrCodeRoomInactive       = "ROOM_INACTIVE"
	ErrCodeSlotTaken          = "SLOT_TAKEN"
	ErrCodeInvalidTimeSlot    = "INVALID_TIME_SLOT"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeRateLimited        = "RATE_LIMITED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidPlayerCount = NewDomainError(ErrCodeInvalidPlayerCount, "Player count must be at least 1")
	ErrRoomNotFound       = NewDomainError(ErrCodeRoomNotFound, "Room not found")
	ErrRoomInactive       = NewDomainError(ErrCodeRoomInactive, "Room is not available for booking")
	ErrSlotTaken          = NewDomainError(ErrCodeSlotTaken, "This slot was just taken. Please choose another time.")
	ErrInvalidTimeSlot    = NewDomainError(ErrCodeInvalidTimeSlot, "Please choose one of the available time slots")
)
