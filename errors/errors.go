package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")
	ErrEmptyWords  = fmt.Errorf("no words have been found")

	ErrNotFound             = fmt.Errorf("not found")
	ErrProjectNotFound      = fmt.Errorf("project %w", ErrNotFound)
	ErrChannelNotFound      = fmt.Errorf("channel %w", ErrNotFound)
	ErrNotificationNotFound = fmt.Errorf("notification %w", ErrNotFound)
	ErrDocumentNotFound     = fmt.Errorf("document %w", ErrNotFound)
	ErrTicketNotFound       = fmt.Errorf("ticket %w", ErrNotFound)
	ErrUserNotFound         = fmt.Errorf("user %w", ErrNotFound)

	ErrEmailNotConfigured = fmt.Errorf("email not configured")
	ErrStatusConflict     = fmt.Errorf("record changed since it was read")
	ErrFeedbackOnDraft    = fmt.Errorf("feedback is not accepted on a draft")
	ErrInvalidStatus      = fmt.Errorf("invalid status")
	ErrInvalidKind        = fmt.Errorf("invalid document kind")
	ErrInvalidPayload     = fmt.Errorf("invalid payload")
	ErrInvalidRequest     = fmt.Errorf("invalid request")

	ErrUnauthenticated  = fmt.Errorf("unauthenticated")
	ErrPermissionDenied = fmt.Errorf("permission denied")
)
