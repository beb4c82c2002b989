package domain

// Commands carry caller intent into the services. Validation tags are
// checked by the service before any store access.

type PostMessageCommand struct {
	ChannelID ChannelID `validate:"required"`
	Sender    Sender
	Text      string `validate:"required"`
}

type AssignTicketCommand struct {
	Actor      User   `validate:"-"`
	TicketID   string `validate:"required"`
	AssigneeID string `validate:"required"`
}

type ChangeDocumentStatusCommand struct {
	Actor      User           `validate:"-"`
	Kind       DocumentKind   `validate:"required,oneof=proposal invoice"`
	DocumentID string         `validate:"required"`
	Status     DocumentStatus `validate:"required,oneof=draft sent accepted declined paid changes_requested"`
}

type SubmitFeedbackCommand struct {
	Author     User         `validate:"-"`
	Kind       DocumentKind `validate:"required,oneof=proposal invoice"`
	DocumentID string       `validate:"required"`
	Message    string       `validate:"required"`
}

type SubmitReportCommand struct {
	Author    User   `validate:"-"`
	ProjectID string `validate:"required"`
	Title     string `validate:"required"`
	Body      string
}
