//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"collab-hub/domain"
	"collab-hub/domain/event"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventHandler consumes events drained from the outbox.
// Returning an error keeps the event pending for another attempt.
type EventHandler interface {
	Handle(ctx context.Context, e event.Event) error
}

// ErrorSink receives failures of best-effort side effects
// (previews, notifications, emails, change signals). Reporting never fails.
type ErrorSink interface {
	Report(ctx context.Context, op string, err error, attrs ...any)
}

// ChangeFeed signals that the data behind a topic changed.
type ChangeFeed interface {
	Publish(ctx context.Context, topic string) error
}

type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, html string) error
}

// Censor rewrites message text before it is stored.
type Censor interface {
	Censor(text string) string
}

// Kicker wakes a background worker ahead of its next tick.
type Kicker interface {
	Kick()
}

func ChannelTopic(id domain.ChannelID) string {
	return "chat:" + string(id)
}

func FeedTopic(userID string) string {
	return "notifications:" + userID
}
