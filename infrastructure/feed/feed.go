// Package feed carries "topic changed" signals from writers to the live
// subscription registry. The signal holds no data: subscribers re-read
// the store when they receive it.
package feed

import "context"

// Notifier is the receiving side, usually the subscription registry.
type Notifier interface {
	Notify(topic string)
}

// LocalFeed delivers signals within the current process.
type LocalFeed struct {
	notifier Notifier
}

func NewLocalFeed(notifier Notifier) LocalFeed {
	return LocalFeed{notifier: notifier}
}

func (l LocalFeed) Publish(_ context.Context, topic string) error {
	l.notifier.Notify(topic)
	return nil
}
