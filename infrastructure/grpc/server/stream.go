package server

import "context"

// latest puts v in the single-slot channel ch, replacing a snapshot the
// stream has not sent yet. It never blocks the subscription callback.
func latest[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// pump sends snapshots until ctx is done or a send fails.
func pump[T any](ctx context.Context, snapshots <-chan T, send func(T) error) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case snapshot := <-snapshots:
			if err := send(snapshot); err != nil {
				return err
			}
		}
	}
}
