package feed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisFeed broadcasts signals through a Redis pub/sub channel so that a
// write on one hub instance refreshes subscribers on all of them.
// Run must be supervised: it is the listener feeding the local notifier.
type RedisFeed struct {
	client   *redis.Client
	channel  string
	notifier Notifier
	log      *slog.Logger
}

// NewRedisFeed connects to redisURL and checks the connection.
func NewRedisFeed(redisURL, channel string, notifier Notifier, log *slog.Logger) (*RedisFeed, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return NewRedisFeedWithClient(client, channel, notifier, log), nil
}

func NewRedisFeedWithClient(client *redis.Client, channel string, notifier Notifier, log *slog.Logger) *RedisFeed {
	return &RedisFeed{client: client, channel: channel, notifier: notifier, log: log}
}

func (r *RedisFeed) Publish(ctx context.Context, topic string) error {
	if err := r.client.Publish(ctx, r.channel, topic).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

func (r *RedisFeed) Run(ctx context.Context) error {
	sub := r.client.Subscribe(ctx, r.channel)
	defer func() { _ = sub.Close() }()

	// Wait for the subscription to be confirmed before consuming.
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", r.channel, err)
	}
	r.log.Info("Listening to change feed", "channel", r.channel)

	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return fmt.Errorf("change feed %s closed", r.channel)
			}
			r.notifier.Notify(msg.Payload)
		}
	}
}

func (r *RedisFeed) Close() error {
	return r.client.Close()
}
