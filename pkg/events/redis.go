package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"cardledger/pkg/scope"
	"cardledger/pkg/storage"
)

const (
	defaultDialTimeout  = 5 * time.Second
	defaultReadTimeout  = 3 * time.Second
	defaultWriteTimeout = 3 * time.Second

	// subscriberBuffer absorbs bursts between the bus and a slow session.
	subscriberBuffer = 64
)

// NewRedisClient returns a configured go-redis client and validates the
// connection with PING.
func NewRedisClient(addr, password string) (*redis.Client, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("redis: addr is empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DialTimeout:  defaultDialTimeout,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), defaultDialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}

// RedisBus carries ledger deltas over Redis pub/sub. Channel names are
// the ledger data paths, so the global and per-owner views are separate
// channels and a subscriber only ever sees its own scope. Because pub/sub
// has no history, Subscribe backfills existing rows from the store before
// relaying live messages.
type RedisBus struct {
	Client  *redis.Client
	Scanner storage.TransactionScanner
	Logger  *slog.Logger
}

// NewRedisBus creates a new RedisBus.
func NewRedisBus(client *redis.Client, scanner storage.TransactionScanner, logger *slog.Logger) *RedisBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisBus{Client: client, Scanner: scanner, Logger: logger}
}

// Make sure we conform to the interfaces
var (
	_ Publisher = (*RedisBus)(nil)
	_ Stream    = (*RedisBus)(nil)
)

// Publish emits one delta onto a data path's channel.
func (b *RedisBus) Publish(ctx context.Context, path string, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.Client.Publish(ctx, path, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event to %s: %w", path, err)
	}

	return nil
}

// Subscribe attaches to the scope's channel, replays the existing entries
// as added events, then relays live deltas. The pub/sub attach happens
// before the backfill scan so no write published in between is lost;
// duplicates are harmless because consumers upsert by id.
func (b *RedisBus) Subscribe(ctx context.Context, sc scope.Scope, lastN int) (<-chan Event, error) {
	pubsub := b.Client.Subscribe(ctx, sc.DataPath)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", sc.DataPath, err)
	}

	out := make(chan Event, subscriberBuffer)
	go b.relay(ctx, pubsub, sc, int32(lastN), out)
	return out, nil
}

func (b *RedisBus) relay(ctx context.Context, pubsub *redis.PubSub, sc scope.Scope, lastN int32, out chan<- Event) {
	defer close(out)
	defer pubsub.Close()

	backfill, err := b.Scanner.ListRecent(ctx, sc, lastN)
	if err != nil {
		b.Logger.Error("live stream backfill failed", "path", sc.DataPath, "error", err)
		return
	}
	for _, tx := range backfill {
		select {
		case out <- Event{Kind: KindAdded, Transaction: tx}:
		case <-ctx.Done():
			return
		}
	}

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				b.Logger.Error("dropping malformed live event", "path", sc.DataPath, "error", err)
				continue
			}
			select {
			case out <- event:
			case <-ctx.Done():
				return
			}
		}
	}
}
