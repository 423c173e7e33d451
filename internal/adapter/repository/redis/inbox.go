package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/fintrack/internal/usecase"
)

const inboxKey = "sms:inbox"

// inboxEntry is the wire form an SMS gateway pushes into the inbox sorted
// set, scored by receive time in unix milliseconds.
type inboxEntry struct {
	Sender string `json:"sender"`
	Body   string `json:"body"`
}

// InboxSource implements usecase.InboxSource on a Redis sorted set. It
// models the platform SMS inbox: a gateway appends entries, the listener
// polls the most recent ones. Delivery is at-least-once and unordered.
type InboxSource struct {
	client *redis.Client
}

// NewInboxSource creates a new InboxSource.
func NewInboxSource(client *redis.Client) *InboxSource {
	return &InboxSource{client: client}
}

// FetchLatest returns up to limit of the most recent inbox entries, newest
// first. Entries that fail to decode are skipped; the inbox is an external
// surface and a malformed entry must not poison the poll.
func (s *InboxSource) FetchLatest(ctx context.Context, limit int) ([]usecase.InboxMessage, error) {
	zs, err := s.client.ZRevRangeWithScores(ctx, inboxKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, err
	}

	messages := make([]usecase.InboxMessage, 0, len(zs))
	for _, z := range zs {
		raw, ok := z.Member.(string)
		if !ok {
			continue
		}

		var entry inboxEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			continue
		}

		messages = append(messages, usecase.InboxMessage{
			Sender:     entry.Sender,
			Body:       entry.Body,
			ReceivedAt: time.UnixMilli(int64(z.Score)),
		})
	}

	return messages, nil
}

// Ping verifies the inbox is reachable. A failure here is the read-permission
// denial analogue: the listener refuses to start rather than poll blindly.
func (s *InboxSource) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Push appends a message to the inbox. Used by gateway glue and tests.
func (s *InboxSource) Push(ctx context.Context, msg usecase.InboxMessage) error {
	raw, err := json.Marshal(inboxEntry{Sender: msg.Sender, Body: msg.Body})
	if err != nil {
		return err
	}

	score := float64(msg.ReceivedAt.UnixMilli())

	return s.client.ZAdd(ctx, inboxKey, redis.Z{Score: score, Member: string(raw)}).Err()
}
