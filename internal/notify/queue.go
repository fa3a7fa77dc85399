// Package notify provides the asynchronous notification dispatch used for
// issue and comment emails. Producers enqueue onto a Redis list and never
// observe delivery; a worker drains the list and hands messages to SMTP.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Notification is the unit handed from the services to the worker.
type Notification struct {
	Emails  []string `json:"emails"`
	Subject string   `json:"subject"`
	Message string   `json:"message"`
}

// Queue is the Redis-backed notification queue.
type Queue struct {
	client *redis.Client
	key    string
}

// NewQueue creates a queue from a Redis URL.
func NewQueue(redisURL string) (*Queue, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewQueueWithClient(client), nil
}

// NewQueueWithClient creates a queue from an existing Redis client.
func NewQueueWithClient(client *redis.Client) *Queue {
	return &Queue{
		client: client,
		key:    "notifications",
	}
}

// Enqueue pushes a notification and returns immediately. Failures are logged
// and dropped; the triggering operation never fails on dispatch.
func (q *Queue) Enqueue(ctx context.Context, emails []string, subject, message string) {
	payload, err := json.Marshal(Notification{
		Emails:  emails,
		Subject: subject,
		Message: message,
	})
	if err != nil {
		log.Printf("notify: marshal notification: %v", err)
		return
	}
	if err := q.client.LPush(ctx, q.key, payload).Err(); err != nil {
		log.Printf("notify: enqueue notification: %v", err)
	}
}

// Pop blocks up to timeout for the next notification. A nil result with nil
// error means the timeout elapsed with the queue empty.
func (q *Queue) Pop(ctx context.Context, timeout time.Duration) (*Notification, error) {
	values, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("pop notification: %w", err)
	}

	var notification Notification
	if err := json.Unmarshal([]byte(values[1]), &notification); err != nil {
		return nil, fmt.Errorf("unmarshal notification: %w", err)
	}
	return &notification, nil
}

// Len returns the number of pending notifications.
func (q *Queue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.key).Result()
}

// Ping checks if Redis is reachable
func (q *Queue) Ping(ctx context.Context) error {
	return q.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (q *Queue) Close() error {
	return q.client.Close()
}
