package notify

import (
	"context"
	"log"
	"time"
)

type sender interface {
	IsConfigured() bool
	SendEmail(to []string, subject, body string) error
}

// Worker drains the queue and delivers notifications over SMTP. Send
// failures are logged and dropped, never retried.
type Worker struct {
	queue   *Queue
	sender  sender
	timeout time.Duration
}

func NewWorker(queue *Queue, sender sender) *Worker {
	return &Worker{
		queue:   queue,
		sender:  sender,
		timeout: time.Second,
	}
}

// Run processes notifications until the context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		notification, err := w.queue.Pop(ctx, w.timeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("notify: %v", err)
			continue
		}
		if notification == nil {
			continue
		}
		w.deliver(notification)
	}
}

func (w *Worker) deliver(notification *Notification) {
	if len(notification.Emails) == 0 {
		return
	}
	if !w.sender.IsConfigured() {
		log.Printf("notify: email not configured, dropping %q to %d recipients",
			notification.Subject, len(notification.Emails))
		return
	}
	if err := w.sender.SendEmail(notification.Emails, notification.Subject, notification.Message); err != nil {
		log.Printf("notify: send %q: %v", notification.Subject, err)
	}
}
