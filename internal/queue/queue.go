package queue

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

// TopicContactMessages carries contact message ids (string) to the forwarder.
const TopicContactMessages = "contact_messages"

// MaxRetries is how many times a failed job is retried before it is dropped.
const MaxRetries = 3

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue runs handlers in-process with retry
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error
	backoff  time.Duration
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers: make(map[string][]func(payload any) error),
		backoff:  500 * time.Millisecond,
	}
}

// JobPayload wraps a message payload with retry info
type JobPayload struct {
	Payload    any
	RetryCount int
	MaxRetries int
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	job := JobPayload{
		Payload:    payload,
		RetryCount: 0,
		MaxRetries: MaxRetries,
	}

	for _, handler := range handlers {
		go q.processJob(handler, job)
	}

	return nil
}

// processJob handles retries and errors
func (q *InMemoryQueue) processJob(handler func(payload any) error, job JobPayload) {
	for job.RetryCount <= job.MaxRetries {
		err := handler(job.Payload)
		if err == nil {
			return // ACK
		}

		job.RetryCount++
		log.Printf("Job failed (attempt %d/%d): %+v, error: %v\n", job.RetryCount, job.MaxRetries, job.Payload, err)

		if job.RetryCount > job.MaxRetries {
			log.Printf("Job permanently failed after %d attempts: %+v\n", job.MaxRetries, job.Payload)
			return // No requeue
		}

		// Linear backoff before retry
		time.Sleep(time.Duration(job.RetryCount) * q.backoff)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// ContactProcessor forwards one stored contact message.
type ContactProcessor interface {
	Process(ctx context.Context, id string) error
}

// StartContactSubscriber wires p to TopicContactMessages on q.
func StartContactSubscriber(ctx context.Context, q Queue, p ContactProcessor) error {
	err := q.Subscribe(TopicContactMessages, func(payload any) error {
		id, ok := payload.(string)
		if !ok || id == "" {
			log.Printf("⚠️ Invalid payload type %T, expected message id", payload)
			return nil // no retry
		}

		log.Println("📩 Processing queued contact message ID:", id)
		return p.Process(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", TopicContactMessages, err)
	}
	return nil
}
