package queue

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/streadway/amqp"
)

const retryHeader = "x-retry-count"

// AMQPQueue publishes JSON payloads to one durable queue per topic.
type AMQPQueue struct {
	conn *amqp.Connection

	mu       sync.Mutex
	pub      *amqp.Channel
	declared map[string]bool
}

var _ Queue = (*AMQPQueue)(nil)

func DialAMQP(url string) (*AMQPQueue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	return &AMQPQueue{conn: conn, pub: ch, declared: map[string]bool{}}, nil
}

func declare(ch *amqp.Channel, topic string) error {
	_, err := ch.QueueDeclare(
		topic,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	return err
}

func (q *AMQPQueue) Publish(topic string, payload any) error {
	return q.publish(topic, payload, 0)
}

func (q *AMQPQueue) publish(topic string, payload any, retries int) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.declared[topic] {
		if err := declare(q.pub, topic); err != nil {
			return fmt.Errorf("declare queue %s: %w", topic, err)
		}
		q.declared[topic] = true
	}
	return q.pub.Publish("", topic, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Headers:      amqp.Table{retryHeader: int32(retries)},
		Body:         body,
	})
}

// Subscribe consumes topic on its own channel. A failed handler republishes
// the job with an incremented retry header until MaxRetries is reached.
func (q *AMQPQueue) Subscribe(topic string, handler func(payload any) error) error {
	ch, err := q.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	if err := declare(ch, topic); err != nil {
		ch.Close()
		return fmt.Errorf("declare queue %s: %w", topic, err)
	}
	msgs, err := ch.Consume(
		topic,
		"",
		false, // autoAck = false for reliability
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		return fmt.Errorf("register consumer: %w", err)
	}

	go func() {
		defer ch.Close()
		for d := range msgs {
			var payload any
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Println("⚠️ Invalid job:", err)
				d.Ack(false)
				continue
			}

			if err := handler(payload); err != nil {
				retries := retryCount(d.Headers)
				if retries < MaxRetries {
					if perr := q.publish(topic, payload, retries+1); perr != nil {
						log.Println("⚠️ Failed to requeue job:", perr)
						d.Nack(false, true)
						continue
					}
				} else {
					log.Printf("Job permanently failed after %d attempts: %v\n", MaxRetries, payload)
				}
			}
			d.Ack(false)
		}
	}()
	return nil
}

func retryCount(h amqp.Table) int {
	switch v := h[retryHeader].(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func (q *AMQPQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.pub != nil {
		q.pub.Close()
	}
	return q.conn.Close()
}
