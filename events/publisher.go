package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Notifier matches services.Notifier.
type Notifier interface {
	Notify(topic string, payload any)
}

// Fanout forwards every event to each of its notifiers.
type Fanout []Notifier

func (f Fanout) Notify(topic string, payload any) {
	for _, n := range f {
		if n != nil {
			n.Notify(topic, payload)
		}
	}
}

type envelope struct {
	Topic      string    `json:"topic"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

// AMQPPublisher publishes events on a topic exchange, routing key = topic.
// Publishing runs on its own goroutine; when the buffer is full events are
// dropped and logged.
type AMQPPublisher struct {
	Exchange string

	url     string
	conn    *amqp.Connection // owned by run once started
	ch      *amqp.Channel
	queue   chan envelope
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	p := &AMQPPublisher{
		Exchange: exchange,
		url:      url,
		queue:    make(chan envelope, 256),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	if err := p.connect(); err != nil {
		return nil, err
	}
	go p.run()
	return p, nil
}

func (p *AMQPPublisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("amqp channel: %w", err)
	}
	if err := ch.ExchangeDeclare(
		p.Exchange, // name
		"topic",    // type
		true,       // durable
		false,      // auto-deleted
		false,      // internal
		false,      // no-wait
		nil,        // args
	); err != nil {
		conn.Close()
		return fmt.Errorf("amqp exchange declare: %w", err)
	}
	p.conn, p.ch = conn, ch
	return nil
}

func (p *AMQPPublisher) Notify(topic string, payload any) {
	select {
	case <-p.done:
		return
	default:
	}
	select {
	case p.queue <- envelope{Topic: topic, OccurredAt: time.Now().UTC(), Payload: payload}:
	default:
		log.Printf("⚠️ amqp buffer full, dropping %s", topic)
	}
}

func (p *AMQPPublisher) run() {
	defer close(p.stopped)
	for {
		select {
		case <-p.done:
			p.teardown()
			return
		case ev := <-p.queue:
			if err := p.publish(ev); err != nil {
				log.Printf("❌ amqp publish %s: %v", ev.Topic, err)
				if p.conn == nil || p.conn.IsClosed() {
					if err := p.connect(); err != nil {
						log.Printf("❌ amqp reconnect: %v", err)
					}
				}
			}
		}
	}
}

func (p *AMQPPublisher) publish(ev envelope) error {
	if p.ch == nil {
		return amqp.ErrClosed
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return p.ch.PublishWithContext(ctx,
		p.Exchange, // exchange
		ev.Topic,   // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    ev.OccurredAt,
			Body:         body,
		},
	)
}

func (p *AMQPPublisher) teardown() {
	if p.ch != nil {
		p.ch.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	p.ch, p.conn = nil, nil
}

// Close stops the publishing goroutine and waits for it to release the
// connection. Queued events not yet sent are dropped.
func (p *AMQPPublisher) Close() {
	p.once.Do(func() {
		close(p.done)
		if p.stopped != nil {
			<-p.stopped
		} else {
			p.teardown()
		}
	})
}
