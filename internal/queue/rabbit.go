package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"talentscreen/internal/errors"
)

// RabbitConfig holds the broker connection settings.
type RabbitConfig struct {
	URL            string
	Queue          string
	PrefetchCount  int
	PublishTimeout time.Duration
}

// RabbitBroker implements Broker on a durable RabbitMQ queue with manual
// acknowledgements, so unacked items are redelivered after a worker crash.
type RabbitBroker struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	cfg     RabbitConfig
	logger  *errors.Logger
}

var _ Broker = (*RabbitBroker)(nil)

// NewRabbitBroker dials the broker and declares the durable work queue.
func NewRabbitBroker(cfg RabbitConfig, logger *errors.Logger) (*RabbitBroker, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errors.NewQueueError(errors.ErrCodeBrokerUnavailable,
			"failed to connect to broker", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errors.NewQueueError(errors.ErrCodeBrokerUnavailable,
			"failed to open broker channel", err)
	}

	if _, err := ch.QueueDeclare(
		cfg.Queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errors.NewQueueError(errors.ErrCodeBrokerUnavailable,
			"failed to declare work queue", err).WithContext("queue", cfg.Queue)
	}

	if cfg.PrefetchCount > 0 {
		if err := ch.Qos(cfg.PrefetchCount, 0, false); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, errors.NewQueueError(errors.ErrCodeBrokerUnavailable,
				"failed to set channel prefetch", err)
		}
	}

	logger.Info("Connected to broker",
		"queue", cfg.Queue,
		"prefetch", cfg.PrefetchCount)

	return &RabbitBroker{conn: conn, channel: ch, cfg: cfg, logger: logger}, nil
}

// Publish enqueues one work item as a persistent JSON message.
func (b *RabbitBroker) Publish(ctx context.Context, item WorkItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(item)
	if err != nil {
		return errors.NewQueueError(errors.ErrCodePublishFailed,
			"failed to encode work item", err)
	}

	timeout := b.cfg.PublishTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err = b.channel.PublishWithContext(
		ctx,
		"",          // default exchange
		b.cfg.Queue, // routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return errors.NewQueueError(errors.ErrCodePublishFailed,
			"failed to publish work item", err).
			WithContext("kind", string(item.Kind)).
			WithContext("job_id", item.JobID)
	}
	return nil
}

// Consume registers a manual-ack consumer and adapts broker deliveries to
// queue.Delivery values. The returned channel closes when the context is
// canceled or the broker connection drops.
func (b *RabbitBroker) Consume(ctx context.Context) (<-chan Delivery, error) {
	msgs, err := b.channel.Consume(
		b.cfg.Queue,
		"",    // consumer tag
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, errors.NewQueueError(errors.ErrCodeBrokerUnavailable,
			"failed to register consumer", err).WithContext("queue", b.cfg.Queue)
	}

	out := make(chan Delivery)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var item WorkItem
				if err := json.Unmarshal(msg.Body, &item); err != nil {
					// Poison message: drop it, redelivery cannot fix a bad body.
					b.logger.LogError(err, "Dropping undecodable work item",
						"body_bytes", len(msg.Body))
					_ = msg.Ack(false)
					continue
				}
				d := Delivery{
					Item:    item,
					ack:     func() error { return msg.Ack(false) },
					requeue: func() error { return msg.Nack(false, true) },
				}
				select {
				case out <- d:
				case <-ctx.Done():
					_ = msg.Nack(false, true)
					return
				}
			}
		}
	}()

	return out, nil
}

// Close releases the channel and connection.
func (b *RabbitBroker) Close() error {
	if err := b.channel.Close(); err != nil {
		_ = b.conn.Close()
		return err
	}
	return b.conn.Close()
}
