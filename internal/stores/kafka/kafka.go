package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"storefront-service/pkg/logkey"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Producer publishes catalog events. A nil Producer is valid and drops
// every publish, so the service runs without Kafka configured.
type Producer struct {
	client *kgo.Client
}

func NewProducer(brokers []string) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("no kafka brokers provided")
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(Topic),
	)
	if err != nil {
		return nil, fmt.Errorf("creating kafka producer: %w", err)
	}
	return &Producer{client: client}, nil
}

// PublishCatalogEvent sends the event to the catalog topic. Best effort from
// the caller's point of view: admin mutations succeed regardless.
func (p *Producer) PublishCatalogEvent(ctx context.Context, ev CatalogEvent) error {
	if p == nil {
		return nil
	}
	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshaling catalog event: %w", err)
	}
	record := &kgo.Record{Topic: Topic, Key: []byte(ev.Collection), Value: value}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("producing catalog event: %w", err)
	}
	return nil
}

func (p *Producer) Close() {
	if p != nil {
		p.client.Close()
	}
}

// Consumer reads catalog events as part of a consumer group.
type Consumer struct {
	client *kgo.Client
}

func NewConsumer(brokers []string, group string) (*Consumer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("no kafka brokers provided")
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ConsumerGroup(group),
		kgo.ConsumeTopics(Topic),
	)
	if err != nil {
		return nil, fmt.Errorf("creating kafka consumer: %w", err)
	}
	return &Consumer{client: client}, nil
}

// Events polls the topic and delivers decoded events on the returned channel
// until ctx is canceled. Undecodable records are logged and skipped.
func (c *Consumer) Events(ctx context.Context) <-chan CatalogEvent {
	out := make(chan CatalogEvent)
	go func() {
		defer close(out)
		for {
			fetches := c.client.PollFetches(ctx)
			if errs := fetches.Errors(); len(errs) > 0 {
				for _, fe := range errs {
					if errors.Is(fe.Err, context.Canceled) {
						return
					}
					slog.Error("kafka fetch error",
						slog.String("Topic", fe.Topic), slog.String(logkey.ERROR, fe.Err.Error()))
				}
			}
			fetches.EachRecord(func(record *kgo.Record) {
				var ev CatalogEvent
				if err := json.Unmarshal(record.Value, &ev); err != nil {
					slog.Error("undecodable catalog event", slog.String(logkey.ERROR, err.Error()))
					return
				}
				select {
				case out <- ev:
				case <-ctx.Done():
				}
			})
			if ctx.Err() != nil {
				return
			}
		}
	}()
	return out
}

func (c *Consumer) Close() {
	if c != nil {
		c.client.Close()
	}
}
