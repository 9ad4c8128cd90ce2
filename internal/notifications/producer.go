package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ticketly/internal/bookings"

	"github.com/IBM/sarama"
)

// BookingCreated is the message published for every committed booking.
type BookingCreated struct {
	BookingID     string    `json:"booking_id"`
	EventID       string    `json:"event_id"`
	Section       string    `json:"section"`
	Row           string    `json:"row"`
	Quantity      int       `json:"quantity"`
	SeatNumbers   []int     `json:"seat_numbers"`
	GroupDiscount bool      `json:"group_discount"`
	BookedAt      time.Time `json:"booked_at"`
}

// ProducerConfig contains configuration for the Kafka booking producer
type ProducerConfig struct {
	Brokers  []string
	Topic    string
	RetryMax int
	Timeout  time.Duration
}

// DefaultProducerConfig returns a default producer configuration
func DefaultProducerConfig() *ProducerConfig {
	return &ProducerConfig{
		Brokers:  []string{"localhost:9092"},
		Topic:    "booking-events",
		RetryMax: 3,
		Timeout:  10 * time.Second,
	}
}

// KafkaProducer publishes booking events to Kafka. It implements
// bookings.Notifier.
type KafkaProducer struct {
	producer sarama.SyncProducer
	config   *ProducerConfig
}

// NewKafkaProducer creates a new Kafka booking-event producer
func NewKafkaProducer(config *ProducerConfig) (*KafkaProducer, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = config.Timeout
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1

	// Hash partitioner keeps every event's bookings on one partition, so
	// downstream consumers see them in commit order.
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &KafkaProducer{
		producer: producer,
		config:   config,
	}, nil
}

// PublishBookingCreated publishes a booking.created message keyed by event id.
func (p *KafkaProducer) PublishBookingCreated(ctx context.Context, booking *bookings.Booking) error {
	msg := BookingCreated{
		BookingID:     booking.ID.String(),
		EventID:       booking.EventID.String(),
		Section:       booking.Section,
		Row:           booking.Row,
		Quantity:      booking.Quantity,
		SeatNumbers:   booking.SeatNumbers,
		GroupDiscount: booking.GroupDiscount,
		BookedAt:      booking.CreatedAt,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.config.Topic,
		Key:   sarama.StringEncoder(msg.EventID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("type"), Value: []byte("booking.created")},
		},
		Timestamp: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to publish booking event: %w", err)
	}
	return nil
}

// Close shuts down the underlying producer
func (p *KafkaProducer) Close() error {
	return p.producer.Close()
}
