// Package mirror shares weekly records between bot instances through Redis.
//
// Every record is stored under its week key and announced on a pub/sub
// channel. Instances ignore their own announcements.
package mirror

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/entity"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RedisMirror struct {
	client  *redis.Client
	prefix  string
	source  string
	metrics contract.MetricsCollector
	log     *zap.Logger
}

var _ contract.RecordMirror = (*RedisMirror)(nil)

type envelope struct {
	Source string               `json:"source"`
	Record *entity.WeeklyRecord `json:"record"`
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// New creates a mirror whose keys and channel live under prefix
func New(client *redis.Client, prefix string, metrics contract.MetricsCollector, log *zap.Logger) *RedisMirror {
	return &RedisMirror{
		client:  client,
		prefix:  prefix,
		source:  uuid.NewString(),
		metrics: metrics,
		log:     log.Named("mirror"),
	}
}

func (m *RedisMirror) recordKey(weekKey string) string {
	return m.prefix + ":week:" + weekKey
}

func (m *RedisMirror) channel() string {
	return m.prefix + ":weeks"
}

func (m *RedisMirror) Ping(ctx context.Context) error {
	return m.client.Ping(ctx).Err()
}

// Publish stores the record and announces it to the other instances
func (m *RedisMirror) Publish(ctx context.Context, record *entity.WeeklyRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal weekly record: %w", err)
	}

	message, err := json.Marshal(envelope{Source: m.source, Record: record})
	if err != nil {
		return fmt.Errorf("failed to marshal record announcement: %w", err)
	}

	_, err = m.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, m.recordKey(record.WeekKey), data, 0)
		pipe.Publish(ctx, m.channel(), message)
		return nil
	})
	if err != nil {
		m.metrics.RecordMirror("publish", "error")
		return fmt.Errorf("failed to publish weekly record: %w", err)
	}

	m.metrics.RecordMirror("publish", "ok")
	return nil
}

// Fetch returns the mirrored record of weekKey, or nil when there is none
func (m *RedisMirror) Fetch(ctx context.Context, weekKey string) (*entity.WeeklyRecord, error) {
	data, err := m.client.Get(ctx, m.recordKey(weekKey)).Bytes()
	if err == redis.Nil {
		m.metrics.RecordMirror("fetch", "ok")
		return nil, nil
	}
	if err != nil {
		m.metrics.RecordMirror("fetch", "error")
		return nil, fmt.Errorf("failed to fetch weekly record: %w", err)
	}

	record := &entity.WeeklyRecord{}
	if err := json.Unmarshal(data, record); err != nil {
		m.metrics.RecordMirror("fetch", "error")
		return nil, fmt.Errorf("failed to unmarshal weekly record: %w", err)
	}
	if record.Completed == nil {
		record.Completed = map[string]bool{}
	}

	m.metrics.RecordMirror("fetch", "ok")
	return record, nil
}

// Subscribe calls fn for every record published by another instance until
// ctx is done
func (m *RedisMirror) Subscribe(ctx context.Context, fn func(record *entity.WeeklyRecord)) error {
	pubsub := m.client.Subscribe(ctx, m.channel())
	defer pubsub.Close()

	// wait for the subscription to be confirmed
	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", m.channel(), err)
	}

	m.log.Info("subscribed to weekly records", zap.String("channel", m.channel()))
	messages := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}

			var env envelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil || env.Record == nil {
				m.metrics.RecordMirror("receive", "error")
				m.log.Warn("ignoring malformed record announcement", zap.Error(err))
				continue
			}
			if env.Source == m.source {
				continue
			}
			if env.Record.Completed == nil {
				env.Record.Completed = map[string]bool{}
			}

			m.metrics.RecordMirror("receive", "ok")
			fn(env.Record)
		}
	}
}
