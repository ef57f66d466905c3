// Package notify implementa los emisores de eventos de cambio: Redis pub/sub
// cuando hay broker configurado y un bus en proceso como alternativa.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/resellhub/reseller-api/internal/application/ports"
	"github.com/resellhub/reseller-api/pkg/config"
	"github.com/resellhub/reseller-api/pkg/logger"
)

var _ ports.ChangePublisher = (*RedisPublisher)(nil)

// RedisPublisher publica los eventos de cambio en un canal Redis pub/sub.
// La entrega es best-effort: un PUBLISH fallido se loguea y nada más.
type RedisPublisher struct {
	client  *redis.Client
	channel string
	log     *logger.Logger
}

// NewRedisPublisher conecta el cliente y verifica el broker con un ping corto.
func NewRedisPublisher(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) (*RedisPublisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &RedisPublisher{
		client:  client,
		channel: cfg.Channel,
		log:     log.Component("redis-publisher"),
	}, nil
}

// Publish serializa el evento y lo publica en el canal configurado.
func (p *RedisPublisher) Publish(ctx context.Context, ev ports.ChangeEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		p.log.Error().Err(err).Str("type", ev.Type).Msg("serializar evento")
		return
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		p.log.Warn().Err(err).Str("type", ev.Type).Msg("publicar evento")
	}
}

// Close cierra la conexión con el broker.
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
