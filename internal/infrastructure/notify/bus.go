package notify

import (
	"context"
	"sync"

	"github.com/resellhub/reseller-api/internal/application/ports"
	"github.com/resellhub/reseller-api/pkg/logger"
)

var _ ports.ChangePublisher = (*Bus)(nil)

// Bus emisor de eventos en proceso, usado cuando no hay Redis configurado.
// Cada suscriptor recibe por un canal con buffer; si el suscriptor no consume
// a tiempo, el evento se descarta (misma semántica sin-garantías que pub/sub).
type Bus struct {
	mu   sync.RWMutex
	subs []chan ports.ChangeEvent
	log  *logger.Logger
}

// NewBus construye el bus.
func NewBus(log *logger.Logger) *Bus {
	return &Bus{log: log.Component("bus")}
}

// Subscribe registra un suscriptor y devuelve su canal de eventos.
func (b *Bus) Subscribe() <-chan ports.ChangeEvent {
	ch := make(chan ports.ChangeEvent, 16)
	b.mu.Lock()
	b.subs = append(b.subs, ch)
	b.mu.Unlock()
	return ch
}

// Publish entrega el evento a todos los suscriptores sin bloquear.
func (b *Bus) Publish(_ context.Context, ev ports.ChangeEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			b.log.Warn().Str("type", ev.Type).Msg("suscriptor lento, evento descartado")
		}
	}
}
