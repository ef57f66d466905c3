package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/resellhub/reseller-api/internal/application/ports"
	"github.com/resellhub/reseller-api/pkg/logger"
)

func testBus() *Bus {
	return NewBus(logger.New(logger.Config{Env: "production", Level: "error"}))
}

func TestBus_EntregaATodosLosSuscriptores(t *testing.T) {
	b := testBus()
	s1 := b.Subscribe()
	s2 := b.Subscribe()

	b.Publish(context.Background(), ports.ChangeEvent{Type: ports.EventItemCreated})

	require.Len(t, s1, 1)
	require.Len(t, s2, 1)
	assert.Equal(t, ports.EventItemCreated, (<-s1).Type)
	assert.Equal(t, ports.EventItemCreated, (<-s2).Type)
}

// Un suscriptor con el buffer lleno no bloquea la publicación: los eventos
// excedentes se descartan.
func TestBus_SuscriptorLentoNoBloquea(t *testing.T) {
	b := testBus()
	slow := b.Subscribe()

	for i := 0; i < 20; i++ {
		b.Publish(context.Background(), ports.ChangeEvent{Type: ports.EventItemUpdated})
	}

	assert.Equal(t, 16, len(slow), "solo caben los 16 del buffer; el resto se descarta")
}

func TestBus_SinSuscriptoresNoFalla(t *testing.T) {
	b := testBus()
	assert.NotPanics(t, func() {
		b.Publish(context.Background(), ports.ChangeEvent{Type: ports.EventItemDeleted})
	})
}
