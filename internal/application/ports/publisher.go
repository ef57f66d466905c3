// Package ports declara los puertos de salida de la capa de aplicación.
package ports

import "context"

// Tipos de evento del tópico "inventory".
const (
	EventItemCreated = "item-created"
	EventItemUpdated = "item-updated"
	EventItemDeleted = "item-deleted"
	EventBulkUpdate  = "bulk-update"
)

// ChangeEvent notificación de cambio publicada tras una mutación exitosa.
type ChangeEvent struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// ChangePublisher publica eventos al tópico lógico "inventory".
//
// La publicación es best-effort y posterior al commit: sin garantía de
// entrega, sin persistencia ni replay; un suscriptor desconectado pierde los
// eventos emitidos en su ausencia. Un fallo al publicar jamás revierte ni
// falla la mutación que lo originó (las implementaciones solo lo loguean).
type ChangePublisher interface {
	Publish(ctx context.Context, ev ChangeEvent)
}
