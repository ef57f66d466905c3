package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/resellhub/reseller-api/internal/application/dto"
	"github.com/resellhub/reseller-api/internal/application/usecase"
)

// ItemHandler maneja las peticiones HTTP de artículos.
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// List godoc
// @Summary      Listar artículos
// @Tags         items
// @Produce      json
// @Param        page         query  int     false  "Página"            default(1)
// @Param        limit        query  int     false  "Tamaño de página"  default(20)
// @Param        search       query  string  false  "Búsqueda en nombre, descripción, UPC y SKU"
// @Param        category     query  string  false  "ID de categoría"
// @Param        stockStatus  query  string  false  "low | normal | overstocked"
// @Param        sortBy       query  string  false  "name | cost | sale_price | profit_margin | quantity_in_stock | created_at"
// @Param        sortOrder    query  string  false  "asc | desc"
// @Success      200  {object}  dto.ItemListResponse
// @Failure      400  {object}  dto.ValidationErrorResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	var req dto.ListItemsRequest
	if !parseQuery(c, &req) {
		return nil
	}
	out, err := h.uc.List(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener artículo por ID
// @Tags         items
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "artículo no encontrado"})
	}
	return c.JSON(out)
}

// GetByUPC godoc
// @Summary      Buscar artículo por UPC exacto
// @Tags         items
// @Produce      json
// @Param        upc  path  string  true  "UPC"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/search/upc/{upc} [get]
func (h *ItemHandler) GetByUPC(c *fiber.Ctx) error {
	out, err := h.uc.GetByUPC(c.Context(), c.Params("upc"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "artículo no encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear artículo
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del artículo"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar artículo (parcial)
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del artículo"
// @Param        body  body  dto.UpdateItemRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar artículo (lógico)
// @Tags         items
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "artículo eliminado"})
}

// BulkUpdate godoc
// @Summary      Ajuste masivo de cantidades (todo o nada)
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkUpdateRequest  true  "Lote de ajustes"
// @Success      200   {array}   dto.BulkUpdateResult
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/bulk-update [post]
func (h *ItemHandler) BulkUpdate(c *fiber.Ctx) error {
	var in dto.BulkUpdateRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.BulkUpdate(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Alerta de artículos con stock bajo
// @Tags         items
// @Produce      json
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/items/alerts/low-stock [get]
func (h *ItemHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Overstocked godoc
// @Summary      Alerta de artículos sobrestockeados
// @Tags         items
// @Produce      json
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/items/alerts/overstocked [get]
func (h *ItemHandler) Overstocked(c *fiber.Ctx) error {
	out, err := h.uc.Overstocked(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
