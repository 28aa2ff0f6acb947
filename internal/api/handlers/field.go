package handlers

import (
	"net/http"

	"github.com/lightdarktcg/companion/internal/api/response"
	"github.com/lightdarktcg/companion/internal/field"
)

// FieldHandler serves the play field reference content.
type FieldHandler struct{}

// NewFieldHandler creates a new FieldHandler.
func NewFieldHandler() *FieldHandler {
	return &FieldHandler{}
}

// GetZones returns every field zone in board order.
func (h *FieldHandler) GetZones(w http.ResponseWriter, r *http.Request) {
	response.Success(w, field.Zones())
}
