package handler

import (
	"errors"
	"net/http"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation and rating.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests. An empty body uses
// the defaults.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if r.ContentLength != 0 {
		if !decodeJSON(w, r, &req) {
			return
		}
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleStrength handles POST /api/v1/strength requests.
func (h *GeneratorHandler) HandleStrength(w http.ResponseWriter, r *http.Request) {
	var req model.StrengthRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, h.service.Strength(req))
}

func isValidationError(err error) bool {
	return errors.Is(err, service.ErrLengthOutOfRange) ||
		errors.Is(err, service.ErrNoCharacterTypes)
}
