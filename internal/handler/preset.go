package handler

import (
	"errors"
	"net/http"

	"github.com/passforge/passforge-go/internal/middleware"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

// PresetHandler handles HTTP requests for saved generator settings.
type PresetHandler struct {
	service *service.PresetService
}

// NewPresetHandler creates a new PresetHandler.
func NewPresetHandler(svc *service.PresetService) *PresetHandler {
	return &PresetHandler{service: svc}
}

// HandleList handles GET /api/v1/presets requests.
func (h *PresetHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	presets, err := h.service.List(r.Context(), userID)
	if err != nil {
		writePresetError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, presets)
}

// HandleCreate handles POST /api/v1/presets requests.
func (h *PresetHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.PresetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		writePresetError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleUpdate handles PUT /api/v1/presets/{id} requests.
func (h *PresetHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	var req model.PresetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Update(r.Context(), userID, id, req)
	if err != nil {
		writePresetError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /api/v1/presets/{id} requests.
func (h *PresetHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		writePresetError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleGenerate handles POST /api/v1/presets/{id}/generate requests.
func (h *PresetHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	resp, err := h.service.Generate(r.Context(), userID, id)
	if err != nil {
		writePresetError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writePresetError(w http.ResponseWriter, err error) {
	switch {
	case service.IsPresetValidationError(err):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrPresetNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrPresetNameTaken):
		writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}
