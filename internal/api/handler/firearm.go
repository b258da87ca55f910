package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/gungle/gungle/internal/api/request"
	"github.com/gungle/gungle/internal/api/response"
	"github.com/gungle/gungle/internal/model"
	"github.com/gungle/gungle/internal/services/catalog"
)

// FirearmHandler handles catalog CRUD endpoints
type FirearmHandler struct {
	catalogService *catalog.Service
}

// NewFirearmHandler creates a new firearm handler
func NewFirearmHandler(catalogService *catalog.Service) *FirearmHandler {
	return &FirearmHandler{catalogService: catalogService}
}

// List handles GET /api/v1/firearms
func (h *FirearmHandler) List(w http.ResponseWriter, r *http.Request) {
	firearms, err := h.catalogService.ListFirearms(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := make([]response.Firearm, len(firearms))
	for i, f := range firearms {
		resp[i] = response.FirearmFromModel(f)
	}
	response.JSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/firearms/{id}
func (h *FirearmHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.FirearmID(mux.Vars(r)["id"])

	firearm, err := h.catalogService.GetFirearm(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FirearmFromModel(firearm))
}

// Create handles POST /api/v1/firearms
func (h *FirearmHandler) Create(w http.ResponseWriter, r *http.Request) {
	firearm, err := decodeFirearm(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.catalogService.AddFirearm(r.Context(), firearm); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.FirearmFromModel(firearm))
}

// Update handles PUT /api/v1/firearms/{id}
func (h *FirearmHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.FirearmID(mux.Vars(r)["id"])

	firearm, err := decodeFirearm(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.catalogService.UpdateFirearm(r.Context(), id, firearm); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FirearmFromModel(firearm))
}

// Delete handles DELETE /api/v1/firearms/{id}
func (h *FirearmHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.FirearmID(mux.Vars(r)["id"])

	if err := h.catalogService.DeleteFirearm(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// decodeFirearm parses and validates a firearm payload
func decodeFirearm(r *http.Request) (*model.Firearm, error) {
	var req request.Firearm
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, NewInvalidRequestError("invalid request body")
	}

	if strings.TrimSpace(req.ID) == "" {
		return nil, NewInvalidRequestError("id is required")
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, NewInvalidRequestError("name is required")
	}

	return &model.Firearm{
		ID:              model.FirearmID(req.ID),
		Name:            req.Name,
		Manufacturer:    req.Manufacturer,
		Type:            model.FirearmType(req.Type),
		Caliber:         req.Caliber,
		CountryOfOrigin: req.CountryOfOrigin,
		ModelType:       model.ModelType(req.ModelType),
		YearIntroduced:  req.YearIntroduced,
		ActionType:      model.ActionType(req.ActionType),
		Description:     req.Description,
		ImageURL:        req.ImageURL,
	}, nil
}
