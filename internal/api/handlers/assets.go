package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/api/middleware"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/api/request"
	apperrors "github.com/nwtracker/Net-Worth-Tracker-Backend/internal/errors"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/model"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/service"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/validation"
)

// AssetHandler handles asset-hierarchy HTTP requests
type AssetHandler struct {
	assetService *service.AssetService
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(assetService *service.AssetService) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

// Tree handles GET /api/assets/tree
func (h *AssetHandler) Tree(w http.ResponseWriter, r *http.Request) {
	hierarchy, err := h.assetService.GetHierarchy(middleware.UserID(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve asset tree", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, hierarchy.Classes)
}

// CreateClass handles POST /api/assets/classes
func (h *AssetHandler) CreateClass(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAssetClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateAssetClass(req); err != nil {
		respondError(w, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	class, err := h.assetService.CreateAssetClass(middleware.UserID(r), req.Name, req.DisplayOrder)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create asset class", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, class)
}

// CreateInstrument handles POST /api/assets/instruments
func (h *AssetHandler) CreateInstrument(w http.ResponseWriter, r *http.Request) {
	var req request.CreateInstrumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateInstrument(req); err != nil {
		respondError(w, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	instrument, err := h.assetService.CreateInstrument(req.AssetClassID, req.Name, req.DisplayOrder)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create instrument", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, instrument)
}

// CreateProvider handles POST /api/assets/providers
func (h *AssetHandler) CreateProvider(w http.ResponseWriter, r *http.Request) {
	var req request.CreateProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateProvider(req); err != nil {
		respondError(w, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	provider, err := h.assetService.CreateProvider(req.InstrumentID, req.Name, req.DisplayOrder)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create provider", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, provider)
}

// CreateAsset handles POST /api/assets
func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateAsset(req); err != nil {
		respondError(w, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	asset, err := h.assetService.CreateAsset(req.ProviderID, req.Name, req.IsLiquid, req.Currency, req.DisplayOrder)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create asset", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, asset)
}

// UpdateAsset handles PUT /api/assets/{assetId}
func (h *AssetHandler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "assetId")
	if err := validation.ValidateUUID(assetID); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid asset ID", err.Error())
		return
	}

	var req request.UpdateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	userID := middleware.UserID(r)

	// Load current state, overlay provided fields
	hierarchy, err := h.assetService.GetHierarchy(userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve asset", err.Error())
		return
	}

	var current *model.Asset
	for i := range hierarchy.Assets {
		if hierarchy.Assets[i].ID == assetID {
			current = &hierarchy.Assets[i]
			break
		}
	}
	if current == nil {
		respondError(w, http.StatusNotFound, "Asset not found", assetID)
		return
	}

	updated := *current
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.IsLiquid != nil {
		updated.IsLiquid = *req.IsLiquid
	}
	if req.Currency != nil {
		updated.Currency = *req.Currency
	}
	if req.DisplayOrder != nil {
		updated.DisplayOrder = *req.DisplayOrder
	}

	result, err := h.assetService.UpdateAsset(userID, updated)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) {
			respondError(w, http.StatusNotFound, "Asset not found", assetID)
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to update asset", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// DeleteAsset handles DELETE /api/assets/{assetId}
func (h *AssetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "assetId")
	if err := validation.ValidateUUID(assetID); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid asset ID", err.Error())
		return
	}

	if err := h.assetService.DeleteAsset(middleware.UserID(r), assetID); err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) {
			respondError(w, http.StatusNotFound, "Asset not found", assetID)
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to delete asset", err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// DeleteClass handles DELETE /api/assets/classes/{classId}
func (h *AssetHandler) DeleteClass(w http.ResponseWriter, r *http.Request) {
	classID := chi.URLParam(r, "classId")
	if err := validation.ValidateUUID(classID); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid asset class ID", err.Error())
		return
	}

	if err := h.assetService.DeleteAssetClass(middleware.UserID(r), classID); err != nil {
		if errors.Is(err, apperrors.ErrAssetClassNotFound) {
			respondError(w, http.StatusNotFound, "Asset class not found", classID)
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to delete asset class", err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
