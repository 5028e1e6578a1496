package handler

import (
	"encoding/json"
	"net/http"
	"zenith-bank/common"
	"zenith-bank/model"
	"zenith-bank/service"
)

type AdminHandler struct {
	statsService     *service.StatsService
	reconcileService *service.ReconciliationService
}

func NewAdminHandler(statsService *service.StatsService, reconcileService *service.ReconciliationService) *AdminHandler {
	return &AdminHandler{
		statsService:     statsService,
		reconcileService: reconcileService,
	}
}

// Stats godoc
// @Summary      System-wide aggregates
// @Description  Total users, total ledger entries and the total balance held across accounts (virtual cards excluded).
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  service.StatsOverview
// @Failure      403  {object}  common.AppError "Admin privileges required"
// @Failure      500  {object}  common.AppError "Internal server error"
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) *common.AppError {
	overview, err := h.statsService.Overview()
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not compute statistics", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(overview)
	return nil
}

// Reconcile godoc
// @Summary      Reconcile a store's balance
// @Description  Compares the cached balance of the store named by the query parameter against the sum of its ledger entries.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        store query string true "Composite store key, e.g. account_3 or card_7"
// @Success      200  {object}  service.ReconciliationReport
// @Failure      400  {object}  common.AppError "Invalid store key"
// @Failure      403  {object}  common.AppError "Admin privileges required"
// @Failure      404  {object}  common.AppError "Store not found"
// @Router       /api/admin/reconcile [get]
func (h *AdminHandler) Reconcile(w http.ResponseWriter, r *http.Request) *common.AppError {
	ref, err := model.ParseStoreRef(r.URL.Query().Get("store"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid store key", nil)
	}

	report, err := h.reconcileService.Check(ref)
	if err != nil {
		if err == service.ErrStoreNotFound {
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not reconcile store", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(report)
	return nil
}
