package handler

import (
	"encoding/json"
	"net/http"
	"zenith-bank/common"
	"zenith-bank/service"
)

type HistoryHandler struct {
	service *service.HistoryService
}

func NewHistoryHandler(s *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{service: s}
}

// ListHistory godoc
// @Summary      List transaction history
// @Description  Returns every ledger entry touching any of the caller's stores, newest first.
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   model.Transaction
// @Failure      401  {object}  common.AppError "Unauthorized"
// @Failure      500  {object}  common.AppError "Internal server error"
// @Router       /api/history [get]
func (h *HistoryHandler) ListHistory(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	transactions, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve history", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(transactions)
	return nil
}
