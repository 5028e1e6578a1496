package handler

import (
	"encoding/json"
	"net/http"
	"zenith-bank/common"
	"zenith-bank/service"
)

// StoreHandler serves the caller's monetary stores (accounts and virtual
// cards) and card provisioning.
type StoreHandler struct {
	directory   *service.DirectoryService
	cardService *service.CardService
}

func NewStoreHandler(directory *service.DirectoryService, cardService *service.CardService) *StoreHandler {
	return &StoreHandler{
		directory:   directory,
		cardService: cardService,
	}
}

// ListStores godoc
// @Summary      List the caller's monetary stores
// @Description  Returns the authenticated user's accounts and virtual cards.
// @Tags         stores
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  service.StoreList
// @Failure      401  {object}  common.AppError "Unauthorized"
// @Failure      500  {object}  common.AppError "Internal server error"
// @Router       /api/stores [get]
func (h *StoreHandler) ListStores(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	stores, err := h.directory.ListStoresForUser(userID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve stores", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(stores)
	return nil
}

// IssueCard godoc
// @Summary      Issue a virtual card
// @Description  Provisions a new virtual card with a unique number and zero balance for the authenticated user.
// @Tags         stores
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  model.VirtualCard
// @Failure      401  {object}  common.AppError "Unauthorized"
// @Failure      500  {object}  common.AppError "Internal server error"
// @Router       /api/cards [post]
func (h *StoreHandler) IssueCard(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	card, err := h.cardService.IssueCard(userID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not issue card", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(card)
	return nil
}
