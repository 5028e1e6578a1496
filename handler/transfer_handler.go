package handler

import (
	"encoding/json"
	"net/http"
	"zenith-bank/common"
	"zenith-bank/model"
	"zenith-bank/service"
)

// TransferHandler holds dependencies for transfer-related handlers.
type TransferHandler struct {
	service *service.TransferService
}

func NewTransferHandler(s *service.TransferService) *TransferHandler {
	return &TransferHandler{service: s}
}

// CreateTransfer godoc
// @Summary      Transfer money to another user
// @Description  Debits one of the caller's stores and credits the target user's primary account. Produces two balanced ledger entries.
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        transfer body model.TransferRequest true "Source store key, target username and amount"
// @Success      201  {array}   model.Transaction
// @Failure      400  {object}  common.AppError "Invalid amount, insufficient funds, self transfer"
// @Failure      401  {object}  common.AppError "Unauthorized"
// @Failure      403  {object}  common.AppError "Source store not owned by caller"
// @Failure      404  {object}  common.AppError "Target user or source store not found"
// @Failure      500  {object}  common.AppError "Internal server error while processing transfer"
// @Router       /api/transfers [post]
func (h *TransferHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.TransferRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	txOut, txIn, err := h.service.Transfer(r.Context(), userID, req)
	if err != nil {
		switch err {
		case service.ErrUnknownTarget, service.ErrUnknownSource, service.ErrNoDestinationAccount:
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		case service.ErrNotOwner:
			return common.NewAppError(http.StatusForbidden, err.Error(), err)
		case service.ErrInvalidAmount, service.ErrInsufficientFunds, service.ErrSelfTransfer:
			return common.NewAppError(http.StatusBadRequest, err.Error(), nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not process transfer", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode([]*model.Transaction{txOut, txIn})
	return nil
}

// APITransfer godoc
// @Summary      Bounded API transfer
// @Description  Debit-only operation on the caller's primary account with a fixed per-transaction ceiling.
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        transfer body model.APITransferRequest true "Amount to debit"
// @Success      200  {object}  model.Transaction
// @Failure      400  {object}  common.AppError "Invalid amount, limit exceeded, insufficient funds"
// @Failure      401  {object}  common.AppError "Unauthorized"
// @Failure      404  {object}  common.AppError "Caller has no account"
// @Failure      500  {object}  common.AppError "Internal server error while processing transfer"
// @Router       /api/transfer [post]
func (h *TransferHandler) APITransfer(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.APITransferRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	entry, err := h.service.APITransfer(r.Context(), userID, req.Amount)
	if err != nil {
		switch err {
		case service.ErrInvalidAmount, service.ErrTransferLimitExceeded, service.ErrInsufficientFunds:
			return common.NewAppError(http.StatusBadRequest, err.Error(), nil)
		case service.ErrAccountNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not process transfer", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(entry)
	return nil
}
