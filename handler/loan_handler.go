package handler

import (
	"encoding/json"
	"net/http"
	"zenith-bank/common"
	"zenith-bank/model"
	"zenith-bank/service"
)

type LoanHandler struct {
	service *service.LoanService
}

func NewLoanHandler(s *service.LoanService) *LoanHandler {
	return &LoanHandler{service: s}
}

// Disburse godoc
// @Summary      Disburse a loan
// @Description  Credits one of the caller's stores with the requested amount and records the loan. One-shot disbursement, no repayment schedule.
// @Tags         loans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        loan body model.LoanRequest true "Target store key and amount"
// @Success      201  {object}  model.Loan
// @Failure      400  {object}  common.AppError "Invalid amount"
// @Failure      401  {object}  common.AppError "Unauthorized"
// @Failure      403  {object}  common.AppError "Target store not owned by caller"
// @Failure      404  {object}  common.AppError "Target store not found"
// @Failure      500  {object}  common.AppError "Internal server error while disbursing loan"
// @Router       /api/loans [post]
func (h *LoanHandler) Disburse(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoanRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	_, loan, err := h.service.Disburse(r.Context(), userID, req)
	if err != nil {
		switch err {
		case service.ErrInvalidAmount:
			return common.NewAppError(http.StatusBadRequest, err.Error(), nil)
		case service.ErrStoreNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		case service.ErrNotOwner:
			return common.NewAppError(http.StatusForbidden, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not process loan", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(loan)
	return nil
}
