package service

import (
	"context"
	"zenith-bank/model"
	"zenith-bank/repository"
)

// HistoryService is the read-only view over a user's ledger entries.
type HistoryService struct {
	transactionRepo repository.ITransactionRepository
}

func NewHistoryService(transactionRepo repository.ITransactionRepository) *HistoryService {
	return &HistoryService{transactionRepo: transactionRepo}
}

// ListForUser returns every ledger entry referencing any of the user's
// stores, newest first. Pure read, no side effects.
func (s *HistoryService) ListForUser(ctx context.Context, userID int) ([]*model.Transaction, error) {
	return s.transactionRepo.GetTransactionsByUserID(userID)
}
