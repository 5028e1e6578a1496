package service

import (
	"zenith-bank/logger"
	"zenith-bank/model"
	"zenith-bank/repository"

	"github.com/shopspring/decimal"
)

// ReconciliationReport compares a store's cached balance column against the
// balance derived from its ledger entries.
type ReconciliationReport struct {
	Store          string          `json:"store"`
	CachedBalance  decimal.Decimal `json:"cached_balance"`
	DerivedBalance decimal.Decimal `json:"derived_balance"`
	Consistent     bool            `json:"consistent"`
}

// ReconciliationService is an on-demand consistency check. Ledger entries are
// the source of truth; the cached balance column can only drift from them
// through a bug, so any mismatch is worth an operator's attention.
type ReconciliationService struct {
	directory       *DirectoryService
	transactionRepo repository.ITransactionRepository
}

func NewReconciliationService(directory *DirectoryService, transactionRepo repository.ITransactionRepository) *ReconciliationService {
	return &ReconciliationService{
		directory:       directory,
		transactionRepo: transactionRepo,
	}
}

// Check resolves the store and reports whether its cached balance equals the
// sum of its ledger entries.
func (s *ReconciliationService) Check(ref model.StoreRef) (*ReconciliationReport, error) {
	store, err := s.directory.Resolve(ref)
	if err != nil {
		return nil, err
	}

	derived, err := s.transactionRepo.SumAmountsForStore(ref)
	if err != nil {
		return nil, err
	}

	report := &ReconciliationReport{
		Store:          ref.String(),
		CachedBalance:  store.Balance,
		DerivedBalance: derived,
		Consistent:     store.Balance.Equal(derived),
	}

	if !report.Consistent {
		logger.Log.WithField("store", report.Store).Warn("Cached balance does not match ledger entries")
	}

	return report, nil
}
