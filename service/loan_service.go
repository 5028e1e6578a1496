package service

import (
	"context"
	"database/sql"
	"fmt"
	"zenith-bank/logger"
	"zenith-bank/model"
	"zenith-bank/repository"

	"github.com/sirupsen/logrus"
)

// LoanService disburses one-shot loans into a borrower's store. There is no
// credit-limit check, collateral, or interest: a disbursement credits the
// store, writes one ledger entry, and records the loan.
type LoanService struct {
	db              *sql.DB
	directory       *DirectoryService
	transactionRepo repository.ITransactionRepository
	loanRepo        repository.ILoanRepository
}

func NewLoanService(db *sql.DB, directory *DirectoryService, transactionRepo repository.ITransactionRepository, loanRepo repository.ILoanRepository) *LoanService {
	return &LoanService{
		db:              db,
		directory:       directory,
		transactionRepo: transactionRepo,
		loanRepo:        loanRepo,
	}
}

// Disburse credits the target store, inserts a "Loan Disbursed" ledger entry
// and a loan record, all inside one transaction.
func (s *LoanService) Disburse(ctx context.Context, userID int, req model.LoanRequest) (*model.Transaction, *model.Loan, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id": userID,
		"target":  req.Target,
	})
	log.Info("Starting loan disbursement")

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, nil, err
	}

	targetRef, err := model.ParseStoreRef(req.Target)
	if err != nil {
		return nil, nil, ErrStoreNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	target, err := s.directory.ResolveForUpdate(tx, targetRef)
	if err != nil {
		return nil, nil, err
	}
	if target.UserID != userID {
		log.Warn("Loan disbursement attempted into a store the borrower does not own")
		return nil, nil, ErrNotOwner
	}

	if err := s.directory.SetBalance(tx, targetRef, target.Balance.Add(amount)); err != nil {
		return nil, nil, fmt.Errorf("could not credit target store: %w", err)
	}

	entry := &model.Transaction{
		Amount:          amount,
		TransactionType: model.TypeLoanDisbursed,
		Description:     "System Loan",
	}
	attachStoreRef(entry, targetRef)

	if err := s.transactionRepo.CreateTransaction(tx, entry); err != nil {
		return nil, nil, fmt.Errorf("could not create ledger entry: %w", err)
	}

	loan := &model.Loan{
		Amount: amount,
		UserID: userID,
	}
	if err := s.loanRepo.CreateLoan(tx, loan); err != nil {
		return nil, nil, fmt.Errorf("could not create loan record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("could not commit transaction: %w", err)
	}

	log.WithField("amount", amount).Info("Loan disbursed successfully")
	return entry, loan, nil
}
