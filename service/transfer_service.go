package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"zenith-bank/config"
	"zenith-bank/logger"
	"zenith-bank/model"
	"zenith-bank/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidAmount         = errors.New("transfer amount must be a positive value with at most two decimal places")
	ErrUnknownTarget         = errors.New("target user not found")
	ErrUnknownSource         = errors.New("source store not found")
	ErrNotOwner              = errors.New("you can only move money from your own store")
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrNoDestinationAccount  = errors.New("target user has no account to receive funds")
	ErrSelfTransfer          = errors.New("cannot transfer money to yourself")
	ErrTransferLimitExceeded = errors.New("transaction limit exceeded")
	ErrAccountNotFound       = errors.New("account not found")
)

// TransferService moves value between monetary stores. Every successful
// transfer produces exactly two ledger entries whose amounts sum to zero.
type TransferService struct {
	db              *sql.DB
	userRepo        repository.IUserRepository
	accountRepo     repository.IAccountRepository
	directory       *DirectoryService
	transactionRepo repository.ITransactionRepository
}

func NewTransferService(db *sql.DB, userRepo repository.IUserRepository, accountRepo repository.IAccountRepository, directory *DirectoryService, transactionRepo repository.ITransactionRepository) *TransferService {
	return &TransferService{
		db:              db,
		userRepo:        userRepo,
		accountRepo:     accountRepo,
		directory:       directory,
		transactionRepo: transactionRepo,
	}
}

// Transfer debits the initiator's source store and credits the target user's
// primary account. Both balance updates and both ledger entries commit as one
// transaction; any failure after validation leaves no partial state behind.
func (s *TransferService) Transfer(ctx context.Context, userID int, req model.TransferRequest) (*model.Transaction, *model.Transaction, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":         userID,
		"source":          req.Source,
		"target_username": req.TargetUsername,
	})
	log.Info("Starting money transfer process")

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, nil, err
	}

	sourceRef, err := model.ParseStoreRef(req.Source)
	if err != nil {
		return nil, nil, ErrUnknownSource
	}

	initiator, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("could not resolve initiator: %w", err)
	}

	target, err := s.userRepo.GetUserByUsername(req.TargetUsername)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, ErrUnknownTarget
		}
		return nil, nil, err
	}

	if target.ID == initiator.ID && !config.AppConfig.Bank.AllowSelfTransfer {
		return nil, nil, ErrSelfTransfer
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	source, err := s.directory.ResolveForUpdate(tx, sourceRef)
	if err != nil {
		if err == ErrStoreNotFound {
			return nil, nil, ErrUnknownSource
		}
		return nil, nil, err
	}
	if source.UserID != initiator.ID {
		log.Warn("Transfer attempted from a store the initiator does not own")
		return nil, nil, ErrNotOwner
	}
	if source.Balance.LessThan(amount) {
		return nil, nil, ErrInsufficientFunds
	}

	dest, err := s.accountRepo.GetPrimaryAccountForUpdate(tx, target.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, ErrNoDestinationAccount
		}
		return nil, nil, err
	}

	// A self-transfer into the source account nets to zero, so the cached
	// balance must not move.
	sameStore := sourceRef.Kind == model.StoreAccount && sourceRef.ID == dest.ID
	if !sameStore {
		if err := s.directory.SetBalance(tx, sourceRef, source.Balance.Sub(amount)); err != nil {
			return nil, nil, fmt.Errorf("could not update sender balance: %w", err)
		}
		if err := s.accountRepo.UpdateAccountBalance(tx, dest.ID, dest.Balance.Add(amount)); err != nil {
			return nil, nil, fmt.Errorf("could not update receiver balance: %w", err)
		}
	}

	txOut := &model.Transaction{
		Amount:          amount.Neg(),
		TransactionType: model.TypeTransferOut,
		Description:     fmt.Sprintf("Sent to %s", target.Username),
	}
	attachStoreRef(txOut, sourceRef)

	txIn := &model.Transaction{
		Amount:          amount,
		TransactionType: model.TypeTransferIn,
		Description:     fmt.Sprintf("Received from %s", initiator.Username),
	}
	attachStoreRef(txIn, model.StoreRef{Kind: model.StoreAccount, ID: dest.ID})

	if err := s.transactionRepo.CreateTransaction(tx, txOut); err != nil {
		return nil, nil, fmt.Errorf("could not create outgoing ledger entry: %w", err)
	}
	if err := s.transactionRepo.CreateTransaction(tx, txIn); err != nil {
		return nil, nil, fmt.Errorf("could not create incoming ledger entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("could not commit transaction: %w", err)
	}

	log.WithField("amount", amount).Info("Transfer completed successfully")
	return txOut, txIn, nil
}

// APITransfer is the bounded machine-to-machine variant: a debit-only
// operation on the caller's primary account with a fixed per-transaction
// ceiling. It never resolves or credits a destination.
func (s *TransferService) APITransfer(ctx context.Context, userID int, amountStr string) (*model.Transaction, error) {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Starting API transfer")

	amount, err := parseAmount(amountStr)
	if err != nil {
		return nil, err
	}
	if amount.GreaterThan(apiTransferLimit()) {
		return nil, ErrTransferLimitExceeded
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	account, err := s.accountRepo.GetPrimaryAccountForUpdate(tx, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	if account.Balance.LessThan(amount) {
		return nil, ErrInsufficientFunds
	}

	if err := s.accountRepo.UpdateAccountBalance(tx, account.ID, account.Balance.Sub(amount)); err != nil {
		return nil, fmt.Errorf("could not update account balance: %w", err)
	}

	entry := &model.Transaction{
		Amount:          amount.Neg(),
		TransactionType: model.TypeAPITransfer,
		Description:     "API Transfer",
	}
	attachStoreRef(entry, model.StoreRef{Kind: model.StoreAccount, ID: account.ID})

	if err := s.transactionRepo.CreateTransaction(tx, entry); err != nil {
		return nil, fmt.Errorf("could not create ledger entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit transaction: %w", err)
	}

	log.WithField("amount", amount).Info("API transfer completed successfully")
	return entry, nil
}

// attachStoreRef points a ledger entry at the store it changes.
func attachStoreRef(t *model.Transaction, ref model.StoreRef) {
	id := ref.ID
	switch ref.Kind {
	case model.StoreCard:
		t.VirtualCardID = &id
	default:
		t.AccountID = &id
	}
}

func apiTransferLimit() decimal.Decimal {
	if limit, err := decimal.NewFromString(config.AppConfig.Bank.APITransferLimit); err == nil && limit.IsPositive() {
		return limit
	}
	return decimal.NewFromInt(5000)
}
