package repository

import (
	"database/sql"
	"zenith-bank/logger"
	"zenith-bank/model"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ITransactionRepository defines the contract for ledger entry database
// operations. Entries are insert-only: there is no update or delete path.
type ITransactionRepository interface {
	CreateTransaction(tx *sql.Tx, transaction *model.Transaction) error
	GetTransactionsByUserID(userID int) ([]*model.Transaction, error)
	CountTransactions() (int, error)
	SumAmountsForStore(ref model.StoreRef) (decimal.Decimal, error)
}

type TransactionRepository struct {
	DB *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

func (r *TransactionRepository) CreateTransaction(tx *sql.Tx, transaction *model.Transaction) error {
	log := logger.Log.WithFields(logrus.Fields{
		"amount":           transaction.Amount,
		"transaction_type": transaction.TransactionType,
	})
	log.Info("Executing query to create a new ledger entry")

	query := `INSERT INTO transactions (amount, transaction_type, description, account_id, virtual_card_id)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	err := tx.QueryRow(query,
		transaction.Amount,
		transaction.TransactionType,
		transaction.Description,
		transaction.AccountID,
		transaction.VirtualCardID,
	).Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create ledger entry query")
		return err
	}
	return nil
}

// GetTransactionsByUserID retrieves every ledger entry referencing any of the
// user's stores, newest first. Ties on the timestamp keep insertion order.
func (r *TransactionRepository) GetTransactionsByUserID(userID int) ([]*model.Transaction, error) {
	log := logger.Log.WithField("user_id", userID)

	query := `
		SELECT id, amount, transaction_type, description, account_id, virtual_card_id, created_at
		FROM transactions
		WHERE account_id IN (SELECT id FROM accounts WHERE user_id = $1)
		   OR virtual_card_id IN (SELECT id FROM virtual_cards WHERE user_id = $1)
		ORDER BY created_at DESC, id ASC`

	rows, err := r.DB.Query(query, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for transactions by user ID")
		return nil, err
	}
	defer rows.Close()

	var transactions []*model.Transaction
	for rows.Next() {
		var t model.Transaction
		var accountID, cardID sql.NullInt64
		if err := rows.Scan(&t.ID, &t.Amount, &t.TransactionType, &t.Description, &accountID, &cardID, &t.CreatedAt); err != nil {
			log.WithError(err).Error("Failed to scan transaction row")
			return nil, err
		}
		if accountID.Valid {
			id := int(accountID.Int64)
			t.AccountID = &id
		}
		if cardID.Valid {
			id := int(cardID.Int64)
			t.VirtualCardID = &id
		}
		transactions = append(transactions, &t)
	}

	return transactions, rows.Err()
}

func (r *TransactionRepository) CountTransactions() (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM transactions`).Scan(&count)
	return count, err
}

// SumAmountsForStore derives a store's balance from its ledger entries. Used
// by the reconciliation check against the cached balance column.
func (r *TransactionRepository) SumAmountsForStore(ref model.StoreRef) (decimal.Decimal, error) {
	var query string
	switch ref.Kind {
	case model.StoreCard:
		query = `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE virtual_card_id = $1`
	default:
		query = `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE account_id = $1`
	}

	var total decimal.Decimal
	err := r.DB.QueryRow(query, ref.ID).Scan(&total)
	return total, err
}
