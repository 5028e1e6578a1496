package repository

import (
	"database/sql"
	"zenith-bank/logger"
	"zenith-bank/model"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// IAccountRepository defines the contract for account database operations.
type IAccountRepository interface {
	CreateAccount(tx *sql.Tx, account *model.Account) error
	GetAccountByID(id int) (*model.Account, error)
	GetAccountsByUserID(userID int) ([]*model.Account, error)
	GetAccountForUpdate(tx *sql.Tx, accountID int) (*model.Account, error)
	GetPrimaryAccountForUpdate(tx *sql.Tx, userID int) (*model.Account, error)
	UpdateAccountBalance(tx *sql.Tx, accountID int, newBalance decimal.Decimal) error
	SumAccountBalances() (decimal.Decimal, error)
}

type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

// CreateAccount adds a new account inside the caller's transaction.
func (r *AccountRepository) CreateAccount(tx *sql.Tx, account *model.Account) error {
	log := logger.Log.WithField("user_id", account.UserID)
	log.Info("Executing query to create a new account")

	query := `INSERT INTO accounts (balance, user_id) VALUES ($1, $2) RETURNING id, created_at`
	err := tx.QueryRow(query, account.Balance, account.UserID).Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create account query")
		return err
	}
	return nil
}

func (r *AccountRepository) GetAccountByID(id int) (*model.Account, error) {
	account := &model.Account{}
	query := `SELECT id, balance, user_id, created_at FROM accounts WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&account.ID, &account.Balance, &account.UserID, &account.CreatedAt)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// GetAccountsByUserID retrieves all accounts for a specific user.
func (r *AccountRepository) GetAccountsByUserID(userID int) ([]*model.Account, error) {
	log := logger.Log.WithField("user_id", userID)

	query := `SELECT id, balance, user_id, created_at FROM accounts WHERE user_id = $1 ORDER BY id`
	rows, err := r.DB.Query(query, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for accounts by user ID")
		return nil, err
	}
	defer rows.Close()

	var accounts []*model.Account
	for rows.Next() {
		var acc model.Account
		if err := rows.Scan(&acc.ID, &acc.Balance, &acc.UserID, &acc.CreatedAt); err != nil {
			log.WithError(err).Error("Failed to scan account row")
			return nil, err
		}
		accounts = append(accounts, &acc)
	}
	return accounts, rows.Err()
}

// GetAccountForUpdate locks the account row for the duration of the enclosing
// transaction so concurrent transfers cannot race past the balance check.
func (r *AccountRepository) GetAccountForUpdate(tx *sql.Tx, accountID int) (*model.Account, error) {
	log := logger.Log.WithField("account_id", accountID)

	account := &model.Account{}
	query := `SELECT id, balance, user_id FROM accounts WHERE id = $1 FOR UPDATE`
	err := tx.QueryRow(query, accountID).Scan(&account.ID, &account.Balance, &account.UserID)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Info("Account not found for update")
		} else {
			log.WithError(err).Error("Failed to execute get account for update query")
		}
		return nil, err
	}
	return account, nil
}

// GetPrimaryAccountForUpdate locks the user's first account, which is the
// default credit target for incoming transfers.
func (r *AccountRepository) GetPrimaryAccountForUpdate(tx *sql.Tx, userID int) (*model.Account, error) {
	log := logger.Log.WithField("user_id", userID)

	account := &model.Account{}
	query := `SELECT id, balance, user_id FROM accounts WHERE user_id = $1 ORDER BY id LIMIT 1 FOR UPDATE`
	err := tx.QueryRow(query, userID).Scan(&account.ID, &account.Balance, &account.UserID)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Info("User has no account to receive funds")
		} else {
			log.WithError(err).Error("Failed to execute get primary account for update query")
		}
		return nil, err
	}
	return account, nil
}

func (r *AccountRepository) UpdateAccountBalance(tx *sql.Tx, accountID int, newBalance decimal.Decimal) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id":  accountID,
		"new_balance": newBalance,
	})

	query := `UPDATE accounts SET balance = $1 WHERE id = $2`
	_, err := tx.Exec(query, newBalance, accountID)
	if err != nil {
		log.WithError(err).Error("Failed to execute update account balance query")
		return err
	}
	return nil
}

// SumAccountBalances totals the cached balance across all accounts. Virtual
// card balances are intentionally excluded from this aggregate.
func (r *AccountRepository) SumAccountBalances() (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.DB.QueryRow(`SELECT COALESCE(SUM(balance), 0) FROM accounts`).Scan(&total)
	return total, err
}
