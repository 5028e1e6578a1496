package repository

import (
	"database/sql"
	"zenith-bank/logger"
	"zenith-bank/model"
)

// ILoanRepository defines the contract for loan database operations.
type ILoanRepository interface {
	CreateLoan(tx *sql.Tx, loan *model.Loan) error
	GetLoansByUserID(userID int) ([]*model.Loan, error)
}

type LoanRepository struct {
	DB *sql.DB
}

func NewLoanRepository(db *sql.DB) *LoanRepository {
	return &LoanRepository{DB: db}
}

func (r *LoanRepository) CreateLoan(tx *sql.Tx, loan *model.Loan) error {
	log := logger.Log.WithField("user_id", loan.UserID)
	log.Info("Executing query to create a new loan record")

	query := `INSERT INTO loans (amount, user_id) VALUES ($1, $2) RETURNING id, created_at`
	err := tx.QueryRow(query, loan.Amount, loan.UserID).Scan(&loan.ID, &loan.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create loan query")
		return err
	}
	return nil
}

func (r *LoanRepository) GetLoansByUserID(userID int) ([]*model.Loan, error) {
	query := `SELECT id, amount, user_id, created_at FROM loans WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.DB.Query(query, userID)
	if err != nil {
		logger.Log.WithField("user_id", userID).WithError(err).Error("Failed to execute query for loans by user ID")
		return nil, err
	}
	defer rows.Close()

	var loans []*model.Loan
	for rows.Next() {
		var loan model.Loan
		if err := rows.Scan(&loan.ID, &loan.Amount, &loan.UserID, &loan.CreatedAt); err != nil {
			return nil, err
		}
		loans = append(loans, &loan)
	}
	return loans, rows.Err()
}
