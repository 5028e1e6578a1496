package repository

import (
	"regexp"
	"testing"
	"time"
	"zenith-bank/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionRepository_CreateTransaction(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewTransactionRepository(db)
	accountID := 3

	dbMock.ExpectBegin()
	dbMock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transactions (amount, transaction_type, description, account_id, virtual_card_id)`)).
		WithArgs(decimal.RequireFromString("-100.75"), model.TypeTransferOut, "Sent to bob", &accountID, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(55, time.Now()))
	dbMock.ExpectCommit()

	tx, err := db.Begin()
	assert.NoError(t, err)

	entry := &model.Transaction{
		Amount:          decimal.RequireFromString("-100.75"),
		TransactionType: model.TypeTransferOut,
		Description:     "Sent to bob",
		AccountID:       &accountID,
	}
	assert.NoError(t, repo.CreateTransaction(tx, entry))
	assert.Equal(t, 55, entry.ID)
	assert.NoError(t, tx.Commit())
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestTransactionRepository_GetTransactionsByUserID(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewTransactionRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "amount", "transaction_type", "description", "account_id", "virtual_card_id", "created_at"}).
		AddRow(9, "-50.00", "Transfer Out", "Sent to bob", 3, nil, now).
		AddRow(7, "25.00", "Transfer In", "Received from carol", nil, 4, now.Add(-time.Hour)).
		AddRow(1, "1000.00", "General", "Opening balance", 3, nil, now.Add(-24*time.Hour))

	dbMock.ExpectQuery(`SELECT id, amount, transaction_type, description, account_id, virtual_card_id, created_at`).
		WithArgs(1).
		WillReturnRows(rows)

	entries, err := repo.GetTransactionsByUserID(1)

	assert.NoError(t, err)
	assert.Len(t, entries, 3)

	// Rows arrive newest first and must be preserved in that order.
	assert.Equal(t, 9, entries[0].ID)
	assert.Equal(t, 7, entries[1].ID)
	assert.Equal(t, 1, entries[2].ID)

	// Nullable store columns map to the matching pointer field only.
	assert.Equal(t, 3, *entries[0].AccountID)
	assert.Nil(t, entries[0].VirtualCardID)
	assert.Nil(t, entries[1].AccountID)
	assert.Equal(t, 4, *entries[1].VirtualCardID)

	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestTransactionRepository_SumAmountsForStore(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewTransactionRepository(db)

	t.Run("sums account entries", func(t *testing.T) {
		dbMock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE account_id = $1`)).
			WithArgs(3).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("949.25"))

		total, err := repo.SumAmountsForStore(model.StoreRef{Kind: model.StoreAccount, ID: 3})

		assert.NoError(t, err)
		assert.True(t, total.Equal(decimal.RequireFromString("949.25")))
	})

	t.Run("sums card entries", func(t *testing.T) {
		dbMock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE virtual_card_id = $1`)).
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("0"))

		total, err := repo.SumAmountsForStore(model.StoreRef{Kind: model.StoreCard, ID: 7})

		assert.NoError(t, err)
		assert.True(t, total.IsZero())
	})

	assert.NoError(t, dbMock.ExpectationsWereMet())
}
