package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tags a ledger entry with the operation that produced it.
type TransactionType string

const (
	TypeTransferOut   TransactionType = "Transfer Out"
	TypeTransferIn    TransactionType = "Transfer In"
	TypeLoanDisbursed TransactionType = "Loan Disbursed"
	TypeAPITransfer   TransactionType = "API Transfer"
	TypeGeneral       TransactionType = "General"
)

// Transaction is an immutable ledger entry recording a single signed balance
// change against one store. The amount is never zero, and a row references
// either an account or a virtual card, not both.
type Transaction struct {
	ID              int             `json:"id"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType TransactionType `json:"transaction_type"`
	Description     string          `json:"description"`
	AccountID       *int            `json:"account_id,omitempty"`
	VirtualCardID   *int            `json:"virtual_card_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
