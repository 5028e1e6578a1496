package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan records that a disbursement occurred. There is no repayment linkage.
type Loan struct {
	ID        int             `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	UserID    int             `json:"user_id"`
	CreatedAt time.Time       `json:"created_at"`
}
