package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID        int             `json:"id"`
	Balance   decimal.Decimal `json:"balance"`
	UserID    int             `json:"user_id"`
	CreatedAt time.Time       `json:"created_at"`
}
