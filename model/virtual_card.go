package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type VirtualCard struct {
	ID         int             `json:"id"`
	CardNumber string          `json:"card_number"`
	CVV        string          `json:"-"`
	Balance    decimal.Decimal `json:"balance"`
	UserID     int             `json:"user_id"`
	CreatedAt  time.Time       `json:"created_at"`
}
