package repository

import (
	"database/sql"
	"zenith-bank/logger"
	"zenith-bank/model"

	"github.com/shopspring/decimal"
)

// ICardRepository defines the contract for virtual card database operations.
type ICardRepository interface {
	CreateCard(card *model.VirtualCard) error
	GetCardByID(id int) (*model.VirtualCard, error)
	GetCardsByUserID(userID int) ([]*model.VirtualCard, error)
	GetCardForUpdate(tx *sql.Tx, cardID int) (*model.VirtualCard, error)
	UpdateCardBalance(tx *sql.Tx, cardID int, newBalance decimal.Decimal) error
}

type CardRepository struct {
	DB *sql.DB
}

func NewCardRepository(db *sql.DB) *CardRepository {
	return &CardRepository{DB: db}
}

func (r *CardRepository) CreateCard(card *model.VirtualCard) error {
	log := logger.Log.WithField("user_id", card.UserID)
	log.Info("Executing query to create a new virtual card")

	query := `INSERT INTO virtual_cards (card_number, cvv, balance, user_id) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	err := r.DB.QueryRow(query, card.CardNumber, card.CVV, card.Balance, card.UserID).Scan(&card.ID, &card.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create virtual card query")
		return err
	}
	return nil
}

func (r *CardRepository) GetCardByID(id int) (*model.VirtualCard, error) {
	card := &model.VirtualCard{}
	query := `SELECT id, card_number, cvv, balance, user_id, created_at FROM virtual_cards WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&card.ID, &card.CardNumber, &card.CVV, &card.Balance, &card.UserID, &card.CreatedAt)
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (r *CardRepository) GetCardsByUserID(userID int) ([]*model.VirtualCard, error) {
	log := logger.Log.WithField("user_id", userID)

	query := `SELECT id, card_number, cvv, balance, user_id, created_at FROM virtual_cards WHERE user_id = $1 ORDER BY id`
	rows, err := r.DB.Query(query, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for cards by user ID")
		return nil, err
	}
	defer rows.Close()

	var cards []*model.VirtualCard
	for rows.Next() {
		var card model.VirtualCard
		if err := rows.Scan(&card.ID, &card.CardNumber, &card.CVV, &card.Balance, &card.UserID, &card.CreatedAt); err != nil {
			log.WithError(err).Error("Failed to scan virtual card row")
			return nil, err
		}
		cards = append(cards, &card)
	}
	return cards, rows.Err()
}

// GetCardForUpdate locks the card row for the duration of the enclosing
// transaction.
func (r *CardRepository) GetCardForUpdate(tx *sql.Tx, cardID int) (*model.VirtualCard, error) {
	log := logger.Log.WithField("card_id", cardID)

	card := &model.VirtualCard{}
	query := `SELECT id, card_number, balance, user_id FROM virtual_cards WHERE id = $1 FOR UPDATE`
	err := tx.QueryRow(query, cardID).Scan(&card.ID, &card.CardNumber, &card.Balance, &card.UserID)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Info("Virtual card not found for update")
		} else {
			log.WithError(err).Error("Failed to execute get card for update query")
		}
		return nil, err
	}
	return card, nil
}

func (r *CardRepository) UpdateCardBalance(tx *sql.Tx, cardID int, newBalance decimal.Decimal) error {
	query := `UPDATE virtual_cards SET balance = $1 WHERE id = $2`
	_, err := tx.Exec(query, newBalance, cardID)
	if err != nil {
		logger.Log.WithField("card_id", cardID).WithError(err).Error("Failed to execute update card balance query")
		return err
	}
	return nil
}
