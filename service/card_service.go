package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"zenith-bank/logger"
	"zenith-bank/model"
	"zenith-bank/repository"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const uniqueViolation = "23505"

// CardService provisions virtual cards. A freshly issued card starts with a
// zero balance, so its cached balance and entry history agree immediately.
type CardService struct {
	cardRepo  repository.ICardRepository
	directory *DirectoryService
}

func NewCardService(cardRepo repository.ICardRepository, directory *DirectoryService) *CardService {
	return &CardService{
		cardRepo:  cardRepo,
		directory: directory,
	}
}

// IssueCard creates a new virtual card with a random 16-digit number and
// 3-digit CVV, retrying on a card number collision.
func (s *CardService) IssueCard(userID int) (*model.VirtualCard, error) {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Issuing new virtual card")

	for attempt := 0; attempt < 5; attempt++ {
		number, err := randomDigits(16)
		if err != nil {
			return nil, err
		}
		cvv, err := randomDigits(3)
		if err != nil {
			return nil, err
		}

		card := &model.VirtualCard{
			CardNumber: number,
			CVV:        cvv,
			Balance:    decimal.Zero,
			UserID:     userID,
		}

		err = s.cardRepo.CreateCard(card)
		if err == nil {
			s.directory.InvalidateStores(userID)
			log.WithField("card_id", card.ID).Info("Virtual card issued")
			return card, nil
		}

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			log.Warn("Card number collision, retrying")
			continue
		}
		return nil, err
	}

	return nil, errors.New("could not generate a unique card number")
}

func randomDigits(n int) (string, error) {
	digits := make([]byte, n)
	for i := range digits {
		d, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("could not generate random digit: %w", err)
		}
		digits[i] = byte('0' + d.Int64())
	}
	return string(digits), nil
}
