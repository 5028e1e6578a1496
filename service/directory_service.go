package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"zenith-bank/model"
	"zenith-bank/repository"

	"github.com/shopspring/decimal"
)

var ErrStoreNotFound = errors.New("monetary store not found")

// StoreList groups every monetary store a user owns.
type StoreList struct {
	Accounts []*model.Account     `json:"accounts"`
	Cards    []*model.VirtualCard `json:"cards"`
}

// StoreView is the resolved state of a single monetary store, independent of
// which variant backs it.
type StoreView struct {
	Ref     model.StoreRef  `json:"ref"`
	Balance decimal.Decimal `json:"balance"`
	UserID  int             `json:"user_id"`
}

// DirectoryService resolves typed store references to concrete stores. The
// account and card id namespaces are independent, so resolution always
// dispatches on the reference kind.
type DirectoryService struct {
	accountRepo repository.IAccountRepository
	cardRepo    repository.ICardRepository
	cache       ICacheClient
}

func NewDirectoryService(accountRepo repository.IAccountRepository, cardRepo repository.ICardRepository, cache ICacheClient) *DirectoryService {
	return &DirectoryService{
		accountRepo: accountRepo,
		cardRepo:    cardRepo,
		cache:       cache,
	}
}

// Resolve looks up a store outside any transaction.
func (s *DirectoryService) Resolve(ref model.StoreRef) (*StoreView, error) {
	switch ref.Kind {
	case model.StoreCard:
		card, err := s.cardRepo.GetCardByID(ref.ID)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, ErrStoreNotFound
			}
			return nil, err
		}
		return &StoreView{Ref: ref, Balance: card.Balance, UserID: card.UserID}, nil
	default:
		account, err := s.accountRepo.GetAccountByID(ref.ID)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, ErrStoreNotFound
			}
			return nil, err
		}
		return &StoreView{Ref: ref, Balance: account.Balance, UserID: account.UserID}, nil
	}
}

// ResolveForUpdate locks the referenced store row inside the caller's
// transaction, so the balance read stays valid until commit.
func (s *DirectoryService) ResolveForUpdate(tx *sql.Tx, ref model.StoreRef) (*StoreView, error) {
	switch ref.Kind {
	case model.StoreCard:
		card, err := s.cardRepo.GetCardForUpdate(tx, ref.ID)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, ErrStoreNotFound
			}
			return nil, err
		}
		return &StoreView{Ref: ref, Balance: card.Balance, UserID: card.UserID}, nil
	default:
		account, err := s.accountRepo.GetAccountForUpdate(tx, ref.ID)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, ErrStoreNotFound
			}
			return nil, err
		}
		return &StoreView{Ref: ref, Balance: account.Balance, UserID: account.UserID}, nil
	}
}

// SetBalance writes the new cached balance for a store inside the caller's
// transaction.
func (s *DirectoryService) SetBalance(tx *sql.Tx, ref model.StoreRef, balance decimal.Decimal) error {
	switch ref.Kind {
	case model.StoreCard:
		return s.cardRepo.UpdateCardBalance(tx, ref.ID, balance)
	default:
		return s.accountRepo.UpdateAccountBalance(tx, ref.ID, balance)
	}
}

// ListStoresForUser lists a user's accounts and cards, utilizing a
// cache-aside strategy.
func (s *DirectoryService) ListStoresForUser(userID int) (*StoreList, error) {
	cacheKey := fmt.Sprintf("stores:%d", userID)
	ctx := context.Background()

	if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
		var list StoreList
		if err := json.Unmarshal([]byte(cached), &list); err == nil {
			return &list, nil
		}
	}

	accounts, err := s.accountRepo.GetAccountsByUserID(userID)
	if err != nil {
		return nil, err
	}
	cards, err := s.cardRepo.GetCardsByUserID(userID)
	if err != nil {
		return nil, err
	}

	list := &StoreList{Accounts: accounts, Cards: cards}
	if data, err := json.Marshal(list); err == nil {
		s.cache.Set(ctx, cacheKey, data, 10*time.Minute)
	}

	return list, nil
}

// InvalidateStores drops the cached store listing for a user. Called after a
// new store is provisioned.
func (s *DirectoryService) InvalidateStores(userID int) {
	cacheKey := fmt.Sprintf("stores:%d", userID)
	s.cache.Del(context.Background(), cacheKey)
}
