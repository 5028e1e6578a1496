package service

import (
	"context"
	"database/sql"
	"sync"
	"time"
	"zenith-bank/model"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// Shared testify mocks for the repository interfaces used across the service
// tests.

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) CreateUser(tx *sql.Tx, user *model.User) error {
	args := m.Called(tx, user)
	return args.Error(0)
}
func (m *MockUserRepository) GetUserByUsername(username string) (*model.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *MockUserRepository) GetUserByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *MockUserRepository) GetUserByID(id int) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *MockUserRepository) CountUsers() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) CreateAccount(tx *sql.Tx, account *model.Account) error {
	args := m.Called(tx, account)
	return args.Error(0)
}
func (m *MockAccountRepository) GetAccountByID(id int) (*model.Account, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}
func (m *MockAccountRepository) GetAccountsByUserID(userID int) ([]*model.Account, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Account), args.Error(1)
}
func (m *MockAccountRepository) GetAccountForUpdate(tx *sql.Tx, accountID int) (*model.Account, error) {
	args := m.Called(tx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}
func (m *MockAccountRepository) GetPrimaryAccountForUpdate(tx *sql.Tx, userID int) (*model.Account, error) {
	args := m.Called(tx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}
func (m *MockAccountRepository) UpdateAccountBalance(tx *sql.Tx, accountID int, newBalance decimal.Decimal) error {
	args := m.Called(tx, accountID, newBalance)
	return args.Error(0)
}
func (m *MockAccountRepository) SumAccountBalances() (decimal.Decimal, error) {
	args := m.Called()
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type MockCardRepository struct{ mock.Mock }

func (m *MockCardRepository) CreateCard(card *model.VirtualCard) error {
	args := m.Called(card)
	return args.Error(0)
}
func (m *MockCardRepository) GetCardByID(id int) (*model.VirtualCard, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VirtualCard), args.Error(1)
}
func (m *MockCardRepository) GetCardsByUserID(userID int) ([]*model.VirtualCard, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.VirtualCard), args.Error(1)
}
func (m *MockCardRepository) GetCardForUpdate(tx *sql.Tx, cardID int) (*model.VirtualCard, error) {
	args := m.Called(tx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VirtualCard), args.Error(1)
}
func (m *MockCardRepository) UpdateCardBalance(tx *sql.Tx, cardID int, newBalance decimal.Decimal) error {
	args := m.Called(tx, cardID, newBalance)
	return args.Error(0)
}

type MockTransactionRepository struct{ mock.Mock }

func (m *MockTransactionRepository) CreateTransaction(tx *sql.Tx, transaction *model.Transaction) error {
	args := m.Called(tx, transaction)
	return args.Error(0)
}
func (m *MockTransactionRepository) GetTransactionsByUserID(userID int) ([]*model.Transaction, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Transaction), args.Error(1)
}
func (m *MockTransactionRepository) CountTransactions() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}
func (m *MockTransactionRepository) SumAmountsForStore(ref model.StoreRef) (decimal.Decimal, error) {
	args := m.Called(ref)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type MockLoanRepository struct{ mock.Mock }

func (m *MockLoanRepository) CreateLoan(tx *sql.Tx, loan *model.Loan) error {
	args := m.Called(tx, loan)
	return args.Error(0)
}
func (m *MockLoanRepository) GetLoansByUserID(userID int) ([]*model.Loan, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Loan), args.Error(1)
}

type MockTokenRepository struct{ mock.Mock }

func (m *MockTokenRepository) Create(token *model.RefreshToken) error {
	args := m.Called(token)
	return args.Error(0)
}
func (m *MockTokenRepository) GetByTokenHash(tokenHash string) (*model.RefreshToken, error) {
	args := m.Called(tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RefreshToken), args.Error(1)
}
func (m *MockTokenRepository) DeleteByUserID(userID int) error {
	args := m.Called(userID)
	return args.Error(0)
}

// fakeCache is an in-memory ICacheClient for tests.
type fakeCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

func (c *fakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.data[key]; ok {
		cmd.SetVal(v)
	} else {
		cmd.SetErr(redis.Nil)
	}
	return cmd
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		c.data[key] = string(v)
	case string:
		c.data[key] = v
	}
	return redis.NewStatusCmd(ctx)
}

func (c *fakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return redis.NewIntCmd(ctx)
}

// decimalEq matches a decimal argument by value rather than representation.
func decimalEq(want decimal.Decimal) interface{} {
	return mock.MatchedBy(func(got decimal.Decimal) bool {
		return got.Equal(want)
	})
}
