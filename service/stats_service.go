package service

import (
	"zenith-bank/repository"

	"github.com/shopspring/decimal"
)

// StatsOverview aggregates system-wide figures for the admin surface. The
// balance total covers accounts only; virtual card balances are excluded.
type StatsOverview struct {
	TotalUsers          int             `json:"users"`
	TotalTransactions   int             `json:"transactions"`
	TotalAccountBalance decimal.Decimal `json:"total_account_balance"`
}

type StatsService struct {
	userRepo        repository.IUserRepository
	transactionRepo repository.ITransactionRepository
	accountRepo     repository.IAccountRepository
}

func NewStatsService(userRepo repository.IUserRepository, transactionRepo repository.ITransactionRepository, accountRepo repository.IAccountRepository) *StatsService {
	return &StatsService{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

func (s *StatsService) Overview() (*StatsOverview, error) {
	users, err := s.userRepo.CountUsers()
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.CountTransactions()
	if err != nil {
		return nil, err
	}

	balance, err := s.accountRepo.SumAccountBalances()
	if err != nil {
		return nil, err
	}

	return &StatsOverview{
		TotalUsers:          users,
		TotalTransactions:   transactions,
		TotalAccountBalance: balance,
	}, nil
}
