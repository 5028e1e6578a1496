package service

import (
	"database/sql"
	"errors"
	"fmt"
	"zenith-bank/config"
	"zenith-bank/logger"
	"zenith-bank/model"
	"zenith-bank/repository"

	"github.com/shopspring/decimal"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already registered")
	ErrWeakPassword  = errors.New("password must be at least 6 characters")
)

// UserService handles registration and other user-related business logic.
type UserService struct {
	db              *sql.DB
	userRepo        repository.IUserRepository
	accountRepo     repository.IAccountRepository
	transactionRepo repository.ITransactionRepository
	authService     *AuthService
}

func NewUserService(db *sql.DB, userRepo repository.IUserRepository, accountRepo repository.IAccountRepository, transactionRepo repository.ITransactionRepository, authService *AuthService) *UserService {
	return &UserService{
		db:              db,
		userRepo:        userRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		authService:     authService,
	}
}

// Register creates a user together with an opening account in one
// transaction. The opening balance is recorded as a ledger entry so the
// account reconciles against its entry history from the very first row.
func (s *UserService) Register(req model.RegisterRequest) (*model.User, error) {
	log := logger.Log.WithField("username", req.Username)
	log.Info("Registering new user")

	if len(req.Password) < 6 {
		return nil, ErrWeakPassword
	}

	if _, err := s.userRepo.GetUserByUsername(req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if err != sql.ErrNoRows {
		return nil, err
	}

	if _, err := s.userRepo.GetUserByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if err != sql.ErrNoRows {
		return nil, err
	}

	hashedPassword, err := s.authService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
	}
	if err := s.userRepo.CreateUser(tx, user); err != nil {
		return nil, fmt.Errorf("could not create user: %w", err)
	}

	opening := openingBalance()
	account := &model.Account{
		Balance: opening,
		UserID:  user.ID,
	}
	if err := s.accountRepo.CreateAccount(tx, account); err != nil {
		return nil, fmt.Errorf("could not create opening account: %w", err)
	}

	if opening.IsPositive() {
		entry := &model.Transaction{
			Amount:          opening,
			TransactionType: model.TypeGeneral,
			Description:     "Opening balance",
		}
		attachStoreRef(entry, model.StoreRef{Kind: model.StoreAccount, ID: account.ID})
		if err := s.transactionRepo.CreateTransaction(tx, entry); err != nil {
			return nil, fmt.Errorf("could not record opening balance: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit transaction: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User registered successfully")
	return user, nil
}

func openingBalance() decimal.Decimal {
	if opening, err := decimal.NewFromString(config.AppConfig.Bank.OpeningBalance); err == nil && !opening.IsNegative() {
		return opening
	}
	return decimal.NewFromInt(1000)
}
