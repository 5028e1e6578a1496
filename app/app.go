package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"zenith-bank/config"
	"zenith-bank/db"
	"zenith-bank/handler"
	"zenith-bank/logger"
	"zenith-bank/repository"
	"zenith-bank/router"
	"zenith-bank/service"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.WithField("bank", config.AppConfig.Bank.Name).Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Log.Fatalf("Error applying migrations: %v", err)
	}

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to Redis: %v", err)
	}
	defer redisClient.Close()

	// Repositories.
	userRepo := repository.NewUserRepository(database)
	accountRepo := repository.NewAccountRepository(database)
	cardRepo := repository.NewCardRepository(database)
	transactionRepo := repository.NewTransactionRepository(database)
	loanRepo := repository.NewLoanRepository(database)
	tokenRepo := repository.NewTokenRepository(database)

	// Services.
	directory := service.NewDirectoryService(accountRepo, cardRepo, redisClient)
	authService := service.NewAuthService(userRepo, tokenRepo)
	userService := service.NewUserService(database, userRepo, accountRepo, transactionRepo, authService)
	transferService := service.NewTransferService(database, userRepo, accountRepo, directory, transactionRepo)
	loanService := service.NewLoanService(database, directory, transactionRepo, loanRepo)
	cardService := service.NewCardService(cardRepo, directory)
	historyService := service.NewHistoryService(transactionRepo)
	statsService := service.NewStatsService(userRepo, transactionRepo, accountRepo)
	reconcileService := service.NewReconciliationService(directory, transactionRepo)
	loginLimiter := service.NewLoginLimiter(5, time.Minute)

	// Handlers.
	userHandler := handler.NewUserHandler(userService, authService, loginLimiter)
	storeHandler := handler.NewStoreHandler(directory, cardService)
	transferHandler := handler.NewTransferHandler(transferService)
	loanHandler := handler.NewLoanHandler(loanService)
	historyHandler := handler.NewHistoryHandler(historyService)
	adminHandler := handler.NewAdminHandler(statsService, reconcileService)

	r := router.NewRouter(userHandler, storeHandler, transferHandler, loanHandler, historyHandler, adminHandler)

	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
