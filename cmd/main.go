package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	accountapp "github.com/abmshq/abms-backend/application/account"
	authapp "github.com/abmshq/abms-backend/application/auth"
	constructionapp "github.com/abmshq/abms-backend/application/construction"
	expenseapp "github.com/abmshq/abms-backend/application/expense"
	fundapp "github.com/abmshq/abms-backend/application/fund"
	parkingcardapp "github.com/abmshq/abms-backend/application/parkingcard"
	visitorapp "github.com/abmshq/abms-backend/application/visitor"
	"github.com/abmshq/abms-backend/cmd/config"
	redisclient "github.com/abmshq/abms-backend/cmd/redis"
	accountRepo "github.com/abmshq/abms-backend/repository/account"
	constructionRepo "github.com/abmshq/abms-backend/repository/construction"
	expenseRepo "github.com/abmshq/abms-backend/repository/expense"
	fundRepo "github.com/abmshq/abms-backend/repository/fund"
	parkingcardRepo "github.com/abmshq/abms-backend/repository/parkingcard"
	redisRepo "github.com/abmshq/abms-backend/repository/redis"
	txRepo "github.com/abmshq/abms-backend/repository/tx"
	visitorRepo "github.com/abmshq/abms-backend/repository/visitor"
	"github.com/abmshq/abms-backend/thirdparty/rabbitmq"
	"github.com/abmshq/abms-backend/transport"
	"github.com/abmshq/abms-backend/utils/logger"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// @title ABMS API
// @version 1.0
// @description Apartment Building Management System API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	AccountRepo := accountRepo.NewAccountRepository(db)
	ParkingCardRepo := parkingcardRepo.NewParkingCardRepository(db)
	VisitorRepo := visitorRepo.NewVisitorRepository(db)
	ConstructionRepo := constructionRepo.NewConstructionRepository(db)
	ExpenseRepo := expenseRepo.NewExpenseRepository(db)
	FundRepo := fundRepo.NewFundRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// RabbitMQ is optional: without a broker the service still runs, but
	// cards are not auto-expired and decisions are not broadcast.
	var expirationPub parkingcardapp.ExpirationPublisher
	var notificationPub visitorapp.NotificationPublisher
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, running without messaging", zap.Error(err))
	} else {
		defer publisher.Close()
		expirationPub = publisher
		notificationPub = publisher
	}

	// Initialize application layers
	AuthApp := authapp.NewAuthApp(cfg, AccountRepo, RedisRepo)
	AccountApp := accountapp.NewAccountApp(TxRepo, AccountRepo)
	ParkingCardApp := parkingcardapp.NewParkingCardApp(TxRepo, ParkingCardRepo, expirationPub)
	VisitorApp := visitorapp.NewVisitorApp(TxRepo, VisitorRepo, notificationPub)
	ConstructionApp := constructionapp.NewConstructionApp(TxRepo, ConstructionRepo, notificationPub)
	ExpenseApp := expenseapp.NewExpenseApp(TxRepo, ExpenseRepo)
	FundApp := fundapp.NewFundApp(TxRepo, FundRepo)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start the delayed card-expiration consumer when the broker is up
	if publisher != nil {
		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, ParkingCardApp.Expire)
		if err != nil {
			logger.Warn("card expiration consumer unavailable", zap.Error(err))
		} else {
			defer consumer.Close()
			if err := consumer.Start(ctx); err != nil {
				logger.Error("card expiration consumer failed to start", zap.Error(err))
			}
		}
	}

	httpTransport := transport.NewTransport(&transport.RestHandler{
		AuthApp:         AuthApp,
		AccountApp:      AccountApp,
		ParkingCardApp:  ParkingCardApp,
		VisitorApp:      VisitorApp,
		ConstructionApp: ConstructionApp,
		ExpenseApp:      ExpenseApp,
		FundApp:         FundApp,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		_ = server.Shutdown(context.Background())
	}()

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.Fatal("failed server", zap.Error(err))
	}
}
