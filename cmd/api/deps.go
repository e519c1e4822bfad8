package main

import (
	"laurus/internal/domain/category"
	"laurus/internal/domain/transaction"
	"laurus/internal/events"
	"laurus/internal/infrastructure/postgres"
	httphandlers "laurus/internal/interfaces/http"
	"laurus/internal/shared/auth"
	"laurus/internal/shared/config"
	"laurus/internal/shared/i18n"
	"laurus/internal/shared/log"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	DB        *postgres.DB
	Bundle    *i18n.Bundle
	Tokens    *auth.TokenManager
	Publisher events.Publisher
	UserRepo  *postgres.UserRepository

	AuthHandler       *httphandlers.AuthHandler
	UserHandler       *httphandlers.UserHandler
	AccountHandler    *httphandlers.AccountHandler
	CreditCardHandler *httphandlers.CreditCardHandler
	TagHandler        *httphandlers.TagHandler

	DespesaCategoriaHandler *httphandlers.CategoryHandler
	ReceitaCategoriaHandler *httphandlers.CategoryHandler

	DespesaSubcategoriaHandler *httphandlers.SubcategoryHandler
	ReceitaSubcategoriaHandler *httphandlers.SubcategoryHandler

	DespesaContaHandler         *httphandlers.TransactionHandler
	DespesaCartaoCreditoHandler *httphandlers.TransactionHandler
	ReceitaContaHandler         *httphandlers.TransactionHandler
	ReceitaCartaoCreditoHandler *httphandlers.TransactionHandler
}

// NewDependencies initializes all application dependencies.
func NewDependencies(cfg *config.Config, logger *log.Logger) (*Dependencies, error) {
	db, err := postgres.New(cfg.Database.ConnectionString())
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database")

	if err := postgres.RunMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	userRepo := postgres.NewUserRepository(db)
	accountRepo := postgres.NewAccountRepository(db)
	creditCardRepo := postgres.NewCreditCardRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	subcategoryRepo := postgres.NewSubcategoryRepository(db)
	tagRepo := postgres.NewTagRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.RefreshSecret)
	bundle := i18n.NewBundle()
	respond := httphandlers.NewResponder(bundle, logger.WithComponent("http"))

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.AMQP.URL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, logger.WithComponent("events"))
		if err != nil {
			db.Close()
			return nil, err
		}
		publisher = amqpPublisher
		logger.Info("connected to message broker", "exchange", cfg.AMQP.Exchange)
	}

	txLogger := logger.WithComponent("transactions")
	newTransactionHandler := func(kind category.Kind, source transaction.Source) *httphandlers.TransactionHandler {
		return httphandlers.NewTransactionHandler(kind, source, transactionRepo, publisher, respond, txLogger)
	}

	return &Dependencies{
		DB:        db,
		Bundle:    bundle,
		Tokens:    tokens,
		Publisher: publisher,
		UserRepo:  userRepo,

		AuthHandler:       httphandlers.NewAuthHandler(userRepo, tokens, respond),
		UserHandler:       httphandlers.NewUserHandler(userRepo, respond),
		AccountHandler:    httphandlers.NewAccountHandler(accountRepo, respond),
		CreditCardHandler: httphandlers.NewCreditCardHandler(creditCardRepo, respond),
		TagHandler:        httphandlers.NewTagHandler(tagRepo, respond),

		DespesaCategoriaHandler: httphandlers.NewCategoryHandler(category.KindDespesa, categoryRepo, respond),
		ReceitaCategoriaHandler: httphandlers.NewCategoryHandler(category.KindReceita, categoryRepo, respond),

		DespesaSubcategoriaHandler: httphandlers.NewSubcategoryHandler(category.KindDespesa, subcategoryRepo, respond),
		ReceitaSubcategoriaHandler: httphandlers.NewSubcategoryHandler(category.KindReceita, subcategoryRepo, respond),

		DespesaContaHandler:         newTransactionHandler(category.KindDespesa, transaction.SourceConta),
		DespesaCartaoCreditoHandler: newTransactionHandler(category.KindDespesa, transaction.SourceCartaoCredito),
		ReceitaContaHandler:         newTransactionHandler(category.KindReceita, transaction.SourceConta),
		ReceitaCartaoCreditoHandler: newTransactionHandler(category.KindReceita, transaction.SourceCartaoCredito),
	}, nil
}

// Close releases all resources held by dependencies.
func (d *Dependencies) Close() {
	if d.Publisher != nil {
		d.Publisher.Close()
	}
	if d.DB != nil {
		d.DB.Close()
	}
}
