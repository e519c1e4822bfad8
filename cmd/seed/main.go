package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"

	"laurus/internal/domain/account"
	"laurus/internal/domain/category"
	"laurus/internal/domain/creditcard"
	"laurus/internal/domain/subcategory"
	"laurus/internal/domain/tag"
	"laurus/internal/domain/transaction"
	"laurus/internal/domain/user"
	"laurus/internal/infrastructure/postgres"
	"laurus/internal/shared/auth"
	"laurus/internal/shared/config"
	"laurus/internal/shared/log"
)

// Seeds a demo user with randomized accounts, cards, categories,
// subcategories, tags, and transactions through the real repositories.
func main() {
	logger := log.New(log.Config{}).WithComponent("seed")

	if err := run(logger); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := postgres.New(cfg.Database.ConnectionString())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := postgres.RunMigrations(db); err != nil {
		return err
	}

	ctx := context.Background()

	users := postgres.NewUserRepository(db)
	accounts := postgres.NewAccountRepository(db)
	cards := postgres.NewCreditCardRepository(db)
	categories := postgres.NewCategoryRepository(db)
	subcategories := postgres.NewSubcategoryRepository(db)
	tags := postgres.NewTagRepository(db)
	transactions := postgres.NewTransactionRepository(db)

	senhaHash, err := auth.HashPassword("senhaDemo123")
	if err != nil {
		return err
	}

	telefone := "+55 11 99999-0000"
	u, err := users.Create(ctx, userParams(senhaHash, telefone))
	if err != nil {
		return err
	}
	logger.Info("demo user created", "email", u.Email)

	var contaIDs []string
	for _, nome := range []string{"Conta do dia a dia", "Reserva"} {
		a, err := accounts.Create(ctx, account.CreateAccountParams{
			UsuarioID: u.ID,
			Nome:      nome,
			Banco:     pick("Nubank", "Itaú", "Bradesco", "Caixa"),
			TipoConta: pick(account.TiposConta...),
		})
		if err != nil {
			return err
		}
		contaIDs = append(contaIDs, a.ID)
	}

	var cartaoIDs []string
	for _, nome := range []string{"Cartão principal", "Cartão reserva"} {
		c, err := cards.Create(ctx, creditcard.CreateCreditCardParams{
			UsuarioID:           u.ID,
			Nome:                nome,
			Bandeira:            pick(creditcard.Bandeiras...),
			DiaFechamentoFatura: 1 + rand.Intn(28),
			DiaVencimentoFatura: 1 + rand.Intn(28),
		})
		if err != nil {
			return err
		}
		cartaoIDs = append(cartaoIDs, c.ID)
	}

	categoriaIDs := map[category.Kind][]string{}
	subcategoriaIDs := map[string][]string{}
	names := map[category.Kind][]string{
		category.KindDespesa: {"Moradia", "Alimentação", "Transporte"},
		category.KindReceita: {"Salário", "Investimentos"},
	}
	for kind, nomes := range names {
		for _, nome := range nomes {
			c, err := categories.Create(ctx, kind, category.CreateCategoryParams{
				UsuarioID: u.ID,
				Nome:      nome,
			})
			if err != nil {
				return err
			}
			categoriaIDs[kind] = append(categoriaIDs[kind], c.ID)

			for i := 1; i <= 2; i++ {
				s, err := subcategories.Create(ctx, kind, subcategory.CreateSubcategoryParams{
					UsuarioID:   u.ID,
					CategoriaID: c.ID,
					Nome:        fmt.Sprintf("%s %d", nome, i),
				})
				if err != nil {
					return err
				}
				subcategoriaIDs[c.ID] = append(subcategoriaIDs[c.ID], s.ID)
			}
		}
	}

	var tagIDs []string
	for _, nome := range []string{"essencial", "lazer", "recorrente"} {
		t, err := tags.Create(ctx, tag.CreateTagParams{UsuarioID: u.ID, Nome: nome})
		if err != nil {
			return err
		}
		tagIDs = append(tagIDs, t.ID)
	}

	created := 0
	for i := 0; i < 40; i++ {
		kind := pick(category.KindDespesa, category.KindReceita)
		source := pick(transaction.SourceConta, transaction.SourceCartaoCredito)

		params := randomTransaction(kind, source, contaIDs, cartaoIDs, categoriaIDs, subcategoriaIDs, tagIDs)
		if _, err := transactions.Create(ctx, kind, source, params); err != nil {
			return err
		}
		created++
	}

	logger.Info("seed complete",
		"contas", len(contaIDs),
		"cartoes", len(cartaoIDs),
		"tags", len(tagIDs),
		"transacoes", created,
	)
	return nil
}

func userParams(senhaHash, telefone string) user.CreateUserParams {
	return user.CreateUserParams{
		Nome:           "Laura",
		Sobrenome:      "Demo",
		Email:          fmt.Sprintf("demo+%d@laurus.dev", time.Now().Unix()),
		SenhaHash:      senhaHash,
		Telefone:       &telefone,
		DataNascimento: time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC),
		Idioma:         "pt-BR",
		Moeda:          "BRL",
		FormatoData:    "DD/MM/YYYY",
	}
}

func randomTransaction(
	kind category.Kind,
	source transaction.Source,
	contaIDs, cartaoIDs []string,
	categoriaIDs map[category.Kind][]string,
	subcategoriaIDs map[string][]string,
	tagIDs []string,
) transaction.CreateTransactionParams {
	sourceID := pick(contaIDs...)
	if source == transaction.SourceCartaoCredito {
		sourceID = pick(cartaoIDs...)
	}

	categoriaID := pick(categoriaIDs[kind]...)
	valor := float64(rand.Intn(500000)) / 100

	params := transaction.CreateTransactionParams{
		SourceID:      sourceID,
		Valor:         &valor,
		DataTransacao: time.Now().AddDate(0, 0, -rand.Intn(90)),
		CategoriaID:   categoriaID,
	}

	if subs := subcategoriaIDs[categoriaID]; len(subs) > 0 && rand.Intn(2) == 0 {
		sub := pick(subs...)
		params.SubcategoriaID = &sub
	}
	if rand.Intn(2) == 0 {
		params.Tags = []string{pick(tagIDs...)}
	}
	if source == transaction.SourceCartaoCredito && rand.Intn(3) == 0 {
		total := 2 + rand.Intn(11)
		atual := 1 + rand.Intn(total)
		params.Parcelamento = true
		params.NumeroParcelaAtual = &atual
		params.TotalParcelas = &total
	}

	return params
}

func pick[T any](values ...T) T {
	return values[rand.Intn(len(values))]
}
