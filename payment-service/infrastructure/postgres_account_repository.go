package infrastructure

import (
	"context"
	"database/sql"
	"embed"
	"time"

	"github.com/coffeeshop/coffee-system/payment-service/domain"
	sharedinfra "github.com/coffeeshop/coffee-system/shared/infrastructure"
	"github.com/coffeeshop/coffee-system/shared/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate creates the accounts schema
func Migrate(db *sqlx.DB) error {
	return sharedinfra.RunMigrations(db.DB, migrations, "migrations", "payment_schema_migrations")
}

// PostgresAccountRepository implements AccountRepository using PostgreSQL
type PostgresAccountRepository struct {
	db *sqlx.DB
}

// NewPostgresAccountRepository creates a new PostgresAccountRepository
func NewPostgresAccountRepository(db *sqlx.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

// postgresAccount represents account in database
type postgresAccount struct {
	CreditCardNumber string          `db:"credit_card_number"`
	Balance          decimal.Decimal `db:"balance"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

// Update locks the card row with SELECT ... FOR UPDATE for the duration of fn
func (r *PostgresAccountRepository) Update(
	ctx context.Context,
	creditCardNumber string,
	openingBalance decimal.Decimal,
	fn func(*domain.Account) error,
) (*domain.Account, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	now := time.Now()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO accounts (credit_card_number, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (credit_card_number) DO NOTHING`,
		creditCardNumber, openingBalance, now,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open account")
	}

	var pgAccount postgresAccount
	err = tx.GetContext(ctx, &pgAccount, `
		SELECT credit_card_number, balance, created_at, updated_at
		FROM accounts
		WHERE credit_card_number = $1
		FOR UPDATE`,
		creditCardNumber,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock account")
	}

	account := r.toDomain(&pgAccount)
	if err := fn(account); err != nil {
		return nil, err
	}

	_, err = tx.NamedExecContext(ctx, `
		UPDATE accounts
		SET balance = :balance, updated_at = :updated_at
		WHERE credit_card_number = :credit_card_number`,
		r.toPostgres(account),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update account")
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "failed to commit transaction")
	}

	return account, nil
}

// FindByCardNumber finds an account by credit card number
func (r *PostgresAccountRepository) FindByCardNumber(ctx context.Context, creditCardNumber string) (*domain.Account, error) {
	var pgAccount postgresAccount
	err := r.db.GetContext(ctx, &pgAccount, `
		SELECT credit_card_number, balance, created_at, updated_at
		FROM accounts
		WHERE credit_card_number = $1`,
		creditCardNumber,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Account not found
		}
		return nil, errors.Wrap(err, "failed to find account")
	}

	return r.toDomain(&pgAccount), nil
}

// toDomain converts postgres model to domain account
func (r *PostgresAccountRepository) toDomain(pgAccount *postgresAccount) *domain.Account {
	return &domain.Account{
		CreditCardNumber: pgAccount.CreditCardNumber,
		Balance:          pgAccount.Balance,
		Timestamps: models.Timestamps{
			CreatedAt: pgAccount.CreatedAt,
			UpdatedAt: pgAccount.UpdatedAt,
		},
	}
}

// toPostgres converts domain account to postgres model
func (r *PostgresAccountRepository) toPostgres(account *domain.Account) *postgresAccount {
	return &postgresAccount{
		CreditCardNumber: account.CreditCardNumber,
		Balance:          account.Balance,
		CreatedAt:        account.Timestamps.CreatedAt,
		UpdatedAt:        account.Timestamps.UpdatedAt,
	}
}
