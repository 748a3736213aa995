package infrastructure

import (
	"context"
	"database/sql"
	"embed"
	"time"

	"github.com/coffeeshop/coffee-system/barista-service/domain"
	sharedinfra "github.com/coffeeshop/coffee-system/shared/infrastructure"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate creates the cups schema
func Migrate(db *sqlx.DB) error {
	return sharedinfra.RunMigrations(db.DB, migrations, "migrations", "barista_schema_migrations")
}

// PostgresCupRepository implements CupRepository using PostgreSQL
type PostgresCupRepository struct {
	db *sqlx.DB
}

// NewPostgresCupRepository creates a new PostgresCupRepository
func NewPostgresCupRepository(db *sqlx.DB) *PostgresCupRepository {
	return &PostgresCupRepository{db: db}
}

// postgresCup represents cup in database
type postgresCup struct {
	ID       int64     `db:"id"`
	Flavor   string    `db:"flavor"`
	ServedAt time.Time `db:"served_at"`
}

// Save inserts new cups and upserts cups that carry an id
func (r *PostgresCupRepository) Save(ctx context.Context, cup *domain.Cup) error {
	if cup.ID == 0 {
		err := r.db.QueryRowxContext(ctx, `
			INSERT INTO cups (flavor, served_at)
			VALUES ($1, $2)
			RETURNING id`,
			cup.Flavor, cup.ServedAt,
		).Scan(&cup.ID)
		if err != nil {
			return errors.Wrap(err, "failed to insert cup")
		}
		return nil
	}

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO cups (id, flavor, served_at)
		VALUES (:id, :flavor, :served_at)
		ON CONFLICT (id) DO UPDATE SET flavor = EXCLUDED.flavor`,
		toPostgresCup(cup),
	)
	if err != nil {
		return errors.Wrap(err, "failed to upsert cup")
	}

	// keep generated ids clear of explicitly assigned ones
	_, err = r.db.ExecContext(ctx, `
		SELECT setval(pg_get_serial_sequence('cups', 'id'), GREATEST((SELECT MAX(id) FROM cups), 1))`)
	if err != nil {
		return errors.Wrap(err, "failed to advance cup id sequence")
	}
	return nil
}

// FindByID finds a cup by id
func (r *PostgresCupRepository) FindByID(ctx context.Context, id int64) (*domain.Cup, error) {
	var pgCup postgresCup
	err := r.db.GetContext(ctx, &pgCup, `SELECT id, flavor, served_at FROM cups WHERE id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Cup not found
		}
		return nil, errors.Wrap(err, "failed to find cup")
	}
	return toDomainCup(&pgCup), nil
}

// FindAll returns all cups ordered by id
func (r *PostgresCupRepository) FindAll(ctx context.Context) ([]*domain.Cup, error) {
	var pgCups []postgresCup
	if err := r.db.SelectContext(ctx, &pgCups, `SELECT id, flavor, served_at FROM cups ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "failed to list cups")
	}

	cups := make([]*domain.Cup, 0, len(pgCups))
	for i := range pgCups {
		cups = append(cups, toDomainCup(&pgCups[i]))
	}
	return cups, nil
}

// Delete removes a cup
func (r *PostgresCupRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cups WHERE id = $1`, id)
	if err != nil {
		return false, errors.Wrap(err, "failed to delete cup")
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "failed to read deleted rows")
	}
	return rows > 0, nil
}

func toDomainCup(pgCup *postgresCup) *domain.Cup {
	return &domain.Cup{
		ID:       pgCup.ID,
		Flavor:   pgCup.Flavor,
		ServedAt: pgCup.ServedAt,
	}
}

func toPostgresCup(cup *domain.Cup) *postgresCup {
	return &postgresCup{
		ID:       cup.ID,
		Flavor:   cup.Flavor,
		ServedAt: cup.ServedAt,
	}
}
