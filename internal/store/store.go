// Package store is the data access layer: it executes the literal SQL of
// the schema and report catalog and shapes result rows into generic
// records. Table and report identity is always established by the caller
// through the closed enumerations before any SQL runs.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/admitboard/admitboard-api/internal/catalog"
	"github.com/admitboard/admitboard-api/internal/schema"
)

// Store executes schema and catalog SQL against the backing database.
type Store struct {
	db      *gorm.DB
	dialect schema.Dialect
	logger  zerolog.Logger
}

// New constructs a store over the given gorm connection.
func New(db *gorm.DB, logger zerolog.Logger) (*Store, error) {
	dialect, err := schema.ParseDialect(db.Dialector.Name())
	if err != nil {
		return nil, err
	}

	return &Store{
		db:      db,
		dialect: dialect,
		logger:  logger.With().Str("component", "store").Logger(),
	}, nil
}

// List returns every row of the table ordered by id ascending.
func (s *Store) List(ctx context.Context, table schema.Table) ([]Row, error) {
	query := fmt.Sprintf("SELECT * FROM %s ORDER BY id", table.Name())

	rows, err := s.db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table.Key(), err)
	}

	return collectRows(rows)
}

// Insert adds a row built from the allow-listed columns present in fields
// and returns the store-generated id. Field names outside the table's
// column set are rejected before any SQL is built; everything else is left
// to the schema constraints.
func (s *Store) Insert(ctx context.Context, table schema.Table, fields map[string]any) (int64, error) {
	for name := range fields {
		if !table.HasColumn(name) {
			return 0, fmt.Errorf("%w: %s has no column %q", ErrUnknownColumn, table.Key(), name)
		}
	}

	columns := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields))
	for _, column := range table.Columns() {
		if value, ok := fields[column]; ok {
			columns = append(columns, column)
			args = append(args, value)
		}
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		table.Name(), strings.Join(columns, ", "), placeholders)

	var id int64
	if err := s.db.WithContext(ctx).Raw(query, args...).Scan(&id).Error; err != nil {
		return 0, classify(err)
	}

	s.logger.Debug().Str("table", table.Key()).Int64("id", id).Msg("row inserted")
	return id, nil
}

// Delete removes the row with the given id. Deleting an absent id is not an
// error; cascades apply per schema.
func (s *Store) Delete(ctx context.Context, table schema.Table, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", table.Name())

	if err := s.db.WithContext(ctx).Exec(query, id).Error; err != nil {
		return classify(err)
	}

	return nil
}

// RunReport executes the catalog entry and returns its shaped rows.
func (s *Store) RunReport(ctx context.Context, report catalog.Report) ([]Row, error) {
	rows, err := s.db.WithContext(ctx).Raw(report.SQL()).Rows()
	if err != nil {
		return nil, fmt.Errorf("report %s: %w", report.Key(), err)
	}

	return collectRows(rows)
}

// Reset drops all views and tables, recreates the schema and reloads the
// seed dataset. Destructive and irreversible: a full reinitialization, not
// a rollback.
func (s *Store) Reset(ctx context.Context) error {
	for _, statement := range schema.ResetStatements(s.dialect) {
		if err := s.db.WithContext(ctx).Exec(statement).Error; err != nil {
			return fmt.Errorf("reset failed on %q: %w", firstLine(statement), classify(err))
		}
	}

	s.logger.Info().Msg("schema reset and seeded")
	return nil
}

// EnsureSchema initializes a fresh store on first boot. An already
// populated store is left untouched.
func (s *Store) EnsureSchema(ctx context.Context) error {
	probe := fmt.Sprintf("SELECT COUNT(*) FROM %s", schema.TableInstitution.Name())
	var count int64
	if err := s.db.WithContext(ctx).Raw(probe).Scan(&count).Error; err == nil {
		return nil
	}

	s.logger.Info().Msg("schema missing, initializing")
	return s.Reset(ctx)
}

func firstLine(statement string) string {
	statement = strings.TrimSpace(statement)
	if idx := strings.IndexByte(statement, '\n'); idx > 0 {
		return statement[:idx]
	}
	return statement
}
