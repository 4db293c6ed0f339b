package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/admitboard/admitboard-api/internal/dto"
	"github.com/admitboard/admitboard-api/internal/schema"
	"github.com/admitboard/admitboard-api/internal/store"
)

var (
	// ErrTableNotFound indicates the external table key is not in the allow-list.
	ErrTableNotFound = errors.New("table not found")
	// ErrEmptyInsert indicates an insert request without any field values.
	ErrEmptyInsert = errors.New("insert payload must contain at least one field")
)

// TableStore is the slice of the data access layer the table service needs.
type TableStore interface {
	List(ctx context.Context, table schema.Table) ([]store.Row, error)
	Insert(ctx context.Context, table schema.Table, fields map[string]any) (int64, error)
	Delete(ctx context.Context, table schema.Table, id int64) error
}

// TableService exposes list/insert/delete over the allow-listed tables.
type TableService interface {
	Describe() []dto.TableInfo
	List(ctx context.Context, key string) ([]store.Row, error)
	Insert(ctx context.Context, key string, fields map[string]any) (int64, error)
	Delete(ctx context.Context, key string, id int64) error
}

type tableService struct {
	store    TableStore
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewTableService constructs the table service.
func NewTableService(store TableStore, validate *validator.Validate, logger zerolog.Logger) TableService {
	return &tableService{
		store:    store,
		validate: validate,
		logger:   logger.With().Str("component", "table_service").Logger(),
	}
}

func (s *tableService) Describe() []dto.TableInfo {
	tables := schema.Tables()
	infos := make([]dto.TableInfo, 0, len(tables))
	for _, table := range tables {
		infos = append(infos, dto.TableInfo{Key: table.Key(), Columns: table.Columns()})
	}
	return infos
}

func (s *tableService) List(ctx context.Context, key string) ([]store.Row, error) {
	table, err := schema.ParseTable(key)
	if err != nil {
		return nil, ErrTableNotFound
	}

	return s.store.List(ctx, table)
}

func (s *tableService) Insert(ctx context.Context, key string, fields map[string]any) (int64, error) {
	table, err := schema.ParseTable(key)
	if err != nil {
		return 0, ErrTableNotFound
	}

	if err := s.validate.Var(fields, "required,min=1"); err != nil {
		return 0, ErrEmptyInsert
	}

	normalized := make(map[string]any, len(fields))
	for name, value := range fields {
		normalized[strings.ToLower(strings.TrimSpace(name))] = value
	}

	id, err := s.store.Insert(ctx, table, normalized)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Str("table", key).Int64("id", id).Msg("row inserted")
	return id, nil
}

func (s *tableService) Delete(ctx context.Context, key string, id int64) error {
	table, err := schema.ParseTable(key)
	if err != nil {
		return ErrTableNotFound
	}

	if err := s.store.Delete(ctx, table, id); err != nil {
		return err
	}

	s.logger.Info().Str("table", key).Int64("id", id).Msg("row deleted")
	return nil
}
