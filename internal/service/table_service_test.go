package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/admitboard/admitboard-api/internal/schema"
	"github.com/admitboard/admitboard-api/internal/store"
)

type mockTableStore struct {
	rows       []store.Row
	insertID   int64
	err        error
	calls      int
	lastTable  schema.Table
	lastFields map[string]any
	lastID     int64
}

func (m *mockTableStore) List(_ context.Context, table schema.Table) ([]store.Row, error) {
	m.calls++
	m.lastTable = table
	return m.rows, m.err
}

func (m *mockTableStore) Insert(_ context.Context, table schema.Table, fields map[string]any) (int64, error) {
	m.calls++
	m.lastTable = table
	m.lastFields = fields
	return m.insertID, m.err
}

func (m *mockTableStore) Delete(_ context.Context, table schema.Table, id int64) error {
	m.calls++
	m.lastTable = table
	m.lastID = id
	return m.err
}

func newTableService(mock *mockTableStore) TableService {
	return NewTableService(mock, validator.New(validator.WithRequiredStructEnabled()), zerolog.New(io.Discard))
}

func TestTableServiceDescribe(t *testing.T) {
	svc := newTableService(&mockTableStore{})

	infos := svc.Describe()
	require.Len(t, infos, 5)
	require.Equal(t, "institutions", infos[0].Key)
	require.NotContains(t, infos[0].Columns, "id")
}

func TestTableServiceListUnknownKey(t *testing.T) {
	mock := &mockTableStore{}
	svc := newTableService(mock)

	_, err := svc.List(context.Background(), "faculty")
	require.ErrorIs(t, err, ErrTableNotFound)
	require.Zero(t, mock.calls)
}

func TestTableServiceListDelegates(t *testing.T) {
	mock := &mockTableStore{rows: []store.Row{{"id": int64(1), "name": "Central Secondary"}}}
	svc := newTableService(mock)

	rows, err := svc.List(context.Background(), "institutions")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, schema.TableInstitution, mock.lastTable)
}

func TestTableServiceInsertRejectsEmptyPayload(t *testing.T) {
	mock := &mockTableStore{}
	svc := newTableService(mock)

	_, err := svc.Insert(context.Background(), "programs", map[string]any{})
	require.ErrorIs(t, err, ErrEmptyInsert)

	_, err = svc.Insert(context.Background(), "programs", nil)
	require.ErrorIs(t, err, ErrEmptyInsert)

	require.Zero(t, mock.calls)
}

func TestTableServiceInsertNormalizesFieldNames(t *testing.T) {
	mock := &mockTableStore{insertID: 4}
	svc := newTableService(mock)

	id, err := svc.Insert(context.Background(), "programs", map[string]any{
		"Name":              "Data Science",
		" minimum_gpa ":     3.2,
		"duration_years":    4,
		"ENROLLMENT_STATUS": "Open",
	})
	require.NoError(t, err)
	require.Equal(t, int64(4), id)
	require.Equal(t, schema.TableProgram, mock.lastTable)
	require.Equal(t, map[string]any{
		"name":              "Data Science",
		"minimum_gpa":       3.2,
		"duration_years":    4,
		"enrollment_status": "Open",
	}, mock.lastFields)
}

func TestTableServiceInsertPropagatesStoreError(t *testing.T) {
	mock := &mockTableStore{err: store.ErrConstraintViolation}
	svc := newTableService(mock)

	_, err := svc.Insert(context.Background(), "applicants", map[string]any{"email": "dup@email.com"})
	require.ErrorIs(t, err, store.ErrConstraintViolation)
}

func TestTableServiceDelete(t *testing.T) {
	mock := &mockTableStore{}
	svc := newTableService(mock)

	require.ErrorIs(t, svc.Delete(context.Background(), "nope", 1), ErrTableNotFound)
	require.Zero(t, mock.calls)

	require.NoError(t, svc.Delete(context.Background(), "applications", 3))
	require.Equal(t, schema.TableApplication, mock.lastTable)
	require.Equal(t, int64(3), mock.lastID)

	mock.err = errors.New("boom")
	require.Error(t, svc.Delete(context.Background(), "applications", 3))
}
