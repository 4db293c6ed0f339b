package database

import (
	"database/sql"
	"fmt"
	"math"

	sqlite3 "github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SQLiteDriverName is the name of the registered driver carrying the
// aggregate extensions below.
const SQLiteDriverName = "sqlite3_admitboard"

func init() {
	sql.Register(SQLiteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			// SQLite has no STDDEV; the report catalog needs one.
			return conn.RegisterAggregator("stddev", newStddevAggregator, true)
		},
	})
}

// ConnectSQLite opens a SQLite database at the provided path or DSN.
//
// The pool is capped at a single connection: the connection-scoped
// foreign_keys pragma then applies to every statement, and all operations
// share one session.
func ConnectSQLite(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("sqlite dsn must not be empty")
	}

	dialector := &sqlite.Dialector{DriverName: SQLiteDriverName, DSN: dsn}
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("failed to enable sqlite foreign keys: %w", err)
	}

	return db, nil
}

// stddevAggregator computes the sample standard deviation.
type stddevAggregator struct {
	values []float64
}

func newStddevAggregator() *stddevAggregator {
	return &stddevAggregator{}
}

func (s *stddevAggregator) Step(v any) {
	switch value := v.(type) {
	case float64:
		s.values = append(s.values, value)
	case int64:
		s.values = append(s.values, float64(value))
	}
}

func (s *stddevAggregator) Done() float64 {
	n := len(s.values)
	if n < 2 {
		return 0
	}

	var sum float64
	for _, v := range s.values {
		sum += v
	}
	mean := sum / float64(n)

	var squares float64
	for _, v := range s.values {
		squares += (v - mean) * (v - mean)
	}

	return math.Sqrt(squares / float64(n-1))
}
