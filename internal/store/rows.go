package store

import (
	"database/sql"
	"strings"
	"time"
)

// Row is a generic result record keyed by lower-cased column name.
type Row map[string]any

const dateLayout = "2006-01-02"

// collectRows drains the result set into generic rows. Date-typed values are
// serialized as ISO-8601 calendar dates; byte slices become strings so the
// rows JSON-encode cleanly.
func collectRows(rows *sql.Rows) ([]Row, error) {
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	for i, column := range columns {
		columns[i] = strings.ToLower(column)
	}

	result := make([]Row, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		row := make(Row, len(columns))
		for i, column := range columns {
			row[column] = normalizeValue(values[i])
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case time.Time:
		return v.Format(dateLayout)
	case []byte:
		return string(v)
	default:
		return value
	}
}
