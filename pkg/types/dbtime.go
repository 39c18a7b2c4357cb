package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// dbTimeLayouts форматы, в которых драйверы отдают DATE/TIMESTAMP текстом
var dbTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// DBTime nullable время, которое сканируется и из time.Time, и из текста
// Postgres (lib/pq) отдает time.Time, SQLite - строку
type DBTime struct {
	Time  time.Time
	Valid bool
}

// Scan реализует sql.Scanner
func (t *DBTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		t.Time, t.Valid = time.Time{}, false
		return nil
	case time.Time:
		t.Time, t.Valid = v, true
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("DBTime: unsupported type %T", src)
	}
}

// Value реализует driver.Valuer
func (t DBTime) Value() (driver.Value, error) {
	if !t.Valid {
		return nil, nil
	}
	return t.Time, nil
}

func (t *DBTime) parse(s string) error {
	for _, layout := range dbTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time, t.Valid = parsed, true
			return nil
		}
	}
	return fmt.Errorf("DBTime: cannot parse %q", s)
}
