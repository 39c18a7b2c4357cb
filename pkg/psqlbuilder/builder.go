package psqlbuilder

import (
	"fmt"

	"github.com/Masterminds/squirrel"
)

// Dialect поддерживаемые SQL-диалекты
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// Builder squirrel.StatementBuilder с плейсхолдерами под диалект
type Builder struct {
	squirrel.StatementBuilderType
	dialect Dialect
}

// New создает builder для диалекта
func New(dialect Dialect) (Builder, error) {
	switch dialect {
	case DialectPostgres:
		return Builder{StatementBuilderType: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar), dialect: dialect}, nil
	case DialectSQLite:
		return Builder{StatementBuilderType: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question), dialect: dialect}, nil
	default:
		return Builder{}, fmt.Errorf("unsupported sql dialect: %q", dialect)
	}
}

// MustNew как New, но паникует на неизвестном диалекте
func MustNew(dialect Dialect) Builder {
	b, err := New(dialect)
	if err != nil {
		panic(err)
	}
	return b
}

// Dialect возвращает диалект builder'а
func (b Builder) Dialect() Dialect {
	return b.dialect
}
