package dberrors

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// pgUniqueViolation код ошибки Postgres unique_violation
const pgUniqueViolation = "23505"

// IsUniqueViolation проверяет, что ошибка - нарушение уникального ограничения
// Поддерживает lib/pq и modernc sqlite (у последнего нет экспортируемого кода, проверяем текст)
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgUniqueViolation
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
