package recommender

import (
	"errors"
	"fmt"
)

// ErrNoJobs — пул вакансий пуст, генерация пропускается без записи в базу
var ErrNoJobs = errors.New("no jobs available for recommendations")

// TransportError — обращение к внешнему AI-сервису не удалось (сеть, авторизация, лимиты)
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("ai request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ResponseFormatError — ответ модели не удалось привести к ожидаемой JSON-структуре
type ResponseFormatError struct {
	Reason string
	Err    error
}

func (e *ResponseFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unexpected ai response format: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("unexpected ai response format: %s", e.Reason)
}

func (e *ResponseFormatError) Unwrap() error { return e.Err }

// PersistenceError — транзакция замены рекомендаций откатилась целиком
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to store recommendations: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
