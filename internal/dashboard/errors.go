package dashboard

import (
	"errors"
	"fmt"
)

// ErrMissingTimestamp - у записи нет поля даты события
var ErrMissingTimestamp = errors.New("timestamp is missing")

// DecodeError возвращается, когда дату записи не удалось декодировать.
// Прерывает загрузку всего пакета записей.
type DecodeError struct {
	Index      int
	IncidentNo string
	Value      string
	Err        error
}

func (e *DecodeError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("decode record %d (incident %q): %v", e.Index, e.IncidentNo, e.Err)
	}
	return fmt.Sprintf("decode record %d (incident %q): timestamp %q: %v", e.Index, e.IncidentNo, e.Value, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
