package usecase

import "errors"

// Validation errors carry the message returned to API clients.
var (
	ErrMissingDates  = errors.New("Datas de início e fim são obrigatórias.")
	ErrInvalidDate   = errors.New("Formato de data inválido. Use YYYY-MM-DD.")
	ErrStartAfterEnd = errors.New("A data de início deve ser anterior à data de fim.")
	ErrPeriodTooLong = errors.New("O período máximo permitido é de 5 dias úteis (máximo 7 dias corridos).")
)
