package bot

import (
	"errors"
	"strconv"
	"strings"
)

// badFormatHint is the parse-error text shown to the user as-is.
const badFormatHint = "Формат: описание сумма\nПример: кофе 200"

// ParseExpenseMessage splits "кофе 200" into a description and a positive
// amount. The amount is the last whitespace-separated token; a comma decimal
// separator is accepted.
func ParseExpenseMessage(text string) (string, float64, error) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) < 2 {
		return "", 0, errors.New(badFormatHint)
	}

	amountStr := strings.ReplaceAll(fields[len(fields)-1], ",", ".")
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		return "", 0, errors.New(badFormatHint)
	}
	if amount <= 0 {
		return "", 0, errors.New("Сумма должна быть > 0")
	}

	description := strings.Join(fields[:len(fields)-1], " ")
	return description, amount, nil
}
