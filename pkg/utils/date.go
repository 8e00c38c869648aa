package utils

import (
	"strings"
	"time"
)

// ParseDate interpreta datas no formato YYYY-MM-DD, tolerando espaços
// nas bordas. Campo vazio é erro: toda linha das fontes precisa de data.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(time.DateOnly, strings.TrimSpace(dateStr))
}
