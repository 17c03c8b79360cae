package util

import (
	"strconv"
)

// MustParseUint converte o parâmetro de rota em uint; 0 quando inválido.
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}
