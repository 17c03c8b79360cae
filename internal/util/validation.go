package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BindingMessages converte um erro de binding do gin em mensagens por campo,
// no mesmo formato das respostas 422 do restante da API.
func BindingMessages(err error) map[string]string {
	fields := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["body"] = "Corpo da requisição inválido."
		return fields
	}

	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = fmt.Sprintf("O campo %s é obrigatório.", name)
		case "email":
			fields[name] = fmt.Sprintf("O campo %s deve ser um email válido.", name)
		case "max":
			fields[name] = fmt.Sprintf("O campo %s excede o tamanho máximo de %s.", name, fe.Param())
		default:
			fields[name] = fmt.Sprintf("O campo %s é inválido.", name)
		}
	}
	return fields
}
