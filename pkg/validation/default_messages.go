package validation

import (
	"fmt"
	"strings"
)

func DefaultMessage(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s é obrigatório", field)
	case "email":
		return fmt.Sprintf("%s deve ser um email válido", field)
	case "numeric":
		return fmt.Sprintf("%s deve ser numérico", field)
	case "min":
		return fmt.Sprintf("%s deve ter no mínimo %s", field, param)
	case "max":
		return fmt.Sprintf("%s deve ter no máximo %s", field, param)
	case "len":
		return fmt.Sprintf("%s deve ter exatamente %s caracteres", field, param)
	case "gte":
		return fmt.Sprintf("%s deve ser maior ou igual a %s", field, param)
	case "gt":
		return fmt.Sprintf("%s deve ser maior que %s", field, param)
	case "lte":
		return fmt.Sprintf("%s deve ser menor ou igual a %s", field, param)
	case "lt":
		return fmt.Sprintf("%s deve ser menor que %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s deve ser um de: %s", field, strings.Join(strings.Fields(param), ", "))
	case "boolean":
		return fmt.Sprintf("%s deve ser true ou false", field)
	case "cpf", "cnh", "placa", "telefone":
		return fmt.Sprintf("%s inválido", field)
	case "bcryptmax":
		return fmt.Sprintf("%s deve ter no máximo 72 bytes", field)
	case "data":
		return fmt.Sprintf("%s deve estar no formato AAAA-MM-DD", field)
	default:
		return fmt.Sprintf("%s inválido", field)
	}
}
