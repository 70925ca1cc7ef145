package validation

var customValidationMessages = map[string]map[string]string{
	"email": {
		"required": "email é obrigatório",
		"email":    "email inválido",
		"max":      "email deve ter no máximo 255 caracteres",
	},
	"senha": {
		"required":  "senha é obrigatória",
		"min":       "senha deve ter no mínimo 6 caracteres",
		"bcryptmax": "senha deve ter no máximo 72 bytes",
	},
	"nome": {
		"required": "nome é obrigatório",
		"min":      "nome deve ter no mínimo 2 caracteres",
		"max":      "nome deve ter no máximo 100 caracteres",
	},
	"cpf": {
		"required": "cpf é obrigatório",
		"cpf":      "cpf deve estar no formato 000.000.000-00",
	},
	"telefone": {
		"telefone": "telefone inválido",
	},
	"cnh": {
		"required": "cnh é obrigatória",
		"cnh":      "cnh deve conter 11 dígitos",
	},
	"placa": {
		"required": "placa é obrigatória",
		"placa":    "placa deve estar no formato AAA-0000 ou AAA0A00",
	},
	"data_prevista": {
		"data": "data_prevista deve estar no formato AAAA-MM-DD",
	},
}

// CustomMessage returns the per-rule messages for a JSON field, if any
func CustomMessage(field string) map[string]string {
	return customValidationMessages[field]
}
