package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Nome  string `json:"nome" validate:"required,min=2,max=100"`
	Email string `json:"email" validate:"required,email"`
	CPF   string `json:"cpf" validate:"required,cpf"`
	Fone  string `json:"telefone" validate:"omitempty,telefone"`
	CNH   string `json:"cnh" validate:"omitempty,cnh"`
	Placa string `json:"placa" validate:"omitempty,placa"`
	Data  string `json:"data_prevista" validate:"omitempty,data"`
	Ano   int    `json:"ano" validate:"omitempty,gte=1980,lte=2100"`
}

func valid() sample {
	return sample{
		Nome:  "Maria Souza",
		Email: "maria@example.com",
		CPF:   "123.456.789-09",
		Fone:  "(11) 91234-5678",
		CNH:   "12345678901",
		Placa: "ABC1D23",
		Data:  "2026-10-19",
		Ano:   2020,
	}
}

func TestValidator_AcceptsValidInput(t *testing.T) {
	require.NoError(t, New().Struct(valid()))
}

func TestValidator_CPFFormats(t *testing.T) {
	v := New()
	for _, cpf := range []string{"123.456.789-09", "12345678909"} {
		s := valid()
		s.CPF = cpf
		assert.NoError(t, v.Struct(s), cpf)
	}
	for _, cpf := range []string{"123.456.789", "1234567890a", "123-456-789.09"} {
		s := valid()
		s.CPF = cpf
		assert.Error(t, v.Struct(s), cpf)
	}
}

func TestValidator_Placa(t *testing.T) {
	v := New()
	for _, placa := range []string{"ABC-1234", "abc1234", "ABC1D23"} {
		s := valid()
		s.Placa = placa
		assert.NoError(t, v.Struct(s), placa)
	}
	s := valid()
	s.Placa = "AB-12345"
	assert.Error(t, v.Struct(s))
}

func TestMessages_CollectsEveryViolation(t *testing.T) {
	s := sample{Email: "not-an-email", CPF: "123", Data: "19/10/2026", Ano: 1900}

	msgs := Messages(New().Struct(s))

	assert.ElementsMatch(t, []string{
		"nome é obrigatório",
		"email inválido",
		"cpf deve estar no formato 000.000.000-00",
		"data_prevista deve estar no formato AAAA-MM-DD",
		"ano deve ser maior ou igual a 1980",
	}, msgs)
}

func TestMessages_NonValidationError(t *testing.T) {
	assert.Nil(t, Messages(assert.AnError))
}

func TestValidator_BcryptMaxCountsBytes(t *testing.T) {
	type credentials struct {
		Senha string `json:"senha" validate:"required,min=6,bcryptmax"`
	}
	v := New()

	assert.NoError(t, v.Struct(credentials{Senha: strings.Repeat("a", 72)}))
	assert.NoError(t, v.Struct(credentials{Senha: strings.Repeat("é", 36)}))

	err := v.Struct(credentials{Senha: strings.Repeat("é", 40)})
	require.Error(t, err)
	assert.Equal(t, []string{"senha deve ter no máximo 72 bytes"}, Messages(err))
}
