package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCPF(t *testing.T) {
	assert.Equal(t, "123.456.789-01", NormalizeCPF("12345678901"))
	assert.Equal(t, "123.456.789-01", NormalizeCPF(" 123.456.789-01 "))
	assert.Equal(t, "1234567890a", NormalizeCPF("1234567890a"))
}

func TestNormalizePlaca(t *testing.T) {
	assert.Equal(t, "ABC1234", NormalizePlaca("abc-1234"))
	assert.Equal(t, "ABC1D23", NormalizePlaca(" abc1d23"))
}

func TestRegisterRequest_Normalize(t *testing.T) {
	req := &RegisterRequest{Nome: "  Ana Silva ", Email: " Ana@X.com ", CPF: " 12345678901", Telefone: " "}

	req.Normalize()

	assert.Equal(t, "Ana Silva", req.Nome)
	assert.Equal(t, "ana@x.com", req.Email)
	assert.Equal(t, "12345678901", req.CPF)
	assert.Equal(t, "", req.Telefone)
}
