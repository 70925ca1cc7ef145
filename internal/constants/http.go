package constants

// HTTP Header Names
const (
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	BearerScheme = "Bearer"
)

// Common HTTP Error Messages
const (
	MsgValidationFailed   = "Dados inválidos"
	MsgInvalidJSON        = "Formato JSON inválido"
	MsgInvalidID          = "ID inválido"
	MsgInternalError      = "Erro interno do servidor"
	MsgTokenRequired      = "Token de acesso requerido"
	MsgTokenInvalidGate   = "Token inválido ou expirado"
	MsgTokenMissing       = "Token não fornecido"
	MsgTokenInvalid       = "Token inválido"
	MsgUserInactive       = "Usuário não encontrado ou inativo"
	MsgInvalidCredentials = "Email ou senha incorretos"
)

// HTTP Success Messages
const (
	MsgLoginSuccess    = "Login realizado com sucesso"
	MsgRegisterSuccess = "Usuário criado com sucesso"
	MsgDeleted         = "Registro removido com sucesso"
)
