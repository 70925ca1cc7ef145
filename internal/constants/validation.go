package constants

// MaxPasswordBytes is the bcrypt input limit. It counts bytes, not characters.
const MaxPasswordBytes = 72

// PasswordHashCost is the bcrypt cost factor used for every stored password.
const PasswordHashCost = 12

// Validation Patterns
const (
	CPFPattern   = `^(\d{3}\.\d{3}\.\d{3}-\d{2}|\d{11})$`
	PhonePattern = `^(\+55\s?)?\(?\d{2}\)?\s?9?\d{4}-?\d{4}$`
	CNHPattern   = `^\d{11}$`
	PlacaPattern = `^[A-Za-z]{3}-?\d[A-Za-z0-9]\d{2}$`
	DateLayout   = "2006-01-02"
)

// Tarefa status values
const (
	TarefaPendente    = "pendente"
	TarefaEmAndamento = "em_andamento"
	TarefaConcluida   = "concluida"
)

// Tarefa priority values
const (
	PrioridadeBaixa = "baixa"
	PrioridadeMedia = "media"
	PrioridadeAlta  = "alta"
)

// Caminhao status values
const (
	CaminhaoDisponivel = "disponivel"
	CaminhaoEmRota     = "em_rota"
	CaminhaoManutencao = "manutencao"
)
