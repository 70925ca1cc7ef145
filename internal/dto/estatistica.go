package dto

type TarefaStats struct {
	Total       int64 `json:"total"`
	Pendente    int64 `json:"pendente"`
	EmAndamento int64 `json:"em_andamento"`
	Concluida   int64 `json:"concluida"`
}

type MotoristaStats struct {
	Total  int64 `json:"total"`
	Ativos int64 `json:"ativos"`
}

type CaminhaoStats struct {
	Total      int64 `json:"total"`
	Disponivel int64 `json:"disponivel"`
	EmRota     int64 `json:"em_rota"`
	Manutencao int64 `json:"manutencao"`
}

type UsuarioStats struct {
	Total int64 `json:"total"`
}

type EstatisticasResponse struct {
	Tarefas    TarefaStats    `json:"tarefas"`
	Motoristas MotoristaStats `json:"motoristas"`
	Caminhoes  CaminhaoStats  `json:"caminhoes"`
	Usuarios   UsuarioStats   `json:"usuarios"`
}
