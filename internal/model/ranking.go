package model

// RankingEntry é uma linha de ranking (geral ou por quiz), sem tabela própria.
//
// swagger:model RankingEntry
type RankingEntry struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Score int    `json:"score"`
}
