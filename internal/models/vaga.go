package models

// Vaga is a job posting as stored in the `vagas` collection. Field names mirror
// the store documents (mixed pt/en keys are historical and kept for
// compatibility with existing data).
type Vaga struct {
	ID          uint   `json:"id,omitempty"`
	Title       string `json:"title"`
	Area        string `json:"area,omitempty"`
	Empresa     string `json:"empresa"`
	Local       string `json:"local"`
	Description string `json:"description"`
	Date        string `json:"date,omitempty"`        // rótulo livre, ex: "Publicado agora (10/10/2025)"
	DataCriacao string `json:"dataCriacao,omitempty"` // fallback usado pelo dashboard
	Contact     string `json:"contact,omitempty"`
	IsBico      bool   `json:"isBico"`
	Status      string `json:"status"`
}
