package dto

// Response es el envelope uniforme de toda la API: éxito y error comparten
// la misma forma, con campos opcionales omitidos cuando no aplican.
type Response struct {
	Success    bool         `json:"success"`
	Message    string       `json:"message"`
	Data       any          `json:"data,omitempty"`
	Pagination *Pagination  `json:"pagination,omitempty"`
	Error      string       `json:"error,omitempty"`
	Details    []FieldError `json:"details,omitempty"`
}

// Pagination metadatos de página en respuestas de listados.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPagination construye los metadatos calculando totalPages = ceil(total/limit).
func NewPagination(page, limit, total int) *Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return &Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

// FieldError mensaje de validación por campo (HTTP 400).
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PageQuery paginación de entrada con los defaults del API (página 1, 10 por página).
type PageQuery struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Normalize aplica defaults y topes a los parámetros de página.
func (p *PageQuery) Normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// Offset devuelve el desplazamiento SQL equivalente.
func (p PageQuery) Offset() int {
	return (p.Page - 1) * p.Limit
}
