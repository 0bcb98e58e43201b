package dto

// RestockRequestInput entrada de la acción pública "avísame cuando vuelva".
type RestockRequestInput struct {
	ProductID int64  `json:"productId" validate:"required"`
	Contact   string `json:"contact" validate:"required,min=5"`
}

// RestockResponse confirmación de la solicitud registrada.
type RestockResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
