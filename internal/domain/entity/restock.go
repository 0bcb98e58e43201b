package entity

import "time"

// RestockRequest solicitud de un cliente para ser avisado cuando un libro
// agotado vuelva a tener stock ("avísame cuando vuelva").
type RestockRequest struct {
	ID              int64
	ProductID       int64
	CustomerContact string // email o teléfono
	CreatedAt       time.Time
}
