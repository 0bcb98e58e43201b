package entity

import "time"

// RoleAdmin rol que habilita las acciones privilegiadas del panel.
const RoleAdmin = "admin"

// Profile perfil de un usuario autenticado (tabla profiles, id = auth user id).
type Profile struct {
	ID        string // UUID del usuario en el servicio de auth
	Role      string
	CreatedAt time.Time
}

// Session sesión validada contra el servicio externo de auth.
// Se obtiene intercambiando el par de cookies access/refresh; nunca se cachea.
type Session struct {
	UserID       string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}
