package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin       = "admin"
	RoleVeterinario = "veterinario"
	RoleCuidador    = "cuidador"
)

// User representa un usuario del sistema (pertenece a un Haras).
type User struct {
	ID           string
	HarasID      string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, veterinario, cuidador
	PhotoURL     string
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
