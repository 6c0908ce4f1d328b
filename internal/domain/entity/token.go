package entity

import "time"

// RevokedToken es una entrada de la lista de denegación de sesiones.
// El logout inserta el token crudo; el middleware de auth rechaza tokens
// presentes en la lista. Las entradas mayores a 24h se purgan en
// background (los JWT ya expiraron para entonces).
type RevokedToken struct {
	Token     string
	CreatedAt time.Time
}

// RevokedTokenTTL tiempo que una entrada permanece en la lista.
const RevokedTokenTTL = 24 * time.Hour
