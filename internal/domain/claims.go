package domain

import "github.com/golang-jwt/jwt/v5"

const (
	RoleAdmin = "admin"
	RoleOwner = "owner"
)

// Claims são as claims do token de acesso da API. O sistema completo de
// usuários/sessões vive fora deste serviço; aqui só validamos o token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
