package domain

import "github.com/golang-jwt/jwt/v5"

// Roles de acesso ao dashboard
const (
	RoleAdmin  = 1
	RoleViewer = 2
)

// Credentials é o corpo da requisição de login
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Claims são os dados do operador autenticado carregados no token JWT
type Claims struct {
	Username   string `json:"username"`
	UserRoleID int    `json:"role_id"`
	jwt.RegisteredClaims
}
