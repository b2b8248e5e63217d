package models

// JWTClaims holds the claims extracted from the gateway-validated token
type JWTClaims struct {
	Subject string `json:"sub"`
	AgentID string `json:"agent_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    string `json:"role"`
}

// IsAdmin reports whether the claims carry the admin role
func (c *JWTClaims) IsAdmin() bool {
	return c.Role == "admin"
}
