package models

// JWTClaims are the token claims the dashboard routes rely on. The token
// is validated at the edge; the service only reads the claims payload.
type JWTClaims struct {
	PreferredUsername string `json:"preferred_username"`
	Email             string `json:"email"`
	Name              string `json:"name"`
	RealmAccess       struct {
		Roles []string `json:"roles"`
	} `json:"realm_access"`
}
