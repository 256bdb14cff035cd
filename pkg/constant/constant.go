package constant

const (
	// BearerPrefix is the expected Authorization header scheme.
	BearerPrefix = "Bearer "

	// ClaimsKey is the fiber locals key holding the verified access token claims.
	ClaimsKey = "authClaims"

	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)
