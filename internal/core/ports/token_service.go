package ports

import "github.com/talentboard/job-board-api/internal/core/domain"

// TokenClaims is the decoded payload of a verified session token. The role
// claim reflects the identity at issuance time and is advisory only;
// authorization always runs against the freshly loaded user.
type TokenClaims struct {
	UserID string
	Role   domain.Role
}

// TokenService issues and verifies signed session tokens. Implementations
// are pure over (payload, secret, clock) and safe for concurrent use.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	Verify(token string) (*TokenClaims, error)
}
