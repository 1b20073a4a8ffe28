package interfaces

import (
	"field_estimator/internal/domain/entities"
	"time"
)

// ITokenIssuer signs bearer tokens for an authenticated principal.
type ITokenIssuer interface {
	Issue(p entities.Principal) (token string, expiresAt time.Time, err error)
}

type IPasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
