package store

import "github.com/MKhiriev/go-chirpy/internal/logger"

// Repositories groups every repository backed by one database.
type Repositories struct {
	UserRepository         UserRepository
	ChirpRepository        ChirpRepository
	RefreshTokenRepository RefreshTokenRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db, logger),
		ChirpRepository:        NewChirpRepository(db, logger),
		RefreshTokenRepository: NewRefreshTokenRepository(db, logger),
	}
}
