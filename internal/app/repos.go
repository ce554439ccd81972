package app

import (
	"gorm.io/gorm"

	"github.com/techchallange/contact-backend/internal/logger"
	"github.com/techchallange/contact-backend/internal/repos"
)

type Repos struct {
	Contact repos.ContactRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Contact: repos.NewContactRepo(db, log),
	}
}
