package app

import (
	"github.com/techchallange/contact-backend/internal/handlers"
	"github.com/techchallange/contact-backend/internal/logger"
)

type Handlers struct {
	Contact *handlers.ContactHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Contact: handlers.NewContactHandler(log, serviceset.Contact),
	}
}
