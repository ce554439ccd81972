package app

import (
	"github.com/techchallange/contact-backend/internal/integration"
	"github.com/techchallange/contact-backend/internal/logger"
	"github.com/techchallange/contact-backend/internal/services"
)

type Services struct {
	Contact services.ContactService
}

func wireServices(log *logger.Logger, cfg Config, clientset Clients, reposet Repos) Services {
	log.Info("Wiring services...")

	invoker := integration.NewInvoker(log, integration.Policy{
		MaxRetries: cfg.RetryCount,
		Delay:      cfg.RetryDelay,
	})

	contactService := services.NewContactService(
		log,
		reposet.Contact,
		clientset.Region,
		invoker,
		clientset.Cache,
		clientset.Publisher,
		services.ContactServiceConfig{
			CreateContactChannel: cfg.CreateContactChannel,
			CacheTTL:             cfg.CacheTTL,
			IgnorePublishFailure: true,
		},
	)

	return Services{
		Contact: contactService,
	}
}
