package app

import (
	"fmt"

	"github.com/techchallange/contact-backend/internal/cache"
	"github.com/techchallange/contact-backend/internal/clients/region"
	"github.com/techchallange/contact-backend/internal/logger"
	"github.com/techchallange/contact-backend/internal/messaging"
)

type Clients struct {
	Region    region.Client
	Cache     cache.Store
	Publisher messaging.Publisher
}

func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	regionClient, err := region.NewClient(log, region.Config{
		BaseURL: cfg.RegionBaseURL,
		Timeout: cfg.RegionTimeout,
	})
	if err != nil {
		return Clients{}, fmt.Errorf("init region client: %w", err)
	}

	store, err := cache.NewRedisStore(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init cache store: %w", err)
	}

	publisher, err := messaging.NewRedisPublisher(log)
	if err != nil {
		_ = store.Close()
		return Clients{}, fmt.Errorf("init event publisher: %w", err)
	}

	return Clients{
		Region:    regionClient,
		Cache:     store,
		Publisher: publisher,
	}, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.Publisher != nil {
		_ = c.Publisher.Close()
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
}
