package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/techchallange/contact-backend/internal/cache"
	"github.com/techchallange/contact-backend/internal/clients/region"
	"github.com/techchallange/contact-backend/internal/integration"
	"github.com/techchallange/contact-backend/internal/logger"
	"github.com/techchallange/contact-backend/internal/messaging"
	"github.com/techchallange/contact-backend/internal/repos"
	"github.com/techchallange/contact-backend/internal/types"
)

// ContactService composes the region client, cache-aside store, local
// persistence and the event publisher into the contact workflows. Each entry
// point runs its steps strictly in order; there is no mutual exclusion across
// concurrent invocations and no cross-resource atomicity.
type ContactService interface {
	Create(ctx context.Context, contact *types.Contact) error
	GetByID(ctx context.Context, id uuid.UUID) (*types.Contact, error)
	GetByDDD(ctx context.Context, ddd string) ([]*types.Contact, error)
	Update(ctx context.Context, contact *types.Contact) error
	RemoveByID(ctx context.Context, id uuid.UUID) error
	GetAllPaged(ctx context.Context, pageSize, page int) ([]*types.Contact, error)
	GetCount(ctx context.Context) (int64, error)
}

type ContactServiceConfig struct {
	// CreateContactChannel is the logical channel contact-created events are
	// published to.
	CreateContactChannel string
	CacheTTL             time.Duration
	// IgnorePublishFailure keeps the create workflow from failing when event
	// delivery reports false. Delivery is fire-and-forget; the consumer of
	// the published event owns durable persistence of the new contact.
	IgnorePublishFailure bool
}

type contactService struct {
	log          *logger.Logger
	contactRepo  repos.ContactRepo
	regionClient region.Client
	invoker      *integration.Invoker
	cacheStore   cache.Store
	publisher    messaging.Publisher
	cfg          ContactServiceConfig
}

func NewContactService(
	baseLog *logger.Logger,
	contactRepo repos.ContactRepo,
	regionClient region.Client,
	invoker *integration.Invoker,
	cacheStore cache.Store,
	publisher messaging.Publisher,
	cfg ContactServiceConfig,
) ContactService {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	return &contactService{
		log:          baseLog.With("service", "ContactService"),
		contactRepo:  contactRepo,
		regionClient: regionClient,
		invoker:      invoker,
		cacheStore:   cacheStore,
		publisher:    publisher,
		cfg:          cfg,
	}
}

// Create validates the referenced region and publishes a creation event. The
// contact row is not written synchronously here; durability is delegated to
// the consumer of the published event.
func (s *contactService) Create(ctx context.Context, contact *types.Contact) error {
	if contact == nil {
		return types.ErrContactNotFound
	}

	if _, err := s.lookupRegionByID(ctx, contact.RegionID); err != nil {
		return err
	}

	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}

	event := types.ContactCreatedEvent{
		ID:       contact.ID,
		Name:     contact.Name,
		Phone:    contact.Phone,
		Email:    contact.Email,
		RegionID: contact.RegionID,
	}

	sent := s.publisher.Publish(ctx, s.cfg.CreateContactChannel, event)
	if !sent {
		s.log.Warn("Contact created event was not delivered",
			"contact_id", contact.ID,
			"channel", s.cfg.CreateContactChannel,
		)
		if !s.cfg.IgnorePublishFailure {
			return types.NewServiceUnavailableError(nil)
		}
	}
	return nil
}

func (s *contactService) GetByID(ctx context.Context, id uuid.UUID) (*types.Contact, error) {
	contact, err := cache.GetOrCompute(ctx, s.cacheStore, id.String(), s.cfg.CacheTTL,
		func(ctx context.Context) (*types.Contact, error) {
			return s.contactRepo.GetByID(ctx, nil, id)
		})
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, types.ErrContactNotFound
	}
	return contact, nil
}

func (s *contactService) GetByDDD(ctx context.Context, ddd string) ([]*types.Contact, error) {
	resp, err := integration.Send(ctx, s.invoker, func() (*types.RegionResponse, error) {
		return s.regionClient.GetByDDD(ctx, ddd)
	})
	if err != nil {
		return nil, err
	}
	if resp == nil || !resp.Success || resp.Data == nil {
		return nil, types.ErrRegionNotFound
	}
	regionID := resp.Data.ID

	return cache.GetOrCompute(ctx, s.cacheStore, ddd, s.cfg.CacheTTL,
		func(ctx context.Context) ([]*types.Contact, error) {
			return s.contactRepo.GetByRegionID(ctx, nil, regionID)
		})
}

func (s *contactService) Update(ctx context.Context, contact *types.Contact) error {
	if contact == nil {
		return types.ErrContactNotFound
	}

	stored, err := s.contactRepo.GetByID(ctx, nil, contact.ID)
	if err != nil {
		return err
	}
	if stored == nil {
		return types.ErrContactNotFound
	}

	if _, err := s.lookupRegionByID(ctx, contact.RegionID); err != nil {
		return err
	}

	stored.Name = contact.Name
	stored.Phone = contact.Phone
	stored.Email = contact.Email
	stored.RegionID = contact.RegionID

	return s.contactRepo.Update(ctx, nil, stored)
}

func (s *contactService) RemoveByID(ctx context.Context, id uuid.UUID) error {
	stored, err := s.contactRepo.GetByID(ctx, nil, id)
	if err != nil {
		return err
	}
	if stored == nil {
		return types.ErrContactNotFound
	}

	stored.MarkDeleted()

	return s.contactRepo.Update(ctx, nil, stored)
}

func (s *contactService) GetAllPaged(ctx context.Context, pageSize, page int) ([]*types.Contact, error) {
	return s.contactRepo.GetAllPaged(ctx, nil, pageSize, page)
}

func (s *contactService) GetCount(ctx context.Context) (int64, error) {
	return s.contactRepo.Count(ctx, nil)
}

func (s *contactService) lookupRegionByID(ctx context.Context, regionID uuid.UUID) (*types.RegionSummary, error) {
	resp, err := integration.Send(ctx, s.invoker, func() (*types.RegionResponse, error) {
		return s.regionClient.GetByID(ctx, regionID)
	})
	if err != nil {
		return nil, err
	}
	if resp == nil || !resp.Success || resp.Data == nil {
		return nil, types.ErrRegionNotFound
	}
	return resp.Data, nil
}
