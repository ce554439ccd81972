package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techchallange/contact-backend/internal/logger"
	"github.com/techchallange/contact-backend/internal/types"
)

type ContactRepo interface {
	Create(ctx context.Context, tx *gorm.DB, contact *types.Contact) error
	Update(ctx context.Context, tx *gorm.DB, contact *types.Contact) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Contact, error)
	GetByRegionID(ctx context.Context, tx *gorm.DB, regionID uuid.UUID) ([]*types.Contact, error)
	GetAllPaged(ctx context.Context, tx *gorm.DB, pageSize, page int) ([]*types.Contact, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type contactRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContactRepo(db *gorm.DB, baseLog *logger.Logger) ContactRepo {
	repoLog := baseLog.With("repo", "ContactRepo")
	return &contactRepo{db: db, log: repoLog}
}

func (cr *contactRepo) Create(ctx context.Context, tx *gorm.DB, contact *types.Contact) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if contact == nil {
		return nil
	}

	return transaction.WithContext(ctx).Create(contact).Error
}

func (cr *contactRepo) Update(ctx context.Context, tx *gorm.DB, contact *types.Contact) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if contact == nil || contact.ID == uuid.Nil {
		return nil
	}

	return transaction.WithContext(ctx).Save(contact).Error
}

func (cr *contactRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Contact
	if err := transaction.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (cr *contactRepo) GetByRegionID(ctx context.Context, tx *gorm.DB, regionID uuid.UUID) ([]*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Contact
	if err := transaction.WithContext(ctx).
		Where("region_id = ? AND is_deleted = ?", regionID, false).
		Order("name").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *contactRepo) GetAllPaged(ctx context.Context, tx *gorm.DB, pageSize, page int) ([]*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if pageSize <= 0 {
		pageSize = 10
	}
	if page < 0 {
		page = 0
	}

	var results []*types.Contact
	if err := transaction.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("name").
		Limit(pageSize).
		Offset(page * pageSize).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *contactRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Contact{}).
		Where("is_deleted = ?", false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
