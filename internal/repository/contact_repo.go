package repository

import (
	"context"

	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/entity"

	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}
