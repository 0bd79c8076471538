package repository

import (
	"context"

	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/entity"

	"gorm.io/gorm"
)

type ProposalRepository interface {
	Create(ctx context.Context, proposal *entity.Proposal) error
}

type proposalRepository struct {
	db *gorm.DB
}

func NewProposalRepository(db *gorm.DB) ProposalRepository {
	return &proposalRepository{db: db}
}

func (r *proposalRepository) Create(ctx context.Context, proposal *entity.Proposal) error {
	return r.db.WithContext(ctx).Create(proposal).Error
}
