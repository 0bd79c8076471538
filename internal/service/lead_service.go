package service

import (
	"context"
	"strings"
	"time"

	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/entity"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/repository"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type CreateContactInput struct {
	ListingID   *uuid.UUID
	Kind        entity.ContactKind
	Name        string
	Email       string
	Phone       string
	City        string
	Country     string
	Message     string
	PreferredAt *time.Time
}

type CreateProposalInput struct {
	ListingID     *uuid.UUID
	Name          string
	Email         string
	Phone         string
	City          string
	Country       string
	Amount        float64
	Conditions    string
	Justification string
}

// LeadService handles the write-once public submissions: contact messages,
// visit requests and purchase proposals.
type LeadService struct {
	contacts  repository.ContactRepository
	proposals repository.ProposalRepository
	emails    EmailSender
	logger    *logrus.Logger
}

func NewLeadService(
	contacts repository.ContactRepository,
	proposals repository.ProposalRepository,
	emails EmailSender,
	logger *logrus.Logger,
) *LeadService {
	return &LeadService{
		contacts:  contacts,
		proposals: proposals,
		emails:    emails,
		logger:    logger,
	}
}

func (s *LeadService) CreateContact(ctx context.Context, input CreateContactInput) (*entity.Contact, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Message) == "" {
		return nil, ErrInvalidInput
	}

	kind := input.Kind
	if kind == "" {
		kind = entity.ContactKindMessage
	}

	contact := &entity.Contact{
		ListingID:   input.ListingID,
		Kind:        kind,
		Name:        strings.TrimSpace(input.Name),
		Email:       utils.NormalizeEmail(input.Email),
		Phone:       strings.TrimSpace(input.Phone),
		City:        strings.TrimSpace(input.City),
		Country:     strings.TrimSpace(input.Country),
		Message:     input.Message,
		PreferredAt: input.PreferredAt,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, err
	}

	s.notify(ctx, LeadNotification{
		Kind:      string(kind),
		Name:      contact.Name,
		Email:     contact.Email,
		Message:   contact.Message,
		ListingID: contact.ListingID,
	})
	return contact, nil
}

func (s *LeadService) CreateProposal(ctx context.Context, input CreateProposalInput) (*entity.Proposal, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" || input.Amount <= 0 {
		return nil, ErrInvalidInput
	}

	proposal := &entity.Proposal{
		ListingID:     input.ListingID,
		Name:          strings.TrimSpace(input.Name),
		Email:         utils.NormalizeEmail(input.Email),
		Phone:         strings.TrimSpace(input.Phone),
		City:          strings.TrimSpace(input.City),
		Country:       strings.TrimSpace(input.Country),
		Amount:        input.Amount,
		Conditions:    input.Conditions,
		Justification: input.Justification,
	}
	if err := s.proposals.Create(ctx, proposal); err != nil {
		return nil, err
	}

	s.notify(ctx, LeadNotification{
		Kind:      "proposal",
		Name:      proposal.Name,
		Email:     proposal.Email,
		Message:   proposal.Conditions,
		ListingID: proposal.ListingID,
	})
	return proposal, nil
}

// notify delivers the inbox email; a delivery failure never bubbles up to
// the submitting client.
func (s *LeadService) notify(ctx context.Context, notification LeadNotification) {
	if s.emails == nil {
		return
	}
	if err := s.emails.SendLeadNotification(ctx, notification); err != nil && s.logger != nil {
		s.logger.WithError(err).WithField("kind", notification.Kind).Warn("lead notification failed")
	}
}
