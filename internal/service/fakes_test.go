package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/entity"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/repository"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*entity.Session)}
}

func (r *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session.ID = uuid.New()
	session.CreatedAt = time.Now()
	copied := *session
	r.sessions[session.ID] = &copied
	return nil
}

func (r *fakeSessionRepo) FindActive(_ context.Context, id uuid.UUID) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok || session.RevokedAt != nil || session.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (r *fakeSessionRepo) Revoke(_ context.Context, sessionID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if session, ok := r.sessions[sessionID]; ok {
		now := time.Now()
		session.RevokedAt = &now
	}
	return nil
}

type fakeListingRepo struct {
	mu       sync.Mutex
	listings map[uuid.UUID]*entity.Listing
	err      error
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[uuid.UUID]*entity.Listing)}
}

func (r *fakeListingRepo) Create(_ context.Context, listing *entity.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	listing.ID = uuid.New()
	listing.CreatedAt = time.Now()
	listing.UpdatedAt = listing.CreatedAt
	copied := *listing
	r.listings[listing.ID] = &copied
	return nil
}

func (r *fakeListingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	listing, ok := r.listings[id]
	if !ok {
		return nil, nil
	}
	copied := *listing
	return &copied, nil
}

func (r *fakeListingRepo) ListApproved(_ context.Context, filter repository.ListingFilter) ([]entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Listing
	for _, listing := range r.listings {
		if listing.Status != entity.ListingStatusApproved {
			continue
		}
		if filter.Brand != "" && listing.Brand != filter.Brand {
			continue
		}
		if filter.City != "" && listing.City != filter.City {
			continue
		}
		out = append(out, *listing)
	}
	return out, nil
}

func (r *fakeListingRepo) ListByStatus(_ context.Context, status entity.ListingStatus, limit, offset int) ([]entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Listing
	for _, listing := range r.listings {
		if listing.Status == status {
			out = append(out, *listing)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) SetStatus(_ context.Context, id uuid.UUID, status entity.ListingStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	listing, ok := r.listings[id]
	if !ok {
		return false, nil
	}
	listing.Status = status
	listing.UpdatedAt = time.Now()
	return true, nil
}

type fakeVisitRepo struct {
	mu     sync.Mutex
	visits map[uuid.UUID]*entity.Visit
}

func newFakeVisitRepo() *fakeVisitRepo {
	return &fakeVisitRepo{visits: make(map[uuid.UUID]*entity.Visit)}
}

func (r *fakeVisitRepo) Create(_ context.Context, visit *entity.Visit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	visit.ID = uuid.New()
	visit.CreatedAt = time.Now()
	visit.UpdatedAt = visit.CreatedAt
	copied := *visit
	r.visits[visit.ID] = &copied
	return nil
}

func (r *fakeVisitRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Visit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	visit, ok := r.visits[id]
	if !ok {
		return nil, nil
	}
	copied := *visit
	return &copied, nil
}

func (r *fakeVisitRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]entity.Visit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Visit
	for _, visit := range r.visits {
		if visit.UserID == userID {
			out = append(out, *visit)
		}
	}
	return out, nil
}

// Confirm mirrors the production guarded update: ownership and pending
// state checked under the same lock that performs the write.
func (r *fakeVisitRepo) Confirm(_ context.Context, visitID, userID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	visit, ok := r.visits[visitID]
	if !ok || visit.UserID != userID || visit.Status != entity.VisitStatusPending {
		return false, nil
	}
	visit.Status = entity.VisitStatusConfirmed
	visit.UpdatedAt = time.Now()
	return true, nil
}

func (r *fakeVisitRepo) HasConfirmed(_ context.Context, userID, listingID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, visit := range r.visits {
		if visit.UserID == userID && visit.ListingID == listingID && visit.Status == entity.VisitStatusConfirmed {
			return true, nil
		}
	}
	return false, nil
}

type fakeCodeRepo struct {
	mu    sync.Mutex
	codes map[string]*entity.AuthorizationCode
}

func newFakeCodeRepo() *fakeCodeRepo {
	return &fakeCodeRepo{codes: make(map[string]*entity.AuthorizationCode)}
}

func (r *fakeCodeRepo) Create(_ context.Context, code *entity.AuthorizationCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	code.ID = uuid.New()
	code.CreatedAt = time.Now()
	copied := *code
	r.codes[code.Code] = &copied
	return nil
}

func (r *fakeCodeRepo) FindByCode(_ context.Context, code string) (*entity.AuthorizationCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.codes[code]
	if !ok {
		return nil, nil
	}
	copied := *record
	return &copied, nil
}

// Redeem mirrors the production conditional update: the unused check and
// the flip happen atomically under one lock.
func (r *fakeCodeRepo) Redeem(_ context.Context, code string, listingID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.codes[code]
	if !ok || record.ListingID != listingID || record.Used {
		return false, nil
	}
	now := time.Now()
	record.Used = true
	record.UsedAt = &now
	return true, nil
}

type fakeContactRepo struct {
	mu      sync.Mutex
	created []entity.Contact
	err     error
}

func (r *fakeContactRepo) Create(_ context.Context, contact *entity.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	contact.ID = uuid.New()
	contact.CreatedAt = time.Now()
	r.created = append(r.created, *contact)
	return nil
}

type fakeProposalRepo struct {
	mu      sync.Mutex
	created []entity.Proposal
	err     error
}

func (r *fakeProposalRepo) Create(_ context.Context, proposal *entity.Proposal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	proposal.ID = uuid.New()
	proposal.CreatedAt = time.Now()
	r.created = append(r.created, *proposal)
	return nil
}

type capturedEmailSender struct {
	mu            sync.Mutex
	notifications []LeadNotification
	err           error
}

func (s *capturedEmailSender) SendLeadNotification(_ context.Context, n LeadNotification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.notifications = append(s.notifications, n)
	return nil
}

type fakeGateway struct {
	session  PaymentSession
	err      error
	gotInput CheckoutInput
	calls    int
}

func (g *fakeGateway) CreateCheckoutSession(_ context.Context, input CheckoutInput) (PaymentSession, error) {
	g.calls++
	g.gotInput = input
	if g.err != nil {
		return PaymentSession{}, g.err
	}
	return g.session, nil
}

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Verify(hash string, password string) bool {
	return strings.TrimPrefix(hash, "hashed:") == password
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type staticTokenIssuer struct {
	token string
}

func (i staticTokenIssuer) IssueAccessToken(_ entity.User, _ uuid.UUID) (string, time.Duration, error) {
	return i.token, 15 * time.Minute, nil
}
