package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/discovery"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/domain"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/geo"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/plan"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/quota"
)

// Shared fakes for handler tests. Each store is a map or slice seeded per
// test; error fields force the failure paths.

type fakeUsers struct {
	users map[string]*domain.User
	err   error
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

type fakeProfiles struct {
	candidates []domain.CandidateProfile
	err        error
}

func (f *fakeProfiles) CandidatesInBox(_ context.Context, _ geo.BoundingBox, excludeUserID string) ([]domain.CandidateProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.CandidateProfile, 0, len(f.candidates))
	for _, c := range f.candidates {
		if c.ID == excludeUserID {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

type fakeTenders struct {
	created   []*domain.Tender
	count     int
	countErr  error
	createErr error
	byID      map[string]*domain.Tender
}

func (f *fakeTenders) Create(_ context.Context, t *domain.Tender) error {
	if f.createErr != nil {
		return f.createErr
	}
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	f.created = append(f.created, t)
	return nil
}

func (f *fakeTenders) CountQuotaSince(_ context.Context, _ string, _ time.Time) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.count, nil
}

func (f *fakeTenders) GetByID(_ context.Context, id string) (*domain.Tender, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

type fakeQuotes struct {
	created []*domain.Quote
	count   int
}

func (f *fakeQuotes) Create(_ context.Context, q *domain.Quote) error {
	q.CreatedAt = time.Now()
	f.created = append(f.created, q)
	return nil
}

func (f *fakeQuotes) CountByTenderAndUser(_ context.Context, _, _ string) (int, error) {
	return f.count, nil
}

type fakeAvailability struct {
	created []*domain.Availability
	err     error
}

func (f *fakeAvailability) Create(_ context.Context, a *domain.Availability) error {
	if f.err != nil {
		return f.err
	}
	a.CreatedAt = time.Now()
	f.created = append(f.created, a)
	return nil
}

var errStore = errors.New("store down")

func newTestValidator() *validator.Validate {
	return validator.New()
}

func freeUser(id string, at *geo.Point) *domain.User {
	return &domain.User{ID: id, Email: id + "@example.com", Name: "Test User", Location: at}
}

func premiumUser(id string, at *geo.Point) *domain.User {
	u := freeUser(id, at)
	premium := true
	u.TierSignal = plan.TierSignal{IsPremium: &premium}
	return u
}

func testApp(users *fakeUsers, profiles *fakeProfiles, tenders *fakeTenders, quotes *fakeQuotes, avail *fakeAvailability) *App {
	logger := zerolog.Nop()
	if tenders == nil {
		tenders = &fakeTenders{}
	}
	if quotes == nil {
		quotes = &fakeQuotes{}
	}
	if avail == nil {
		avail = &fakeAvailability{}
	}
	if profiles == nil {
		profiles = &fakeProfiles{}
	}
	return &App{
		Logger:       logger,
		Users:        users,
		Tenders:      tenders,
		Quotes:       quotes,
		Availability: avail,
		Engine:       discovery.NewEngine(profiles, logger),
		Enforcer:     quota.NewEnforcer(tenders, quotes, logger, nil),
	}
}
