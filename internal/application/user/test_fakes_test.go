package user

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/baechuer/board-service/internal/domain"
	"github.com/baechuer/board-service/internal/validation"
)

/*
Fakes for ports
*/

type fakeUserRepo struct {
	mu sync.Mutex

	nextID  int64
	byEmail map[string]domain.User

	// injected errors (if set, method returns error)
	getByEmailErr error
	existsErr     error
	createErr     error

	// when set, ExistsByEmail reports false even for stored emails so a
	// duplicate reaches Create (simulates a racing insert)
	hideExisting bool

	created []domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]domain.User{}}
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getByEmailErr != nil {
		return domain.User{}, f.getByEmailErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.existsErr != nil {
		return false, f.existsErr
	}
	if f.hideExisting {
		return false, nil
	}
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return domain.User{}, f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.User{}, domain.ErrEmailAlreadyExists()
	}
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	f.byEmail[u.Email] = u
	f.created = append(f.created, u)
	return u, nil
}

type fakeHasher struct {
	hashErr error
}

func (h fakeHasher) Hash(pw string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hash:" + pw, nil
}

func (h fakeHasher) Matches(hash, pw string) bool {
	return strings.HasPrefix(hash, "hash:") && hash == "hash:"+pw
}

type fakeIssuer struct {
	err   error
	calls []struct {
		id   int64
		name string
		role domain.Role
	}
}

func (f *fakeIssuer) Issue(id int64, name string, role domain.Role) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.calls = append(f.calls, struct {
		id   int64
		name string
		role domain.Role
	}{id, name, role})
	return "tok-" + name, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	err    error
	events []UserRegisteredEvent
}

func (p *fakePublisher) PublishUserRegistered(ctx context.Context, evt UserRegisteredEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return p.err
}

type auditEntry struct {
	action string
	fields map[string]string
}

type testDeps struct {
	repo   *fakeUserRepo
	issuer *fakeIssuer
	pub    *fakePublisher
	audits *[]auditEntry
}

func newSvcForTest() (*Service, testDeps) {
	deps := testDeps{
		repo:   newFakeUserRepo(),
		issuer: &fakeIssuer{},
		pub:    &fakePublisher{},
		audits: &[]auditEntry{},
	}
	svc := NewService(deps.repo, fakeHasher{}, deps.issuer, deps.pub, validation.New()).
		WithAudit(func(action string, fields map[string]string) {
			*deps.audits = append(*deps.audits, auditEntry{action: action, fields: fields})
		})
	return svc, deps
}

var errBoom = errors.New("boom")
