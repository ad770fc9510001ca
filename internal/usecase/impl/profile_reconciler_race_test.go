package impl

import (
	"context"
	"strings"
	"sync"
	"testing"

	"gestor/internal/domain/entity"
	"gestor/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// barrier releases every waiter once n of them have arrived. Later arrivals pass straight through.
type barrier struct {
	mu      sync.Mutex
	pending int
	release chan struct{}
}

func newBarrier(n int) *barrier {
	return &barrier{pending: n, release: make(chan struct{})}
}

func (b *barrier) wait() {
	b.mu.Lock()
	b.pending--
	if b.pending == 0 {
		close(b.release)
	}
	b.mu.Unlock()
	<-b.release
}

// memProfileRepository enforces the same unique keys as the profiles table.
type memProfileRepository struct {
	mu       sync.Mutex
	profiles []entity.Profile
	inserts  *barrier
}

func (r *memProfileRepository) find(match func(p *entity.Profile) bool) (*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.profiles {
		if match(&r.profiles[i]) {
			p := r.profiles[i]
			return &p, nil
		}
	}

	return nil, repository.ErrProfileNotFound
}

func (r *memProfileRepository) FindByAccountID(_ context.Context, accountID uuid.UUID) (*entity.Profile, error) {
	return r.find(func(p *entity.Profile) bool { return p.AccountID == accountID })
}

func (r *memProfileRepository) FindByUsername(_ context.Context, username string) (*entity.Profile, error) {
	return r.find(func(p *entity.Profile) bool { return p.Username == username })
}

func (r *memProfileRepository) FindByPhone(_ context.Context, phone string) (*entity.Profile, error) {
	return r.find(func(p *entity.Profile) bool { return p.Phone == phone })
}

func (r *memProfileRepository) FindByEmail(_ context.Context, email string) (*entity.Profile, error) {
	return r.find(func(p *entity.Profile) bool { return strings.EqualFold(p.Email, email) })
}

func (r *memProfileRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, err := r.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return false, nil
	}

	return err == nil, err
}

func (r *memProfileRepository) Create(_ context.Context, profile *entity.Profile) error {
	if r.inserts != nil {
		r.inserts.wait()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		var constraint string
		switch {
		case p.AccountID == profile.AccountID:
			constraint = repository.ConstraintProfileAccountID
		case p.Username == profile.Username:
			constraint = repository.ConstraintProfileUsername
		case profile.Email != "" && p.Email == profile.Email:
			constraint = repository.ConstraintProfileEmail
		default:
			continue
		}
		return &repository.ConstraintError{Constraint: constraint, Err: errors.New("duplicate key value violates unique constraint")}
	}

	profile.ID = uuid.New()
	r.profiles = append(r.profiles, *profile)

	return nil
}

func (r *memProfileRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.profiles)
}

type memRoleRepository struct {
	mu          sync.Mutex
	assignments []entity.RoleAssignment
}

func (r *memRoleRepository) FindByKey(_ context.Context, key string) (*entity.Role, error) {
	if key != testRole.Key {
		return nil, repository.ErrRoleNotFound
	}

	return testRole, nil
}

func (r *memRoleRepository) Assign(_ context.Context, profileID, roleID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assignments = append(r.assignments, entity.RoleAssignment{ProfileID: profileID, RoleID: roleID})

	return nil
}

func newRaceReconciler(profiles *memProfileRepository, roles *memRoleRepository) *profileReconciler {
	return NewProfileReconciler(ProfileReconcilerParams{
		ProfileRepo: profiles,
		RoleRepo:    roles,
		Config:      testConfig(),
		Logger:      testLogger(),
	}).(*profileReconciler)
}

// ensureConcurrently runs EnsureProfile for every account at the same time.
func ensureConcurrently(reconciler *profileReconciler, accounts ...*entity.Account) ([]*entity.Profile, []error) {
	profiles := make([]*entity.Profile, len(accounts))
	errs := make([]error, len(accounts))

	var wg sync.WaitGroup
	for i, account := range accounts {
		wg.Add(1)
		go func(i int, account *entity.Account) {
			defer wg.Done()
			profiles[i], errs[i] = reconciler.EnsureProfile(context.Background(), account)
		}(i, account)
	}
	wg.Wait()

	return profiles, errs
}

func TestProfileReconciler_ConcurrentFirstLoginCreatesOneProfile(t *testing.T) {
	profiles := &memProfileRepository{inserts: newBarrier(2)}
	roles := &memRoleRepository{}
	reconciler := newRaceReconciler(profiles, roles)
	account := testAccount("ana@example.com")

	got, errs := ensureConcurrently(reconciler, account, account)

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, got[0].ID, got[1].ID)
	assert.Equal(t, "ana", got[0].Username)
	assert.Equal(t, 1, profiles.count())
	assert.Len(t, roles.assignments, 1)
}

func TestProfileReconciler_ConcurrentUsernameCollision(t *testing.T) {
	profiles := &memProfileRepository{inserts: newBarrier(2)}
	roles := &memRoleRepository{}
	reconciler := newRaceReconciler(profiles, roles)
	first := testAccount("ana@example.com")
	second := testAccount("ana@example.org")

	got, errs := ensureConcurrently(reconciler, first, second)

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.NotEqual(t, got[0].ID, got[1].ID)
	assert.ElementsMatch(t, []string{"ana", "ana-01"}, []string{got[0].Username, got[1].Username})
	assert.Equal(t, 2, profiles.count())
	assert.Len(t, roles.assignments, 2)
}

func TestProfileReconciler_SecondLoginReusesProfile(t *testing.T) {
	profiles := &memProfileRepository{}
	reconciler := newRaceReconciler(profiles, &memRoleRepository{})
	account := testAccount("ana@example.com")

	first, err := reconciler.EnsureProfile(context.Background(), account)
	require.NoError(t, err)
	second, err := reconciler.EnsureProfile(context.Background(), account)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, profiles.count())
}
