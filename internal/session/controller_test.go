package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avasiljevs/learnkeeper/internal/common"
	"github.com/avasiljevs/learnkeeper/internal/entitlement"
	"github.com/avasiljevs/learnkeeper/internal/kv"
)

// ---- fakes ----

type fakeIssuer struct {
	Ret string
	Err error

	LastUserID string
}

func (f *fakeIssuer) Issue(userID string) (string, error) {
	f.LastUserID = userID
	return f.Ret, f.Err
}

// blockingKV parks every Set until released, so tests can observe the
// controller mid-transition deterministically.
type blockingKV struct {
	*kv.MemStore

	entered chan struct{}
	release chan struct{}
}

func newBlockingKV() *blockingKV {
	return &blockingKV{
		MemStore: kv.NewMemStore(),
		entered:  make(chan struct{}, 1),
		release:  make(chan struct{}),
	}
}

func (b *blockingKV) Set(ctx context.Context, key string, value []byte) error {
	b.entered <- struct{}{}
	<-b.release
	return b.MemStore.Set(ctx, key, value)
}

func newTestController(t *testing.T, backing kv.Store) (*Controller, *Store) {
	t.Helper()
	log, _ := newTestLogger(t)
	store := NewStore(backing, log)
	issuer := &fakeIssuer{Ret: "grant-token"}
	return NewController(store, issuer, log, 0), store
}

// ---- TESTS ----

func TestController_StartWithEmptyStore(t *testing.T) {
	ctrl, _ := newTestController(t, kv.NewMemStore())

	require.NoError(t, ctrl.Start(context.Background()))

	assert.False(t, ctrl.IsAuthenticated())
	assert.False(t, ctrl.IsBusy())
	assert.Nil(t, ctrl.CurrentUser())
}

func TestController_StartRestoresPersistedSession(t *testing.T) {
	backing := kv.NewMemStore()
	ctx := context.Background()

	first, store := newTestController(t, backing)
	require.NoError(t, store.Save(ctx, &User{ID: "1", Name: "Demo User", Email: "a@b.com"}))
	require.NoError(t, first.Start(ctx))
	require.True(t, first.IsAuthenticated())

	// A fresh controller over the same backing store restores the session.
	second, _ := newTestController(t, backing)
	require.NoError(t, second.Start(ctx))
	assert.True(t, second.IsAuthenticated())
	require.NotNil(t, second.CurrentUser())
	assert.Equal(t, "a@b.com", second.CurrentUser().Email)
}

func TestController_StartDowngradesStorageFailure(t *testing.T) {
	backing := newFaultyKV()
	backing.GetErr = errors.New("keychain unavailable")
	ctrl, _ := newTestController(t, backing)

	require.NoError(t, ctrl.Start(context.Background()))
	assert.False(t, ctrl.IsAuthenticated())
	assert.False(t, ctrl.IsBusy())
}

func TestController_LoginFabricatesAndPersistsUser(t *testing.T) {
	backing := kv.NewMemStore()
	ctrl, store := newTestController(t, backing)
	ctx := context.Background()

	require.NoError(t, ctrl.Login(ctx, "a@b.com", "secret1"))

	require.True(t, ctrl.IsAuthenticated())
	u := ctrl.CurrentUser()
	require.NotNil(t, u)
	assert.Equal(t, "1", u.ID)
	assert.Equal(t, "Demo User", u.Name)
	assert.Equal(t, "a@b.com", u.Email)
	assert.NotEmpty(t, u.Avatar)

	persisted, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, u, persisted)
}

func TestController_LoginSaveFailureRevertsToUnauthenticated(t *testing.T) {
	backing := newFaultyKV()
	backing.SetErr = errors.New("disk full")
	ctrl, _ := newTestController(t, backing)

	err := ctrl.Login(context.Background(), "a@b.com", "secret1")
	require.Error(t, err)

	assert.False(t, ctrl.IsAuthenticated())
	assert.False(t, ctrl.IsBusy())
	assert.Nil(t, ctrl.CurrentUser(), "user must not be retained without successful persistence")
}

func TestController_SecondLoginWhileBusyIsRejected(t *testing.T) {
	backing := newBlockingKV()
	ctrl, _ := newTestController(t, backing)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = ctrl.Login(ctx, "a@b.com", "secret1")
	}()

	<-backing.entered // first login is now inside the store call
	assert.True(t, ctrl.IsBusy())

	err := ctrl.Login(ctx, "c@d.com", "secret2")
	assert.ErrorIs(t, err, common.ErrBusy)

	close(backing.release)
	wg.Wait()

	assert.True(t, ctrl.IsAuthenticated())
	assert.Equal(t, "a@b.com", ctrl.CurrentUser().Email)
}

func TestController_LoginHonorsContextDuringSimulatedLatency(t *testing.T) {
	log, _ := newTestLogger(t)
	store := NewStore(kv.NewMemStore(), log)
	ctrl := NewController(store, &fakeIssuer{}, log, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ctrl.Login(ctx, "a@b.com", "secret1")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ctrl.IsAuthenticated())
}

func TestController_LogoutClearsSession(t *testing.T) {
	backing := kv.NewMemStore()
	ctrl, store := newTestController(t, backing)
	ctx := context.Background()

	require.NoError(t, ctrl.Login(ctx, "a@b.com", "secret1"))
	require.NoError(t, ctrl.Logout(ctx))

	assert.False(t, ctrl.IsAuthenticated())
	assert.Nil(t, ctrl.CurrentUser())

	persisted, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, persisted)
}

func TestController_LogoutProceedsDespiteClearFailure(t *testing.T) {
	backing := newFaultyKV()
	ctrl, _ := newTestController(t, backing)
	ctx := context.Background()

	require.NoError(t, ctrl.Login(ctx, "a@b.com", "secret1"))

	backing.DeleteErr = errors.New("keychain unavailable")
	err := ctrl.Logout(ctx)
	require.Error(t, err, "the failure is still reported for diagnostics")

	assert.False(t, ctrl.IsAuthenticated(), "logout is not blocked by storage failure")
	assert.Nil(t, ctrl.CurrentUser())
}

func TestController_LogoutWithoutSession(t *testing.T) {
	ctrl, _ := newTestController(t, kv.NewMemStore())

	err := ctrl.Logout(context.Background())
	assert.ErrorIs(t, err, common.ErrUnauthenticated)
}

func TestController_UpgradeAttachesGrantAndPersists(t *testing.T) {
	backing := kv.NewMemStore()
	ctrl, store := newTestController(t, backing)
	ctx := context.Background()

	require.NoError(t, ctrl.Login(ctx, "a@b.com", "secret1"))
	require.NoError(t, ctrl.Upgrade(ctx))

	u := ctrl.CurrentUser()
	require.NotNil(t, u)
	assert.Equal(t, "grant-token", u.Entitlement)

	persisted, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "grant-token", persisted.Entitlement)
}

func TestController_UpgradeWithRealIssuerYieldsVerifiableGrant(t *testing.T) {
	log, _ := newTestLogger(t)
	store := NewStore(kv.NewMemStore(), log)
	secret := []byte("upgrade-secret")
	ctrl := NewController(store, entitlement.NewIssuer(secret, time.Hour), log, 0)
	ctx := context.Background()

	require.NoError(t, ctrl.Login(ctx, "a@b.com", "secret1"))
	require.NoError(t, ctrl.Upgrade(ctx))

	grant := ctrl.CurrentUser().Entitlement
	require.NotEmpty(t, grant)
	assert.NoError(t, entitlement.NewVerifier(secret).Verify(grant))
}

func TestController_UpgradeRequiresSession(t *testing.T) {
	ctrl, _ := newTestController(t, kv.NewMemStore())

	err := ctrl.Upgrade(context.Background())
	assert.ErrorIs(t, err, common.ErrUnauthenticated)
}

func TestController_UpgradeSaveFailureKeepsSessionUnchanged(t *testing.T) {
	backing := newFaultyKV()
	ctrl, _ := newTestController(t, backing)
	ctx := context.Background()

	require.NoError(t, ctrl.Login(ctx, "a@b.com", "secret1"))

	backing.SetErr = errors.New("disk full")
	require.Error(t, ctrl.Upgrade(ctx))

	assert.True(t, ctrl.IsAuthenticated())
	assert.Empty(t, ctrl.CurrentUser().Entitlement)
}

func TestController_SubscribeSeesEveryTransition(t *testing.T) {
	ctrl, _ := newTestController(t, kv.NewMemStore())
	ctx := context.Background()

	var mu sync.Mutex
	var seen []State
	unsubscribe := ctrl.Subscribe(func(s State) {
		mu.Lock()
		seen = append(seen, s)
		mu.Unlock()
	})

	require.NoError(t, ctrl.Login(ctx, "a@b.com", "secret1"))

	mu.Lock()
	assert.Equal(t, []State{StateAuthenticating, StateAuthenticated}, seen)
	mu.Unlock()

	unsubscribe()
	require.NoError(t, ctrl.Logout(ctx))

	mu.Lock()
	assert.Len(t, seen, 2, "no callbacks after unsubscribe")
	mu.Unlock()
}
