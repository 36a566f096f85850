package manifest_test

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"loadout-manager/core/cache"
	"loadout-manager/core/destiny"
	"loadout-manager/core/manifest"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRemote struct {
	mu              sync.Mutex
	version         string
	tables          map[string]manifest.Table
	descriptorErr   error
	componentErr    error
	descriptorCalls int
	componentCalls  int
}

func (f *fakeRemote) FetchManifestDescriptor(ctx context.Context) (*manifest.Descriptor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.descriptorCalls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.descriptorErr != nil {
		return nil, f.descriptorErr
	}
	paths := make(map[string]string, len(f.tables))
	for name := range f.tables {
		paths[name] = "/content/" + f.version + "/" + name + ".json"
	}
	return &manifest.Descriptor{Version: f.version, ComponentPaths: paths}, nil
}

func (f *fakeRemote) FetchComponent(_ context.Context, name, _ string) (*manifest.ComponentData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.componentCalls++
	if f.componentErr != nil {
		return nil, f.componentErr
	}
	return &manifest.ComponentData{ComponentName: name, Data: f.tables[name]}, nil
}

func (f *fakeRemote) counts() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.descriptorCalls, f.componentCalls
}

// failingCache rejects every write.
type failingCache struct {
	*cache.Memory
}

func (c failingCache) Add(context.Context, string, string, []byte) error {
	return assert.AnError
}

// unreadableCache fails every read of the config namespace.
type unreadableCache struct {
	*cache.Memory
}

func (c unreadableCache) Get(ctx context.Context, namespace, key string) ([]byte, bool, error) {
	if namespace == manifest.NamespaceConfig {
		return nil, false, assert.AnError
	}
	return c.Memory.Get(ctx, namespace, key)
}

// uninitialisableCache cannot prepare its namespaces.
type uninitialisableCache struct {
	*cache.Memory
}

func (c uninitialisableCache) Init(context.Context, ...string) error {
	return assert.AnError
}

func rawTable(t *testing.T, defs map[uint32]any) manifest.Table {
	t.Helper()
	table := make(manifest.Table, len(defs))
	for hash, def := range defs {
		raw, err := json.Marshal(def)
		require.NoError(t, err)
		table[strconv.FormatUint(uint64(hash), 10)] = raw
	}
	return table
}

func newRemote(t *testing.T, version string) *fakeRemote {
	t.Helper()
	tables := map[string]manifest.Table{
		destiny.ComponentInventoryItem: rawTable(t, map[uint32]any{
			100: map[string]any{"hash": 100, "displayProperties": map[string]any{"name": "Ace of Spades", "icon": "/img/ace.jpg"}, "inventory": map[string]any{"tierType": 6}},
			200: map[string]any{"hash": 200, "displayProperties": map[string]any{"name": "Rampage <Spec>"}},
		}),
		destiny.ComponentSocketType:      rawTable(t, map[uint32]any{1: map[string]any{"hash": 1, "socketCategoryHash": 2685412949}}),
		destiny.ComponentSocketCategory:  rawTable(t, map[uint32]any{2685412949: map[string]any{"hash": 2685412949}}),
		destiny.ComponentDamageType:      rawTable(t, map[uint32]any{3373582085: map[string]any{"hash": 3373582085, "enumValue": 1}}),
		destiny.ComponentEnergyType:      rawTable(t, map[uint32]any{728351493: map[string]any{"hash": 728351493}}),
		destiny.ComponentStat:            rawTable(t, map[uint32]any{1480404414: map[string]any{"hash": 1480404414, "displayProperties": map[string]any{"name": "Attack"}}}),
		destiny.ComponentInventoryBucket: rawTable(t, map[uint32]any{1498876634: map[string]any{"hash": 1498876634}}),
	}
	return &fakeRemote{version: version, tables: tables}
}

func assertSameStore(t *testing.T, want, got *manifest.Store) {
	t.Helper()
	assert.Equal(t, want.Components(), got.Components())
	for _, name := range want.Components() {
		wantTable, _ := want.Table(name)
		assert.Equal(t, len(wantTable), got.Len(name), name)
		for hash, raw := range wantTable {
			gotRaw, ok := got.Raw(name, hash)
			if assert.True(t, ok, "%s/%s", name, hash) {
				assert.JSONEq(t, string(raw), string(gotRaw))
			}
		}
	}
}

func TestInitializeWithoutCache(t *testing.T) {
	remote := newRemote(t, "v1")
	svc := manifest.NewService(remote, nil, nil, zap.NewNop())

	store, err := svc.Initialize(context.Background())
	require.NoError(t, err)

	assert.True(t, store.IsComplete(destiny.DefaultComponents))
	descriptorCalls, componentCalls := remote.counts()
	assert.Equal(t, 1, descriptorCalls)
	assert.Equal(t, len(destiny.DefaultComponents), componentCalls)
	assert.Equal(t, "v1", svc.Version())
}

func TestInitializeFirstRunPersists(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemory()
	svc := manifest.NewService(newRemote(t, "v1"), store, nil, zap.NewNop())

	_, err := svc.Initialize(ctx)
	require.NoError(t, err)

	marker, found, err := store.Get(ctx, manifest.NamespaceConfig, manifest.VersionKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v1", string(marker))

	keys, err := store.Keys(ctx, manifest.NamespaceManifest)
	require.NoError(t, err)
	assert.ElementsMatch(t, destiny.DefaultComponents, keys)
}

func TestInitializeFromValidCache(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemory()

	fresh, err := manifest.NewService(newRemote(t, "v1"), store, nil, zap.NewNop()).Initialize(ctx)
	require.NoError(t, err)

	remote := newRemote(t, "v1")
	cached, err := manifest.NewService(remote, store, nil, zap.NewNop()).Initialize(ctx)
	require.NoError(t, err)

	descriptorCalls, componentCalls := remote.counts()
	assert.Equal(t, 1, descriptorCalls)
	assert.Equal(t, 0, componentCalls)
	assertSameStore(t, fresh, cached)

	def, ok := cached.InventoryItem(200)
	require.True(t, ok)
	assert.Equal(t, "Rampage <Spec>", def.DisplayProperties.Name)
}

func TestInitializeStaleCache(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemory()
	require.NoError(t, store.Init(ctx, manifest.NamespaceConfig, manifest.NamespaceManifest))
	require.NoError(t, store.Put(ctx, manifest.NamespaceConfig, manifest.VersionKey, []byte("v1")))
	require.NoError(t, store.Add(ctx, manifest.NamespaceManifest, "DestinyObsoleteDefinition", []byte(`{"1":{}}`)))

	remote := newRemote(t, "v2")
	result, err := manifest.NewService(remote, store, nil, zap.NewNop()).Initialize(ctx)
	require.NoError(t, err)

	_, componentCalls := remote.counts()
	assert.Equal(t, len(destiny.DefaultComponents), componentCalls)
	assert.True(t, result.IsComplete(destiny.DefaultComponents))

	marker, _, err := store.Get(ctx, manifest.NamespaceConfig, manifest.VersionKey)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(marker))

	keys, err := store.Keys(ctx, manifest.NamespaceManifest)
	require.NoError(t, err)
	assert.NotContains(t, keys, "DestinyObsoleteDefinition")
}

func TestInitializeRecoversFromCorruption(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemory()

	_, err := manifest.NewService(newRemote(t, "v1"), store, nil, zap.NewNop()).Initialize(ctx)
	require.NoError(t, err)

	// Same version, but one required table is empty
	require.NoError(t, store.Put(ctx, manifest.NamespaceManifest, destiny.ComponentStat, []byte("{}")))

	remote := newRemote(t, "v1")
	result, err := manifest.NewService(remote, store, nil, zap.NewNop()).Initialize(ctx)
	require.NoError(t, err)

	_, componentCalls := remote.counts()
	assert.Equal(t, len(destiny.DefaultComponents), componentCalls)
	assert.True(t, result.IsComplete(destiny.DefaultComponents))

	value, found, err := store.Get(ctx, manifest.NamespaceManifest, destiny.ComponentStat)
	require.NoError(t, err)
	assert.True(t, found)
	assert.NotEqual(t, "{}", string(value))
}

func TestInitializeUndecodableCacheEntry(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemory()

	_, err := manifest.NewService(newRemote(t, "v1"), store, nil, zap.NewNop()).Initialize(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, manifest.NamespaceManifest, destiny.ComponentDamageType, []byte("not json")))

	remote := newRemote(t, "v1")
	result, err := manifest.NewService(remote, store, nil, zap.NewNop()).Initialize(ctx)
	require.NoError(t, err)

	_, componentCalls := remote.counts()
	assert.Equal(t, len(destiny.DefaultComponents), componentCalls)
	assert.True(t, result.IsComplete(destiny.DefaultComponents))
}

func TestInitializeRemoteFailure(t *testing.T) {
	t.Run("Descriptor", func(t *testing.T) {
		remote := newRemote(t, "v1")
		remote.descriptorErr = errors.New("connection reset")
		svc := manifest.NewService(remote, cache.NewMemory(), nil, zap.NewNop())

		store, err := svc.Initialize(context.Background())
		assert.ErrorIs(t, err, destiny.ErrRemoteUnavailable)
		assert.Nil(t, store)
		assert.Empty(t, svc.Version())
	})

	t.Run("Component", func(t *testing.T) {
		remote := newRemote(t, "v1")
		remote.componentErr = errors.New("503")
		svc := manifest.NewService(remote, cache.NewMemory(), nil, zap.NewNop())

		store, err := svc.Initialize(context.Background())
		assert.ErrorIs(t, err, destiny.ErrRemoteUnavailable)
		assert.Nil(t, store)
	})

	t.Run("ComponentNotAdvertised", func(t *testing.T) {
		remote := newRemote(t, "v1")
		svc := manifest.NewService(remote, nil, []string{"DestinyUnknownDefinition"}, zap.NewNop())

		_, err := svc.Initialize(context.Background())
		assert.ErrorIs(t, err, destiny.ErrRemoteUnavailable)
	})
}

func TestInitializeCacheWriteFailure(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemory()
	svc := manifest.NewService(newRemote(t, "v1"), failingCache{mem}, nil, zap.NewNop())

	store, err := svc.Initialize(ctx)
	require.NoError(t, err)
	assert.True(t, store.IsComplete(destiny.DefaultComponents))

	// No marker over an incomplete component set
	_, found, err := mem.Get(ctx, manifest.NamespaceConfig, manifest.VersionKey)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInitializeCacheReadFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("VersionMarker", func(t *testing.T) {
		mem := cache.NewMemory()
		remote := newRemote(t, "v1")
		svc := manifest.NewService(remote, unreadableCache{mem}, nil, zap.NewNop())

		store, err := svc.Initialize(ctx)
		require.NoError(t, err)
		assert.True(t, store.IsComplete(destiny.DefaultComponents))
		assert.Equal(t, "v1", svc.Version())

		_, componentCalls := remote.counts()
		assert.Equal(t, len(destiny.DefaultComponents), componentCalls)

		// Nothing is written to a cache that cannot be read
		keys, err := mem.Keys(ctx, manifest.NamespaceManifest)
		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("Init", func(t *testing.T) {
		svc := manifest.NewService(newRemote(t, "v1"), uninitialisableCache{cache.NewMemory()}, nil, zap.NewNop())

		store, err := svc.Initialize(ctx)
		require.NoError(t, err)
		assert.True(t, store.IsComplete(destiny.DefaultComponents))
	})
}

func TestStoreIgnoresCallerCancellation(t *testing.T) {
	remote := newRemote(t, "v1")
	svc := manifest.NewService(remote, nil, nil, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store, err := svc.Store(ctx)
	require.NoError(t, err)
	assert.True(t, store.IsComplete(destiny.DefaultComponents))

	_, err = svc.Initialize(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStoreInitialisesOnce(t *testing.T) {
	remote := newRemote(t, "v1")
	svc := manifest.NewService(remote, nil, nil, zap.NewNop())

	var wg sync.WaitGroup
	stores := make([]*manifest.Store, 8)
	for i := range stores {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := svc.Store(context.Background())
			assert.NoError(t, err)
			stores[i] = s
		}()
	}
	wg.Wait()

	for _, s := range stores {
		assert.Same(t, stores[0], s)
	}
	descriptorCalls, _ := remote.counts()
	assert.Equal(t, 1, descriptorCalls)

	svc.Invalidate()
	assert.Empty(t, svc.Version())
	_, err := svc.Store(context.Background())
	require.NoError(t, err)
	descriptorCalls, _ = remote.counts()
	assert.Equal(t, 2, descriptorCalls)
}

func TestStatusAndRepair(t *testing.T) {
	ctx := context.Background()

	t.Run("CacheDisabled", func(t *testing.T) {
		svc := manifest.NewService(newRemote(t, "v1"), nil, nil, zap.NewNop())
		_, err := svc.Status(ctx)
		assert.ErrorIs(t, err, manifest.ErrCacheDisabled)
		_, err = svc.Repair(ctx)
		assert.ErrorIs(t, err, manifest.ErrCacheDisabled)
	})

	t.Run("EmptyCache", func(t *testing.T) {
		svc := manifest.NewService(newRemote(t, "v1"), cache.NewMemory(), nil, zap.NewNop())
		st, err := svc.Status(ctx)
		require.NoError(t, err)
		assert.False(t, st.Current)
		assert.False(t, st.Healthy())
		assert.ElementsMatch(t, destiny.DefaultComponents, st.Missing)
	})

	t.Run("RepairRestoresHealth", func(t *testing.T) {
		store := cache.NewMemory()
		svc := manifest.NewService(newRemote(t, "v1"), store, nil, zap.NewNop())
		_, err := svc.Initialize(ctx)
		require.NoError(t, err)
		require.NoError(t, store.Put(ctx, manifest.NamespaceManifest, destiny.ComponentStat, []byte("{}")))

		st, err := svc.Status(ctx)
		require.NoError(t, err)
		assert.True(t, st.Current)
		assert.Equal(t, []string{destiny.ComponentStat}, st.Missing)
		assert.False(t, st.Healthy())

		_, err = svc.Repair(ctx)
		require.NoError(t, err)

		st, err = svc.Status(ctx)
		require.NoError(t, err)
		assert.True(t, st.Healthy())
		assert.Equal(t, "v1", st.LoadedVersion)
		for _, cs := range st.Components {
			assert.True(t, cs.Cached, cs.Name)
			assert.Positive(t, cs.Entries, cs.Name)
		}
	})
}
