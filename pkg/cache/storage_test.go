package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layerswap/pkg/types"
)

type countingFetcher struct {
	calls    int
	settings types.Settings
	err      error
}

func (f *countingFetcher) GetSettings(context.Context) (*types.Settings, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	s := f.settings
	return &s, nil
}

func sampleSettings() types.Settings {
	return types.Settings{
		Networks:     []types.Network{{InternalName: "ETHEREUM_MAINNET", DisplayName: "Ethereum"}},
		SourceRoutes: []types.Route{{Network: "ETHEREUM_MAINNET", Asset: "ETH"}},
	}
}

func newTestStorage(t *testing.T, ttl time.Duration) (*Storage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultCacheFileName)
	s, err := NewStorage(path, ttl, nil)
	require.NoError(t, err)
	return s, path
}

func TestStoragePutGet(t *testing.T) {
	s, path := newTestStorage(t, time.Minute)

	_, ok := s.Get()
	assert.False(t, ok)

	require.NoError(t, s.Put(sampleSettings()))
	got, ok := s.Get()
	require.True(t, ok)
	assert.Equal(t, "ETHEREUM_MAINNET", got.Networks[0].InternalName)
	assert.Equal(t, path, s.GetFilePath())

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestStorageExpires(t *testing.T) {
	s, _ := newTestStorage(t, time.Minute)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Put(sampleSettings()))

	now = now.Add(59 * time.Second)
	_, ok := s.Get()
	assert.True(t, ok)

	now = now.Add(time.Second)
	_, ok = s.Get()
	assert.False(t, ok)
}

func TestStoragePersistsAcrossInstances(t *testing.T) {
	s, path := newTestStorage(t, time.Hour)
	require.NoError(t, s.Put(sampleSettings()))

	reopened, err := NewStorage(path, time.Hour, nil)
	require.NoError(t, err)

	got, ok := reopened.Get()
	require.True(t, ok)
	assert.Equal(t, sampleSettings().SourceRoutes, got.SourceRoutes)
}

func TestStorageClear(t *testing.T) {
	s, path := newTestStorage(t, time.Hour)
	require.NoError(t, s.Put(sampleSettings()))

	require.NoError(t, s.Clear())
	_, ok := s.Get()
	assert.False(t, ok)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// clearing twice is fine
	assert.NoError(t, s.Clear())
}

func TestStorageIgnoresCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultCacheFileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	s, err := NewStorage(path, time.Hour, nil)
	require.NoError(t, err)

	_, ok := s.Get()
	assert.False(t, ok)
}

func TestStorageZeroTTLDisablesCaching(t *testing.T) {
	s, path := newTestStorage(t, 0)

	require.NoError(t, s.Put(sampleSettings()))
	_, ok := s.Get()
	assert.False(t, ok)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestStorageSettingsFetchesOnce(t *testing.T) {
	s, _ := newTestStorage(t, time.Hour)
	f := &countingFetcher{settings: sampleSettings()}

	for i := 0; i < 3; i++ {
		got, err := s.Settings(context.Background(), f)
		require.NoError(t, err)
		assert.Equal(t, "Ethereum", got.Networks[0].DisplayName)
	}
	assert.Equal(t, 1, f.calls)

	require.NoError(t, s.Clear())
	_, err := s.Settings(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, 2, f.calls)
}

func TestStorageSettingsFetchError(t *testing.T) {
	s, _ := newTestStorage(t, time.Hour)
	boom := errors.New("boom")

	_, err := s.Settings(context.Background(), &countingFetcher{err: boom})
	assert.ErrorIs(t, err, boom)

	_, ok := s.Get()
	assert.False(t, ok)
}
