package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Greg-CLD/tcof/internal/catalog"
)

func TestWatcherReloadsOnFileChange(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(os.WriteFile(path, []byte("factors: []\n"), 0o600))

	var mu sync.Mutex
	reloads := 0

	w, err := catalog.NewWatcher(catalog.WatcherConfig{
		Path:     path,
		Debounce: 10 * time.Millisecond,
		Reload: func(ctx context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			reloads++
			return nil
		},
	})
	require.NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Let the watcher register before touching the file.
	time.Sleep(100 * time.Millisecond)
	require.NoError(os.WriteFile(path, []byte("factors: []\nheuristics: []\n"), 0o600))

	assert.Eventually(func() bool {
		mu.Lock()
		defer mu.Unlock()
		return reloads >= 1
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	assert.NoError(<-done)
}

func TestNewWatcher(t *testing.T) {
	reload := func(ctx context.Context) error { return nil }

	tests := map[string]struct {
		config catalog.WatcherConfig
		expErr bool
	}{
		"A config with a path and a reload function should create the watcher.": {
			config: catalog.WatcherConfig{Path: "catalog.yaml", Reload: reload},
		},
		"A config without a path should fail.": {
			config: catalog.WatcherConfig{Reload: reload},
			expErr: true,
		},
		"A config without a reload function should fail.": {
			config: catalog.WatcherConfig{Path: "catalog.yaml"},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			w, err := catalog.NewWatcher(test.config)

			if test.expErr {
				require.Error(err)
				require.Nil(w)
			} else {
				require.NoError(err)
				require.NotNil(w)
			}
		})
	}
}
