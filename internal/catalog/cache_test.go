package catalog_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Greg-CLD/tcof/internal/catalog"
	"github.com/Greg-CLD/tcof/internal/catalog/catalogmock"
	"github.com/Greg-CLD/tcof/internal/model"
)

func TestCacheLoadsLazilyAndServesFromMemory(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	factors := []model.SuccessFactor{
		{ID: "F1", Title: "Secure a project champion"},
	}

	m := &catalogmock.MockSource{}
	m.On("Factors", mock.Anything).Once().Return(factors, nil)

	cache, err := catalog.NewCache(catalog.CacheConfig{Source: m})
	require.NoError(err)

	got, err := cache.Factors(context.Background())
	require.NoError(err)
	assert.Equal(factors, got)

	// Second call must not hit the source again.
	got, err = cache.Factors(context.Background())
	require.NoError(err)
	assert.Equal(factors, got)

	m.AssertExpectations(t)
}

func TestCacheRefreshFailureKeepsPreviousCatalog(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	factors := []model.SuccessFactor{
		{ID: "F1", Title: "Secure a project champion"},
	}

	m := &catalogmock.MockSource{}
	m.On("Factors", mock.Anything).Once().Return(factors, nil)
	m.On("Factors", mock.Anything).Once().Return(nil, fmt.Errorf("catalog endpoint down"))

	cache, err := catalog.NewCache(catalog.CacheConfig{Source: m})
	require.NoError(err)

	_, err = cache.Factors(context.Background())
	require.NoError(err)

	err = cache.Refresh(context.Background())
	assert.Error(err)

	got, err := cache.Factors(context.Background())
	require.NoError(err)
	assert.Equal(factors, got)

	m.AssertExpectations(t)
}

func TestCacheRefreshReplacesCatalog(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	v1 := []model.SuccessFactor{{ID: "F1", Title: "Secure a project champion"}}
	v2 := []model.SuccessFactor{
		{ID: "F1", Title: "Secure a project champion"},
		{ID: "F2", Title: "Plan for benefits"},
	}

	m := &catalogmock.MockSource{}
	m.On("Factors", mock.Anything).Once().Return(v1, nil)
	m.On("Factors", mock.Anything).Once().Return(v2, nil)

	cache, err := catalog.NewCache(catalog.CacheConfig{Source: m})
	require.NoError(err)

	got, err := cache.Factors(context.Background())
	require.NoError(err)
	assert.Equal(v1, got)

	require.NoError(cache.Refresh(context.Background()))

	got, err = cache.Factors(context.Background())
	require.NoError(err)
	assert.Equal(v2, got)

	m.AssertExpectations(t)
}

func TestNewCache(t *testing.T) {
	tests := map[string]struct {
		config catalog.CacheConfig
		expErr bool
	}{
		"A config with a source should create the cache.": {
			config: catalog.CacheConfig{Source: &catalogmock.MockSource{}},
		},
		"A config without a source should fail.": {
			config: catalog.CacheConfig{},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			cache, err := catalog.NewCache(test.config)

			if test.expErr {
				require.Error(err)
				require.Nil(cache)
			} else {
				require.NoError(err)
				require.NotNil(cache)
			}
		})
	}
}
