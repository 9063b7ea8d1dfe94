package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Without a Connect() call RDB stays nil, which is exactly the degraded mode
// the helpers must survive.

func TestGetDegradesWithoutClient(t *testing.T) {
	RDB = nil

	var dest []string
	assert.False(t, Get("products:all", &dest))
}

func TestSetAndDelDegradeWithoutClient(t *testing.T) {
	RDB = nil

	assert.NoError(t, Set("products:all", []string{"a"}, time.Minute))
	assert.NoError(t, Del("products:all"))
}

func TestRememberFallsThroughToLoader(t *testing.T) {
	RDB = nil

	loaderCalls := 0
	var products []string
	err := Remember("products:all", time.Minute, &products, func() error {
		loaderCalls++
		products = []string{"lamp", "mat"}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, loaderCalls)
	assert.Equal(t, []string{"lamp", "mat"}, products)
}

func TestRememberPropagatesLoaderError(t *testing.T) {
	RDB = nil

	wantErr := errors.New("db down")
	var products []string
	err := Remember("products:all", time.Minute, &products, func() error {
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
}
