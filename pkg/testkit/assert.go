package testkit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertJSONBody deep-compares two JSON payloads after normalising both
// through unmarshal, so key order and whitespace never matter.
func AssertJSONBody(t *testing.T, expected, actual []byte) {
	t.Helper()
	if len(expected) == 0 {
		return
	}

	var expVal, actVal interface{}

	require.NoError(t, json.Unmarshal(expected, &expVal),
		"expected payload is not valid JSON")
	require.NoError(t, json.Unmarshal(actual, &actVal),
		"actual payload is not valid JSON\nbody: %s", string(actual))

	assert.Equal(t, expVal, actVal, "JSON body mismatch")
}

// AssertMocksAllCalled fails the test if any mock step was never triggered.
func AssertMocksAllCalled(t *testing.T, mt *MockTransport) {
	t.Helper()
	for _, err := range mt.AssertAllCalled() {
		assert.NoError(t, err)
	}
}
