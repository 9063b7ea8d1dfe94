// Package testkit provides test doubles for outbound HTTP calls and small
// JSON assertion helpers built on testify.
package testkit

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// MockStep describes one expected outbound HTTP call.
type MockStep struct {
	MatchURL   string // substring matched against the request URL
	StatusCode int
	Body       string
	Err        error // returned instead of a response when set
}

// MockTransport implements http.RoundTripper. It matches outgoing requests
// against its steps and returns synthetic responses instead of making real
// network calls.
//
// Install it on the shared client before the test:
//
//	mt := testkit.NewMockTransport(steps...)
//	http.DefaultClient.Transport = mt
//	defer http.ResetTransport()
type MockTransport struct {
	mu    sync.Mutex
	steps []mockEntry
}

type mockEntry struct {
	step      MockStep
	callCount int
}

// NewMockTransport builds a MockTransport from the given steps.
func NewMockTransport(steps ...MockStep) *MockTransport {
	mt := &MockTransport{}
	for _, s := range steps {
		mt.steps = append(mt.steps, mockEntry{step: s})
	}
	return mt
}

// RoundTrip intercepts the outgoing request and returns a synthetic response.
func (mt *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	for i := range mt.steps {
		entry := &mt.steps[i]
		if !strings.Contains(req.URL.String(), entry.step.MatchURL) {
			continue
		}

		entry.callCount++
		if entry.step.Err != nil {
			return nil, entry.step.Err
		}

		status := entry.step.StatusCode
		if status == 0 {
			status = http.StatusOK
		}
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(entry.step.Body)),
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Request:    req,
		}, nil
	}

	return nil, fmt.Errorf("testkit: unexpected outgoing HTTP call to %s, no matching mock step", req.URL)
}

// AssertAllCalled returns one error per step that was never triggered.
func (mt *MockTransport) AssertAllCalled() []error {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	var errs []error
	for _, entry := range mt.steps {
		if entry.callCount == 0 {
			errs = append(errs, fmt.Errorf("testkit: mock step %q was never called", entry.step.MatchURL))
		}
	}
	return errs
}
