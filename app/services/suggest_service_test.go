package services

import (
	"testing"

	"github.com/shashiranjanraj/backoffice/app/apperr"
	"github.com/shashiranjanraj/backoffice/pkg/http"
	"github.com/shashiranjanraj/backoffice/pkg/testkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSuggestService() *SuggestService {
	return &SuggestService{
		url:    DefaultCompletionsURL,
		apiKey: "test-key",
		model:  "gpt-3.5-turbo",
	}
}

func TestSuggestReturnsTrimmedFirstChoice(t *testing.T) {
	mt := testkit.NewMockTransport(testkit.MockStep{
		MatchURL: "/v1/chat/completions",
		Body: `{"choices":[
			{"message":{"content":"  Eco-Friendly Insulated Water Bottle \n"}},
			{"message":{"content":"second choice is ignored"}}
		]}`,
	})
	http.DefaultClient.Transport = mt
	defer http.ResetTransport()

	got, err := newTestSuggestService().Suggest(FieldName, "eco-friendly water bottle")

	require.NoError(t, err)
	assert.Equal(t, "Eco-Friendly Insulated Water Bottle", got)
	testkit.AssertMocksAllCalled(t, mt)
}

func TestSuggestUpstreamNon2xx(t *testing.T) {
	mt := testkit.NewMockTransport(testkit.MockStep{
		MatchURL:   "/v1/chat/completions",
		StatusCode: 429,
		Body:       `{"error":{"message":"rate limited"}}`,
	})
	http.DefaultClient.Transport = mt
	defer http.ResetTransport()

	_, err := newTestSuggestService().Suggest(FieldDescription, "water bottle")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrUpstream)
}

func TestSuggestEmptyChoices(t *testing.T) {
	mt := testkit.NewMockTransport(testkit.MockStep{
		MatchURL: "/v1/chat/completions",
		Body:     `{"choices":[]}`,
	})
	http.DefaultClient.Transport = mt
	defer http.ResetTransport()

	_, err := newTestSuggestService().Suggest(FieldName, "water bottle")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrUpstream)
}

func TestSuggestInvalidFieldSkipsNetwork(t *testing.T) {
	mt := testkit.NewMockTransport()
	http.DefaultClient.Transport = mt
	defer http.ResetTransport()

	_, err := newTestSuggestService().Suggest("price", "whatever")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
