// ABOUTME: Tests for the numbers API requester against a fake server
// ABOUTME: Covers endpoints, validation short-circuits, decoding, and network failures
package facts

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	server   *httptest.Server
	calls    atomic.Int32
	lastPath atomic.Value
}

func newFakeAPI(t *testing.T, status int, body string) *fakeAPI {
	t.Helper()
	api := &fakeAPI{}
	api.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.calls.Add(1)
		api.lastPath.Store(r.URL.RequestURI())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(api.server.Close)
	return api
}

func (a *fakeAPI) requester(t *testing.T) *Requester {
	t.Helper()
	r, err := NewRequesterWithConfig(&ClientConfig{BaseURL: a.server.URL})
	require.NoError(t, err)
	return r
}

func (a *fakeAPI) path() string {
	p, _ := a.lastPath.Load().(string)
	return p
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestEndpoint(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  string
	}{
		{"direct trivia", Query{Number: "42", Type: TypeTrivia}, "http://numbersapi.com/42/trivia?json"},
		{"direct math", Query{Number: "3.14", Type: TypeMath}, "http://numbersapi.com/3.14/math?json"},
		{"random date", Query{Type: TypeDate, Random: true}, "http://numbersapi.com/random/date?json"},
		{"random ignores number", Query{Number: "42", Type: TypeMath, Random: true}, "http://numbersapi.com/random/math?json"},
		{"raw input escaped", Query{Number: " 42 ", Type: TypeTrivia}, "http://numbersapi.com/%2042%20/trivia?json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Endpoint(DefaultBaseURL, tt.query))
		})
	}
}

func TestEndpoint_TrailingSlash(t *testing.T) {
	assert.Equal(t, "http://localhost:8080/random/trivia?json",
		Endpoint("http://localhost:8080/", Query{Type: TypeTrivia, Random: true}))
}

func TestRequestFact_ValidationSkipsNetwork(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"text":"unused","number":1}`)
	r := api.requester(t)

	tests := []struct {
		name    string
		number  string
		wantErr error
	}{
		{"empty", "", ErrEmptyInput},
		{"whitespace", " \t ", ErrEmptyInput},
		{"byte order mark", "\uFEFF", ErrEmptyInput},
		{"next line", "\u0085", ErrNonNumeric},
		{"letters", "abc", ErrNonNumeric},
		{"mixed", "12abc", ErrNonNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.RequestFact(context.Background(), Query{Number: tt.number, Type: TypeTrivia})
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Equal(t, int32(0), api.calls.Load(), "validation failures must not reach the API")
}

func TestRequestFact_Direct(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"number": 42, "text": "42 is the answer.", "found": true, "type": "trivia"}`)
	r := api.requester(t)

	res, err := r.RequestFact(context.Background(), Query{Number: "42", Type: TypeTrivia})
	require.NoError(t, err)

	assert.Equal(t, &Result{Number: "42", Text: "42 is the answer.", Type: TypeTrivia, Random: false}, res)
	assert.Equal(t, "/42/trivia?json", api.path())
	assert.Equal(t, int32(1), api.calls.Load())
}

func TestRequestFact_Random(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"number": 1729, "text": "1729 is the smallest taxicab number."}`)
	r := api.requester(t)

	res, err := r.RequestFact(context.Background(), Query{Number: "not a number", Type: TypeMath, Random: true})
	require.NoError(t, err)

	assert.Equal(t, "/random/math?json", api.path())
	assert.Equal(t, "1729", res.Number)
	assert.Equal(t, TypeMath, res.Type)
	assert.True(t, res.Random)
}

func TestRequestFact_NumberFallback(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		input string
		want  string
	}{
		{"missing number", `{"text":"t"}`, "7", "7"},
		{"null number", `{"text":"t","number":null}`, "7", "7"},
		{"zero number", `{"text":"t","number":0}`, "0", "0"},
		{"zero number keeps raw input", `{"text":"t","number":0}`, "0.0", "0.0"},
		{"empty string number", `{"text":"t","number":""}`, "7", "7"},
		{"string number", `{"text":"t","number":"12"}`, "7", "12"},
		{"api overrides input", `{"text":"t","number":1e3}`, "1e3", "1000"},
		{"trailing zero fraction", `{"text":"t","number":42.0}`, "42", "42"},
		{"decimal", `{"text":"t","number":3.140}`, "3.14", "3.14"},
		{"negative", `{"text":"t","number":-2.5}`, "-2.5", "-2.5"},
		{"large integer", `{"text":"t","number":123456789012345678901}`, "1", "123456789012345680000"},
		{"huge exponent", `{"text":"t","number":1e21}`, "1", "1e+21"},
		{"tiny exponent", `{"text":"t","number":1.5e-7}`, "1", "1.5e-7"},
		{"small decimal", `{"text":"t","number":0.000001}`, "1", "0.000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI(t, http.StatusOK, tt.body)
			res, err := api.requester(t).RequestFact(context.Background(), Query{Number: tt.input, Type: TypeTrivia})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Number)
		})
	}
}

func TestRequestFact_TextPassthrough(t *testing.T) {
	text := `<b>unescaped</b> "quotes" and a very long line `
	api := newFakeAPI(t, http.StatusOK, `{"number":5,"text":"<b>unescaped</b> \"quotes\" and a very long line "}`)

	res, err := api.requester(t).RequestFact(context.Background(), Query{Number: "5", Type: TypeTrivia})
	require.NoError(t, err)
	assert.Equal(t, text, res.Text)
}

func TestRequestFact_MissingText(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"number":5}`)

	res, err := api.requester(t).RequestFact(context.Background(), Query{Number: "5", Type: TypeTrivia})
	require.NoError(t, err)
	assert.Equal(t, "", res.Text)
}

func TestRequestFact_StatusNotInspected(t *testing.T) {
	api := newFakeAPI(t, http.StatusNotFound, `{"text":"404 is an error code.","number":404}`)

	res, err := api.requester(t).RequestFact(context.Background(), Query{Number: "404", Type: TypeTrivia})
	require.NoError(t, err)
	assert.Equal(t, "404 is an error code.", res.Text)
}

func TestRequestFact_MalformedBody(t *testing.T) {
	bodies := map[string]string{
		"html":      "<html>oops</html>",
		"truncated": `{"text": "42 is`,
		"empty":     "",
		"null":      "null",
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			api := newFakeAPI(t, http.StatusOK, body)
			res, err := api.requester(t).RequestFact(context.Background(), Query{Number: "42", Type: TypeTrivia})
			assert.Nil(t, res)
			assert.ErrorIs(t, err, ErrNetwork)
		})
	}
}

func TestRequestFact_TransportFailure(t *testing.T) {
	client := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})}
	r, err := NewRequesterWithConfig(&ClientConfig{BaseURL: DefaultBaseURL, HTTPClient: client})
	require.NoError(t, err)

	res, err := r.RequestFact(context.Background(), Query{Type: TypeTrivia, Random: true})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.Equal(t, MsgNetwork, UserMessage(err))
}

func TestRequestFact_DefaultsAndRejectsType(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"text":"t","number":1}`)
	r := api.requester(t)

	res, err := r.RequestFact(context.Background(), Query{Number: "1"})
	require.NoError(t, err)
	assert.Equal(t, TypeTrivia, res.Type)
	assert.Equal(t, "/1/trivia?json", api.path())

	_, err = r.RequestFact(context.Background(), Query{Number: "1", Type: "year"})
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestNewRequesterWithConfig(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    string
		wantErr bool
	}{
		{"empty uses default", "", DefaultBaseURL, false},
		{"trailing slash trimmed", "https://example.com/api/", "https://example.com/api", false},
		{"no scheme", "numbersapi.com", "", true},
		{"ftp scheme", "ftp://numbersapi.com", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRequesterWithConfig(&ClientConfig{BaseURL: tt.baseURL})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.BaseURL())
		})
	}
}
