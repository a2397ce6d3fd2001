// ABOUTME: HTTP client for the numbers facts API
// ABOUTME: Validates a query, issues one GET, and maps the JSON body into a Result
package facts

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tidwall/gjson"
)

// DefaultBaseURL is the public numbers API
const DefaultBaseURL = "http://numbersapi.com"

// ClientConfig holds configuration for the Requester
type ClientConfig struct {
	BaseURL string
	// Timeout of zero leaves the platform default in place
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *log.Logger
}

// DefaultConfig returns the default requester configuration
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: DefaultBaseURL,
	}
}

// Requester fetches number facts. It holds no per-request state and is safe
// for concurrent use.
type Requester struct {
	httpClient *http.Client
	baseURL    string
	logger     *log.Logger
}

// NewRequesterWithConfig creates a requester with custom configuration
func NewRequesterWithConfig(config *ClientConfig) (*Requester, error) {
	base := strings.TrimRight(config.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", config.BaseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Requester{
		httpClient: httpClient,
		baseURL:    base,
		logger:     logger,
	}, nil
}

// BaseURL returns the API root requests are sent to
func (r *Requester) BaseURL() string {
	return r.baseURL
}

// Endpoint builds the request target for q under base
func Endpoint(base string, q Query) string {
	base = strings.TrimRight(base, "/")
	if q.Random {
		return fmt.Sprintf("%s/random/%s?json", base, q.Type)
	}
	return fmt.Sprintf("%s/%s/%s?json", base, url.PathEscape(q.Number), q.Type)
}

// RequestFact validates q, performs a single GET and builds the display model.
// Errors match ErrEmptyInput, ErrNonNumeric, ErrNetwork or ErrInvalidType.
func (r *Requester) RequestFact(ctx context.Context, q Query) (*Result, error) {
	if q.Type == "" {
		q.Type = TypeTrivia
	}
	if !q.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, q.Type)
	}
	if err := Validate(q); err != nil {
		return nil, err
	}

	target := Endpoint(r.baseURL, q)
	body, err := r.get(ctx, target)
	if err != nil {
		return nil, err
	}

	return decodeResult(body, q)
}

func (r *Requester) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrNetwork, err)
	}

	r.logger.Debug("requesting fact", "url", target)
	start := time.Now()

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	// The status code is not inspected: any JSON body is rendered.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrNetwork, err)
	}

	r.logger.Debug("fact received", "status", resp.StatusCode, "bytes", len(body), "elapsed", time.Since(start))
	return body, nil
}

func decodeResult(body []byte, q Query) (*Result, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: malformed response body", ErrNetwork)
	}
	doc := gjson.ParseBytes(body)
	if doc.Type == gjson.Null {
		return nil, fmt.Errorf("%w: null response body", ErrNetwork)
	}

	res := &Result{
		Number: q.Number,
		Type:   q.Type,
		Random: q.Random,
	}
	if n := doc.Get("number"); truthy(n) {
		res.Number = display(n)
	}
	if t := doc.Get("text"); t.Exists() && t.Type != gjson.Null {
		res.Text = display(t)
	}
	return res, nil
}

// truthy reports whether v replaces the input: missing, null, false, 0 and "" do not
func truthy(v gjson.Result) bool {
	switch v.Type {
	case gjson.Number:
		return v.Float() != 0
	case gjson.String:
		return v.Str != ""
	case gjson.True, gjson.JSON:
		return true
	default:
		return false
	}
}

func display(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.True:
		return "true"
	case gjson.False:
		return "false"
	case gjson.Number:
		return formatNumber(v.Float())
	default:
		return v.Raw
	}
}

// formatNumber renders f the way a browser prints a number: plain decimals
// between 1e-6 and 1e21, exponent form outside that range.
func formatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	n, _ := strconv.Atoi(exp)
	if n < 0 {
		return mantissa + "e-" + strconv.Itoa(-n)
	}
	return mantissa + "e+" + strconv.Itoa(n)
}
