// Package breach checks passwords against the HaveIBeenPwned corpus using
// the k-anonymity range protocol: only the first five characters of the
// password's SHA-1 digest ever leave the process.
package breach

import (
	"bufio"
	"context"
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL    = "https://api.pwnedpasswords.com/range"
	DefaultTimeout    = 10 * time.Second
	DefaultMaxRetries = 3

	userAgent = "QuantumLock-Password-Manager/1.0"

	// defaultRetryAfter applies to 429 responses without a Retry-After header.
	defaultRetryAfter = 2 * time.Second
	// transientBackoff applies to timeouts and other transport failures.
	transientBackoff = 1 * time.Second
	// batchDelay spaces successive lookups in CheckMany.
	batchDelay = 100 * time.Millisecond
)

var (
	// ErrRateLimited signals that every attempt was answered with HTTP 429.
	ErrRateLimited = errors.New("breach check rate limited, retries exhausted")
	// ErrCheckFailed wraps transport failures after retries. A failed check is
	// never reported as a clean verdict.
	ErrCheckFailed = errors.New("breach check failed")
)

// Result is the verdict for a single password.
type Result struct {
	Breached bool   `json:"is_breached"`
	Count    int    `json:"breach_count"`
	Message  string `json:"message"`
}

// Config configures a Checker. Zero values take defaults.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	UsePadding bool
	// Client overrides the HTTP client, e.g. with a fake transport in tests.
	Client *http.Client
}

// Checker queries the range API. The embedded client reuses connections
// across checks; the Checker itself is stateless and safe for concurrent use.
type Checker struct {
	baseURL    string
	client     *http.Client
	maxRetries int
	usePadding bool
}

// NewChecker builds a Checker from cfg.
func NewChecker(cfg Config) *Checker {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.Client == nil {
		cfg.Client = &http.Client{Timeout: cfg.Timeout}
	}
	return &Checker{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		client:     cfg.Client,
		maxRetries: cfg.MaxRetries,
		usePadding: cfg.UsePadding,
	}
}

// Check determines how many times password appears in the breach corpus.
// The empty password short-circuits to a clean verdict without network I/O.
// On transport failure or exhausted retries the error is non-nil and the
// Result must be ignored.
func (c *Checker) Check(ctx context.Context, password string) (Result, error) {
	if password == "" {
		return Result{Message: "Empty password"}, nil
	}

	digest := HashPassword(password)
	prefix, suffix := digest[:5], digest[5:]

	suffixes, err := c.queryRange(ctx, prefix)
	if err != nil {
		return Result{}, err
	}

	count := suffixes[suffix]
	if count > 0 {
		return Result{
			Breached: true,
			Count:    count,
			Message:  fmt.Sprintf("This password has been seen %d times in data breaches", count),
		}, nil
	}
	return Result{
		Message: "Good news! This password has not been found in any known breaches",
	}, nil
}

// CheckMany checks passwords sequentially with a small delay between lookups
// to respect the service's rate limits. On failure it returns the verdicts
// collected so far along with the error.
func (c *Checker) CheckMany(ctx context.Context, passwords []string) (map[string]Result, error) {
	results := make(map[string]Result, len(passwords))
	for i, password := range passwords {
		if i > 0 {
			if err := sleep(ctx, batchDelay); err != nil {
				return results, err
			}
		}
		result, err := c.Check(ctx, password)
		if err != nil {
			return results, err
		}
		results[password] = result
	}
	return results, nil
}

// HashPassword returns the uppercase hexadecimal SHA-1 digest of password.
// SHA-1 is mandated by the range API's corpus format; it is never used here
// for storage or integrity.
func HashPassword(password string) string {
	sum := sha1.Sum([]byte(password))
	return strings.ToUpper(fmt.Sprintf("%x", sum))
}

// queryRange fetches the suffix:count map for a 5-character digest prefix,
// retrying 429s per the server's Retry-After and transient failures with a
// fixed backoff.
func (c *Checker) queryRange(ctx context.Context, prefix string) (map[string]int, error) {
	var lastErr error

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+prefix, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", userAgent)
		if c.usePadding {
			req.Header.Set("Add-Padding", "true")
		}

		resp, err := c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			if attempt < c.maxRetries-1 {
				if err := sleep(ctx, transientBackoff); err != nil {
					return nil, err
				}
			}
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			lastErr = ErrRateLimited
			if attempt < c.maxRetries-1 {
				if err := sleep(ctx, retryAfter); err != nil {
					return nil, err
				}
			}
			continue
		}

		if resp.StatusCode != http.StatusOK {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			lastErr = fmt.Errorf("unexpected status %d", resp.StatusCode)
			if attempt < c.maxRetries-1 {
				if err := sleep(ctx, transientBackoff); err != nil {
					return nil, err
				}
			}
			continue
		}

		suffixes, err := parseRangeResponse(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCheckFailed, err)
		}
		return suffixes, nil
	}

	if errors.Is(lastErr, ErrRateLimited) {
		return nil, ErrRateLimited
	}
	return nil, fmt.Errorf("%w: %v", ErrCheckFailed, lastErr)
}

// parseRangeResponse reads newline-separated SUFFIX:COUNT records into a map.
// Padding entries with a zero count parse like any other record.
func parseRangeResponse(body io.Reader) (map[string]int, error) {
	suffixes := make(map[string]int)
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		suffix, countStr, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		count, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil {
			continue
		}
		suffixes[strings.TrimSpace(suffix)] = count
	}
	return suffixes, scanner.Err()
}

// parseRetryAfter interprets the header as integer seconds, defaulting when
// absent or malformed.
func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return defaultRetryAfter
	}
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds < 0 {
		return defaultRetryAfter
	}
	return time.Duration(seconds) * time.Second
}

// sleep waits for d or until ctx is cancelled, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
