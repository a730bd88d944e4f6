package httputils

import (
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
)

type rateLimitedTransport struct {
	limiter ratelimit.Limiter
	next    http.RoundTripper
}

func (t *rateLimitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.limiter.Take()
	return t.next.RoundTrip(req)
}

type leveledLogger struct {
	log *logrus.Entry
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log.Errorf("%s %v", msg, keysAndValues)
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugf("%s %v", msg, keysAndValues)
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.Tracef("%s %v", msg, keysAndValues)
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log.Warnf("%s %v", msg, keysAndValues)
}

// NewRetryableHttpClient returns a client with sane retries and an optional
// request rate limit.
func NewRetryableHttpClient(timeout time.Duration, rl ratelimit.Limiter, log *logrus.Entry) *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = 10 * time.Second

	if log != nil {
		retryClient.Logger = &leveledLogger{log: log}
	} else {
		retryClient.Logger = nil
	}

	httpClient := retryClient.StandardClient()
	httpClient.Timeout = timeout

	if rl != nil {
		httpClient.Transport = &rateLimitedTransport{
			limiter: rl,
			next:    httpClient.Transport,
		}
	}

	return httpClient
}

// URLWithQuery joins query values onto a base URL.
func URLWithQuery(base string, q url.Values) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}

	u.RawQuery = q.Encode()
	return u.String(), nil
}
