package api

import (
	"net/http"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/retryhttp"
	"github.com/hashicorp/go-retryablehttp"
)

// newRetryableClient returns the go-utils client, which already passes non-2xx
// responses through, limited to a single attempt.
func newRetryableClient(logger log.Logger) *retryablehttp.Client {
	client := retryhttp.NewClient(logger)
	client.RetryMax = 0

	return client
}

func newHTTPClient(logger log.Logger) *http.Client {
	return newRetryableClient(logger).StandardClient()
}
