package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/coffeeshop/coffee-system/shared/telemetry"
	"github.com/pkg/errors"
)

// maxBodySize caps how much of a downstream response is read
const maxBodySize = 1 << 20

// errTransport marks connection failures where no HTTP response was received.
// Cancellation of the caller's context is never a transport failure.
var errTransport = errors.New("transport failure")

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// postJSON sends payload as JSON and returns the status code and body of the response.
// Errors wrap errTransport only when the connection failed and ctx is still live.
func postJSON(ctx context.Context, client *http.Client, url string, payload interface{}) (int, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, errors.Wrap(err, "failed to marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	telemetry.InjectHeaders(ctx, req.Header)

	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return 0, nil, errors.Wrapf(err, "POST %s", url)
		}
		return 0, nil, fmt.Errorf("POST %s: %w: %w", url, errTransport, err)
	}
	defer resp.Body.Close()

	// the downstream answered, so a broken body is not a connection failure
	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return resp.StatusCode, nil, errors.Wrapf(err, "failed to read response of POST %s", url)
	}

	return resp.StatusCode, respBody, nil
}

func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + path
}

func isClientError(status int) bool {
	return status >= 400 && status < 500
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
