package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// FetchReport requests a server-computed aggregate keyed by its type
// discriminator. Zero from/to means the backend's default period.
func (c *Client) FetchReport(ctx context.Context, kind string, from, to time.Time) (json.RawMessage, error) {
	v := url.Values{}
	v.Set("type", kind)
	if !from.IsZero() {
		v.Set("from", from.Format("2006-01-02"))
	}
	if !to.IsZero() {
		v.Set("to", to.Format("2006-01-02"))
	}

	raw, err := c.do(ctx, http.MethodGet, "/api/reports", v, nil)
	if err != nil {
		return nil, err
	}

	var env reportEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode report response: %w", err)
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "report request failed"
		}
		return nil, fmt.Errorf("backend: %s", msg)
	}
	return env.Report, nil
}
