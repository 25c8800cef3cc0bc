package api

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/workerhousing/housing-client/internal/metrics"
)

const probeTimeout = 5 * time.Second

// Probe walks the primary endpoint and the ordered fallback list, pinning
// the client to the first one whose /ping answers. Best-effort: callers may
// keep issuing requests while the probe runs, and an all-down result leaves
// the current pin untouched.
func (c *Client) Probe(ctx context.Context) {
	primary := c.http.BaseURL
	probe := resty.New().SetTimeout(probeTimeout)

	for _, url := range append([]string{primary}, c.fallbacks...) {
		resp, err := probe.R().SetContext(ctx).Head(url + PathPing)
		if err != nil {
			c.log.Debug().Str("url", url).Err(err).Msg("endpoint not reachable")
			continue
		}
		if !resp.IsSuccess() {
			c.log.Debug().Str("url", url).Int("status", resp.StatusCode()).Msg("endpoint unhealthy")
			continue
		}
		if url != primary {
			c.log.Info().Str("url", url).Msg("switching to fallback endpoint")
			metrics.EndpointSwitchesTotal.Inc()
			c.http.SetBaseURL(url)
		}
		return
	}
	c.log.Error().Msg("no API endpoints are reachable")
}
