package health

import (
	"context"
	"time"

	"repair-console/internal/apiclient"
	"repair-console/internal/cache"
)

type HealthChecker struct {
	client *apiclient.Client
}

type HealthStatus struct {
	Status   string         `json:"status"`
	Upstream UpstreamHealth `json:"upstream"`
	Cache    string         `json:"cache"`
}

type UpstreamHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

func NewHealthChecker(client *apiclient.Client) *HealthChecker {
	return &HealthChecker{client: client}
}

func (h *HealthChecker) CheckBasic() HealthStatus {
	upstream := h.checkUpstream()

	status := "healthy"
	if upstream.Status != "healthy" {
		status = "unhealthy"
	}

	cacheStatus := "healthy"
	if !cache.IsHealthy() {
		cacheStatus = "unavailable"
	}

	return HealthStatus{
		Status:   status,
		Upstream: upstream,
		Cache:    cacheStatus,
	}
}

func (h *HealthChecker) checkUpstream() UpstreamHealth {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := h.client.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	if err != nil {
		return UpstreamHealth{
			Status:       "unhealthy",
			ResponseTime: responseTime,
		}
	}

	return UpstreamHealth{
		Status:       "healthy",
		ResponseTime: responseTime,
	}
}
