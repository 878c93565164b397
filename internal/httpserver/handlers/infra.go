package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/casefolio/casefolio/internal/httpserver/deps"
)

type componentStatus struct {
	OK            bool   `json:"ok"`
	RecordsLoaded *int   `json:"records_loaded,omitempty"`
	QueueDepth    *int   `json:"queue_depth,omitempty"`
	LastReload    string `json:"last_reload,omitempty"`
	Mode          string `json:"mode,omitempty"`
	Impact        string `json:"impact,omitempty"`
	Error         string `json:"error,omitempty"`
}

type infraResponse struct {
	ServiceMode string                     `json:"service_mode"`
	Components  map[string]componentStatus `json:"components"`
}

// Infra reports component health: catalog, moderation queue and the
// optional Redis feed-state cache.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recordCount := d.Catalog.Count()
		lastReload := "never"
		if t := d.Catalog.LastReload(); !t.IsZero() {
			lastReload = t.Format("2006-01-02 15:04:05")
		}
		queueDepth := d.Moderation.Count()

		components := map[string]componentStatus{
			"catalog": {
				OK:            recordCount > 0,
				RecordsLoaded: &recordCount,
				LastReload:    lastReload,
			},
			"moderation": {
				OK:         true,
				QueueDepth: &queueDepth,
			},
			"redis": checkRedis(d),
		}

		writeJSON(w, http.StatusOK, infraResponse{
			ServiceMode: determineServiceMode(components),
			Components:  components,
		})
	}
}

func determineServiceMode(components map[string]componentStatus) string {
	if cat, exists := components["catalog"]; exists && !cat.OK {
		return "empty-catalog"
	}
	if rd, exists := components["redis"]; exists && !rd.OK {
		return "degraded"
	}
	return "nominal"
}

func checkRedis(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:     true,
			Mode:   "disabled",
			Impact: "feeds fetched unconditionally",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "feed-state cache unavailable",
			Error:  err.Error(),
		}
	}
	return componentStatus{
		OK:     true,
		Mode:   "optimal",
		Impact: "conditional feed fetches enabled",
	}
}
