package datadog

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

// UpsertDashboard creates the dashboard, or updates it in place when one
// with the same title already exists. Returns the dashboard ID.
func (c *Client) UpsertDashboard(ctx context.Context, doc map[string]any) (string, error) {
	title := stringField(doc, "title")

	var listing struct {
		Dashboards []struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"dashboards"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/dashboard", nil, &listing); err != nil {
		return "", fmt.Errorf("list dashboards: %w", err)
	}

	for _, dash := range listing.Dashboards {
		if dash.Title != title {
			continue
		}
		log.Info().Str("title", title).Msg("Dashboard exists, updating")
		if err := c.do(ctx, http.MethodPut, "/api/v1/dashboard/"+dash.ID, doc, nil); err != nil {
			return "", fmt.Errorf("update dashboard %q: %w", title, err)
		}
		return dash.ID, nil
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/dashboard", doc, &created); err != nil {
		return "", fmt.Errorf("create dashboard %q: %w", title, err)
	}
	log.Info().Str("title", title).Str("id", created.ID).Msg("Dashboard created")
	return created.ID, nil
}

// UpsertMonitors creates or updates every monitor, keyed by name. A failure
// on one monitor is logged and the loop continues; only a failure to list
// the existing monitors aborts.
func (c *Client) UpsertMonitors(ctx context.Context, docs []map[string]any) (created, updated int, err error) {
	var existing []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/monitor", nil, &existing); err != nil {
		return 0, 0, fmt.Errorf("list monitors: %w", err)
	}

	existingIDs := make(map[string]int64, len(existing))
	for _, m := range existing {
		existingIDs[m.Name] = m.ID
	}

	for _, doc := range docs {
		name := stringField(doc, "name")

		if id, ok := existingIDs[name]; ok {
			path := fmt.Sprintf("/api/v1/monitor/%d", id)
			if err := c.do(ctx, http.MethodPut, path, doc, nil); err != nil {
				log.Error().Err(err).Str("name", name).Msg("Failed to update monitor")
				continue
			}
			updated++
			log.Info().Str("name", name).Msg("Monitor updated")
			continue
		}

		var resp struct {
			ID int64 `json:"id"`
		}
		if err := c.do(ctx, http.MethodPost, "/api/v1/monitor", doc, &resp); err != nil {
			log.Error().Err(err).Str("name", name).Msg("Failed to create monitor")
			continue
		}
		created++
		log.Info().Str("name", name).Int64("id", resp.ID).Msg("Monitor created")
	}

	return created, updated, nil
}

// CreateSLOs creates every SLO that does not already exist, keyed by name.
// Existing SLOs are skipped, never updated. A listing failure is tolerated
// as "nothing exists yet"; per-SLO failures are logged and skipped.
func (c *Client) CreateSLOs(ctx context.Context, docs []map[string]any) (created int) {
	existingNames := make(map[string]bool)

	var listing struct {
		Data []struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/slo", nil, &listing); err != nil {
		log.Warn().Err(err).Msg("Could not list SLOs, assuming none exist")
	} else {
		for _, slo := range listing.Data {
			existingNames[slo.Name] = true
		}
	}

	for _, doc := range docs {
		name := stringField(doc, "name")

		if existingNames[name] {
			log.Info().Str("name", name).Msg("SLO exists, skipping")
			continue
		}

		if err := c.do(ctx, http.MethodPost, "/api/v1/slo", doc, nil); err != nil {
			log.Error().Err(err).Str("name", name).Msg("Failed to create SLO")
			continue
		}
		created++
		log.Info().Str("name", name).Msg("SLO created")
	}

	return created
}
