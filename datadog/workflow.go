package datadog

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	workflowName     = "LLM Copilot - Auto Incident from Monitor"
	workflowNameHint = "LLM Copilot"
	serviceTag       = "service:llm-observability-copilot"
)

// ResolveOpenIncidents marks every listed incident as resolved and returns
// how many were resolved. A failure to patch one incident is logged and the
// loop continues.
func (c *Client) ResolveOpenIncidents(ctx context.Context) (int, error) {
	var listing struct {
		Data []struct {
			ID         string `json:"id"`
			Attributes struct {
				Title string `json:"title"`
			} `json:"attributes"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v2/incidents", nil, &listing); err != nil {
		return 0, fmt.Errorf("list incidents: %w", err)
	}

	resolved := 0
	for _, inc := range listing.Data {
		body := map[string]any{
			"data": map[string]any{
				"id":   inc.ID,
				"type": "incidents",
				"attributes": map[string]any{
					"fields": map[string]any{
						"state": map[string]any{"type": "dropdown", "value": "resolved"},
					},
				},
			},
		}
		if err := c.do(ctx, http.MethodPatch, "/api/v2/incidents/"+inc.ID, body, nil); err != nil {
			log.Error().Err(err).Str("title", inc.Attributes.Title).Msg("Failed to resolve incident")
			continue
		}
		resolved++
		log.Info().Str("title", inc.Attributes.Title).Str("id", inc.ID).Msg("Incident resolved")
	}

	return resolved, nil
}

// EnsureIncidentWorkflow makes sure the alert-to-incident workflow exists.
// An already-existing workflow short-circuits creation. The returned bool
// reports whether a workflow was created by this call.
func (c *Client) EnsureIncidentWorkflow(ctx context.Context) (string, bool, error) {
	var listing struct {
		Data []struct {
			ID         string `json:"id"`
			Attributes struct {
				Name string `json:"name"`
			} `json:"attributes"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v2/workflows", nil, &listing); err != nil {
		return "", false, fmt.Errorf("list workflows: %w", err)
	}

	for _, wf := range listing.Data {
		if strings.Contains(wf.Attributes.Name, workflowNameHint) {
			return wf.ID, false, nil
		}
	}

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v2/workflows", incidentWorkflowBody(), &created); err != nil {
		return "", false, fmt.Errorf("create workflow: %w", err)
	}
	return created.Data.ID, true, nil
}

// incidentWorkflowBody builds the monitor-triggered declare-incident
// workflow document.
func incidentWorkflowBody() map[string]any {
	return map[string]any{
		"data": map[string]any{
			"type": "workflows",
			"attributes": map[string]any{
				"name":        workflowName,
				"description": "Auto-creates incidents when LLM monitors alert",
				"tags":        []string{serviceTag},
				"isEnabled":   true,
				"trigger": map[string]any{
					"type": "monitor",
					"monitorTrigger": map[string]any{
						"matchingTags": []string{serviceTag},
						"on":           []string{"alert"},
					},
				},
				"steps": []map[string]any{
					{
						"stepId": "declare_incident_1",
						"name":   "Declare Incident",
						"action": map[string]any{
							"type": "declareIncident",
							"declareIncident": map[string]any{
								"title":    "{{ Source.monitor.name }}",
								"severity": "SEV2",
								"message":  "Auto-created from monitor alert.\n\n{{ Source.monitor.message }}",
							},
						},
					},
				},
			},
		},
	}
}

// VerifyIncidentMentions is the manual fallback check: it counts the
// copilot's monitors whose notification message carries an @incident
// mention, so alerts still open incidents without the workflow.
func (c *Client) VerifyIncidentMentions(ctx context.Context) (int, error) {
	var monitors []struct {
		ID      int64  `json:"id"`
		Name    string `json:"name"`
		Message string `json:"message"`
	}
	path := "/api/v1/monitor?tags=" + serviceTag
	if err := c.do(ctx, http.MethodGet, path, nil, &monitors); err != nil {
		return 0, fmt.Errorf("list monitors: %w", err)
	}

	verified := 0
	for _, m := range monitors {
		if !strings.Contains(m.Message, "@incident") {
			continue
		}
		verified++
		log.Info().Str("name", m.Name).Msg("Monitor has @incident configured")
	}

	return verified, nil
}
