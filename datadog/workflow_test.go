package datadog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOpenIncidents_PatchesEachToResolved(t *testing.T) {
	vendor := newFakeVendor(t)
	vendor.incidents = []string{"inc-1", "inc-2"}
	c := vendor.client()

	resolved, err := c.ResolveOpenIncidents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, resolved)
	assert.ElementsMatch(t, []string{"inc-1", "inc-2"}, vendor.patchedIncidents)
}

func TestResolveOpenIncidents_NoneOpen(t *testing.T) {
	vendor := newFakeVendor(t)
	c := vendor.client()

	resolved, err := c.ResolveOpenIncidents(context.Background())
	require.NoError(t, err)
	assert.Zero(t, resolved)
}

func TestEnsureIncidentWorkflow_ExistingShortCircuits(t *testing.T) {
	vendor := newFakeVendor(t)
	vendor.workflowNames["wf-9"] = "LLM Copilot - Auto Incident from Monitor"
	c := vendor.client()

	id, created, err := c.EnsureIncidentWorkflow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "wf-9", id)
	assert.False(t, created)
	assert.Zero(t, vendor.workflowCreates)
}

func TestEnsureIncidentWorkflow_CreatesWhenMissing(t *testing.T) {
	vendor := newFakeVendor(t)
	c := vendor.client()

	id, created, err := c.EnsureIncidentWorkflow(context.Background())
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, id)
	assert.Equal(t, workflowName, vendor.workflowNames[id])
}

func TestEnsureIncidentWorkflow_RejectionSurfacesAPIError(t *testing.T) {
	// Some account tiers reject workflow creation; the caller uses this
	// error to fall back to manual setup instructions.
	vendor := newFakeVendor(t)
	vendor.rejectWorkflowCreate = true
	c := vendor.client()

	_, created, err := c.EnsureIncidentWorkflow(context.Background())
	require.Error(t, err)
	assert.False(t, created)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.StatusCode)
}

func TestVerifyIncidentMentions_CountsOnlyMentioningMonitors(t *testing.T) {
	vendor := newFakeVendor(t)
	vendor.monitorMessages = map[string]string{
		"LLM Copilot - High request latency": "p95 too high\n\n@incident",
		"LLM Copilot - Elevated error rate":  "too many failures",
	}
	c := vendor.client()

	verified, err := c.VerifyIncidentMentions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, verified)
}
