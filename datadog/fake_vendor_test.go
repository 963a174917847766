package datadog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// fakeVendor is an in-memory stand-in for the Datadog API, covering just
// the endpoints the client touches.
type fakeVendor struct {
	t   *testing.T
	srv *httptest.Server

	mu               sync.Mutex
	dashboards       map[string]string // id → title
	monitors         map[int64]string  // id → name
	sloNames         []string
	workflowNames    map[string]string // id → name
	incidents        []string          // open incident ids
	patchedIncidents []string

	dashboardCreates int
	dashboardUpdates int
	monitorCreates   int
	monitorUpdates   int
	sloCreates       int
	workflowCreates  int

	rejectWorkflowCreate bool
	rejectMonitorNamed   string
	rejectSLOList        bool
	nextID               int64

	monitorMessages map[string]string // name → message, served on tag queries
}

func newFakeVendor(t *testing.T) *fakeVendor {
	t.Helper()
	v := &fakeVendor{
		t:               t,
		dashboards:      map[string]string{},
		monitors:        map[int64]string{},
		workflowNames:   map[string]string{},
		monitorMessages: map[string]string{},
		nextID:          100,
	}
	v.srv = httptest.NewServer(http.HandlerFunc(v.handle))
	t.Cleanup(v.srv.Close)
	return v
}

func (v *fakeVendor) client() *Client {
	return NewClient(
		Config{APIKey: "api-key", AppKey: "app-key"},
		ClientOptions{BaseURL: v.srv.URL},
	)
}

func (v *fakeVendor) handle(w http.ResponseWriter, r *http.Request) {
	v.mu.Lock()
	defer v.mu.Unlock()

	path := r.URL.Path
	switch {
	case path == "/api/v1/dashboard" && r.Method == http.MethodGet:
		type entry struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		}
		var out struct {
			Dashboards []entry `json:"dashboards"`
		}
		for id, title := range v.dashboards {
			out.Dashboards = append(out.Dashboards, entry{ID: id, Title: title})
		}
		writeJSON(w, out)

	case path == "/api/v1/dashboard" && r.Method == http.MethodPost:
		var doc map[string]any
		readJSON(v.t, r, &doc)
		id := fmt.Sprintf("dash-%d", v.nextID)
		v.nextID++
		v.dashboards[id] = doc["title"].(string)
		v.dashboardCreates++
		writeJSON(w, map[string]string{"id": id})

	case strings.HasPrefix(path, "/api/v1/dashboard/") && r.Method == http.MethodPut:
		id := strings.TrimPrefix(path, "/api/v1/dashboard/")
		if _, ok := v.dashboards[id]; !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		v.dashboardUpdates++
		writeJSON(w, map[string]string{"id": id})

	case path == "/api/v1/monitor" && r.Method == http.MethodGet:
		if tags := r.URL.Query().Get("tags"); tags != "" {
			type monitor struct {
				Name    string `json:"name"`
				Message string `json:"message"`
			}
			out := []monitor{}
			for name, msg := range v.monitorMessages {
				out = append(out, monitor{Name: name, Message: msg})
			}
			writeJSON(w, out)
			return
		}
		type monitor struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		}
		out := []monitor{}
		for id, name := range v.monitors {
			out = append(out, monitor{ID: id, Name: name})
		}
		writeJSON(w, out)

	case path == "/api/v1/monitor" && r.Method == http.MethodPost:
		var doc map[string]any
		readJSON(v.t, r, &doc)
		name := doc["name"].(string)
		if name == v.rejectMonitorNamed {
			http.Error(w, "invalid query", http.StatusBadRequest)
			return
		}
		id := v.nextID
		v.nextID++
		v.monitors[id] = name
		v.monitorCreates++
		writeJSON(w, map[string]int64{"id": id})

	case strings.HasPrefix(path, "/api/v1/monitor/") && r.Method == http.MethodPut:
		id, _ := strconv.ParseInt(strings.TrimPrefix(path, "/api/v1/monitor/"), 10, 64)
		if _, ok := v.monitors[id]; !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		v.monitorUpdates++
		writeJSON(w, map[string]int64{"id": id})

	case path == "/api/v1/slo" && r.Method == http.MethodGet:
		if v.rejectSLOList {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		type slo struct {
			Name string `json:"name"`
		}
		var out struct {
			Data []slo `json:"data"`
		}
		for _, name := range v.sloNames {
			out.Data = append(out.Data, slo{Name: name})
		}
		writeJSON(w, out)

	case path == "/api/v1/slo" && r.Method == http.MethodPost:
		var doc map[string]any
		readJSON(v.t, r, &doc)
		v.sloNames = append(v.sloNames, doc["name"].(string))
		v.sloCreates++
		writeJSON(w, map[string]any{"data": []any{}})

	case path == "/api/v2/incidents" && r.Method == http.MethodGet:
		type incident struct {
			ID         string `json:"id"`
			Attributes struct {
				Title string `json:"title"`
			} `json:"attributes"`
		}
		var out struct {
			Data []incident `json:"data"`
		}
		for _, id := range v.incidents {
			inc := incident{ID: id}
			inc.Attributes.Title = "incident " + id
			out.Data = append(out.Data, inc)
		}
		writeJSON(w, out)

	case strings.HasPrefix(path, "/api/v2/incidents/") && r.Method == http.MethodPatch:
		id := strings.TrimPrefix(path, "/api/v2/incidents/")
		var body struct {
			Data struct {
				Attributes struct {
					Fields struct {
						State struct {
							Value string `json:"value"`
						} `json:"state"`
					} `json:"fields"`
				} `json:"attributes"`
			} `json:"data"`
		}
		readJSON(v.t, r, &body)
		if body.Data.Attributes.Fields.State.Value != "resolved" {
			http.Error(w, "unexpected state", http.StatusBadRequest)
			return
		}
		v.patchedIncidents = append(v.patchedIncidents, id)
		writeJSON(w, map[string]any{})

	case path == "/api/v2/workflows" && r.Method == http.MethodGet:
		type workflow struct {
			ID         string `json:"id"`
			Attributes struct {
				Name string `json:"name"`
			} `json:"attributes"`
		}
		var out struct {
			Data []workflow `json:"data"`
		}
		for id, name := range v.workflowNames {
			wf := workflow{ID: id}
			wf.Attributes.Name = name
			out.Data = append(out.Data, wf)
		}
		writeJSON(w, out)

	case path == "/api/v2/workflows" && r.Method == http.MethodPost:
		if v.rejectWorkflowCreate {
			http.Error(w, "workflow API requires UI setup", http.StatusForbidden)
			return
		}
		var body struct {
			Data struct {
				Attributes struct {
					Name string `json:"name"`
				} `json:"attributes"`
			} `json:"data"`
		}
		readJSON(v.t, r, &body)
		id := fmt.Sprintf("wf-%d", v.nextID)
		v.nextID++
		v.workflowNames[id] = body.Data.Attributes.Name
		v.workflowCreates++
		writeJSON(w, map[string]any{"data": map[string]string{"id": id}})

	default:
		http.Error(w, "unhandled route "+r.Method+" "+path, http.StatusNotImplemented)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func readJSON(t *testing.T, r *http.Request, out any) {
	t.Helper()
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		t.Errorf("decode request body: %v", err)
	}
}
