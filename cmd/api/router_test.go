package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/studentgroups/internal/group"
	"github.com/fkhayef/studentgroups/internal/student"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(newRouter(group.NewRepository()))
	t.Cleanup(srv.Close)
	return srv
}

func request(t *testing.T, srv *httptest.Server, method, path, body string) (*http.Response, string) {
	t.Helper()

	var req *http.Request
	var err error
	if body == "" {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	require.NoError(t, err)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(data)
}

func TestAPI_GroupLifecycle(t *testing.T) {
	srv := newTestServer(t)

	resp, body := request(t, srv, http.MethodPost, "/api/groups", `{"groupName":"G","members":["A","B"]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created group.GroupSummary
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, "G", created.GroupName)
	require.Len(t, created.Members, 2)

	resp, body = request(t, srv, http.MethodGet, "/api/groups/0", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var full group.Group
	require.NoError(t, json.Unmarshal([]byte(body), &full))
	assert.Equal(t, []student.Student{
		{ID: created.Members[0], Name: "A"},
		{ID: created.Members[1], Name: "B"},
	}, full.Members)

	resp, body = request(t, srv, http.MethodDelete, "/api/groups/0", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, body)

	resp, body = request(t, srv, http.MethodGet, "/api/groups/0", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Group not found with ID: 0", body)

	resp, body = request(t, srv, http.MethodGet, "/api/groups", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, body)

	resp, body = request(t, srv, http.MethodPost, "/api/groups", `{"groupName":"H","members":["C"]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"id":1,"groupName":"H","members":[2]}`, body)
}

func TestAPI_ListGroupsAndStudents(t *testing.T) {
	srv := newTestServer(t)

	resp, body := request(t, srv, http.MethodGet, "/api/students", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, body)

	request(t, srv, http.MethodPost, "/api/groups", `{"groupName":"G1","members":["A","B"]}`)
	request(t, srv, http.MethodPost, "/api/groups", `{"groupName":"G2","members":["C"]}`)

	resp, body = request(t, srv, http.MethodGet, "/api/groups", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.JSONEq(t, `[
		{"id":0,"groupName":"G1","members":[0,1]},
		{"id":1,"groupName":"G2","members":[2]}
	]`, body)

	resp, body = request(t, srv, http.MethodGet, "/api/students", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[
		{"id":0,"name":"A"},
		{"id":1,"name":"B"},
		{"id":2,"name":"C"}
	]`, body)
}

func TestAPI_Errors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "blank first member",
			method:     http.MethodPost,
			path:       "/api/groups",
			body:       `{"groupName":"X","members":[""]}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "Groups must contain members",
		},
		{
			name:       "unknown group",
			method:     http.MethodGet,
			path:       "/api/groups/999",
			wantStatus: http.StatusNotFound,
			wantBody:   "Group not found with ID: 999",
		},
		{
			name:       "non-numeric group id",
			method:     http.MethodGet,
			path:       "/api/groups/abc",
			wantStatus: http.StatusNotFound,
			wantBody:   "Group not found with ID: NaN",
		},
		{
			name:       "delete unknown group",
			method:     http.MethodDelete,
			path:       "/api/groups/999",
			wantStatus: http.StatusNotFound,
			wantBody:   "Group not found with ID: 999",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := request(t, srv, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestAPI_CORS(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/groups", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	req, err = http.NewRequest(http.MethodGet, srv.URL+"/api/students", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")

	resp, err = srv.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestAPI_HealthAndDocs(t *testing.T) {
	srv := newTestServer(t)

	resp, body := request(t, srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, body)

	resp, body = request(t, srv, http.MethodGet, "/swagger/doc.json", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Student Groups API")
	assert.Contains(t, body, "/groups/{id}")
}
