package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pippsza/clickup/internal/model"
)

func TestGetUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user" {
			t.Errorf("path = %s, want /user", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "pk_test" {
			t.Errorf("Authorization = %q, want pk_test", got)
		}
		w.Write([]byte(`{"user":{"id":7,"username":"jane","email":"jane@example.com"}}`))
	}))
	defer srv.Close()

	c := NewClient("pk_test", WithBaseURL(srv.URL))
	user, err := c.GetUser(context.Background())
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if user.ID != 7 || user.Username != "jane" {
		t.Errorf("user = %+v", user)
	}
}

func TestGetTeams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"teams":[{"id":"team1","name":"Acme"},{"id":"team2","name":"Beta"}]}`))
	}))
	defer srv.Close()

	c := NewClient("pk_test", WithBaseURL(srv.URL))
	teams, err := c.GetTeams(context.Background())
	if err != nil {
		t.Fatalf("GetTeams: %v", err)
	}
	if len(teams) != 2 || teams[0].ID != "team1" {
		t.Errorf("teams = %+v", teams)
	}
}

func TestGetTimeEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("assignee") != "7" || q.Get("start_date") == "" || q.Get("end_date") == "" {
			t.Errorf("query = %v", q)
		}
		w.Write([]byte(`{"data":[
			{"id":"e1","duration":"3600000","start":"1748854800000","end":"1748858400000",
			 "description":"work",
			 "task":{"id":"t1","name":"Alpha","status":{"status":"open"},"list":{"name":"Backlog"},
			         "folder":{"name":"Web"},"space":{"name":"Dev"},"url":"https://app.clickup.com/t/t1"}},
			{"id":"e2","duration":"oops","start":"1748854800000"},
			{"id":"e3","duration":"1800000","start":"not-a-number"},
			{"id":"e4","duration":"-500","start":"1748854800000"}
		]}`))
	}))
	defer srv.Close()

	c := NewClient("pk_test", WithBaseURL(srv.URL))
	res, err := c.GetTimeEntries(context.Background(), "team1", 7, 0, 1)
	if err != nil {
		t.Fatalf("GetTimeEntries: %v", err)
	}

	// e2 and e3 are unparseable and dropped; e4's negative duration is a
	// valid parse and passes through for downstream skip-and-count.
	if res.Dropped != 2 {
		t.Errorf("dropped = %d, want 2", res.Dropped)
	}
	if len(res.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(res.Entries))
	}

	e := res.Entries[0]
	if e.DurationMs != 3600000 || e.Task.ID != "t1" || e.Task.Status != "open" || e.Task.ListName != "Backlog" {
		t.Errorf("entry = %+v", e)
	}
	if res.Entries[1].DurationMs != -500 {
		t.Errorf("negative duration mangled: %d", res.Entries[1].DurationMs)
	}
}

func TestTaskURLFallback(t *testing.T) {
	w := wireEntry{
		ID:       "e1",
		Duration: "1000",
		Start:    "1748854800000",
		Task:     &wireTask{ID: "t1", Name: "Alpha"},
		TaskURL:  "https://app.clickup.com/t/t1",
	}
	entry, ok := w.toModel()
	if !ok {
		t.Fatal("toModel rejected valid entry")
	}
	if entry.Task.URL != "https://app.clickup.com/t/t1" {
		t.Errorf("url = %q, want task_url fallback", entry.Task.URL)
	}
}

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, model.ErrUnauthorized},
		{http.StatusForbidden, model.ErrUnauthorized},
		{http.StatusNotFound, model.ErrNotFound},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))

		c := NewClient("pk_test", WithBaseURL(srv.URL))
		_, err := c.GetUser(context.Background())
		if !errors.Is(err, tc.want) {
			t.Errorf("status %d: err = %v, want %v", tc.status, err, tc.want)
		}
		srv.Close()
	}
}

func TestInvalidJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := NewClient("pk_test", WithBaseURL(srv.URL))
	_, err := c.GetUser(context.Background())
	if !errors.Is(err, model.ErrInvalidResponse) {
		t.Errorf("err = %v, want ErrInvalidResponse", err)
	}
}
