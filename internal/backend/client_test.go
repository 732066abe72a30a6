package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/athlonet/sportdesk/internal/catalog"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 6000, nil)
}

func TestListAthletes(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/athletes", r.URL.Path)
		require.Equal(t, "ATHLETICS", r.URL.Query().Get("sportType"))
		require.Equal(t, "2", r.URL.Query().Get("page"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"athleteId": 1, "code": "ATH10000001", "firstName": "Mia", "lastName": "Kovac", "gender": "FEMALE", "isActive": true, "team": null},
				{"athleteId": 2, "code": "ATH10000002", "firstName": "Jon", "lastName": "Berg", "gender": "MALE", "isActive": true, "team": {"teamId": 4, "name": "Harriers"}}
			],
			"total": 12, "page": 2, "limit": 2, "totalPages": 6, "hasNext": true, "hasPrev": true
		}`))
	}))

	page, err := c.ListAthletes(context.Background(), ListParams{SportType: catalog.Athletics, Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	require.Equal(t, 12, page.Total)
	require.True(t, page.HasNext)

	_, ok := page.Data[0].Team.Name()
	require.False(t, ok, "null team must not resolve")
	name, ok := page.Data[1].Team.Name()
	require.True(t, ok)
	require.Equal(t, "Harriers", name)
}

func TestBackendErrorStatusIsPreserved(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "not found"}`))
	}))

	_, err := c.GetAthlete(context.Background(), 99)
	require.Error(t, err)
	require.True(t, IsStatus(err, http.StatusNotFound))

	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.JSONEq(t, `{"error": "not found"}`, string(se.Body))
}

func TestPerformancesByAthlete_EmptyIsNotAnError(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/performances/athlete/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [], "total": 0, "page": 1, "limit": 10, "totalPages": 0, "hasNext": false, "hasPrev": false}`))
	}))

	records, err := c.PerformancesByAthlete(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, records)
	require.Empty(t, records)
}

func TestCreateTeamWithRetry_RegeneratesOnceOn409(t *testing.T) {
	t.Parallel()

	var calls int
	var codes []string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/teams", r.URL.Path)

		var in CreateTeam
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		codes = append(codes, in.Code)
		calls++

		w.Header().Set("Content-Type", "application/json")
		if calls == 1 {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"error": "duplicate code"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(Team{TeamID: 10, Code: in.Code, Name: in.Name, SportID: in.SportID})
	}))

	team, err := c.CreateTeamWithRetry(context.Background(), CreateTeam{Name: "Hawks", SportID: 1})
	require.NoError(t, err)
	require.Equal(t, 2, calls, "exactly two backend calls")
	require.Len(t, codes, 2)
	require.NotEqual(t, codes[0], codes[1], "retry must use a fresh code")
	require.Equal(t, codes[1], team.Code)
	require.Regexp(t, `^BB[1-9][0-9]{4}$`, team.Code)
}

func TestCreateTeamWithRetry_SecondConflictSurfaces(t *testing.T) {
	t.Parallel()

	var calls int
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error": "duplicate code"}`))
	}))

	_, err := c.CreateTeamWithRetry(context.Background(), CreateTeam{Name: "Hawks", SportID: 1})
	require.Error(t, err)
	require.True(t, IsStatus(err, http.StatusConflict))
	require.Equal(t, 2, calls, "no third attempt after a second conflict")
}

func TestCreateEventWithRetry_CallerCodeUsedFirst(t *testing.T) {
	t.Parallel()

	var codes []string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in CreateEvent
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		codes = append(codes, in.Code)

		w.Header().Set("Content-Type", "application/json")
		if len(codes) == 1 {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"error": "duplicate code"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(Event{EventID: 3, Code: in.Code, Name: in.Name})
	}))

	ev, err := c.CreateEventWithRetry(context.Background(), CreateEvent{Code: "EVT99999", Name: "Nationals", SportType: catalog.Athletics, StartDate: "2026-09-01"})
	require.NoError(t, err)
	require.Equal(t, "EVT99999", codes[0], "first attempt keeps the caller's code")
	require.Regexp(t, `^EVT[1-9][0-9]{4}$`, codes[1], "retry falls back to a generated code")
	require.Equal(t, codes[1], ev.Code)
}

func TestDeleteWithEmptyBody(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, c.DeletePerformance(context.Background(), 5))
}
