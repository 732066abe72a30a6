package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/athlonet/sportdesk/internal/catalog"
	"github.com/athlonet/sportdesk/internal/perf"
)

// Client talks to the sports backend API. One attempt per call, no
// automatic retries; the only retry in the system is the duplicate-code
// path in create.go.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// New creates a backend client. requestsPerMinute bounds outbound calls
// with a token bucket so a busy dashboard cannot hammer the backend.
func New(baseURL string, requestsPerMinute int, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	rps := float64(requestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Limit(rps), requestsPerMinute),
		logger:     logger,
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// StatusError is a backend response with a non-2xx status. The body is
// preserved so callers and the proxy can pass it through unchanged.
type StatusError struct {
	StatusCode int
	Body       []byte
	Path       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend %s returned %d: %s", e.Path, e.StatusCode, truncate(e.Body, 200))
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}

// do performs a rate-limited request and decodes a 2xx JSON body into out.
// out may be nil when the caller only cares about success.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug("backend error status", "method", method, "path", path, "status", resp.StatusCode)
		return &StatusError{StatusCode: resp.StatusCode, Body: raw, Path: path}
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (p ListParams) values() url.Values {
	v := url.Values{}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.SportType != "" {
		v.Set("sportType", string(p.SportType))
	}
	if p.Gender != "" {
		v.Set("gender", string(p.Gender))
	}
	if p.TeamCode != "" {
		v.Set("teamCode", p.TeamCode)
	}
	if p.AthleteID > 0 {
		v.Set("athleteId", strconv.Itoa(p.AthleteID))
	}
	if p.EventID > 0 {
		v.Set("eventId", strconv.Itoa(p.EventID))
	}
	if p.DateFrom != "" {
		v.Set("dateFrom", p.DateFrom)
	}
	if p.DateTo != "" {
		v.Set("dateTo", p.DateTo)
	}
	return v
}

// --------------------------------------------------------------------------
// Athletes
// --------------------------------------------------------------------------

func (c *Client) ListAthletes(ctx context.Context, params ListParams) (Page[Athlete], error) {
	var page Page[Athlete]
	err := c.do(ctx, http.MethodGet, "/athletes", params.values(), nil, &page)
	return page, err
}

func (c *Client) GetAthlete(ctx context.Context, id int) (Athlete, error) {
	var a Athlete
	err := c.do(ctx, http.MethodGet, "/athletes/"+strconv.Itoa(id), nil, nil, &a)
	return a, err
}

func (c *Client) GetAthleteByCode(ctx context.Context, code string) (Athlete, error) {
	var a Athlete
	err := c.do(ctx, http.MethodGet, "/athletes/code/"+url.PathEscape(code), nil, nil, &a)
	return a, err
}

func (c *Client) CreateIndividualAthlete(ctx context.Context, in CreateIndividualAthlete) (Athlete, error) {
	var a Athlete
	err := c.do(ctx, http.MethodPost, "/athletes/individual", nil, in, &a)
	return a, err
}

func (c *Client) CreateTeamAthlete(ctx context.Context, in CreateTeamAthlete) (Athlete, error) {
	var a Athlete
	err := c.do(ctx, http.MethodPost, "/athletes/team", nil, in, &a)
	return a, err
}

func (c *Client) UpdateAthlete(ctx context.Context, id int, in map[string]any) (Athlete, error) {
	var a Athlete
	err := c.do(ctx, http.MethodPut, "/athletes/"+strconv.Itoa(id), nil, in, &a)
	return a, err
}

func (c *Client) DeleteAthlete(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/athletes/"+strconv.Itoa(id), nil, nil, nil)
}

// --------------------------------------------------------------------------
// Teams
// --------------------------------------------------------------------------

func (c *Client) ListTeams(ctx context.Context, params ListParams) (Page[Team], error) {
	var page Page[Team]
	err := c.do(ctx, http.MethodGet, "/teams", params.values(), nil, &page)
	return page, err
}

func (c *Client) CreateTeam(ctx context.Context, in CreateTeam) (Team, error) {
	var t Team
	err := c.do(ctx, http.MethodPost, "/teams", nil, in, &t)
	return t, err
}

func (c *Client) DeleteTeam(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/teams/"+strconv.Itoa(id), nil, nil, nil)
}

// --------------------------------------------------------------------------
// Events
// --------------------------------------------------------------------------

func (c *Client) ListEvents(ctx context.Context, params ListParams) (Page[Event], error) {
	var page Page[Event]
	err := c.do(ctx, http.MethodGet, "/events", params.values(), nil, &page)
	return page, err
}

func (c *Client) CreateEvent(ctx context.Context, in CreateEvent) (Event, error) {
	var e Event
	err := c.do(ctx, http.MethodPost, "/events", nil, in, &e)
	return e, err
}

// --------------------------------------------------------------------------
// Performances
// --------------------------------------------------------------------------

func (c *Client) ListPerformances(ctx context.Context, params ListParams) (Page[perf.Record], error) {
	var page Page[perf.Record]
	err := c.do(ctx, http.MethodGet, "/performances", params.values(), nil, &page)
	return page, err
}

func (c *Client) GetPerformance(ctx context.Context, id int) (perf.Record, error) {
	var r perf.Record
	err := c.do(ctx, http.MethodGet, "/performances/"+strconv.Itoa(id), nil, nil, &r)
	return r, err
}

// PerformancesByAthlete returns all performances for one athlete. Athletes
// with no recorded performances get an empty, non-nil slice.
func (c *Client) PerformancesByAthlete(ctx context.Context, athleteID int) ([]perf.Record, error) {
	var page Page[perf.Record]
	err := c.do(ctx, http.MethodGet, "/performances/athlete/"+strconv.Itoa(athleteID), nil, nil, &page)
	if err != nil {
		return nil, err
	}
	if page.Data == nil {
		return []perf.Record{}, nil
	}
	return page.Data, nil
}

func (c *Client) CreatePerformance(ctx context.Context, in perf.Record) (perf.Record, error) {
	var r perf.Record
	err := c.do(ctx, http.MethodPost, "/performances", nil, in, &r)
	return r, err
}

func (c *Client) UpdatePerformance(ctx context.Context, id int, in perf.Record) (perf.Record, error) {
	var r perf.Record
	err := c.do(ctx, http.MethodPut, "/performances/"+strconv.Itoa(id), nil, in, &r)
	return r, err
}

func (c *Client) DeletePerformance(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/performances/"+strconv.Itoa(id), nil, nil, nil)
}

// --------------------------------------------------------------------------
// Reference data
// --------------------------------------------------------------------------

func (c *Client) ListSports(ctx context.Context) ([]Sport, error) {
	var page Page[Sport]
	if err := c.do(ctx, http.MethodGet, "/sports", nil, nil, &page); err != nil {
		return nil, err
	}
	return page.Data, nil
}

func (c *Client) ListDisciplines(ctx context.Context) ([]Discipline, error) {
	var page Page[Discipline]
	if err := c.do(ctx, http.MethodGet, "/disciplines", nil, nil, &page); err != nil {
		return nil, err
	}
	return page.Data, nil
}

func (c *Client) PositionsBySport(ctx context.Context, sportID int) ([]Position, error) {
	var page Page[Position]
	if err := c.do(ctx, http.MethodGet, "/positions/sport/"+strconv.Itoa(sportID), nil, nil, &page); err != nil {
		return nil, err
	}
	return page.Data, nil
}

// --------------------------------------------------------------------------
// AI assistant
// --------------------------------------------------------------------------

func (c *Client) Chat(ctx context.Context, in ChatRequest) (ChatResponse, error) {
	var resp ChatResponse
	err := c.do(ctx, http.MethodPost, "/ai/chat", nil, in, &resp)
	return resp, err
}

// Ping verifies the backend is reachable by listing sports.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.ListSports(ctx)
	return err
}

// SportTypeForTeam resolves a team's sport category from its numeric
// sport ID expansion.
func SportTypeForTeam(t Team) catalog.SportType {
	return catalog.SportByID(t.SportID)
}

// truncate keeps error messages readable when the backend returns a large
// or non-JSON body.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
