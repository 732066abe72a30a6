package backend

import (
	"context"
	"net/http"

	"github.com/athlonet/sportdesk/internal/catalog"
	"github.com/athlonet/sportdesk/internal/codegen"
)

// createWithCode runs a creation call whose payload carries a suggested
// code. When the backend rejects the code as a duplicate (409), a fresh
// code is generated and the call is retried exactly once; a second
// conflict is returned as-is so a misbehaving backend cannot loop us.
func createWithCode[T any](ctx context.Context, gen func() string, create func(context.Context, string) (T, error)) (T, error) {
	out, err := create(ctx, gen())
	if err == nil || !IsStatus(err, http.StatusConflict) {
		return out, err
	}
	return create(ctx, gen())
}

// CreateTeamWithRetry creates a team, generating a sport-prefixed code
// when in.Code is empty and regenerating once on a duplicate-code 409.
func (c *Client) CreateTeamWithRetry(ctx context.Context, in CreateTeam) (Team, error) {
	sport := catalog.SportByID(in.SportID)
	return createWithCode(ctx, func() string {
		if in.Code != "" {
			code := in.Code
			in.Code = "" // a conflict on the caller's code falls back to generated ones
			return code
		}
		return codegen.TeamCode(sport)
	}, func(ctx context.Context, code string) (Team, error) {
		payload := in
		payload.Code = code
		return c.CreateTeam(ctx, payload)
	})
}

// CreateEventWithRetry creates an event with an "EVT"-prefixed code.
func (c *Client) CreateEventWithRetry(ctx context.Context, in CreateEvent) (Event, error) {
	return createWithCode(ctx, func() string {
		if in.Code != "" {
			code := in.Code
			in.Code = ""
			return code
		}
		return codegen.EventCode()
	}, func(ctx context.Context, code string) (Event, error) {
		payload := in
		payload.Code = code
		return c.CreateEvent(ctx, payload)
	})
}

// CreateIndividualAthleteWithRetry creates an individual-sport athlete
// with an "ATH"-prefixed code.
func (c *Client) CreateIndividualAthleteWithRetry(ctx context.Context, in CreateIndividualAthlete) (Athlete, error) {
	return createWithCode(ctx, func() string {
		if in.Code != "" {
			code := in.Code
			in.Code = ""
			return code
		}
		return codegen.AthleteCode()
	}, func(ctx context.Context, code string) (Athlete, error) {
		payload := in
		payload.Code = code
		return c.CreateIndividualAthlete(ctx, payload)
	})
}

// CreateTeamAthleteWithRetry creates a team-sport athlete with an
// "ATH"-prefixed code.
func (c *Client) CreateTeamAthleteWithRetry(ctx context.Context, in CreateTeamAthlete) (Athlete, error) {
	return createWithCode(ctx, func() string {
		if in.Code != "" {
			code := in.Code
			in.Code = ""
			return code
		}
		return codegen.AthleteCode()
	}, func(ctx context.Context, code string) (Athlete, error) {
		payload := in
		payload.Code = code
		return c.CreateTeamAthlete(ctx, payload)
	})
}
