// Package chalk is a thin client for the chalk247 delivery API: the
// scoreboard endpoint (per-day game schedules over a date range) and the
// team-rankings endpoint (current rank and adjusted points per team).
package chalk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path"
	"sort"
	"strings"

	"github.com/NHopewell/nfl-event-parser/internal/config"
	"github.com/NHopewell/nfl-event-parser/internal/dates"
	"github.com/NHopewell/nfl-event-parser/internal/records"
	"github.com/NHopewell/nfl-event-parser/internal/utils"

	resty "github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// Client fetches and field-filters data from the two chalk247 endpoints.
type Client interface {
	FetchScoreboard(startDate string, deltaDays int) ([]records.Record, error)
	FetchRankings() ([]records.Record, error)
}

// RemoteError reports a failed endpoint call: either a non-success HTTP
// status or an underlying transport error.
type RemoteError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *RemoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("GET %s returned %d", e.URL, e.StatusCode)
}

func (e *RemoteError) Unwrap() error { return e.Err }

type ChalkClient struct {
	apiKey     string
	scoreboard config.Endpoint
	rankings   config.Endpoint
	httpClient *resty.Client
}

// NewChalkClient builds a client from the loaded configuration. Each call is
// a single attempt bounded by the configured timeout; a failed fetch fails
// the whole run, so there is no retry policy.
func NewChalkClient(cfg *config.Config) *ChalkClient {
	httpClient := resty.New()
	httpClient.SetTimeout(cfg.RequestTimeout())
	return &ChalkClient{
		apiKey:     cfg.APIKey,
		scoreboard: cfg.Scoreboard,
		rankings:   cfg.Rankings,
		httpClient: httpClient,
	}
}

type scoreboardResponse struct {
	Results map[string]json.RawMessage `json:"results"`
}

type dayBucket struct {
	Data map[string]records.Record `json:"data"`
}

type rankingsResponse struct {
	Results struct {
		Data []records.Record `json:"data"`
	} `json:"results"`
}

// FetchScoreboard pulls every game scheduled between startDate and
// startDate+deltaDays (inclusive), keeping only the configured fields of
// interest and attaching each entry's response key as event_id. Days with no
// games are skipped. Day keys and event ids are iterated in sorted order so
// the returned sequence is deterministic.
func (c *ChalkClient) FetchScoreboard(startDate string, deltaDays int) ([]records.Record, error) {
	endDate, err := dates.ComputeEndDate(startDate, deltaDays)
	if err != nil {
		return nil, err
	}

	url := spliceDateRange(c.scoreboard.URL, startDate, endDate)

	var resp scoreboardResponse
	if err := c.sendGetRequest(url, &resp); err != nil {
		return nil, err
	}

	days := make([]string, 0, len(resp.Results))
	for day := range resp.Results {
		days = append(days, day)
	}
	sort.Strings(days)

	var filtered []records.Record
	for _, day := range days {
		var bucket dayBucket
		// A day with no games serializes as something other than an
		// object with entries; treat it as empty and move on.
		if err := json.Unmarshal(resp.Results[day], &bucket); err != nil || len(bucket.Data) == 0 {
			logrus.Debugf("No games on %s, skipping", day)
			continue
		}

		eventIDs := make([]string, 0, len(bucket.Data))
		for eventID := range bucket.Data {
			eventIDs = append(eventIDs, eventID)
		}
		sort.Strings(eventIDs)

		for _, eventID := range eventIDs {
			event := records.FilterFields(bucket.Data[eventID], c.scoreboard.FieldsOfInterest)
			event["event_id"] = eventID
			filtered = append(filtered, event)
		}
	}

	return filtered, nil
}

// FetchRankings pulls the current ranking snapshot for every team, keeping
// only the configured fields of interest.
func (c *ChalkClient) FetchRankings() ([]records.Record, error) {
	var resp rankingsResponse
	if err := c.sendGetRequest(c.rankings.URL, &resp); err != nil {
		return nil, err
	}

	filtered := make([]records.Record, 0, len(resp.Results.Data))
	for _, team := range resp.Results.Data {
		filtered = append(filtered, records.FilterFields(team, c.rankings.FieldsOfInterest))
	}

	return filtered, nil
}

// spliceDateRange inserts "/start/end" between an endpoint template and its
// extension: .../scoreboard/NFL.json -> .../scoreboard/NFL/2020-01-12/2020-01-19.json.
func spliceDateRange(endpoint, startDate, endDate string) string {
	ext := path.Ext(endpoint)
	base := strings.TrimSuffix(endpoint, ext)
	return base + "/" + startDate + "/" + endDate + ext
}

func (c *ChalkClient) sendGetRequest(url string, v interface{}) error {
	params := map[string]string{
		"api_key": c.apiKey,
	}

	logrus.Debug("Sending GET request on url: " + url +
		" with params: " + utils.BuildQueryParams(params))

	resp, err := c.httpClient.R().
		SetHeader("Content-Type", "application/json").
		SetQueryParams(params).
		Get(url)

	if err != nil {
		return &RemoteError{URL: url, Err: err}
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusBadRequest {
		return &RemoteError{URL: url, StatusCode: resp.StatusCode()}
	}

	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("decoding response from %s: %w", url, err)
	}

	return nil
}
