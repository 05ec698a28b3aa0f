package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/altinukshini/leadfinder/internal/model"
)

// ItemsQuery holds the query parameters shared by the item endpoints.
type ItemsQuery struct {
	Token    string
	MaxItems int
	// Format and Clean are always sent; Raw disables them for endpoints
	// that take only the token.
	Raw bool
}

func (q ItemsQuery) Values() url.Values {
	v := url.Values{}
	v.Set("token", q.Token)
	if q.MaxItems > 0 {
		v.Set("maxItems", strconv.Itoa(q.MaxItems))
	}
	if !q.Raw {
		v.Set("format", "json")
		v.Set("clean", "true")
	}
	return v
}

// RunSync runs the actor and waits for its dataset in one call.
func (c *Client) RunSync(ctx context.Context, actorID, token string, req model.JobRequest) ([]model.ExternalRecord, error) {
	const op = "run-sync"
	q := ItemsQuery{Token: token, MaxItems: req.MaxItems()}
	path := fmt.Sprintf("/acts/%s/run-sync-get-dataset-items", actorPath(actorID))
	body, err := c.do(ctx, op, http.MethodPost, path, q.Values(), token, req)
	if err != nil {
		return nil, err
	}
	return decodeRecords(op, body)
}

// StartRun starts an asynchronous run and returns its ids.
func (c *Client) StartRun(ctx context.Context, actorID, token string, req model.JobRequest) (*model.ActorRun, error) {
	const op = "start run"
	q := ItemsQuery{Token: token, Raw: true}
	path := fmt.Sprintf("/acts/%s/runs", actorPath(actorID))
	body, err := c.do(ctx, op, http.MethodPost, path, q.Values(), token, req)
	if err != nil {
		return nil, err
	}
	run, err := decodeRun(op, body)
	if err != nil {
		return nil, err
	}
	if run.ID == "" {
		return nil, &ProtocolError{Op: op, Detail: "response has no run id"}
	}
	return run, nil
}

// GetRun fetches the current state of a run.
func (c *Client) GetRun(ctx context.Context, runID, token string) (*model.ActorRun, error) {
	const op = "run status"
	q := ItemsQuery{Token: token, Raw: true}
	body, err := c.do(ctx, op, http.MethodGet, "/actor-runs/"+runID, q.Values(), token, nil)
	if err != nil {
		return nil, err
	}
	run, err := decodeRun(op, body)
	if err != nil {
		return nil, err
	}
	if run.Status == "" {
		return nil, &ProtocolError{Op: op, Detail: "response has no status"}
	}
	return run, nil
}

// DatasetItems downloads every item of a dataset.
func (c *Client) DatasetItems(ctx context.Context, datasetID, token string) ([]model.ExternalRecord, error) {
	const op = "dataset items"
	q := ItemsQuery{Token: token}
	body, err := c.do(ctx, op, http.MethodGet, "/datasets/"+datasetID+"/items", q.Values(), token, nil)
	if err != nil {
		return nil, err
	}
	return decodeRecords(op, body)
}

func decodeRun(op string, body []byte) (*model.ActorRun, error) {
	var resp model.ActorRunResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ProtocolError{Op: op, Detail: err.Error()}
	}
	return &resp.Data, nil
}
