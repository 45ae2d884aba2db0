package model

import (
	"context"
	"strings"
)

// SubmitRequest is handed to the protocol client to advance a transaction.
type SubmitRequest struct {
	Step         string         `json:"step"`
	IsActionStep bool           `json:"isActionStep,omitempty"`
	Params       map[string]any `json:"params,omitempty"`
}

// Submitter advances the authentication protocol.
type Submitter interface {
	Submit(ctx context.Context, req SubmitRequest) error
}

// SubmitterFunc adapts a function into a Submitter.
type SubmitterFunc func(ctx context.Context, req SubmitRequest) error

// Submit calls the underlying function.
func (fn SubmitterFunc) Submit(ctx context.Context, req SubmitRequest) error {
	return fn(ctx, req)
}

// NewSubmitRequest builds the request for action using data. Action params
// are merged over data; excluded paths and empty keys are dropped. Action
// steps only carry data when IncludeData is set.
func NewSubmitRequest(action ActionOptions, data map[string]any, exclude []string) SubmitRequest {
	req := SubmitRequest{
		Step:         action.Step,
		IsActionStep: action.IsActionStep,
	}
	params := make(map[string]any)
	if !action.IsActionStep || action.IncludeData {
		skip := make(map[string]struct{}, len(exclude))
		for _, path := range exclude {
			skip[path] = struct{}{}
		}
		for path, value := range data {
			if _, ok := skip[path]; ok || strings.TrimSpace(path) == "" {
				continue
			}
			params[path] = value
		}
	}
	for k, v := range action.ActionParams {
		params[k] = v
	}
	if len(params) > 0 {
		req.Params = params
	}
	return req
}

// SubmitRequest builds the request for the bag's submit options.
func (b FormBag) SubmitRequest(data map[string]any) (SubmitRequest, bool) {
	if b.DataSchema.Submit == nil {
		return SubmitRequest{}, false
	}
	return NewSubmitRequest(*b.DataSchema.Submit, data, b.DataSchema.FieldsToExclude), true
}
