package ports

import "context"

// InferenceClient forwards one JSON POST to a backing inference endpoint and
// returns the decoded response body. Any transport, HTTP-status or decode
// failure surfaces as an error; classification happens in the gateway.
type InferenceClient interface {
	Predict(ctx context.Context, url string, payload interface{}) (interface{}, error)
}
