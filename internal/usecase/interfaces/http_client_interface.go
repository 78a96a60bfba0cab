package interfaces

import "context"

// IHTTPClient is the processor transport. Bodies are plain nested maps with in-memory
// (camelCase) keys; wire encoding, authentication and status handling belong to the
// implementation. Responses come back decoded, nil when the body is empty.
type IHTTPClient interface {
	Get(ctx context.Context, path string) (map[string]any, error)
	Post(ctx context.Context, path string, body map[string]any) (map[string]any, error)
	Put(ctx context.Context, path string, body map[string]any) (map[string]any, error)
	Delete(ctx context.Context, path string) (map[string]any, error)
}
