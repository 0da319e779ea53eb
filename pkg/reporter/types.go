package reporter

import "context"

// Reporter is the interface that wraps the Report method.
// Report gathers the selected host fields and serializes the result.
type Reporter interface {
	Report(ctx context.Context) error
}
