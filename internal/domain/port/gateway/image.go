package gateway

import (
	"context"
)

// ImageGenerator is the external text-to-image service. It either returns
// the raw image bytes or fails; no partial results.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}
