package llm

import "context"

// FallbackMessage is the fixed completion returned when no model is
// available. Synthesis still produces a well-formed artifact with it.
const FallbackMessage = "No language model is currently available. " +
	"Configure a provider or set an API key to enable synthesis."

// fallbackClient is the deterministic degradation target: it always
// succeeds and always returns the same string.
type fallbackClient struct{}

// NewFallbackClient returns the no-model client.
func NewFallbackClient() Client {
	return fallbackClient{}
}

func (fallbackClient) Invoke(ctx context.Context, prompt string) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	return Response{Content: FallbackMessage}, nil
}

func (fallbackClient) Model() string    { return "none" }
func (fallbackClient) Provider() string { return "fallback" }
