package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	llmv1 "github.com/ujesh-sakariya/local-deep-research-sub002/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// grpcClient calls a model sidecar over gRPC and accumulates its streamed
// text into a single response.
type grpcClient struct {
	conn        *grpc.ClientConn
	client      llmv1.LLMServiceClient
	model       string
	temperature float64
}

// NewGRPCClient dials the sidecar at addr. The connection is lazy; dial
// errors surface on the first Invoke.
func NewGRPCClient(addr string, opts ProviderOptions) (Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to model sidecar at %s: %w", addr, err)
	}
	return &grpcClient{
		conn:        conn,
		client:      llmv1.NewLLMServiceClient(conn),
		model:       opts.Model,
		temperature: opts.Temperature,
	}, nil
}

func (c *grpcClient) Invoke(ctx context.Context, prompt string) (Response, error) {
	req := &llmv1.GenerateRequest{
		Model:  c.model,
		Prompt: prompt,
	}
	if c.temperature > 0 {
		temp := float32(c.temperature)
		req.Temperature = &temp
	}

	stream, err := c.client.Generate(ctx, req)
	if err != nil {
		return Response{}, fmt.Errorf("sidecar Generate call failed: %w", err)
	}

	var sb strings.Builder
	var usage *Usage
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Response{}, fmt.Errorf("sidecar stream error: %w", err)
		}
		switch content := resp.Content.(type) {
		case *llmv1.GenerateResponse_Text:
			sb.WriteString(content.Text.Content)
		case *llmv1.GenerateResponse_Usage:
			usage = &Usage{
				PromptTokens:     int(content.Usage.PromptTokens),
				CompletionTokens: int(content.Usage.CompletionTokens),
			}
		case *llmv1.GenerateResponse_Error:
			return Response{}, fmt.Errorf("sidecar error: %s", content.Error.Message)
		}
	}
	return Response{Content: sb.String(), Usage: usage}, nil
}

func (c *grpcClient) Model() string    { return c.model }
func (c *grpcClient) Provider() string { return "grpc" }

// Close releases the sidecar connection.
func (c *grpcClient) Close() error {
	return c.conn.Close()
}
