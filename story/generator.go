package story

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// Generator produces stories through a chat model.
type Generator struct {
	model model.ToolCallingChatModel
}

// NewGenerator builds a Generator backed by the configured Ollama model.
func NewGenerator(ctx context.Context, cfg *Config) (*Generator, error) {
	chatModel, err := NewChatModel(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create chat model: %w", err)
	}
	return &Generator{model: chatModel}, nil
}

// Generate returns the full story in one call.
func (g *Generator) Generate(ctx context.Context, p Params) (string, error) {
	msgs := []*schema.Message{
		{Role: schema.User, Content: BuildPrompt(p)},
	}

	result, err := g.model.Generate(ctx, msgs)
	if err != nil {
		return "", fmt.Errorf("generate story: %w", err)
	}
	return result.Content, nil
}

// Stream generates the story incrementally, invoking onChunk for each piece
// of content as it arrives, and returns the assembled story.
func (g *Generator) Stream(ctx context.Context, p Params, onChunk func(string)) (string, error) {
	msgs := []*schema.Message{
		{Role: schema.User, Content: BuildPrompt(p)},
	}

	stream, err := g.model.Stream(ctx, msgs)
	if err != nil {
		return "", fmt.Errorf("stream story: %w", err)
	}
	defer stream.Close()

	var full string
	for {
		chunk, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return full, fmt.Errorf("stream story: %w", err)
		}
		if chunk != nil && chunk.Content != "" {
			full += chunk.Content
			if onChunk != nil {
				onChunk(chunk.Content)
			}
		}
	}

	return full, nil
}
