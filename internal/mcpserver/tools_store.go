package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasdraft/document"
	"github.com/erraggy/oasdraft/store"
)

type emptyInput struct{}

type documentOutput struct {
	Content string `json:"content"`
}

type loadOutput struct {
	Content string `json:"content"`
	Stored  bool   `json:"stored"`
	Warning string `json:"warning,omitempty"`
}

type saveInput struct {
	Content string `json:"content" jsonschema:"Document in the editor's persisted JSON form"`
}

type saveOutput struct {
	Saved       bool `json:"saved"`
	PathCount   int  `json:"path_count"`
	SchemaCount int  `json:"schema_count"`
}

func (s *Server) handleDefaultDocument(_ context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, documentOutput, error) {
	data, err := document.Encode(document.Default())
	if err != nil {
		return errResult(err), documentOutput{}, nil
	}
	return nil, documentOutput{Content: string(data)}, nil
}

func (s *Server) handleLoad(ctx context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, loadOutput, error) {
	output := loadOutput{Stored: true}
	doc, err := s.store.LoadStrict(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log.Warn("stored document unusable, using default", "error", err)
			output.Warning = sanitizeError(err)
		}
		doc = document.Default()
		output.Stored = false
	}
	data, err := document.Encode(doc)
	if err != nil {
		return errResult(err), loadOutput{}, nil
	}
	output.Content = string(data)
	return nil, output, nil
}

func (s *Server) handleSave(ctx context.Context, _ *mcp.CallToolRequest, input saveInput) (*mcp.CallToolResult, saveOutput, error) {
	doc, err := document.Decode([]byte(input.Content))
	if err != nil {
		return errResult(err), saveOutput{}, nil
	}
	if err := s.store.Save(ctx, doc); err != nil {
		return errResult(err), saveOutput{}, nil
	}
	return nil, saveOutput{Saved: true, PathCount: len(doc.Paths), SchemaCount: len(doc.Schemas)}, nil
}
