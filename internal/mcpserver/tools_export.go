package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasdraft/encoder"
	"github.com/erraggy/oasdraft/transform"
)

type exportInput struct {
	Document documentInput `json:"document"         jsonschema:"The document to export"`
	Format   string        `json:"format,omitempty" jsonschema:"Output format: json (default) or yaml"`
}

type exportOutput struct {
	Format    string `json:"format"`
	MediaType string `json:"media_type"`
	Content   string `json:"content"`
	Cached    bool   `json:"cached"`
}

func (s *Server) handleExport(ctx context.Context, _ *mcp.CallToolRequest, input exportInput) (*mcp.CallToolResult, exportOutput, error) {
	format := encoder.FormatJSON
	if input.Format != "" {
		f, err := encoder.ParseFormat(input.Format)
		if err != nil {
			return errResult(err), exportOutput{}, nil
		}
		format = f
	}

	doc, err := s.resolve(ctx, input.Document)
	if err != nil {
		return errResult(err), exportOutput{}, nil
	}

	output := exportOutput{Format: string(format), MediaType: format.MediaType()}
	key, err := exportKey(doc, format)
	if err != nil {
		return errResult(err), exportOutput{}, nil
	}
	if content, ok := s.cache.Get(key); ok {
		output.Content = content
		output.Cached = true
		return nil, output, nil
	}

	data, err := encoder.Encode(transform.Transform(doc, transform.WithLogger(s.log)), format)
	if err != nil {
		return errResult(err), exportOutput{}, nil
	}
	output.Content = string(data)
	s.cache.Add(key, output.Content)
	s.log.Debug("document exported", "format", format, "bytes", len(data))
	return nil, output, nil
}
