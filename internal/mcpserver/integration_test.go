package mcpserver

import (
	"context"
	"encoding/json"
	"slices"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasdraft/store"
)

// startTestSession creates an in-process MCP server/client pair and returns
// the connected client session. The server is shut down when the test ends.
func startTestSession(t *testing.T) *mcp.ClientSession {
	t.Helper()

	server := New(store.New(store.NewMemoryKV())).MCP()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})
	return session
}

func TestIntegrationListTools(t *testing.T) {
	session := startTestSession(t)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description, "tool %q has empty description", tool.Name)
	}
	slices.Sort(names)
	assert.Equal(t, []string{"check", "default_document", "export", "load", "save"}, names)
}

func TestIntegrationSaveThenExport(t *testing.T) {
	session := startTestSession(t)
	ctx := context.Background()

	saved, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "save",
		Arguments: map[string]any{"content": petDocument},
	})
	require.NoError(t, err)
	require.False(t, saved.IsError)
	assert.Equal(t, float64(1), unmarshalStructured(t, saved)["path_count"])

	exported, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "export",
		Arguments: map[string]any{"document": map[string]any{}, "format": "yaml"},
	})
	require.NoError(t, err)
	require.False(t, exported.IsError)

	out := unmarshalStructured(t, exported)
	assert.Equal(t, "yaml", out["format"])
	assert.Contains(t, out["content"], "title: Pets\n")
}

func TestIntegrationCheckError(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "check",
		Arguments: map[string]any{"document": map[string]any{"content": "[]"}},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

// unmarshalStructured extracts the structured output of a tool result.
func unmarshalStructured(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	if result.StructuredContent != nil {
		data, err := json.Marshal(result.StructuredContent)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		return m
	}

	require.NotEmpty(t, result.Content, "expected at least one content item")
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &m))
	return m
}
