package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasdraft/check"
)

type checkInput struct {
	Document    documentInput `json:"document"               jsonschema:"The document to check"`
	MinSeverity string        `json:"min_severity,omitempty" jsonschema:"Lowest severity to report: info (default), warning or error"`
	Offset      int           `json:"offset,omitempty"       jsonschema:"Skip the first N issues (for pagination)"`
	Limit       int           `json:"limit,omitempty"        jsonschema:"Maximum number of issues to return (default 100)"`
}

type checkIssue struct {
	Code       string `json:"code"`
	Severity   string `json:"severity"`
	Path       string `json:"path"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
	Operation  string `json:"operation,omitempty"`
}

type checkOutput struct {
	Valid        bool         `json:"valid"`
	ErrorCount   int          `json:"error_count"`
	WarningCount int          `json:"warning_count"`
	InfoCount    int          `json:"info_count"`
	Returned     int          `json:"returned"`
	Issues       []checkIssue `json:"issues,omitempty"`
}

func (s *Server) handleCheck(ctx context.Context, _ *mcp.CallToolRequest, input checkInput) (*mcp.CallToolResult, checkOutput, error) {
	minSeverity := check.SeverityInfo
	if input.MinSeverity != "" {
		sev, err := check.ParseSeverity(input.MinSeverity)
		if err != nil {
			return errResult(err), checkOutput{}, nil
		}
		minSeverity = sev
	}

	doc, err := s.resolve(ctx, input.Document)
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}

	result := check.Document(doc)
	output := checkOutput{
		Valid:        result.Valid(),
		ErrorCount:   result.ErrorCount,
		WarningCount: result.WarningCount,
		InfoCount:    result.InfoCount,
	}

	selected := result.AtLeast(minSeverity)
	output.Issues = makeSlice[checkIssue](len(selected))
	for _, issue := range selected {
		ci := checkIssue{
			Code:       issue.Code,
			Severity:   issue.Severity.String(),
			Path:       issue.Path,
			Message:    issue.Message,
			Suggestion: issue.Suggestion,
		}
		if issue.Operation != nil && !issue.Operation.IsEmpty() {
			ci.Operation = issue.Operation.String()
		}
		output.Issues = append(output.Issues, ci)
	}
	output.Issues = paginate(output.Issues, input.Offset, input.Limit)
	output.Returned = len(output.Issues)
	return nil, output, nil
}
