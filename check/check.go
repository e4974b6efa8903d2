// Package check reports the inconsistencies the editor tolerates in a
// [document.Document].
//
// The transform package lowers every document, however inconsistent, using
// fixed tie-break rules. Check tells the user where those rules kicked in or
// where the output will not be a usable OpenAPI document. It never modifies
// the document and never fails.
//
//	res := check.Document(doc)
//	for _, issue := range res.Issues {
//	    fmt.Println(issue)
//	}
package check

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/erraggy/oasdraft/document"
	"github.com/erraggy/oasdraft/internal/httputil"
	"github.com/erraggy/oasdraft/internal/issues"
	"github.com/erraggy/oasdraft/internal/naming"
	"github.com/erraggy/oasdraft/internal/pathutil"
	"github.com/erraggy/oasdraft/internal/severity"
	"github.com/erraggy/oasdraft/internal/stringutil"
)

// Issue is a single diagnostic.
type Issue = issues.Issue

// OperationContext names the operation an Issue belongs to.
type OperationContext = issues.OperationContext

// Severity is the level of an Issue.
type Severity = severity.Severity

// Severity levels, from least to most severe.
const (
	SeverityInfo    = severity.SeverityInfo
	SeverityWarning = severity.SeverityWarning
	SeverityError   = severity.SeverityError
)

// ParseSeverity maps a level name ("info", "warning", "error") to a Severity.
func ParseSeverity(name string) (Severity, error) {
	return severity.Parse(name)
}

// Issue codes.
const (
	CodeDuplicatePath         = "duplicate-path"
	CodeInvalidPath           = "invalid-path"
	CodeDuplicateMethod       = "duplicate-method"
	CodeInvalidMethod         = "invalid-method"
	CodeMissingOperationID    = "missing-operation-id"
	CodeDuplicateOperationID  = "duplicate-operation-id"
	CodeDuplicateStatusCode   = "duplicate-status-code"
	CodeEmptyDescription      = "empty-response-description"
	CodeUndeclaredPathParam   = "undeclared-path-parameter"
	CodeOptionalPathParam     = "optional-path-parameter"
	CodeUnnamedParameter      = "unnamed-parameter"
	CodeDuplicateSchemaName   = "duplicate-schema-name"
	CodeEmptySchemaName       = "empty-schema-name"
	CodeDanglingRequired      = "dangling-required"
	CodeDanglingReference     = "dangling-reference"
	CodeEmptyServerURL        = "empty-server-url"
	CodeEnumOnNonStringSchema = "enum-on-non-string"
	CodeFormatNotForType      = "format-not-for-type"
	CodeMissingRequestContent = "missing-request-content"
	CodeInvalidStatusCode     = "invalid-status-code"
	CodeInvalidMediaType      = "invalid-media-type"
	CodeInvalidEmail          = "invalid-email"
	CodeInvalidURL            = "invalid-url"
)

// Result holds the issues found in a document, in discovery order.
type Result struct {
	Issues       []Issue
	ErrorCount   int
	WarningCount int
	InfoCount    int
}

// Valid reports whether no error-level issue was found.
func (r *Result) Valid() bool {
	return r.ErrorCount == 0
}

// AtLeast returns the issues whose severity is at least min.
func (r *Result) AtLeast(min Severity) []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Severity >= min {
			out = append(out, i)
		}
	}
	return out
}

// ByCode returns the issues with the given code.
func (r *Result) ByCode(code string) []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Code == code {
			out = append(out, i)
		}
	}
	return out
}

func (r *Result) add(i Issue) {
	switch i.Severity {
	case SeverityError:
		r.ErrorCount++
	case SeverityWarning:
		r.WarningCount++
	default:
		r.InfoCount++
	}
	r.Issues = append(r.Issues, i)
}

type checker struct {
	doc    *document.Document
	result *Result
	names  map[string]bool
	path   *pathutil.PathBuilder
}

// Document checks doc and returns every issue found.
func Document(doc *document.Document) *Result {
	c := &checker{
		doc:    doc,
		result: &Result{},
		names:  make(map[string]bool, len(doc.Schemas)),
		path:   pathutil.Get(),
	}
	defer pathutil.Put(c.path)
	for _, s := range doc.Schemas {
		c.names[s.Name] = true
	}

	c.checkInfo()
	c.checkServers()
	c.checkPaths()
	c.checkRegistry()
	return c.result
}

func (c *checker) report(sev Severity, code, msg string, op *OperationContext) {
	c.result.add(Issue{Code: code, Severity: sev, Path: c.path.String(), Message: msg, Operation: op})
}

func (c *checker) checkInfo() {
	info := c.doc.Info
	c.path.Push("info")
	defer c.path.Pop()
	c.checkURL("termsOfService", info.TermsOfService)
	if info.Contact != nil {
		c.path.Push("contact")
		c.checkURL("url", info.Contact.URL)
		if email, ok := info.Contact.Email.Get(); ok && email != "" && !stringutil.IsValidEmail(email) {
			c.path.Push("email")
			c.report(SeverityInfo, CodeInvalidEmail, fmt.Sprintf("%q is not an email address", email), nil)
			c.path.Pop()
		}
		c.path.Pop()
	}
	if info.License != nil {
		c.path.Push("license")
		c.checkURL("url", info.License.URL)
		c.path.Pop()
	}
}

func (c *checker) checkURL(field string, v document.Optional[string]) {
	u, ok := v.Get()
	if !ok || u == "" || stringutil.IsAbsoluteURL(u) {
		return
	}
	c.path.Push(field)
	c.report(SeverityInfo, CodeInvalidURL, fmt.Sprintf("%q is not an absolute URL", u), nil)
	c.path.Pop()
}

func (c *checker) checkServers() {
	c.path.Push("servers")
	defer c.path.Pop()
	for i, s := range c.doc.Servers {
		if strings.TrimSpace(s.URL) != "" {
			continue
		}
		c.path.PushIndex(i)
		c.path.Push("url")
		c.report(SeverityInfo, CodeEmptyServerURL, "server has no url and is left out of the export", nil)
		c.path.Pop()
		c.path.Pop()
	}
}

func (c *checker) checkPaths() {
	c.path.Push("paths")
	defer c.path.Pop()

	firstSeen := make(map[string]int, len(c.doc.Paths))
	operationIDs := make(map[string]string)
	for i, item := range c.doc.Paths {
		c.path.PushKey(item.Path)
		if first, ok := firstSeen[item.Path]; ok {
			c.report(SeverityWarning, CodeDuplicatePath,
				fmt.Sprintf("path %q is also defined by path item %d; their operations are merged and a later method replaces an earlier one", item.Path, first+1),
				nil)
		} else {
			firstSeen[item.Path] = i
		}
		if !strings.HasPrefix(item.Path, "/") {
			c.report(SeverityWarning, CodeInvalidPath, fmt.Sprintf("path %q must begin with a slash", item.Path), nil)
		}
		c.checkPathItem(item, operationIDs)
		c.path.Pop()
	}
}

func (c *checker) checkPathItem(item document.PathItem, operationIDs map[string]string) {
	templateParams := pathutil.TemplateParams(item.Path)
	seen := make(map[document.Method]bool, len(item.Operations))
	for _, op := range item.Operations {
		method := strings.ToLower(string(op.Method))
		opCtx := &OperationContext{Method: method, Path: item.Path, OperationID: op.OperationID.OrElse("")}
		c.path.Push(method)

		switch {
		case !op.Method.Valid():
			c.report(SeverityError, CodeInvalidMethod, fmt.Sprintf("%q is not an HTTP method", op.Method), opCtx)
		case seen[op.Method]:
			c.report(SeverityWarning, CodeDuplicateMethod,
				fmt.Sprintf("path item has more than one %s operation; the last one is exported", strings.ToUpper(method)), opCtx)
		}
		seen[op.Method] = true

		if id := op.OperationID.OrElse(""); id == "" {
			c.result.add(Issue{
				Code:       CodeMissingOperationID,
				Severity:   SeverityInfo,
				Path:       c.path.String(),
				Message:    "operation has no operationId",
				Suggestion: naming.OperationID(method, item.Path),
				Operation:  opCtx,
			})
		} else if first, dup := operationIDs[id]; dup {
			c.report(SeverityWarning, CodeDuplicateOperationID,
				fmt.Sprintf("operationId %q is already used at %s", id, first), opCtx)
		} else {
			operationIDs[id] = c.path.String()
		}

		c.checkParameters(op, templateParams, opCtx)
		c.checkRequestBody(op, opCtx)
		c.checkResponses(op, opCtx)
		c.path.Pop()
	}
}

func (c *checker) checkParameters(op document.Operation, templateParams []string, opCtx *OperationContext) {
	declared := make(map[string]bool)
	c.path.Push("parameters")
	for i, p := range op.Parameters {
		c.path.PushIndex(i)
		if strings.TrimSpace(p.Name) == "" {
			c.report(SeverityWarning, CodeUnnamedParameter, "parameter has no name", opCtx)
		}
		if p.In == document.InPath {
			declared[p.Name] = true
			if !p.Required {
				c.report(SeverityWarning, CodeOptionalPathParam, fmt.Sprintf("path parameter %q must be required", p.Name), opCtx)
			}
		}
		c.path.Push("schema")
		c.checkSchema(p.Schema)
		c.path.Pop()
		c.path.Pop()
	}
	c.path.Pop()

	for _, name := range templateParams {
		if !declared[name] {
			c.report(SeverityWarning, CodeUndeclaredPathParam,
				fmt.Sprintf("path template uses {%s} but the operation declares no such path parameter", name), opCtx)
		}
	}
}

func (c *checker) checkRequestBody(op document.Operation, opCtx *OperationContext) {
	if op.RequestBody == nil {
		return
	}
	c.path.Push("requestBody")
	defer c.path.Pop()
	if op.RequestBody.Content.Len() == 0 {
		c.report(SeverityWarning, CodeMissingRequestContent, "request body has no content", opCtx)
		return
	}
	c.checkContent(op.RequestBody.Content, opCtx)
}

func (c *checker) checkResponses(op document.Operation, opCtx *OperationContext) {
	c.path.Push("responses")
	defer c.path.Pop()
	seen := make(map[string]bool, len(op.Responses))
	for _, r := range op.Responses {
		c.path.PushKey(r.StatusCode)
		if seen[r.StatusCode] {
			c.report(SeverityWarning, CodeDuplicateStatusCode,
				fmt.Sprintf("status code %s is listed more than once; the last response is exported", r.StatusCode), opCtx)
		}
		seen[r.StatusCode] = true
		if !httputil.ValidStatusCode(r.StatusCode) {
			c.report(SeverityWarning, CodeInvalidStatusCode,
				fmt.Sprintf("%q is not a status code, a range such as 4XX, or default", r.StatusCode), opCtx)
		}
		if strings.TrimSpace(r.Description) == "" {
			c.report(SeverityInfo, CodeEmptyDescription, "response has no description; \"Response\" is exported instead", opCtx)
		}
		c.checkContent(r.Content, opCtx)
		c.path.Pop()
	}
}

func (c *checker) checkContent(content *document.Content, opCtx *OperationContext) {
	c.path.Push("content")
	defer c.path.Pop()
	for mediaType, mt := range content.All() {
		c.path.PushKey(mediaType)
		if !httputil.IsValidMediaType(mediaType) {
			c.report(SeverityWarning, CodeInvalidMediaType, fmt.Sprintf("%q is not a media type", mediaType), opCtx)
		}
		c.path.Push("schema")
		if ref, ok := mt.Schema.Ref.Get(); ok {
			c.checkRef(ref, opCtx)
		} else {
			c.checkSchema(mt.Schema.Schema)
		}
		c.path.Pop()
		c.path.Pop()
	}
}

func (c *checker) checkRef(ref string, opCtx *OperationContext) {
	name, ok := pathutil.SchemaName(ref)
	switch {
	case !ok:
		c.report(SeverityError, CodeDanglingReference,
			fmt.Sprintf("reference %q does not point into %s", ref, pathutil.RefPrefixSchemas), opCtx)
	case !c.names[name]:
		c.report(SeverityError, CodeDanglingReference,
			fmt.Sprintf("reference %q names a schema that does not exist", ref), opCtx)
	}
}

func (c *checker) checkRegistry() {
	c.path.Push("components")
	c.path.Push("schemas")
	defer c.path.Pop()
	defer c.path.Pop()

	seen := make(map[string]bool, len(c.doc.Schemas))
	for _, ns := range c.doc.Schemas {
		c.path.PushKey(ns.Name)
		switch {
		case strings.TrimSpace(ns.Name) == "":
			c.report(SeverityWarning, CodeEmptySchemaName, "schema has no name and cannot be referenced", nil)
		case seen[ns.Name]:
			c.report(SeverityWarning, CodeDuplicateSchemaName,
				fmt.Sprintf("schema name %q is used more than once; the last definition is exported", ns.Name), nil)
		}
		seen[ns.Name] = true
		c.checkSchema(ns.Schema)
		c.path.Pop()
	}
}

// checkSchema walks s recursively. The current path addresses s.
func (c *checker) checkSchema(s document.Schema) {
	if len(s.Enum) > 0 && s.Type != document.TypeString {
		c.report(SeverityInfo, CodeEnumOnNonStringSchema,
			fmt.Sprintf("enum values are strings but the schema type is %q", s.Type), nil)
	}
	if f, ok := s.Format.Get(); ok && f != "" && !formatAllowed(s.Type, f) {
		c.report(SeverityInfo, CodeFormatNotForType,
			fmt.Sprintf("format %q is not offered for type %q", f, s.Type), nil)
	}
	if s.Type == document.TypeArray && s.Items != nil {
		c.path.Push("items")
		c.checkSchema(*s.Items)
		c.path.Pop()
	}
	if s.Type != document.TypeObject {
		return
	}
	for i, name := range s.Required {
		if s.Properties.Has(name) {
			continue
		}
		c.path.Push("required")
		c.path.PushIndex(i)
		c.report(SeverityWarning, CodeDanglingRequired,
			fmt.Sprintf("required property %s is not defined in properties", strconv.Quote(name)), nil)
		c.path.Pop()
		c.path.Pop()
	}
	for name, prop := range s.Properties.All() {
		c.path.Push("properties")
		c.path.PushKey(name)
		c.checkSchema(prop)
		c.path.Pop()
		c.path.Pop()
	}
}

func formatAllowed(t document.SchemaType, format string) bool {
	return slices.Contains(document.FormatsFor(t), format)
}
