// Package oasdraft builds OpenAPI descriptions from an editable document
// model and exports them as JSON or YAML.
//
// # Overview
//
// The work is split across a handful of packages:
//
//   - document: the editor model, its persisted JSON form and copy-on-write
//     editing operations
//   - transform: lowers a document into the canonical OpenAPI tree
//   - oas: the canonical tree, whose field and map order is the output order
//   - encoder: writes the tree as JSON or YAML
//   - check: reports inconsistencies the editor tolerates
//   - store: keeps the document in a file, Redis or memory
//
// # Quick Start
//
// Build a document and export it:
//
//	doc, pathID := document.Default().AddPath()
//	doc, _, _ = doc.AddOperation(pathID)
//	tree := transform.Transform(doc)
//	out, err := encoder.YAML(tree)
//
// Report what the export will paper over:
//
//	res := check.Document(doc)
//	for _, issue := range res.Issues {
//	    fmt.Println(issue)
//	}
//
// # Command line
//
// The oasdraft command keeps a document in the configured store and exposes
// the same operations as subcommands (init, export, check, show, reset) and
// as MCP tools (oasdraft mcp).
//
// # Errors
//
// Errors are categorized by the oaserrors package and support errors.Is and
// errors.As:
//
//	if errors.Is(err, oaserrors.ErrStorage) {
//	    // the backend failed
//	}
package oasdraft
