// Package pathutil builds the dotted locations used in diagnostics and the
// JSON pointers used by schema references.
//
// Diagnostic paths are built with a pooled [PathBuilder]:
//
//	p := pathutil.Get()
//	defer pathutil.Put(p)
//	p.Push("paths")
//	p.PushKey("/pets")
//	p.Push("get")
//	p.String() // "paths./pets.get"
//
// Keys containing dots or brackets are rendered in brackets so the path
// stays unambiguous: `components.schemas["v1.Pet"]`.
package pathutil
