// Package feature parses Liberty feature descriptor headers into
// immutable Feature values.
//
// A descriptor declares a feature's identity through a small set of
// recognized headers. Multi-valued headers hold a comma-separated list
// of clauses; each clause is an identifier optionally annotated with
// semicolon-separated "name=value" qualifiers:
//
//	Subsystem-SymbolicName: io.openliberty.servlet-4.0; visibility:=public
//	Subsystem-Content: io.openliberty.webProfile; type="osgi.subsystem.feature"
//
// ParseValues turns one raw header value into an ordered sequence of
// ValueElement records; New projects those records into a Feature with
// derived name, visibility, and content fields. Features compare by
// display order and are identified solely by their full name.
package feature
