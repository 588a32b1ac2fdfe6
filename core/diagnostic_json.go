package core

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// EncodeDiagnosticJSON renders d into the JSON wire shape a host's LSP
// transport would forward (spec 1(d): the transport itself is out of
// scope, only this codec is owned by the core). Using sjson keeps the
// construction declarative — each field is a single Set call — rather
// than hand-building a map and running it through encoding/json, which
// is how CWBudde-go-dws's snapshot fixtures are assembled.
func EncodeDiagnosticJSON(d *Diagnostic) (string, error) {
	json := "{}"
	var err error
	set := func(path string, value interface{}) {
		if err != nil {
			return
		}
		json, err = sjson.Set(json, path, value)
	}
	set("level", d.Level.String())
	set("kind", d.Kind)
	set("message", d.Error())
	set("span.file", d.At.File.Name)
	set("span.start", d.At.Span.Start)
	set("span.end", d.At.Span.End)
	for i, f := range d.Trail {
		set(fmt.Sprintf("trail.%d.file", i), f.At.File.Name)
		set(fmt.Sprintf("trail.%d.start", i), f.At.Span.Start)
		set(fmt.Sprintf("trail.%d.end", i), f.At.Span.End)
		set(fmt.Sprintf("trail.%d.label", i), f.Label)
	}
	return json, err
}

// DecodeDiagnosticJSON parses the wire shape EncodeDiagnosticJSON
// produces, for hosts replaying a previously-captured diagnostic (e.g.
// test fixtures) without re-running the evaluator.
func DecodeDiagnosticJSON(data string) (*Diagnostic, error) {
	root := gjson.Parse(data)
	if !root.Exists() {
		return nil, fmt.Errorf("invalid diagnostic JSON")
	}
	d := &Diagnostic{
		Kind: root.Get("kind").String(),
		At: FileSpan{
			File: File{Name: root.Get("span.file").String()},
			Span: Range{
				Start: int(root.Get("span.start").Int()),
				End:   int(root.Get("span.end").Int()),
			},
		},
		Cause: fmt.Errorf("%s", root.Get("message").String()),
	}
	switch root.Get("level").String() {
	case "info":
		d.Level = Info
	case "warning":
		d.Level = Warning
	default:
		d.Level = Error
	}
	for _, f := range root.Get("trail").Array() {
		d.Trail = append(d.Trail, Frame{
			At: FileSpan{
				File: File{Name: f.Get("file").String()},
				Span: Range{Start: int(f.Get("start").Int()), End: int(f.Get("end").Int())},
			},
			Label: f.Get("label").String(),
		})
	}
	return d, nil
}
