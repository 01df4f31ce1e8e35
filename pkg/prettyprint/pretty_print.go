// Package prettyprint has doc combinators for rendering formulas and
// truth tables.
// Based on http://homepages.inf.ed.ac.uk/wadler/papers/prettier/prettier.pdf
package prettyprint

import (
	"fmt"
	"strings"
)

type Doc interface {
	// String returns the pretty-printed representation.
	String() string
}

// Text

type text string

var _ Doc = text("")

func Text(s string) Doc {
	return text(s)
}

func Textf(format string, args ...interface{}) Doc {
	return text(fmt.Sprintf(format, args...))
}

func (t text) String() string {
	return string(t)
}

// Empty

type empty struct{}

var Empty Doc = empty{}

func (empty) String() string {
	return ""
}

// Newline

type newline struct{}

var Newline Doc = newline{}

func (newline) String() string {
	return "\n"
}

// Seq

type seq []Doc

var _ Doc = seq{}

func Seq(docs ...Doc) Doc {
	return seq(docs)
}

func (s seq) String() string {
	var buf strings.Builder
	for _, doc := range s {
		buf.WriteString(doc.String())
	}
	return buf.String()
}

// Nest

type nest struct {
	doc    Doc
	nestBy int
}

var _ Doc = &nest{}

func Nest(by int, d Doc) Doc {
	return &nest{
		doc:    d,
		nestBy: by,
	}
}

func (n *nest) String() string {
	indent := strings.Repeat(" ", n.nestBy)
	lines := strings.Split(n.doc.String(), "\n")
	var buf strings.Builder
	for idx, line := range lines {
		if idx > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(indent)
		buf.WriteString(line)
	}
	return buf.String()
}

// Combinators

func Join(docs []Doc, sep Doc) Doc {
	var out []Doc
	for idx, doc := range docs {
		if idx > 0 {
			out = append(out, sep)
		}
		out = append(out, doc)
	}
	return Seq(out...)
}

// Lines joins docs with newlines.
func Lines(docs []Doc) Doc {
	return Join(docs, Newline)
}
