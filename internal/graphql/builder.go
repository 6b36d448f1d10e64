package graphql

import (
	"fmt"
	"strings"
)

// ViewerFragment is the sub-selection appended to every query so each page
// render learns who the caller is. It is passed around explicitly; nothing
// in this package mutates it.
const ViewerFragment = `viewer {
    id
    firstName
    lastName
    email
    openidUid
    extra
}`

// AuthorFields is the scalar selection shared by every author lookup.
const AuthorFields = `id
firstName
lastName
hasCollidingName
extra`

// ReportFields is the scalar selection shared by every report lookup.
// Callers compose the author sub-selection or revision list on top as the
// call site requires.
const ReportFields = `id
date
published
edited
title
body
receivedBenefit
providedBenefit
ourParticipants
otherParticipants
extra`

// Argument is a single name/value pair of a GraphQL argument list. Value is
// the literal token to emit: numbers and enum names go in verbatim, strings
// must be wrapped with QuoteString first.
type Argument struct {
	Name  string
	Value string
}

// Arguments is an argument list that preserves insertion order.
type Arguments []Argument

func (a Arguments) Add(name, value string) Arguments {
	return append(a, Argument{Name: name, Value: value})
}

func (a Arguments) AddInt(name string, value int) Arguments {
	return a.Add(name, fmt.Sprintf("%d", value))
}

func (a Arguments) AddBool(name string, value bool) Arguments {
	return a.Add(name, fmt.Sprintf("%t", value))
}

func (a Arguments) AddString(name, value string) Arguments {
	return a.Add(name, QuoteString(value))
}

// Encode renders the list as `name1: value1, name2: value2` in insertion
// order.
func (a Arguments) Encode() string {
	parts := make([]string, 0, len(a))
	for _, arg := range a {
		parts = append(parts, arg.Name+": "+arg.Value)
	}
	return strings.Join(parts, ", ")
}

// Wrap renders the parenthesized argument list, or nothing when the list is
// empty, so callers can interpolate it directly after a field name.
func (a Arguments) Wrap() string {
	if len(a) == 0 {
		return ""
	}
	return " (" + a.Encode() + ")"
}

// QuoteString wraps a value in double quotes for inlining into a document.
// Quotes, backslashes and control characters are escaped; free text must
// never reach the document unescaped.
func QuoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// BuildQuery assembles a full query document from a body selection and the
// viewer fragment.
func BuildQuery(body, viewer string) string {
	return fmt.Sprintf("query {\n%s\n%s\n}", body, viewer)
}
