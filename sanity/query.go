package sanity

import (
	"fmt"
	"strings"
)

// Query builds a GROQ expression for one document type: filter predicates,
// ordering, a half-open result slice and a field projection. Parameter
// references ($name) are bound at fetch time, never interpolated into the
// query text.
type Query struct {
	docType string
	conds   []string
	order   string
	start   int
	end     int
	sliced  bool
	first   bool
	fields  []string
}

// NewQuery starts a query over documents of the given type.
func NewQuery(docType string) *Query {
	return &Query{docType: docType}
}

// Eq adds an equality predicate between a field path and a named parameter.
// The field path may traverse a reference, e.g. "relatedProject->slug.current".
func (q *Query) Eq(fieldPath, param string) *Query {
	q.conds = append(q.conds, fmt.Sprintf("%s == $%s", fieldPath, param))
	return q
}

// EqBool adds an equality predicate against a boolean literal.
func (q *Query) EqBool(field string, value bool) *Query {
	q.conds = append(q.conds, fmt.Sprintf("%s == %t", field, value))
	return q
}

// OrderBy sorts results by a field, descending when desc is set.
func (q *Query) OrderBy(field string, desc bool) *Query {
	dir := "asc"
	if desc {
		dir = "desc"
	}
	q.order = fmt.Sprintf("%s %s", field, dir)
	return q
}

// Slice keeps the half-open range [start, end) of the ordered results.
func (q *Query) Slice(start, end int) *Query {
	q.start = start
	q.end = end
	q.sliced = true
	return q
}

// First narrows the query to the first match. The fetch reports ErrNotFound
// when no document matches.
func (q *Query) First() *Query {
	q.first = true
	return q
}

// Project sets the returned fields. Each entry is either a plain field name,
// an Alias, a Literal or a Deref.
func (q *Query) Project(fields ...string) *Query {
	q.fields = fields
	return q
}

// Alias projects an expression under a different name,
// e.g. Alias("slug", "slug.current").
func Alias(name, expr string) string {
	return fmt.Sprintf("%q: %s", name, expr)
}

// Literal projects a fixed string value under the given name. Used for fields
// the store does not hold, like the reading-time default.
func Literal(name, value string) string {
	return fmt.Sprintf("%q: %q", name, value)
}

// Deref follows a reference field and projects fields of the target document.
func Deref(field string, fields ...string) string {
	return fmt.Sprintf("%s->{ %s }", field, strings.Join(fields, ", "))
}

// Build renders the GROQ query string.
func (q *Query) Build() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("*[_type == %q", q.docType))
	for _, cond := range q.conds {
		b.WriteString(" && ")
		b.WriteString(cond)
	}
	b.WriteString("]")

	if q.order != "" {
		b.WriteString(fmt.Sprintf(" | order(%s)", q.order))
	}
	if q.first {
		b.WriteString("[0]")
	} else if q.sliced {
		b.WriteString(fmt.Sprintf("[%d...%d]", q.start, q.end))
	}
	if len(q.fields) > 0 {
		b.WriteString(" { ")
		b.WriteString(strings.Join(q.fields, ", "))
		b.WriteString(" }")
	}
	return b.String()
}
