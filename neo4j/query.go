package neo4j

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// OperationUnknown is returned when a query does not start with a known
// keyword.
const OperationUnknown = "unknown"

// operations are tested in order against the start of the query.
var operations = []string{"MATCH", "CREATE", "MERGE", "DELETE", "SET", "REMOVE"}

var (
	// labelRegex matches node patterns with a label.
	// Example matches: (n:Person), (:Order), ( a : Item {id: 1})
	labelRegex = regexp.MustCompile(`\(\s*(?:[A-Za-z_][A-Za-z0-9_]*)?\s*:\s*([A-Za-z_][A-Za-z0-9_]*)`)

	// relTypeRegex matches relationship patterns with a type.
	// Example matches: [:KNOWS], [r:CONTAINS], [ r : RATED*1..2]
	relTypeRegex = regexp.MustCompile(`\[\s*(?:[A-Za-z_][A-Za-z0-9_]*)?\s*:\s*([A-Za-z_][A-Za-z0-9_]*)`)

	// stringLiteralRegex matches single- or double-quoted strings, handling
	// escaped quotes.
	stringLiteralRegex = regexp.MustCompile(`'(?:[^'\\]|\\.)*'|"(?:[^"\\]|\\.)*"`)

	// numericLiteralRegex matches integer and float literals.
	numericLiteralRegex = regexp.MustCompile(`\b\d+(?:\.\d+)?\b`)
)

// QueryAttributes is what the classifier infers from a Cypher query.
type QueryAttributes struct {
	// Operation is one of MATCH, CREATE, MERGE, DELETE, SET, REMOVE or
	// OperationUnknown.
	Operation string

	// Labels are node labels in order of appearance, duplicates included.
	Labels []string

	// RelationshipTypes are only populated when requested.
	RelationshipTypes []string
}

// Summary returns a low-cardinality description such as "MATCH Person".
// Returns an empty string for unknown operations.
func (q QueryAttributes) Summary() string {
	if q.Operation == OperationUnknown || q.Operation == "" {
		return ""
	}
	parts := make([]string, 0, 1+len(q.Labels)+len(q.RelationshipTypes))
	parts = append(parts, q.Operation)
	parts = append(parts, q.Labels...)
	parts = append(parts, q.RelationshipTypes...)
	return strings.Join(parts, " ")
}

// Collection returns the first label, or an empty string.
func (q QueryAttributes) Collection() string {
	if len(q.Labels) == 0 {
		return ""
	}
	return q.Labels[0]
}

// Classify infers the operation and labels of a query. It never fails.
//
// Example:
//
//	Classify("CREATE (a:Order)-[:CONTAINS]->(b:Item)", false)
//	// QueryAttributes{Operation: "CREATE", Labels: ["Order", "Item"]}
func Classify(query string, includeRelationshipTypes bool) QueryAttributes {
	q := QueryAttributes{
		Operation: ExtractOperation(query),
		Labels:    ExtractLabels(query),
	}
	if includeRelationshipTypes {
		q.RelationshipTypes = ExtractRelationshipTypes(query)
	}
	return q
}

// ExtractOperation returns the leading Cypher keyword of a query.
// Only a prefix test is done: a query starting with whitespace or a comment
// yields OperationUnknown.
//
// Example:
//
//	ExtractOperation("match (n) return n") // returns "MATCH"
//	ExtractOperation(" MATCH (n) RETURN n") // returns "unknown"
func ExtractOperation(query string) string {
	upper := strings.ToUpper(query)
	for _, op := range operations {
		if strings.HasPrefix(upper, op) {
			return op
		}
	}
	return OperationUnknown
}

// ExtractLabels returns every node label in (x:Label) patterns, left to
// right, including duplicates.
func ExtractLabels(query string) []string {
	return captures(labelRegex, query)
}

// ExtractRelationshipTypes returns every relationship type in [r:TYPE]
// patterns, left to right, including duplicates.
func ExtractRelationshipTypes(query string) []string {
	return captures(relTypeRegex, query)
}

func captures(re *regexp.Regexp, s string) []string {
	matches := re.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

// DefaultQuerySanitizer replaces literal values in a Cypher query with
// placeholders so they do not end up in traces.
//
// What it sanitizes:
//   - String literals: 'john', "john" → '?'
//   - Numeric literals: 42, 3.14 → ?
//
// Parameters ($name) are left alone since they carry no values.
//
// Example:
//
//	DefaultQuerySanitizer("MATCH (u:User {name: 'john', age: 42}) RETURN u")
//	// returns "MATCH (u:User {name: '?', age: ?}) RETURN u"
func DefaultQuerySanitizer(query string) string {
	query = stringLiteralRegex.ReplaceAllString(query, "'?'")
	query = numericLiteralRegex.ReplaceAllString(query, "?")
	return query
}

// truncateStatement cuts s to at most limit bytes without splitting a UTF-8
// sequence.
func truncateStatement(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
