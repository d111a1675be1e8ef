package neo4j

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// ErrInvalidConfig is returned by Build, Open and Wrap when options are
// misused. Errors from the underlying driver are never wrapped in it.
var ErrInvalidConfig = errors.New("sentinel neo4j: invalid configuration")

// Error types reported as "error.type" on spans and "error_type" on metrics.
const (
	ErrorTypeConnection     = "connection"
	ErrorTypeAuthentication = "authentication"
	ErrorTypeSyntax         = "syntax"
	ErrorTypeConstraint     = "constraint"
	ErrorTypeTimeout        = "timeout"
	ErrorTypeCancelled      = "cancelled"
	ErrorTypeTransient      = "transient"
	ErrorTypeClient         = "client"
	ErrorTypeDatabase       = "database"
	ErrorTypeGeneric        = "generic"
)

// ErrorInfo is the sanitized classification of a driver error.
type ErrorInfo struct {
	// Type is one of the ErrorType constants. Never empty for a non-nil error.
	Type string

	// StatusCode is the Neo4j status code, e.g.
	// "Neo.ClientError.Statement.SyntaxError", when the error carries one.
	StatusCode string
}

// ClassifyError maps an error from the underlying driver to a low-cardinality
// type. It only inspects the error; it never alters it.
//
// Example:
//
//	ClassifyError(&neo4j.Neo4jError{Code: "Neo.ClientError.Statement.SyntaxError"})
//	// ErrorInfo{Type: "syntax", StatusCode: "Neo.ClientError.Statement.SyntaxError"}
func ClassifyError(err error) ErrorInfo {
	if err == nil {
		return ErrorInfo{}
	}

	var neoErr *neo4j.Neo4jError
	if errors.As(err, &neoErr) {
		return ErrorInfo{
			Type:       classifyCode(neoErr.Code),
			StatusCode: neoErr.Code,
		}
	}

	var connErr *neo4j.ConnectivityError
	if errors.As(err, &connErr) {
		return ErrorInfo{Type: ErrorTypeConnection}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorInfo{Type: ErrorTypeTimeout}
	}
	if errors.Is(err, context.Canceled) {
		return ErrorInfo{Type: ErrorTypeCancelled}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return ErrorInfo{Type: ErrorTypeTimeout}
		}
		return ErrorInfo{Type: ErrorTypeConnection}
	}

	return ErrorInfo{Type: ErrorTypeGeneric}
}

// classifyCode maps a Neo4j status code (Neo.<Classification>.<Category>.<Title>).
func classifyCode(code string) string {
	switch {
	case strings.HasPrefix(code, "Neo.ClientError.Security."):
		return ErrorTypeAuthentication
	case code == "Neo.ClientError.Statement.SyntaxError":
		return ErrorTypeSyntax
	case code == "Neo.ClientError.Schema.ConstraintValidationFailed":
		return ErrorTypeConstraint
	case strings.Contains(code, "TransactionTimedOut"):
		return ErrorTypeTimeout
	case strings.HasPrefix(code, "Neo.TransientError."):
		return ErrorTypeTransient
	case strings.HasPrefix(code, "Neo.ClientError."):
		return ErrorTypeClient
	case strings.HasPrefix(code, "Neo.DatabaseError."):
		return ErrorTypeDatabase
	default:
		return ErrorTypeGeneric
	}
}
