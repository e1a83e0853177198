package types

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// ERROR KINDS
// =============================================================================

// Kind classifies a pipeline failure. Every kind has the same severity: the
// run stops at the first one. Kinds only differ in the message they render.
type Kind int

const (
	// KindUnknown is the catch-all for I/O faults and anything unanticipated.
	KindUnknown Kind = iota
	KindMissingDefinitionFile
	KindInvalidDefinitionFormat
	KindNonSequentialFileNames
	KindMalformedRecord
	KindUnknownBranchCode
	KindUnknownProductCode
	// KindNonNumericAmount and KindWriteError are reported as unknown errors.
	KindNonNumericAmount
	KindAmountOverflow
	KindWriteError
)

var kindNames = map[Kind]string{
	KindUnknown:                 "UnknownError",
	KindMissingDefinitionFile:   "MissingDefinitionFile",
	KindInvalidDefinitionFormat: "InvalidDefinitionFormat",
	KindNonSequentialFileNames:  "NonSequentialFileNames",
	KindMalformedRecord:         "MalformedRecord",
	KindUnknownBranchCode:       "UnknownBranchCode",
	KindUnknownProductCode:      "UnknownProductCode",
	KindNonNumericAmount:        "NonNumericAmount",
	KindAmountOverflow:          "AmountOverflow",
	KindWriteError:              "WriteError",
}

// String returns the kind name, e.g. "AmountOverflow".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// messageTemplates holds the human-readable message for each kind.
// A %s verb is filled with Error.Subject.
var messageTemplates = map[Kind]string{
	KindUnknown:                 "an unexpected error occurred",
	KindMissingDefinitionFile:   "%s does not exist",
	KindInvalidDefinitionFormat: "%s has an invalid format",
	KindNonSequentialFileNames:  "sales file names are not sequential",
	KindMalformedRecord:         "%s has an invalid format",
	KindUnknownBranchCode:       "%s has an invalid branch code",
	KindUnknownProductCode:      "%s has an invalid commodity code",
	KindNonNumericAmount:        "an unexpected error occurred",
	KindAmountOverflow:          "total amount exceeded 10 digits",
	KindWriteError:              "an unexpected error occurred",
}

// Message renders the template for k with the given subject.
func (k Kind) Message(subject string) string {
	tmpl, ok := messageTemplates[k]
	if !ok {
		tmpl = messageTemplates[KindUnknown]
	}
	if !strings.Contains(tmpl, "%s") {
		return tmpl
	}
	return fmt.Sprintf(tmpl, subject)
}

// =============================================================================
// ERROR
// =============================================================================

// Error is the single error type returned by every pipeline stage.
type Error struct {
	// Kind is the failure category.
	Kind Kind

	// Subject names what failed: a definition label or a record file name.
	Subject string

	// Err is the underlying cause, if any. It is not part of the message.
	Err error
}

// Error implements the error interface. Only the template is rendered, so the
// message is always a single line.
func (e *Error) Error() string {
	return e.Kind.Message(e.Subject)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error without a cause.
func NewError(kind Kind, subject string) *Error {
	return &Error{Kind: kind, Subject: subject}
}

// WrapError creates an Error around an underlying cause.
func WrapError(kind Kind, subject string, err error) *Error {
	return &Error{Kind: kind, Subject: subject, Err: err}
}

// KindOf returns the kind of err, or KindUnknown when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
