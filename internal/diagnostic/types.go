package diagnostic

import (
	"errors"
	"slices"
	"strings"

	"def-extractor/internal/common"
)

// Diagnostic codes.
const (
	CodeModuleEnumerationFailed = "MODULE_ENUMERATION_FAILED"
	CodeMemberEnumerationFailed = "MEMBER_ENUMERATION_FAILED"
	CodeDerivedSearchFailed     = "DERIVED_SEARCH_FAILED"
	CodeForcedTypeNotFound      = "FORCED_TYPE_NOT_FOUND"
	CodeParentBackfilled        = "PARENT_BACKFILLED"
	CodeAnchorMissing           = "ANCHOR_MISSING"
)

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Diagnostic is one recoverable condition met during extraction.
type Diagnostic struct {
	Severity DiagnosticSeverity
	Code     string
	Message  string
	// Subject is the module, type identifier or forced name concerned.
	Subject string
	// Member names a member of Subject.
	Member string
}

// Location returns Subject.Member, or whichever of the two is set.
func (d Diagnostic) Location() string {
	switch {
	case d.Subject == "":
		return d.Member
	case d.Member == "":
		return d.Subject
	default:
		return d.Subject + "." + d.Member
	}
}

// String formats the diagnostic as "[CODE] location: message".
func (d Diagnostic) String() string {
	var b strings.Builder

	if d.Code != "" {
		b.WriteString("[" + d.Code + "] ")
	}

	if loc := d.Location(); loc != "" {
		b.WriteString(loc + ": ")
	}

	b.WriteString(d.Message)

	return b.String()
}

// Diagnostics collects the diagnostics of one extraction run in the order
// they were reported. The zero value is ready to use.
type Diagnostics struct {
	items []Diagnostic
}

func (d *Diagnostics) add(sev DiagnosticSeverity, code, message, subject, member string) {
	d.items = append(d.items, Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Subject:  subject,
		Member:   member,
	})
}

func (d *Diagnostics) AddError(code, message, subject, member string) {
	d.add(DiagnosticError, code, message, subject, member)
}

func (d *Diagnostics) AddWarning(code, message, subject, member string) {
	d.add(DiagnosticWarning, code, message, subject, member)
}

func (d *Diagnostics) AddInfo(code, message, subject, member string) {
	d.add(DiagnosticInfo, code, message, subject, member)
}

// All returns every diagnostic, most severe first. Diagnostics of equal
// severity keep their report order.
func (d *Diagnostics) All() []Diagnostic {
	out := slices.Clone(d.items)
	slices.SortStableFunc(out, func(a, b Diagnostic) int {
		return int(b.Severity) - int(a.Severity)
	})

	return out
}

// WithCode returns the diagnostics carrying the given code in report order.
func (d *Diagnostics) WithCode(code string) []Diagnostic {
	var out []Diagnostic
	for _, diag := range d.items {
		if diag.Code == code {
			out = append(out, diag)
		}
	}

	return out
}

// Count returns the number of diagnostics of the given severity.
func (d *Diagnostics) Count(sev DiagnosticSeverity) int {
	n := 0
	for _, diag := range d.items {
		if diag.Severity == sev {
			n++
		}
	}

	return n
}

func (d *Diagnostics) HasErrors() bool {
	return d.Count(DiagnosticError) > 0
}

// IsValid reports whether the run recorded no errors.
func (d *Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// Error joins the error diagnostics, or returns nil when there are none.
func (d *Diagnostics) Error() error {
	var errs []error
	for _, diag := range d.items {
		if diag.Severity == DiagnosticError {
			errs = append(errs, errors.New(diag.String()))
		}
	}

	return errors.Join(errs...)
}
