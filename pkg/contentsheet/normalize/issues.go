package normalize

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// IssueKind classifies a validation issue.
type IssueKind string

const (
	IssueDuplicateKeyword IssueKind = "duplicate_keyword"
	IssueInvalidKeyword   IssueKind = "invalid_keyword"
	IssueMissingEnglish   IssueKind = "missing_english_content"
	IssueContentTooLong   IssueKind = "content_too_long"
)

// Issue is a content problem found by a pass. Issues do not stop the sweep.
type Issue struct {
	Kind  IssueKind
	Sheet string
	Row   int
	// Subject is the offending keyword or content title.
	Subject string
}

func (i Issue) Error() string {
	var msg string
	switch i.Kind {
	case IssueDuplicateKeyword:
		msg = "Duplicate keyword " + i.Subject
	case IssueInvalidKeyword:
		msg = "Invalid keyword, more than just emoji: " + i.Subject
	case IssueMissingEnglish:
		msg = "Missing english content " + i.Subject
	case IssueContentTooLong:
		msg = "Content too long: " + i.Subject
	default:
		msg = fmt.Sprintf("%s: %s", i.Kind, i.Subject)
	}
	return fmt.Sprintf("%s; sheet: %s; row: %d", msg, i.Sheet, i.Row)
}

// Report accumulates the issues of a normalization run.
type Report struct {
	Issues []Issue
}

// Add records an issue.
func (r *Report) Add(issue Issue) {
	r.Issues = append(r.Issues, issue)
}

// Len returns the number of recorded issues.
func (r *Report) Len() int {
	return len(r.Issues)
}

// Count returns the number of issues of the given kind.
func (r *Report) Count(kind IssueKind) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Kind == kind {
			n++
		}
	}
	return n
}

// Err returns every issue as a single error, or nil when the report is clean.
func (r *Report) Err() error {
	var result *multierror.Error
	for _, issue := range r.Issues {
		result = multierror.Append(result, issue)
	}
	if result != nil {
		result.ErrorFormat = formatIssues
	}
	return result.ErrorOrNil()
}

func formatIssues(errs []error) string {
	lines := make([]string, len(errs))
	for i, err := range errs {
		lines[i] = err.Error()
	}
	return fmt.Sprintf("%d validation issue(s), not saving:\n%s", len(errs), strings.Join(lines, "\n"))
}
