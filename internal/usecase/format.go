package usecase

import (
	"fmt"
	"io"
	"strings"

	"github.com/seeker/backend/internal/domain"
)

// Messages shown to the user for each outcome
const (
	MsgMissingExample = "Please enter both a search term and a category."
	MsgMissingQuery   = "Please enter a search query."
	MsgNotTrained     = "Please train the model first."
	MsgTraining       = "Training model..."
	MsgTrained        = "Model trained successfully!"
	MsgNoData         = "No data collected. Cannot train model."
	MsgNoResults      = "No results found."
)

// FormatAdded renders the confirmation for a newly added example
func FormatAdded(ex domain.TrainingExample) string {
	return fmt.Sprintf("Added: %s (%s)", ex.Term, ex.Category)
}

// FormatAPIFailure renders a search API failure for the output pane
func FormatAPIFailure(err error) string {
	return formatAPIFailure(err.Error())
}

// FormatTermFailure renders a training term whose search failed
func FormatTermFailure(f domain.TermFailure) string {
	return formatAPIFailure(f.Error)
}

// formatAPIFailure drops the ErrSearchAPIFailure text so the pane does not
// repeat it after the prefix.
func formatAPIFailure(msg string) string {
	msg = strings.TrimPrefix(msg, domain.ErrSearchAPIFailure.Error()+": ")
	return "API request failed: " + msg
}

// FormatResults writes one Title/Category/URL block per result, or the
// no-results message when there are none.
func FormatResults(w io.Writer, results []domain.ClassifiedResult) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, MsgNoResults)
		return err
	}

	for _, r := range results {
		if _, err := fmt.Fprintf(w, "Title: %s\nCategory: %s\nURL: %s\n\n", r.Title, r.Category, r.URL); err != nil {
			return err
		}
	}
	return nil
}
