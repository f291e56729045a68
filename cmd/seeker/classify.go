package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seeker/backend/internal/domain"
	"github.com/seeker/backend/internal/usecase"
)

var (
	extraExamples []string
	noSeed        bool
)

func init() {
	classifyCmd.Flags().StringArrayVarP(&extraExamples, "example", "e", nil, "extra training example as term=category (repeatable)")
	classifyCmd.Flags().BoolVar(&noSeed, "no-seed", false, "train only on --example pairs")
}

var classifyCmd = &cobra.Command{
	Use:   "classify <query>",
	Short: "Train on the examples and classify one query",
	Long: `Train the classifier from search results for every example, then search
for the query and print each result with its predicted category.

Examples:
  # Classify with the built-in examples
  seeker classify "champions league final"

  # Add examples of your own
  seeker classify -e "Kubernetes=Technology" -e "Rolex=Fashion" "luxury watches"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	examples, err := buildExamples(noSeed, extraExamples)
	if err != nil {
		return err
	}

	a, err := newApp(examples)
	if err != nil {
		return err
	}
	defer a.Close()

	return classify(cmd, a.classifier, strings.Join(args, " "))
}

// classify trains svc and prints the output pane text for query
func classify(cmd *cobra.Command, svc *usecase.ClassifierService, query string) error {
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	fmt.Fprintln(out, usecase.MsgTraining)
	report, err := svc.Train(ctx)
	printFailures(out, report)
	if err != nil {
		if errors.Is(err, domain.ErrNoTrainingData) {
			fmt.Fprintln(out, usecase.MsgNoData)
		}
		return err
	}
	fmt.Fprintln(out, usecase.MsgTrained)
	fmt.Fprintln(out)

	results, err := svc.Search(ctx, query)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyQuery):
			fmt.Fprintln(out, usecase.MsgMissingQuery)
		case errors.Is(err, domain.ErrSearchAPIFailure):
			fmt.Fprintln(out, usecase.FormatAPIFailure(err))
		}
		return err
	}

	return usecase.FormatResults(out, results)
}

func printFailures(w io.Writer, report *domain.TrainReport) {
	if report == nil {
		return
	}
	for _, f := range report.Failures {
		fmt.Fprintln(w, usecase.FormatTermFailure(f))
	}
}

// buildExamples returns the training set for a classify run
func buildExamples(skipSeed bool, pairs []string) ([]domain.TrainingExample, error) {
	var examples []domain.TrainingExample
	if !skipSeed {
		examples = usecase.DefaultExamples()
	}

	for _, p := range pairs {
		ex, err := parseExample(p)
		if err != nil {
			return nil, err
		}
		examples = append(examples, ex)
	}

	if len(examples) == 0 {
		return nil, fmt.Errorf("%w: no training examples given", domain.ErrInvalidExample)
	}
	return examples, nil
}

// parseExample parses a term=category flag value. The last "=" separates
// the two so terms may contain "=".
func parseExample(s string) (domain.TrainingExample, error) {
	i := strings.LastIndex(s, "=")
	if i < 0 {
		return domain.TrainingExample{}, fmt.Errorf("%w: %q is not term=category", domain.ErrInvalidExample, s)
	}

	ex := domain.TrainingExample{
		Term:     strings.TrimSpace(s[:i]),
		Category: strings.TrimSpace(s[i+1:]),
	}
	if ex.Term == "" || ex.Category == "" {
		return domain.TrainingExample{}, fmt.Errorf("%w: %q has an empty term or category", domain.ErrInvalidExample, s)
	}
	return ex, nil
}
