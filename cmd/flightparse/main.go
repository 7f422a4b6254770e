// Command flightparse reads a document from a file or stdin, extracts every
// embedded serialization call, and prints the reconstructed node tree in
// the selected output format.
//
// Usage:
//
//	flightparse [-in page.html] [-format summary|json|markup|markdown] [-concurrency 4]
//
// Configuration is read from the environment (FLIGHTPARSE_LOG_LEVEL,
// FLIGHTPARSE_TOKEN), with a .env file loaded automatically when present.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/flightparse/flightparse"
	"github.com/flightparse/flightparse/internal/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "flightparse:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := flag.NewFlagSet("flightparse", flag.ContinueOnError)
	inPath := flags.String("in", "", "input file (default: stdin)")
	format := flags.String("format", "summary", "output format: summary, json, markup, or markdown")
	token := flags.String("token", os.Getenv("FLIGHTPARSE_TOKEN"), "invocation token to scan for")
	concurrency := flags.Int("concurrency", 1, "parallel per-call pipelines")
	if err := flags.Parse(args); err != nil {
		return err
	}

	logger := logging.New(os.Stderr, logging.LevelFromEnv())

	text, err := readInput(*inPath, stdin)
	if err != nil {
		return err
	}

	parser := flightparse.New(
		flightparse.WithToken(*token),
		flightparse.WithConcurrency(*concurrency),
		flightparse.WithLogger(logger),
	)
	result := parser.ParseDocument(context.Background(), text)

	output, err := renderResult(result, *format)
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, output)
	return err
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

func renderResult(result *flightparse.AggregateResult, format string) (string, error) {
	switch format {
	case "json":
		text, err := flightparse.ToJSONText(result.CombinedNodes)
		if err != nil {
			return "", err
		}
		return text + "\n", nil
	case "markup":
		return flightparse.ToMarkupText(result.CombinedNodes), nil
	case "markdown":
		text, err := flightparse.ToMarkdownText(result.CombinedNodes)
		if err != nil {
			return "", err
		}
		return text + "\n", nil
	case "summary":
		return summarize(result), nil
	default:
		return "", fmt.Errorf("unknown format %q (want summary, json, markup, or markdown)", format)
	}
}

// summarize prints the aggregate counts followed by one status line per
// call outcome.
func summarize(result *flightparse.AggregateResult) string {
	out := fmt.Sprintf("calls: %d  component-data: %d  module-loading: %d  failed: %d\n",
		result.TotalCalls, result.ComponentCalls, result.ModuleCalls, result.FailedCalls)
	for _, outcome := range result.Outcomes {
		if outcome.Success() {
			out += fmt.Sprintf("  [%d] %s (%d nodes): %s\n",
				outcome.Index, outcome.Kind, len(outcome.Nodes), outcome.Preview)
			continue
		}
		out += fmt.Sprintf("  [%d] failed: %s: %s\n",
			outcome.Index, outcome.Err, outcome.Preview)
	}
	return out
}
