package flightparse

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/flightparse/flightparse/core/decode"
	"github.com/flightparse/flightparse/core/extract"
	"github.com/flightparse/flightparse/core/tree"
	"github.com/flightparse/flightparse/internal/utils"
)

// Parser runs the extraction and decode pipeline over whole documents. It
// holds configuration only; parsing is stateless, so a single Parser is
// safe for concurrent use and nothing persists between invocations.
type Parser struct {
	token       string
	concurrency int
	logger      *slog.Logger
}

// Option configures a [Parser].
type Option func(*Parser)

// WithToken overrides the invocation token the extractor scans for. The
// default is [extract.DefaultToken].
func WithToken(token string) Option {
	return func(p *Parser) {
		if token != "" {
			p.token = token
		}
	}
}

// WithConcurrency bounds how many per-call pipelines run in parallel.
// Values below two keep processing sequential. Outcome and combined-node
// order always follows call order regardless of this setting.
func WithConcurrency(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithLogger sets the structured logger used for pipeline events. The
// default is [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a Parser with the given options.
func New(opts ...Option) *Parser {
	parser := &Parser{
		token:       extract.DefaultToken,
		concurrency: 1,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(parser)
	}
	return parser
}

// ParseDocument extracts every serialization call from text and runs the
// decode/classify/build pipeline over each, rolling the per-call outcomes
// up into an [AggregateResult].
//
// ParseDocument never returns an error: a document without calls yields a
// result with zero counts, and a call whose payload is malformed yields one
// failed outcome without aborting the remaining calls. The context is used
// for log propagation only; an invocation always runs to completion.
func (p *Parser) ParseDocument(ctx context.Context, text string) *AggregateResult {
	calls := extract.ExtractCalls(text, p.token)
	p.logger.DebugContext(ctx, "extracted serialization calls",
		slog.Int("count", len(calls)),
		slog.Int("document_bytes", len(text)),
	)
	if len(calls) == 0 {
		return newAggregateResult(nil)
	}

	outcomes := p.processCalls(ctx, calls)
	result := newAggregateResult(outcomes)

	p.logger.DebugContext(ctx, "document parsed",
		slog.Int("total_calls", result.TotalCalls),
		slog.Int("component_calls", result.ComponentCalls),
		slog.Int("module_calls", result.ModuleCalls),
		slog.Int("failed_calls", result.FailedCalls),
		slog.String("outcomes", utils.JSONToString(result.Outcomes)),
	)
	return result
}

// processCalls maps the per-call pipeline over every snippet. Each call is
// independent of every other, so with concurrency above one the map runs as
// a bounded worker pool; results land in their original slot, preserving
// call order.
func (p *Parser) processCalls(ctx context.Context, calls []string) []IndexedOutcome {
	outcomes := make([]IndexedOutcome, len(calls))

	if p.concurrency < 2 || len(calls) == 1 {
		for index, snippet := range calls {
			outcomes[index] = p.processCall(ctx, index, snippet)
		}
		return outcomes
	}

	var wg sync.WaitGroup
	slots := make(chan struct{}, p.concurrency)
	for index, snippet := range calls {
		wg.Add(1)
		go func(index int, snippet string) {
			defer wg.Done()
			slots <- struct{}{}
			defer func() { <-slots }()
			outcomes[index] = p.processCall(ctx, index, snippet)
		}(index, snippet)
	}
	wg.Wait()
	return outcomes
}

// processCall runs one snippet through decode, classification, and tree
// building, producing its outcome.
func (p *Parser) processCall(ctx context.Context, index int, snippet string) IndexedOutcome {
	outcome := IndexedOutcome{
		Index:   index,
		Preview: utils.Preview(snippet),
	}

	payload, err := decode.DecodeCall(snippet, p.token)
	if err != nil {
		return p.fail(ctx, outcome, err, "")
	}

	value := payload.Value
	if payload.IsRaw {
		switch decode.Classify(payload.Raw) {
		case decode.ModuleLoading:
			// Asset metadata: a success, but never part of the tree.
			outcome.Kind = decode.ModuleLoading.String()
			return outcome
		case decode.ComponentData:
			value, err = decode.DecodeComponentData(payload.Raw)
			if err != nil {
				return p.fail(ctx, outcome, err, "")
			}
		default:
			return p.fail(ctx, outcome,
				errors.New("unrecognized payload format"),
				utils.Truncate(payload.Raw, utils.PreviewLength))
		}
	}

	outcome.Kind = decode.ComponentData.String()
	outcome.Nodes = tree.Build(value)
	return outcome
}

// fail records err on the outcome, pulling the diagnostic excerpt from the
// format error when the caller did not supply one.
func (p *Parser) fail(ctx context.Context, outcome IndexedOutcome, err error, diagnostic string) IndexedOutcome {
	outcome.Err = err.Error()
	outcome.Diagnostic = diagnostic

	var formatErr *decode.FormatError
	if diagnostic == "" && errors.As(err, &formatErr) {
		outcome.Diagnostic = formatErr.Preview
	}

	p.logger.WarnContext(ctx, "call decode failed",
		slog.Int("index", outcome.Index),
		slog.String("error", outcome.Err),
		slog.String("preview", outcome.Preview),
	)
	return outcome
}
