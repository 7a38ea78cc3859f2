package contrast

import (
	"fmt"

	"github.com/opencode-ai/contrast/internal/color"
	"github.com/rs/zerolog"
)

// Result is the outcome of evaluating one foreground against one background.
type Result struct {
	Background color.Color `json:"background"`
	Foreground color.Color `json:"foreground"`
	Ratio      float64     `json:"ratio"`
	Level      Level       `json:"level"`
	LargeText  bool        `json:"large_text"`
	Minimum    float64     `json:"minimum"`
	Passes     bool        `json:"passes"`
}

// Display renders the ratio rounded to two decimals.
func (r Result) Display() string {
	return FormatRatio(r.Ratio)
}

// Evaluator grades color pairs against a set of thresholds.
type Evaluator struct {
	thresholds Thresholds
	logger     zerolog.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithThresholds replaces the default WCAG thresholds.
func WithThresholds(t Thresholds) Option {
	return func(e *Evaluator) {
		e.thresholds = t
	}
}

// WithLogger sets the evaluator logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

// NewEvaluator builds an evaluator, validating any configured thresholds.
func NewEvaluator(opts ...Option) (*Evaluator, error) {
	e := &Evaluator{
		thresholds: DefaultThresholds,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.thresholds.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Thresholds returns the thresholds in use.
func (e *Evaluator) Thresholds() Thresholds {
	return e.thresholds
}

// Evaluate computes the ratio of fg on bg and grades it.
func (e *Evaluator) Evaluate(bg, fg color.Color, largeText bool) Result {
	ratio := Ratio(bg, fg)
	minimum := e.thresholds.Minimum(largeText)
	result := Result{
		Background: bg,
		Foreground: fg,
		Ratio:      ratio,
		Level:      e.thresholds.Classify(ratio, largeText),
		LargeText:  largeText,
		Minimum:    minimum,
		Passes:     ratio >= minimum,
	}

	e.logger.Debug().
		Str("background", bg.Hex()).
		Str("foreground", fg.Hex()).
		Float64("ratio", ratio).
		Str("level", string(result.Level)).
		Msg("evaluated pair")

	return result
}

// EvaluateHex parses both colors before evaluating. A malformed color yields
// an error and no result.
func (e *Evaluator) EvaluateHex(bg, fg string, largeText bool) (Result, error) {
	bgColor, err := color.Parse(bg)
	if err != nil {
		return Result{}, fmt.Errorf("background: %w", err)
	}
	fgColor, err := color.Parse(fg)
	if err != nil {
		return Result{}, fmt.Errorf("foreground: %w", err)
	}
	return e.Evaluate(bgColor, fgColor, largeText), nil
}
