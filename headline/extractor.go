package headline

import (
	"context"
	"fmt"
	"image"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/wudi/headline/observability"
	"github.com/wudi/headline/ocr"
	"github.com/wudi/headline/preprocess"
)

var newlineRuns = regexp.MustCompile(`\n+`)

// Extractor runs the preprocessing and title-selection pipeline on top of an
// OCR engine. It holds no mutable state across calls, so a single Extractor
// can serve concurrent extractions.
type Extractor struct {
	engine ocr.Engine
	cfg    Config
	logger observability.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithConfig replaces the heuristic defaults. Zero-valued fields fall back to
// their defaults.
func WithConfig(cfg Config) Option {
	return func(e *Extractor) {
		if cfg.MinCandidateLen > 0 {
			e.cfg.MinCandidateLen = cfg.MinCandidateLen
		}
		if len(cfg.Languages) > 0 {
			e.cfg.Languages = append([]string(nil), cfg.Languages...)
		}
		if cfg.SegmentationMode > 0 {
			e.cfg.SegmentationMode = cfg.SegmentationMode
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l observability.Logger) Option {
	return func(e *Extractor) {
		if l != nil {
			e.logger = l
		}
	}
}

// New constructs an Extractor. If engine is nil, the library default engine
// is used.
func New(engine ocr.Engine, opts ...Option) *Extractor {
	if engine == nil {
		engine = ocr.DefaultEngine()
	}
	e := &Extractor{
		engine: engine,
		cfg:    DefaultConfig(),
		logger: observability.NopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract runs the full pipeline on a decoded image: binarize, recognize,
// normalize, and select the best headline candidate. Engine failures
// propagate to the caller; the two no-result conditions come back as
// sentinel titles on a nil error.
func (e *Extractor) Extract(ctx context.Context, img image.Image) (Result, error) {
	start := time.Now()

	bin := preprocess.Preprocess(img)
	in, err := ocr.InputFromImage(bin,
		ocr.WithLanguages(e.cfg.Languages...),
		ocr.WithTesseractPSM(e.cfg.SegmentationMode),
	)
	if err != nil {
		return Result{}, err
	}

	rec, err := e.engine.Recognize(ctx, in)
	if err != nil {
		return Result{}, fmt.Errorf("recognize: %w", err)
	}

	full := normalize(rec.PlainText)
	if full == "" {
		e.logger.Debug("no text recognized",
			observability.String("engine", e.engine.Name()),
			observability.Duration("took", time.Since(start)))
		return Result{FullText: "", Title: NoTextSentinel}, nil
	}

	lines := splitLines(full)
	title := e.selectTitle(lines)
	e.logger.Debug("title selected",
		observability.String("engine", e.engine.Name()),
		observability.Int("lines", len(lines)),
		observability.String("title", title),
		observability.Duration("took", time.Since(start)))
	return Result{FullText: full, Title: title}, nil
}

// normalize collapses runs of line breaks into a single one and trims the
// surrounding whitespace.
func normalize(raw string) string {
	return strings.TrimSpace(newlineRuns.ReplaceAllString(raw, "\n"))
}

// splitLines breaks normalized text into trimmed, non-empty lines in original
// order.
func splitLines(full string) []string {
	parts := strings.Split(full, "\n")
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			lines = append(lines, p)
		}
	}
	return lines
}

// selectTitle applies the headline heuristic: among lines longer than
// MinCandidateLen runes that contain at least one CJK ideograph, the longest
// wins, first occurrence breaking ties. With no candidates the first line is
// returned verbatim; with no lines at all, the no-valid-text sentinel.
func (e *Extractor) selectTitle(lines []string) string {
	if len(lines) == 0 {
		return NoValidTextSentinel
	}
	var (
		best    string
		bestLen int
	)
	for _, line := range lines {
		n := utf8.RuneCountInString(line)
		if n > e.cfg.MinCandidateLen && containsCJK(line) && n > bestLen {
			best = line
			bestLen = n
		}
	}
	if bestLen > 0 {
		return best
	}
	return lines[0]
}

func containsCJK(s string) bool {
	for _, r := range s {
		if r >= cjkRangeLow && r <= cjkRangeHigh {
			return true
		}
	}
	return false
}
