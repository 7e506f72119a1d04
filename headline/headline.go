// Package headline extracts a probable news headline from a photographed or
// screenshotted news image using OCR.
//
// The selection rule is a pragmatic heuristic: headlines in news screenshots
// typically survive recognition as the longest contiguous run of CJK text,
// while body text comes back broken into shorter lines. Long non-headline CJK
// lines (captions, subheadings) can therefore win; that is an accepted
// limitation of the rule, not a defect.
package headline

// Sentinel titles returned in place of a real headline. These are successful
// results carrying a diagnostic string, not errors; callers branch on content.
const (
	// NoTextSentinel means recognition produced no text of any kind.
	NoTextSentinel = "未识别到任何文字"
	// NoValidTextSentinel means text was recognized but no usable line remained.
	NoValidTextSentinel = "无有效文字"
)

// Heuristic defaults. The values are deliberate constants carried over from
// field testing; override them through Config rather than editing here.
const (
	// DefaultMinCandidateLen is the rune count a line must exceed to qualify
	// as a headline candidate.
	DefaultMinCandidateLen = 4
	// DefaultSegmentationMode is the Tesseract page segmentation mode used
	// for recognition (6 = assume a single uniform block of text).
	DefaultSegmentationMode = 6
)

// DefaultLanguages are the trained-data hints passed to the engine: simplified
// Chinese plus Latin script.
func DefaultLanguages() []string { return []string{"chi_sim", "eng"} }

// CJK Unified Ideographs range used to detect headline-bearing lines.
const (
	cjkRangeLow  = '一'
	cjkRangeHigh = '鿿'
)

// Config holds the tunable knobs of the extraction heuristic.
type Config struct {
	// MinCandidateLen is the rune count a candidate line must exceed.
	MinCandidateLen int
	// Languages are the recognition language hints, in engine order.
	Languages []string
	// SegmentationMode is the Tesseract page segmentation mode.
	SegmentationMode int
}

// DefaultConfig returns the heuristic defaults.
func DefaultConfig() Config {
	return Config{
		MinCandidateLen:  DefaultMinCandidateLen,
		Languages:        DefaultLanguages(),
		SegmentationMode: DefaultSegmentationMode,
	}
}

// Result is the outcome of one extraction.
type Result struct {
	// FullText is the entire cleaned recognition output: runs of line breaks
	// collapsed to one, surrounding whitespace trimmed.
	FullText string `json:"full_text"`
	// Title is the selected best line, or a sentinel when nothing usable was
	// found.
	Title string `json:"title"`
}
