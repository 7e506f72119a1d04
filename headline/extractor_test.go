package headline

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/wudi/headline/ocr"
)

type stubEngine struct {
	text string
	err  error
	last ocr.Input
}

func (s *stubEngine) Name() string { return "stub" }

func (s *stubEngine) Recognize(ctx context.Context, in ocr.Input) (ocr.Result, error) {
	s.last = in
	if s.err != nil {
		return ocr.Result{}, s.err
	}
	return ocr.Result{InputID: in.ID, PlainText: s.text}, nil
}

func uniformImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

func extract(t *testing.T, text string, opts ...Option) Result {
	t.Helper()
	e := New(&stubEngine{text: text}, opts...)
	res, err := e.Extract(context.Background(), uniformImage())
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	return res
}

func TestExtractNoText(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\n\n", " \n \n "} {
		res := extract(t, raw)
		if res.FullText != "" {
			t.Fatalf("raw %q: expected empty full text, got %q", raw, res.FullText)
		}
		if res.Title != NoTextSentinel {
			t.Fatalf("raw %q: expected no-text sentinel, got %q", raw, res.Title)
		}
	}
}

func TestExtractLongestCJKLineWins(t *testing.T) {
	res := extract(t, "标题：这是一条非常长的新闻标题内容\n正文第一句话\n")
	if res.Title != "标题：这是一条非常长的新闻标题内容" {
		t.Fatalf("unexpected title: %q", res.Title)
	}
	if res.FullText != "标题：这是一条非常长的新闻标题内容\n正文第一句话" {
		t.Fatalf("unexpected full text: %q", res.FullText)
	}
}

func TestExtractTieKeepsFirst(t *testing.T) {
	res := extract(t, "一二三四五六\nABC\n七八九十千万\n")
	if res.Title != "一二三四五六" {
		t.Fatalf("expected first of equal-length candidates, got %q", res.Title)
	}
}

func TestExtractFallbackToFirstLine(t *testing.T) {
	res := extract(t, "Hi\nOK\n")
	if res.Title != "Hi" {
		t.Fatalf("expected first line fallback, got %q", res.Title)
	}
}

func TestExtractShortCJKLinesAreNotCandidates(t *testing.T) {
	// Four runes do not exceed the threshold; the five-rune line qualifies.
	res := extract(t, "News headline here\n一二三四\n一二三四五\n")
	if res.Title != "一二三四五" {
		t.Fatalf("unexpected title: %q", res.Title)
	}

	// Only short CJK lines: fall back to the first line.
	res = extract(t, "Breaking now\n一二三四\n")
	if res.Title != "Breaking now" {
		t.Fatalf("unexpected title: %q", res.Title)
	}
}

func TestExtractNormalizesLineBreaks(t *testing.T) {
	res := extract(t, "A\n\n\nB")
	if res.FullText != "A\nB" {
		t.Fatalf("unexpected full text: %q", res.FullText)
	}
}

func TestExtractLengthIsCountedInRunes(t *testing.T) {
	// Five ideographs are fifteen bytes; the rule must count runes, so this
	// line beats a longer-in-bytes Latin line only via the CJK requirement.
	res := extract(t, "somewhat longer latin line\n中文标题五\n")
	if res.Title != "中文标题五" {
		t.Fatalf("unexpected title: %q", res.Title)
	}
}

func TestExtractConfigOverride(t *testing.T) {
	res := extract(t, "短标题\nfirst\n", WithConfig(Config{MinCandidateLen: 2}))
	if res.Title != "短标题" {
		t.Fatalf("expected lowered threshold to admit candidate, got %q", res.Title)
	}
}

func TestExtractEnginePassthrough(t *testing.T) {
	stub := &stubEngine{text: "无关"}
	e := New(stub)
	if _, err := e.Extract(context.Background(), uniformImage()); err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(stub.last.Languages) != 2 || stub.last.Languages[0] != "chi_sim" || stub.last.Languages[1] != "eng" {
		t.Fatalf("unexpected languages: %+v", stub.last.Languages)
	}
	if got := stub.last.Metadata["tessedit_pageseg_mode"]; got != "6" {
		t.Fatalf("unexpected segmentation mode: %q", got)
	}
	if stub.last.Format != ocr.ImageFormatPNG {
		t.Fatalf("unexpected format: %v", stub.last.Format)
	}
}

func TestExtractEngineFailurePropagates(t *testing.T) {
	boom := errors.New("engine exploded")
	e := New(&stubEngine{err: boom})
	_, err := e.Extract(context.Background(), uniformImage())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped engine error, got %v", err)
	}
}

func TestSelectTitleEmptyLines(t *testing.T) {
	e := New(&stubEngine{})
	if got := e.selectTitle(nil); got != NoValidTextSentinel {
		t.Fatalf("expected no-valid-text sentinel, got %q", got)
	}
}
