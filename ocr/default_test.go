package ocr

import (
	"context"
	"testing"
)

type fakeEngine struct{ text string }

func (f fakeEngine) Name() string { return "fake" }

func (f fakeEngine) Recognize(ctx context.Context, in Input) (Result, error) {
	return Result{InputID: in.ID, PlainText: f.text}, nil
}

func TestDefaultEngineNoop(t *testing.T) {
	res, err := DefaultEngine().Recognize(context.Background(), Input{ID: "x"})
	if err != nil {
		t.Fatalf("noop engine error = %v", err)
	}
	if res.InputID != "x" || res.PlainText != "" {
		t.Fatalf("unexpected noop result: %+v", res)
	}
}

func TestSetDefaultEngine(t *testing.T) {
	old := DefaultEngine()
	defer SetDefaultEngine(old)

	SetDefaultEngine(fakeEngine{text: "hello"})
	res, err := DefaultEngine().Recognize(context.Background(), Input{})
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if res.PlainText != "hello" {
		t.Fatalf("unexpected text: %q", res.PlainText)
	}
}
