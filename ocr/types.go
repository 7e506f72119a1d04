package ocr

import "context"

// ImageFormat identifies the content type of an OCR input image.
type ImageFormat string

const (
	ImageFormatPNG  ImageFormat = "image/png"
	ImageFormatJPEG ImageFormat = "image/jpeg"
)

// Input encapsulates a single image submitted for recognition.
type Input struct {
	// ID is an optional caller-provided identifier that is echoed back in the
	// corresponding Result.
	ID string
	// Image is the encoded image payload in the format specified by Format.
	Image []byte
	// Format declares the image content type (e.g., image/png).
	Format ImageFormat
	// DPI carries the effective dots-per-inch for the image. Providers such as
	// Tesseract use this for scaling and layout heuristics; zero means unknown.
	DPI int
	// Languages is a list of trained-data hints (e.g., "chi_sim", "eng") that
	// providers can use to select recognition models.
	Languages []string
	// Metadata allows callers to pass through engine-specific knobs (e.g.,
	// the page segmentation mode for Tesseract) without hard-coding them into
	// the API surface.
	Metadata map[string]string
}

// Result captures recognition output for a single input image.
type Result struct {
	// InputID mirrors the Input.ID that produced this result.
	InputID string
	// PlainText contains the raw multi-line text extracted from the image.
	// It may be empty when the engine found nothing recognizable.
	PlainText string
	// Language indicates the dominant language hint used, if known.
	Language string
}

// Engine is the recognition provider contract: one image in, one result out.
// Implementations must be safe for concurrent use; each Recognize call is
// independent and holds no state across invocations.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, input Input) (Result, error)
}
