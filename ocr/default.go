package ocr

import "context"

var defaultEngine Engine = &noopEngine{}

// DefaultEngine returns the process-wide OCR engine. The tesseract subpackage
// registers itself here on import; without it a no-op engine is returned.
func DefaultEngine() Engine {
	return defaultEngine
}

// SetDefaultEngine sets the process-wide OCR engine.
func SetDefaultEngine(engine Engine) {
	defaultEngine = engine
}

type noopEngine struct{}

func (noopEngine) Name() string { return "noop" }

func (noopEngine) Recognize(_ context.Context, input Input) (Result, error) {
	return Result{InputID: input.ID}, nil
}
