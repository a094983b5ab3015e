package stats

// Engine computes quiz and rubric statistics. It holds no mutable state and is
// safe for concurrent use.
type Engine struct {
	thresholds Thresholds
}

// NewEngine builds an engine classifying with the given thresholds.
func NewEngine(thresholds Thresholds) (*Engine, error) {
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}
	return &Engine{thresholds: thresholds}, nil
}

// Thresholds returns the bands used for classification.
func (e *Engine) Thresholds() Thresholds {
	return e.thresholds
}
