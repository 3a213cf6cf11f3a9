package model

// Polarity states whether higher or lower values of a metric indicate
// better health. Threshold comparisons invert for lower-is-better metrics.
// It is an explicit attribute of the metric, never inferred from its name.
type Polarity string

const (
	HigherIsBetter Polarity = "higher_is_better"
	LowerIsBetter  Polarity = "lower_is_better"
)

// Valid reports whether p is a known polarity. The zero value is not
// valid on its own; catalog loading normalizes it to HigherIsBetter.
func (p Polarity) Valid() bool {
	return p == HigherIsBetter || p == LowerIsBetter
}

// Complexity is the effort tier of a use case.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// Visualization selects the default widget for a metric.
type Visualization string

const (
	VisualizationGauge Visualization = "gauge"
	VisualizationLine  Visualization = "line"
	VisualizationBar   Visualization = "bar"
	VisualizationPie   Visualization = "pie"
)

// Threshold carries the warning and critical boundaries for a metric.
// Interpretation depends on the metric's Polarity.
type Threshold struct {
	Warning  float64 `json:"warning" yaml:"warning"`
	Critical float64 `json:"critical" yaml:"critical"`
}

// MetricConfig describes one monitored metric within a vertical.
type MetricConfig struct {
	ID            string        `json:"id" yaml:"id"`
	Name          string        `json:"name" yaml:"name"`
	Unit          string        `json:"unit" yaml:"unit"`
	Threshold     Threshold     `json:"threshold" yaml:"threshold"`
	Visualization Visualization `json:"visualization" yaml:"visualization"`
	Polarity      Polarity      `json:"polarity" yaml:"polarity"`
}

// ScoreAxes is the 3-axis score record attached to a use case.
// Each axis is 0-100.
type ScoreAxes struct {
	Security  int `json:"security" yaml:"security"`
	Integrity int `json:"integrity" yaml:"integrity"`
	Accuracy  int `json:"accuracy" yaml:"accuracy"`
}

// UseCase is a monitored scenario within a vertical.
type UseCase struct {
	ID                string     `json:"id" yaml:"id"`
	Name              string     `json:"name" yaml:"name"`
	Description       string     `json:"description" yaml:"description"`
	Complexity        Complexity `json:"complexity" yaml:"complexity"`
	EstimatedDuration string     `json:"estimated_duration" yaml:"estimated_duration"`
	Scores            ScoreAxes  `json:"scores" yaml:"scores"`
}

// VerticalModule is the full metadata record for one industry vertical.
// Instances are immutable once handed to the registry.
type VerticalModule struct {
	ID          string         `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Features    []string       `json:"features" yaml:"features"`
	Regulations []string       `json:"regulations" yaml:"regulations"`
	Agents      []string       `json:"agents" yaml:"agents"`
	UseCases    []UseCase      `json:"use_cases" yaml:"use_cases"`
	Metrics     []MetricConfig `json:"metrics" yaml:"metrics"`
	Widgets     []string       `json:"widgets" yaml:"widgets"`
}

// Metric returns the metric config with the given id, or nil.
func (v VerticalModule) Metric(id string) *MetricConfig {
	for i := range v.Metrics {
		if v.Metrics[i].ID == id {
			return &v.Metrics[i]
		}
	}
	return nil
}
