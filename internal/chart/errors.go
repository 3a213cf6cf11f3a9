package chart

import "fmt"

// UnsupportedTypeError reports a chart-type tag the dispatcher does not
// recognize. Unknown tags fail loudly instead of rendering nothing.
type UnsupportedTypeError struct {
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("chart: unsupported chart type %q", e.Type)
}
