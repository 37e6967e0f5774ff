package engine

import "fmt"

// ClassificationError describes an internal failure inside a scoring or
// classification component. Public engine functions never return it to
// callers: it is logged and replaced by the documented default value.
type ClassificationError struct {
	Component string
	Reason    string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Component, e.Reason)
}

func classificationErrf(component, format string, args ...any) *ClassificationError {
	return &ClassificationError{
		Component: component,
		Reason:    fmt.Sprintf(format, args...),
	}
}
