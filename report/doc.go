// Package report turns molecules and parse failures into views (Summary,
// AtomView, ProblemView) and encodes them as text, JSON, YAML or MessagePack.
package report
