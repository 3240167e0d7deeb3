// Package validate checks generated dashboard and rule artifacts: every
// PromQL expression must parse, and every metric it references must be one
// the service actually exports.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"
)

// Result collects validation findings. Parse failures are errors; references
// to unknown metrics are warnings.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation passed without errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Dashboard validates every PromQL expression found in a built dashboard.
// The dashboard is walked through its JSON form, so any panel type with
// "expr" targets is covered.
func Dashboard(dash any, known map[string]bool) Result {
	var result Result

	data, err := json.Marshal(dash)
	if err != nil {
		result.errorf("marshaling dashboard: %v", err)
		return result
	}

	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		result.errorf("re-parsing dashboard JSON: %v", err)
		return result
	}

	Exprs(collectExprs(tree), known, &result)
	return result
}

// Exprs validates a list of PromQL expressions against the known metric set,
// appending findings to result.
func Exprs(exprs []string, known map[string]bool, result *Result) {
	for _, expr := range exprs {
		node, err := parser.ParseExpr(expr)
		if err != nil {
			result.errorf("parsing %q: %v", expr, err)
			continue
		}

		//nolint:errcheck // the inspector never returns an error
		parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
			vs, ok := n.(*parser.VectorSelector)
			if !ok || vs.Name == "" {
				return nil
			}
			if !knownMetric(vs.Name, known) {
				result.warnf("expression %q references unknown metric %q", expr, vs.Name)
			}
			return nil
		})
	}
}

// knownMetric reports whether name is an exported metric, accounting for
// the series Prometheus derives from histograms.
func knownMetric(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range []string{"_bucket", "_sum", "_count"} {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

// collectExprs walks a generic JSON tree and gathers every string value
// stored under an "expr" key.
func collectExprs(tree any) []string {
	var exprs []string
	switch v := tree.(type) {
	case map[string]any:
		for key, val := range v {
			if key == "expr" {
				if s, ok := val.(string); ok && s != "" {
					exprs = append(exprs, s)
					continue
				}
			}
			exprs = append(exprs, collectExprs(val)...)
		}
	case []any:
		for _, item := range v {
			exprs = append(exprs, collectExprs(item)...)
		}
	}
	return exprs
}
