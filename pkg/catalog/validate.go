package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ProblemKind classifies a catalog problem.
type ProblemKind int

const (
	// ProblemEmptyList is a list without options.
	ProblemEmptyList ProblemKind = iota
	// ProblemEmptyLabel is an option whose label is blank.
	ProblemEmptyLabel
	// ProblemMissingValue is an option without a value.
	ProblemMissingValue
	// ProblemComplexValue is an option whose value is not a scalar.
	ProblemComplexValue
	// ProblemDuplicateValue is an option repeating an earlier value. Fields
	// resolve such values to the first option.
	ProblemDuplicateValue
	// ProblemDuplicateLabel is an option repeating an earlier label. Only a
	// warning: labels need not be unique.
	ProblemDuplicateLabel
)

func (k ProblemKind) String() string {
	switch k {
	case ProblemEmptyList:
		return "empty-list"
	case ProblemEmptyLabel:
		return "empty-label"
	case ProblemMissingValue:
		return "missing-value"
	case ProblemComplexValue:
		return "complex-value"
	case ProblemDuplicateValue:
		return "duplicate-value"
	case ProblemDuplicateLabel:
		return "duplicate-label"
	default:
		return fmt.Sprintf("ProblemKind(%d)", int(k))
	}
}

// Problem describes one issue found by Validate.
type Problem struct {
	Kind ProblemKind
	List string
	// Index is the option position in the list, or -1 for list-level problems.
	Index int
	// Line is the source line of the option, when known.
	Line    int
	Message string
}

// Warning reports whether the problem is advisory.
func (p Problem) Warning() bool {
	return p.Kind == ProblemDuplicateLabel
}

func (p Problem) String() string {
	var b strings.Builder
	if p.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", p.Line)
	}
	b.WriteString(p.List)
	if p.Index >= 0 {
		fmt.Fprintf(&b, "[%d]", p.Index)
	}
	fmt.Fprintf(&b, ": %s (%s)", p.Message, p.Kind)
	return b.String()
}

// Validate checks every list and returns the problems found, in list order.
// It never stops at the first problem.
func (c *Catalog) Validate() []Problem {
	var problems []Problem
	for _, name := range c.Names() {
		problems = append(problems, validateList(name, c.Lists[name])...)
	}
	return problems
}

func validateList(name string, entries []Entry) []Problem {
	if len(entries) == 0 {
		return []Problem{{Kind: ProblemEmptyList, List: name, Index: -1, Message: "list has no options"}}
	}
	var problems []Problem
	values := make(map[string]int, len(entries))
	labels := make(map[string]int, len(entries))
	for i, e := range entries {
		at := func(kind ProblemKind, format string, args ...any) {
			problems = append(problems, Problem{
				Kind:    kind,
				List:    name,
				Index:   i,
				Line:    e.Line(),
				Message: fmt.Sprintf(format, args...),
			})
		}

		label := strings.TrimSpace(e.Label)
		if label == "" {
			at(ProblemEmptyLabel, "label is empty")
		} else if first, ok := labels[label]; ok {
			at(ProblemDuplicateLabel, "label %q already used by option %d", label, first)
		} else {
			labels[label] = i
		}

		switch e.Value.Kind {
		case 0:
			at(ProblemMissingValue, "value is missing")
		case yaml.ScalarNode:
			key := valueKey(e.Value)
			if first, ok := values[key]; ok {
				at(ProblemDuplicateValue, "value %s already used by option %d", e.Value.Value, first)
			} else {
				values[key] = i
			}
		default:
			at(ProblemComplexValue, "value must be a scalar")
		}
	}
	return problems
}

// valueKey identifies the value a scalar decodes to, so spellings such as 1,
// 01, 0x1 and 1.0 count as the same value while "1" stays a string.
func valueKey(n yaml.Node) string {
	var v any
	if err := n.Decode(&v); err != nil {
		return n.ShortTag() + ":" + n.Value
	}
	switch x := v.(type) {
	case int:
		return "num:" + strconv.FormatInt(int64(x), 10)
	case int64:
		return "num:" + strconv.FormatInt(x, 10)
	case uint64:
		return "num:" + strconv.FormatUint(x, 10)
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1<<63 {
			return "num:" + strconv.FormatInt(int64(x), 10)
		}
		return "num:" + strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprintf("%T:%v", v, v)
	}
}
