package codegen

import (
	"fmt"
	"sort"
	"strings"
)

// Spec describes one reconstructed chart snippet.
type Spec struct {
	// Imports are the package paths the snippet needs: the registry
	// handle plus the plot function's containing namespace.
	Imports []string

	// DataframeName is the registered symbolic name of the source
	// dataframe; it doubles as the variable name in the snippet.
	DataframeName string

	// FuncName is the call target of the final invocation, usually
	// qualified with the plot function's package name so it resolves
	// through the snippet's imports.
	FuncName string

	// FuncSource is the function's literal source text.
	FuncSource string

	// Args and Kwargs are the stored call arguments.
	Args   []any
	Kwargs map[string]any
}

// Build assembles a self-contained snippet: imports, a statement that
// rehydrates the dataframe through the process-wide registry handle,
// the plot function's source, and a final invocation whose result is
// the snippet's value. Building is pure and stable: the same Spec
// always yields identical text.
func Build(s Spec) string {
	var b strings.Builder

	b.WriteString("import (\n")
	for _, imp := range s.Imports {
		fmt.Fprintf(&b, "\t%q\n", imp)
	}
	b.WriteString(")\n\n")

	fmt.Fprintf(&b, "%s := quickchart.MustRegisteredDataframe(%q)\n\n", s.DataframeName, s.DataframeName)

	b.WriteString(strings.TrimRight(s.FuncSource, "\n"))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "chart, _ := %s(%s, %s, %s)\nchart\n",
		s.FuncName, s.DataframeName, FormatArgs(s.Args), FormatKwargs(s.Kwargs))

	return b.String()
}

// FormatArgs renders positional arguments in their default Go
// representation.
func FormatArgs(args []any) string {
	return fmt.Sprintf("%#v", args)
}

// FormatKwargs renders keyword arguments with sorted keys. Map
// iteration order would otherwise leak into the snippet and break the
// two-calls-same-text guarantee.
func FormatKwargs(kwargs map[string]any) string {
	if len(kwargs) == 0 {
		return "map[string]interface {}{}"
	}
	keys := make([]string, 0, len(kwargs))
	for k := range kwargs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("map[string]interface {}{")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q: %#v", k, kwargs[k])
	}
	b.WriteString("}")
	return b.String()
}
