package integration_tests

import (
	"fmt"
	"strings"
)

// chainHCL renders one HCL module block per name, each publicly depending on
// deps[name].
func chainHCL(names []string, deps map[string][]string) string {
	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "module %q {\n", name)
		if d := deps[name]; len(d) > 0 {
			fmt.Fprintf(&b, "  public_dependencies = [%s]\n", quoteAll(d))
		}
		b.WriteString("}\n\n")
	}
	return b.String()
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(quoted, ", ")
}
