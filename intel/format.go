package intel

import (
	"fmt"
	"strings"

	"github.com/rewbs/octoseq-intel/catalog"
)

// paramLabel renders one parameter for signature and hover text, e.g.
// "amount float" or "opts config-map?".
func paramLabel(p catalog.Param) string {
	label := p.Name + " " + p.Type
	if p.Optional {
		label += "?"
	}
	return label
}

// methodSignature renders a method as "name(a float, b float) -> Signal".
func methodSignature(m *catalog.Method) string {
	params := make([]string, len(m.Params))
	for i, p := range m.Params {
		params[i] = paramLabel(p)
	}
	yield := m.ChainsTo
	if yield == "" {
		yield = m.Returns
	}
	sig := fmt.Sprintf("%s(%s)", m.Name, strings.Join(params, ", "))
	if yield != "" && yield != "void" {
		sig += " -> " + yield
	}
	return sig
}

// paramDetail renders advisory metadata for a config-map key or parameter:
// type, default, range, and enum values where declared.
func paramDetail(p catalog.Param) string {
	var parts []string
	parts = append(parts, p.Type)
	if p.Default != nil {
		parts = append(parts, fmt.Sprintf("default %v", p.Default))
	}
	if p.Min != nil && p.Max != nil {
		parts = append(parts, fmt.Sprintf("range %v..%v", *p.Min, *p.Max))
	} else if p.Min != nil {
		parts = append(parts, fmt.Sprintf("min %v", *p.Min))
	} else if p.Max != nil {
		parts = append(parts, fmt.Sprintf("max %v", *p.Max))
	}
	if len(p.Enum) > 0 {
		parts = append(parts, "one of "+strings.Join(p.Enum, "|"))
	}
	return strings.Join(parts, ", ")
}

// hasPrefixFold reports whether s begins with prefix, ignoring ASCII case.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
