// Package grammar implements a runtime-editable context-free grammar:
// an ordered sequence of production rules, built at compiler startup
// and read-only thereafter.
package grammar

import "strings"

// Nothing is the distinguished empty-production marker: a symbol that
// consumes zero lexemes and contributes 0 to numTokens.
const Nothing = "nothing"

// Rule is a single production: Variable expands to the ordered sequence
// of Symbols on its right-hand side.
type Rule struct {
	Variable string
	Symbols  []string
}

// Grammar is an ordered sequence of rules. Order matters: the parser
// tries rules for a variable in insertion order and the first success
// wins.
type Grammar struct {
	rules []Rule
}

// New returns an empty grammar.
func New() *Grammar {
	return &Grammar{}
}

// AddRule appends a rule for variable, splitting rhs on whitespace into
// symbols. Each addRule call corresponds to one grammar alternative;
// calling it again for the same variable adds another alternative,
// tried after the ones already added.
func (g *Grammar) AddRule(variable, rhs string) {
	g.rules = append(g.rules, Rule{
		Variable: variable,
		Symbols:  strings.Fields(rhs),
	})
}

// RulesFor returns every rule whose left-hand side is variable, in the
// order they were added.
func (g *Grammar) RulesFor(variable string) []Rule {
	var out []Rule
	for _, r := range g.rules {
		if r.Variable == variable {
			out = append(out, r)
		}
	}
	return out
}

// Rules returns every rule in insertion order.
func (g *Grammar) Rules() []Rule {
	return g.rules
}
