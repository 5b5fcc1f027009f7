package grammar

import "testing"

func TestAddRuleSplitsOnWhitespace(t *testing.T) {
	g := New()
	g.AddRule("sum", "term plussym sum")
	g.AddRule("sum", "term")

	rules := g.RulesFor("sum")
	if len(rules) != 2 {
		t.Fatalf("got %d rules, want 2", len(rules))
	}
	want := []string{"term", "plussym", "sum"}
	if got := rules[0].Symbols; !equalStrings(got, want) {
		t.Errorf("first rule symbols = %v, want %v", got, want)
	}
	if got := rules[1].Symbols; !equalStrings(got, []string{"term"}) {
		t.Errorf("second rule symbols = %v, want [term]", got)
	}
}

func TestRulesForPreservesInsertionOrder(t *testing.T) {
	g := New()
	g.AddRule("statement", "assignment")
	g.AddRule("statement", "begin-block")
	g.AddRule("statement", "nothing")

	rules := g.RulesFor("statement")
	if len(rules) != 3 {
		t.Fatalf("got %d rules, want 3", len(rules))
	}
	if rules[0].Symbols[0] != "assignment" || rules[2].Symbols[0] != Nothing {
		t.Errorf("rules out of order: %v", rules)
	}
}

func TestRulesForUnknownVariableIsEmpty(t *testing.T) {
	g := New()
	if rules := g.RulesFor("nonexistent"); len(rules) != 0 {
		t.Errorf("got %d rules for an undefined variable, want 0", len(rules))
	}
}

func TestRulesReturnsEveryRule(t *testing.T) {
	g := New()
	g.AddRule("a", "x")
	g.AddRule("b", "y z")
	if got := len(g.Rules()); got != 2 {
		t.Fatalf("got %d total rules, want 2", got)
	}
}

func TestIsTerminalRecognizesAllSourceSymbols(t *testing.T) {
	for sym := range Terminals {
		if _, ok := IsTerminal(sym); !ok {
			t.Errorf("%q not recognized as terminal", sym)
		}
		if IsVariable(sym) {
			t.Errorf("%q is a terminal and should not also be a variable", sym)
		}
	}
}

func TestIsVariableRejectsTerminalsAndNothing(t *testing.T) {
	if IsVariable("identsym") {
		t.Error("identsym should not be a variable")
	}
	if IsVariable(Nothing) {
		t.Error("the nothing marker should not be a variable")
	}
	if !IsVariable("expression") {
		t.Error("expression should be a variable")
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
