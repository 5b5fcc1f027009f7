package parser

import "github.com/plzero/pl0c/internal/grammar"

// NewPL0Grammar builds the bundled PL/0 grammar. allowEmptyStatement
// controls whether "statement → nothing" is a reachable alternative:
// the shipped compiler grammar has it (accepting empty if/while
// bodies), while some callers want a stricter grammar that rejects
// empty statements — both are reachable here rather than guessed at.
//
// procsym and callsym are recognized by the lexer but deliberately
// have no production anywhere below: this compiler never parses a
// procedure declaration or a call statement.
func NewPL0Grammar(allowEmptyStatement bool) *grammar.Grammar {
	g := grammar.New()

	g.AddRule("program", "block periodsym")
	g.AddRule("block", "const-declaration var-declaration statement")

	g.AddRule("const-declaration", "constsym constants semicolonsym")
	g.AddRule("const-declaration", "nothing")
	g.AddRule("constants", "constant commasym constants")
	g.AddRule("constants", "constant")
	g.AddRule("constant", "identifier eqsym number")

	g.AddRule("var-declaration", "intsym vars semicolonsym")
	g.AddRule("var-declaration", "nothing")
	g.AddRule("vars", "var commasym vars")
	g.AddRule("vars", "var")
	g.AddRule("var", "identifier")

	// Longer/more-specific alternatives are listed before shorter ones
	// wherever the choice is ambiguous by prefix. Among these, no
	// alternative is a prefix of another (each starts with a distinct
	// terminal), so ordering here only matters for the "statement →
	// nothing" case,
	// which must come last: every other alternative starts by
	// consuming at least one lexeme, so trying the real alternatives
	// first costs nothing and avoids ever preferring the empty body
	// when a real statement is present.
	g.AddRule("statement", "assignment")
	g.AddRule("statement", "begin-block")
	g.AddRule("statement", "if-statement")
	g.AddRule("statement", "while-statement")
	g.AddRule("statement", "write-statement")
	g.AddRule("statement", "read-statement")
	if allowEmptyStatement {
		g.AddRule("statement", "nothing")
	}

	g.AddRule("assignment", "identifier becomessym expression")
	g.AddRule("begin-block", "beginsym statements endsym")
	// statement semicolonsym statements before the bare statement
	// alternative: reversing these two would let the shorter
	// alternative greedily match a single statement and leave trailing
	// lexemes unparsed.
	g.AddRule("statements", "statement semicolonsym statements")
	g.AddRule("statements", "statement")
	g.AddRule("if-statement", "ifsym condition thensym statement")
	g.AddRule("while-statement", "whilesym condition dosym statement")
	g.AddRule("write-statement", "writesym identifier")
	g.AddRule("read-statement", "readsym identifier")

	g.AddRule("condition", "oddsym expression")
	g.AddRule("condition", "expression rel-op expression")
	g.AddRule("rel-op", "eqsym")
	g.AddRule("rel-op", "neqsym")
	g.AddRule("rel-op", "lessym")
	g.AddRule("rel-op", "leqsym")
	g.AddRule("rel-op", "gtrsym")
	g.AddRule("rel-op", "geqsym")

	// Right-recursive list productions keep the grammar free of left
	// recursion; the generator's "emit the trailing side, then the
	// operator" handling turns this right-recursive shape into
	// right-grouped evaluation order (the rightmost operator pair is
	// computed first).
	g.AddRule("expression", "term add-or-subtract expression")
	g.AddRule("expression", "term")
	g.AddRule("add-or-subtract", "plussym")
	g.AddRule("add-or-subtract", "minussym")

	g.AddRule("term", "factor multiply-or-divide term")
	g.AddRule("term", "factor")
	g.AddRule("multiply-or-divide", "multsym")
	g.AddRule("multiply-or-divide", "slashsym")

	g.AddRule("factor", "lparentsym expression rparentsym")
	g.AddRule("factor", "sign number")
	g.AddRule("factor", "identifier")

	g.AddRule("sign", "plussym")
	g.AddRule("sign", "minussym")
	g.AddRule("sign", "nothing")

	g.AddRule("number", "numbersym")
	g.AddRule("identifier", "identsym")

	return g
}
