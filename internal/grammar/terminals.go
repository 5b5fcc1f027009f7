package grammar

import "github.com/plzero/pl0c/internal/lexer"

// Terminals maps the fixed terminal names to the token kind they
// match. Any right-hand-side symbol not present here and not equal to
// Nothing is a variable reference.
var Terminals = map[string]lexer.TokenType{
	"identsym":     lexer.IDENT,
	"numbersym":    lexer.NUMBER,
	"plussym":      lexer.PLUSSYM,
	"minussym":     lexer.MINUSSYM,
	"multsym":      lexer.MULTSYM,
	"slashsym":     lexer.SLASHSYM,
	"oddsym":       lexer.ODDSYM,
	"eqsym":        lexer.EQSYM,
	"neqsym":       lexer.NEQSYM,
	"lessym":       lexer.LESSYM,
	"leqsym":       lexer.LEQSYM,
	"gtrsym":       lexer.GTRSYM,
	"geqsym":       lexer.GEQSYM,
	"lparentsym":   lexer.LPARENTSYM,
	"rparentsym":   lexer.RPARENTSYM,
	"commasym":     lexer.COMMASYM,
	"semicolonsym": lexer.SEMICOLONSYM,
	"periodsym":    lexer.PERIODSYM,
	"becomessym":   lexer.BECOMESSYM,
	"beginsym":     lexer.BEGINSYM,
	"endsym":       lexer.ENDSYM,
	"ifsym":        lexer.IFSYM,
	"thensym":      lexer.THENSYM,
	"whilesym":     lexer.WHILESYM,
	"dosym":        lexer.DOSYM,
	"callsym":      lexer.CALLSYM,
	"constsym":     lexer.CONSTSYM,
	"intsym":       lexer.INTSYM,
	"procsym":      lexer.PROCSYM,
	"writesym":     lexer.WRITESYM,
	"readsym":      lexer.READSYM,
	"elsesym":      lexer.ELSESYM,
}

// IsTerminal reports whether symbol names a terminal, and if so which
// token kind it matches.
func IsTerminal(symbol string) (lexer.TokenType, bool) {
	tt, ok := Terminals[symbol]
	return tt, ok
}

// IsVariable reports whether symbol is a grammar-variable reference:
// anything that is neither Nothing nor a recognized terminal name.
func IsVariable(symbol string) bool {
	if symbol == Nothing {
		return false
	}
	_, terminal := Terminals[symbol]
	return !terminal
}
