// Package parser implements a grammar-driven backtracking
// recursive-descent engine, generalized over an externally supplied
// grammar, plus the concrete PL/0 grammar (see pl0grammar.go).
package parser

import (
	"fmt"
	"strings"

	"github.com/plzero/pl0c/internal/grammar"
	"github.com/plzero/pl0c/internal/lexer"
	"github.com/plzero/pl0c/internal/parsetree"
)

// Parser consumes a lexeme sequence under a grammar and builds a
// concrete parse tree. It is single-use: construct one per compilation
// with New rather than reusing it across compilations.
type Parser struct {
	grammar   *grammar.Grammar
	lexemes   []lexer.Token
	lastError string
}

// New creates a Parser over lexemes driven by g.
func New(g *grammar.Grammar, lexemes []lexer.Token) *Parser {
	return &Parser{grammar: g, lexemes: lexemes}
}

// LastError returns the most recent parse failure message, a
// diagnostic convenience alongside the authoritative NumTokens == -1
// sentinel on the returned tree.
func (p *Parser) LastError() string {
	return p.lastError
}

// ParseProgram is the entry point: it parses "program" at lexeme index
// 0 and checks that the whole lexeme stream was consumed.
func (p *Parser) ParseProgram() *parsetree.Node {
	tree := p.ParseVariable("program", 0)
	if tree.IsError() {
		return tree
	}
	if tree.NumTokens != len(p.lexemes) {
		msg := "Trailing tokens after program"
		p.lastError = msg
		return parsetree.NewError(msg, []*parsetree.Node{tree})
	}
	return tree
}

// ParseVariable tries every rule for name, in insertion order, at
// lexeme index i, and returns the first success. If every alternative
// fails it returns an error tree listing the rules tried, joined by
// "or", and citing the current lexeme.
func (p *Parser) ParseVariable(name string, i int) *parsetree.Node {
	rules := p.grammar.RulesFor(name)
	if len(rules) == 0 {
		msg := fmt.Sprintf("no rule defines '%s'", name)
		p.lastError = msg
		return parsetree.NewError(msg, nil)
	}

	for _, rule := range rules {
		if tree := p.parseRule(rule, i); !tree.IsError() {
			return tree
		}
	}

	alts := make([]string, len(rules))
	for idx, rule := range rules {
		alts[idx] = strings.Join(rule.Symbols, " ")
	}
	msg := fmt.Sprintf("Expected %s (parsing '%s') but found %s", strings.Join(alts, " or "), name, p.describe(i))
	p.lastError = msg
	return parsetree.NewError(msg, nil)
}

// parseRule attempts a single production, consuming lexemes
// left-to-right over its right-hand-side symbols.
func (p *Parser) parseRule(rule grammar.Rule, i int) *parsetree.Node {
	var children []*parsetree.Node
	pos := i

	for _, sym := range rule.Symbols {
		switch {
		case sym == grammar.Nothing:
			children = append(children, nil)

		default:
			if tt, isTerminal := grammar.IsTerminal(sym); isTerminal {
				if pos >= len(p.lexemes) {
					msg := fmt.Sprintf("Expected %s but reached end of input", sym)
					p.lastError = msg
					return parsetree.NewError(msg, children)
				}
				tok := p.lexemes[pos]
				if tok.Type != tt {
					msg := fmt.Sprintf("Expected %s but found %s %q", sym, tok.Type, tok.Literal)
					p.lastError = msg
					return parsetree.NewError(msg, children)
				}
				children = append(children, parsetree.NewLeaf(tok.Literal))
				pos++
				continue
			}

			// Variable reference: recurse, then advance by however many
			// lexemes the child subtree consumed.
			child := p.ParseVariable(sym, pos)
			if child.IsError() {
				return child
			}
			children = append(children, child)
			pos += child.NumTokens
		}
	}

	return parsetree.NewInterior(rule.Variable, children)
}

// describe renders the lexeme at index i for error messages.
func (p *Parser) describe(i int) string {
	if i >= len(p.lexemes) {
		return "end of input"
	}
	tok := p.lexemes[i]
	return fmt.Sprintf("%s %q", tok.Type, tok.Literal)
}
