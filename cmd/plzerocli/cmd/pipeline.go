package cmd

import (
	"fmt"
	"os"

	"github.com/plzero/pl0c/internal/codegen"
	compilererrors "github.com/plzero/pl0c/internal/errors"
	"github.com/plzero/pl0c/internal/lexer"
	"github.com/plzero/pl0c/internal/parser"
	"github.com/plzero/pl0c/internal/parsetree"
)

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read %s: %w", path, err)
	}
	return string(data), nil
}

func runLexer(source string) ([]lexer.Token, []lexer.LexError) {
	l := lexer.New(source)
	tokens := l.Tokenize()
	return tokens, l.Errors()
}

func runParser(source, file string) (*parsetree.Node, *parser.Parser, error) {
	tokens, lexErrs := runLexer(source)
	if len(lexErrs) > 0 {
		return nil, nil, reportLexErrors(lexErrs, source, file)
	}

	grammar := parser.NewPL0Grammar(true)
	p := parser.New(grammar, tokens)
	tree := p.ParseProgram()
	if tree.IsError() {
		return tree, p, fmt.Errorf("parse error: %s", p.LastError())
	}
	return tree, p, nil
}

func reportLexErrors(lexErrs []lexer.LexError, source, file string) error {
	stringErrs := make([]string, len(lexErrs))
	for i, le := range lexErrs {
		stringErrs[i] = fmt.Sprintf("%s at %d:%d", le.Message, le.Pos.Line, le.Pos.Column)
	}
	compilerErrs := compilererrors.FromStringErrors(stringErrs, source, file)
	fmt.Fprintln(os.Stderr, compilererrors.FormatErrors(compilerErrs, false))
	return fmt.Errorf("lexing failed with %d error(s)", len(lexErrs))
}

func compileToInstructions(tree *parsetree.Node) ([]codegen.Instruction, []string) {
	gen := codegen.New()
	ins, ok := gen.Generate(tree)
	if ok {
		return ins, nil
	}
	return ins, gen.Errors()
}
