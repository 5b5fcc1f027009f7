package codegen

import (
	"fmt"
	"strconv"

	"github.com/plzero/pl0c/internal/parsetree"
)

// Generator walks a parse tree rooted at "program" and emits
// instructions into a State, accumulating errors in a side channel
// rather than aborting. Errors are scoped to the Generator instance
// rather than kept in a file-scope buffer, so a Generator is safe to
// use from a single compilation and discard.
type Generator struct {
	state  *State
	errors []string
}

// New returns a Generator with a fresh, empty State.
func New() *Generator {
	return &Generator{state: NewState()}
}

// Errors returns the generation errors recorded so far.
func (g *Generator) Errors() []string {
	return g.errors
}

func (g *Generator) errorf(format string, args ...any) {
	g.errors = append(g.errors, fmt.Sprintf(format, args...))
}

// Generate walks tree and returns the emitted instructions and whether
// generation completed without error. A partial instruction sequence is
// still returned on error.
func (g *Generator) Generate(tree *parsetree.Node) ([]Instruction, bool) {
	g.dispatch(g.state, tree)
	return g.state.Instructions, len(g.errors) == 0
}

// dispatch is the recursive tree walker. Node names with no matching
// case are silent no-ops: this is intentional, and is relied on by
// genFactor's speculative descent into whichever of
// number/sign/identifier/expression is actually present.
func (g *Generator) dispatch(s *State, t *parsetree.Node) {
	if t == nil || t.IsError() {
		return
	}

	switch t.Name {
	case "program":
		g.genProgram(s, t)
	case "block":
		g.genBlock(s, t)
	case "var-declaration":
		g.genVarDeclaration(s, t)
	case "vars":
		g.genVars(s, t)
	case "var":
		g.genVar(s, t)
	case "const-declaration":
		g.genConstDeclaration(s, t)
	case "constants":
		g.genConstants(s, t)
	case "constant":
		g.genConstant(s, t)
	case "statement":
		g.genStatement(s, t)
	case "statements":
		g.genStatements(s, t)
	case "begin-block":
		g.genBeginBlock(s, t)
	case "assignment":
		g.genAssignment(s, t)
	case "read-statement":
		g.genReadStatement(s, t)
	case "write-statement":
		g.genWriteStatement(s, t)
	case "if-statement":
		g.genIfStatement(s, t)
	case "while-statement":
		g.genWhileStatement(s, t)
	case "condition":
		g.genCondition(s, t)
	case "rel-op":
		g.genRelOp(s, t)
	case "expression":
		g.genExpression(s, t)
	case "add-or-subtract":
		g.genAddOrSubtract(s, t)
	case "term":
		g.genTerm(s, t)
	case "multiply-or-divide":
		g.genMultiplyOrDivide(s, t)
	case "factor":
		g.genFactor(s, t)
	case "sign":
		g.genSign(s, t)
	case "number":
		g.genNumber(s, t)
	case "identifier":
		g.genIdentifier(s, t)
	}
}

func (g *Generator) genProgram(s *State, t *parsetree.Node) {
	g.dispatch(s, t.GetChild("block"))
	s.Emit(Opr, 0, OprReturn)
}

// genBlock generates var-declaration before const-declaration,
// intentionally: the inc instruction that reserves stack slots must
// precede any use, and constants never reference variable slots, so
// either textual order in the source is fine as long as code
// generation follows this fixed order.
func (g *Generator) genBlock(s *State, t *parsetree.Node) {
	g.dispatch(s, t.GetChild("var-declaration"))
	g.dispatch(s, t.GetChild("const-declaration"))
	g.dispatch(s, t.GetChild("statement"))
}

// genVarDeclaration implements dry-run sizing: the "vars" subtree is
// generated only into a cloned state, whose emitted instruction count
// becomes the inc's modifier; only the symbols the dry run adds
// survive into the real state.
func (g *Generator) genVarDeclaration(s *State, t *parsetree.Node) {
	if !t.HasChild("vars") {
		return
	}
	varsNode := t.GetChild("vars")

	dry := s.Clone()
	before := len(dry.Instructions)
	g.dispatch(dry, varsNode)
	count := len(dry.Instructions) - before

	s.Symbols = dry.Symbols
	s.Emit(Inc, 0, count)
}

func (g *Generator) genVars(s *State, t *parsetree.Node) {
	g.dispatch(s, t.GetChild("var"))
	if t.HasChild("vars") {
		g.dispatch(s, t.GetChild("vars"))
	}
}

// genVar appends a VARIABLE symbol and emits a sentinel instruction
// that var-declaration's dry run counts and then discards.
func (g *Generator) genVar(s *State, t *parsetree.Node) {
	name := t.GetChild("identifier").GetToken()
	s.AddSymbol(Symbol{Name: name, Kind: Variable, Level: s.Level, Address: len(s.Symbols)})
	s.Emit(Inc, -1, -1)
}

func (g *Generator) genConstDeclaration(s *State, t *parsetree.Node) {
	if !t.HasChild("constants") {
		return
	}
	g.dispatch(s, t.GetChild("constants"))
}

func (g *Generator) genConstants(s *State, t *parsetree.Node) {
	g.dispatch(s, t.GetChild("constant"))
	if t.HasChild("constants") {
		g.dispatch(s, t.GetChild("constants"))
	}
}

func (g *Generator) genConstant(s *State, t *parsetree.Node) {
	name := t.GetChild("identifier").GetToken()
	text := t.GetChild("number").GetToken()
	value, err := strconv.Atoi(text)
	if err != nil {
		g.errorf("malformed constant value '%s'", text)
		return
	}
	s.AddSymbol(Symbol{Name: name, Kind: Constant, Level: s.Level, Value: value})
}

func (g *Generator) genStatement(s *State, t *parsetree.Node) {
	g.dispatch(s, t.GetFirstChild())
}

func (g *Generator) genStatements(s *State, t *parsetree.Node) {
	g.dispatch(s, t.GetChild("statement"))
	if t.HasChild("statements") {
		g.dispatch(s, t.GetChild("statements"))
	}
}

func (g *Generator) genBeginBlock(s *State, t *parsetree.Node) {
	g.dispatch(s, t.GetChild("statements"))
}

func (g *Generator) genAssignment(s *State, t *parsetree.Node) {
	g.dispatch(s, t.GetChild("expression"))
	name := t.GetChild("identifier").GetToken()
	g.store(s, name)
}

func (g *Generator) genReadStatement(s *State, t *parsetree.Node) {
	s.Emit(Read, 0, 2)
	name := t.GetChild("identifier").GetToken()
	g.store(s, name)
}

func (g *Generator) genWriteStatement(s *State, t *parsetree.Node) {
	name := t.GetChild("identifier").GetToken()
	g.load(s, name)
	s.Emit(Sio, 0, 1)
}

// genIfStatement resolves the forward jump over the body by emitting
// into a cloned state first to measure the body's length.
func (g *Generator) genIfStatement(s *State, t *parsetree.Node) {
	condNode := t.GetChild("condition")
	bodyNode := t.GetChild("statement")

	dry := s.Clone()
	g.dispatch(dry, condNode)
	dry.Emit(Jpc, -1, -1)
	g.dispatch(dry, bodyNode)
	afterIf := len(dry.Instructions)

	g.dispatch(s, condNode)
	s.Emit(Jpc, 0, afterIf)
	g.dispatch(s, bodyNode)
}

// genWhileStatement mirrors genIfStatement but also resolves the
// backward jump to the loop's own start, recorded before any emission.
func (g *Generator) genWhileStatement(s *State, t *parsetree.Node) {
	condNode := t.GetChild("condition")
	bodyNode := t.GetChild("statement")

	loopTop := len(s.Instructions)

	dry := s.Clone()
	g.dispatch(dry, condNode)
	dry.Emit(Jpc, -1, -1)
	g.dispatch(dry, bodyNode)
	dry.Emit(Jmp, 0, loopTop)
	afterLoop := len(dry.Instructions)

	g.dispatch(s, condNode)
	s.Emit(Jpc, 0, afterLoop)
	g.dispatch(s, bodyNode)
	s.Emit(Jmp, 0, loopTop)
}

func (g *Generator) genCondition(s *State, t *parsetree.Node) {
	if t.HasChild("odd") {
		g.dispatch(s, t.GetChild("expression"))
		s.Emit(Opr, 0, OprOddTest)
		return
	}
	g.dispatch(s, t.GetChild("expression"))
	g.dispatch(s, t.GetLastChild("expression"))
	g.dispatch(s, t.GetChild("rel-op"))
}

func (g *Generator) genRelOp(s *State, t *parsetree.Node) {
	switch t.GetToken() {
	case "=":
		s.Emit(Opr, 0, OprEqual)
	case "<>":
		s.Emit(Opr, 0, OprNotEqual)
	case "<":
		s.Emit(Opr, 0, OprLess)
	case "<=":
		s.Emit(Opr, 0, OprLessEq)
	case ">":
		s.Emit(Opr, 0, OprGreater)
	case ">=":
		s.Emit(Opr, 0, OprGreaterEq)
	default:
		g.errorf("invalid relational operator '%s'", t.GetToken())
	}
}

func (g *Generator) genExpression(s *State, t *parsetree.Node) {
	g.dispatch(s, t.GetChild("term"))
	if t.HasChild("add-or-subtract") {
		g.dispatch(s, t.GetChild("expression"))
		g.dispatch(s, t.GetChild("add-or-subtract"))
	}
}

func (g *Generator) genAddOrSubtract(s *State, t *parsetree.Node) {
	switch t.GetToken() {
	case "+":
		s.Emit(Opr, 0, OprAdd)
	case "-":
		s.Emit(Opr, 0, OprSubtract)
	default:
		g.errorf("invalid additive operator '%s'", t.GetToken())
	}
}

func (g *Generator) genTerm(s *State, t *parsetree.Node) {
	g.dispatch(s, t.GetChild("factor"))
	if t.HasChild("multiply-or-divide") {
		g.dispatch(s, t.GetChild("term"))
		g.dispatch(s, t.GetChild("multiply-or-divide"))
	}
}

func (g *Generator) genMultiplyOrDivide(s *State, t *parsetree.Node) {
	switch t.GetToken() {
	case "*":
		s.Emit(Opr, 0, OprMultiply)
	case "/":
		s.Emit(Opr, 0, OprDivide)
	default:
		g.errorf("invalid multiplicative operator '%s'", t.GetToken())
	}
}

// genFactor speculatively descends into whichever of number, sign,
// identifier, or expression is actually present; an absent child is a
// no-op via dispatch's nil/error handling. Only the "sign number"
// alternative ever has a sign child — a leading "-" or "+" binds to a
// bare numeric literal only, never to an identifier or a parenthesized
// expression.
func (g *Generator) genFactor(s *State, t *parsetree.Node) {
	g.dispatch(s, t.GetChild("number"))
	g.dispatch(s, t.GetChild("identifier"))
	g.dispatch(s, t.GetChild("expression"))
	g.dispatch(s, t.GetChild("sign"))
}

func (g *Generator) genSign(s *State, t *parsetree.Node) {
	switch t.GetToken() {
	case "-":
		s.Emit(Opr, 0, OprNegate)
	case "+", "":
		// "+" and the nothing-marker both emit nothing.
	}
}

func (g *Generator) genNumber(s *State, t *parsetree.Node) {
	text := t.GetToken()
	value, err := strconv.Atoi(text)
	if err != nil {
		g.errorf("malformed number literal '%s'", text)
		return
	}
	s.Emit(Lit, 0, value)
}

func (g *Generator) genIdentifier(s *State, t *parsetree.Node) {
	g.load(s, t.GetToken())
}

// load and store look a name up in scope and emit the instruction
// appropriate to its symbol kind.
func (g *Generator) load(s *State, name string) {
	sym, ok := s.Lookup(name)
	if !ok {
		g.errorf("Could not find symbol '%s'.", name)
		return
	}
	switch sym.Kind {
	case Variable:
		s.Emit(Lod, sym.Level, sym.Address)
	case Constant:
		s.Emit(Lit, 0, sym.Value)
	case Procedure:
		g.errorf("Cannot take value of procedure.")
	}
}

func (g *Generator) store(s *State, name string) {
	sym, ok := s.Lookup(name)
	if !ok {
		g.errorf("Could not find symbol '%s'.", name)
		return
	}
	if sym.Kind != Variable {
		g.errorf("Cannot store into a constant or procedure.")
		return
	}
	s.Emit(Sto, sym.Level, sym.Address)
}
