package codegen

// State is the generator's mutable state: an append-only symbol
// table, the current lexical level (always 0 in this compiler, which
// never nests procedures), and the instructions emitted so far. State
// is value-cloneable: the generator routinely forks a deep copy to
// measure how many instructions a subtree would emit before committing
// to the real emission.
type State struct {
	Symbols      []Symbol
	Level        int
	Instructions []Instruction
}

// NewState returns an empty generator state at lexical level 0.
func NewState() *State {
	return &State{Level: 0}
}

// Clone returns a deep copy of s: forking the symbol table and
// instruction slice so that emitting into the clone never affects s.
func (s *State) Clone() *State {
	clone := &State{Level: s.Level}
	clone.Symbols = append([]Symbol(nil), s.Symbols...)
	clone.Instructions = append([]Instruction(nil), s.Instructions...)
	return clone
}

// Emit appends an instruction and returns its index.
func (s *State) Emit(op OpCode, level, modifier int) int {
	s.Instructions = append(s.Instructions, Instruction{Op: op, Level: level, Modifier: modifier})
	return len(s.Instructions) - 1
}

// AddSymbol appends sym to the symbol table. The table is append-only:
// symbols are never removed or rewritten.
func (s *State) AddSymbol(sym Symbol) {
	s.Symbols = append(s.Symbols, sym)
}

// Lookup returns the first symbol named name in declaration order, and
// whether one was found.
func (s *State) Lookup(name string) (Symbol, bool) {
	for _, sym := range s.Symbols {
		if sym.Name == name {
			return sym, true
		}
	}
	return Symbol{}, false
}
