// Package parsetree implements the generic concrete parse tree the
// parser produces and the generator walks.
package parsetree

// ErrorTokens is the in-band sentinel that distinguishes an error node
// from a real subtree: a real node's NumTokens is always >= 0.
const ErrorTokens = -1

// Node is either an interior node (Name = a grammar variable, Children
// = the matched symbols' subtrees), a leaf (Name = the literal text of
// a matched lexeme, no children), or an error node (Name = a
// human-readable message, Children = the partial tree built before
// failure, NumTokens = ErrorTokens).
type Node struct {
	Name      string
	Children  []*Node
	NumTokens int
}

// NewLeaf builds a one-lexeme terminal node.
func NewLeaf(literal string) *Node {
	return &Node{Name: literal, NumTokens: 1}
}

// NewInterior builds a successful interior node for a grammar variable,
// summing the consumed-token counts of its children (Nothing-marker
// children are represented as nil and contribute 0).
func NewInterior(variable string, children []*Node) *Node {
	total := 0
	for _, c := range children {
		if c != nil {
			total += c.NumTokens
		}
	}
	return &Node{Name: variable, Children: children, NumTokens: total}
}

// NewError builds an error node carrying the partial tree built before
// the failure that produced message.
func NewError(message string, partial []*Node) *Node {
	return &Node{Name: message, Children: partial, NumTokens: ErrorTokens}
}

// IsError reports whether t is an error node.
func (t *Node) IsError() bool {
	return t == nil || t.NumTokens == ErrorTokens
}

// GetChild returns the first direct child named name, or an error node
// if none exists.
func (t *Node) GetChild(name string) *Node {
	for _, c := range t.Children {
		if c != nil && c.Name == name {
			return c
		}
	}
	return NewError("no child named '"+name+"'", nil)
}

// GetLastChild returns the last direct child named name, or an error
// node if none exists.
func (t *Node) GetLastChild(name string) *Node {
	var found *Node
	for _, c := range t.Children {
		if c != nil && c.Name == name {
			found = c
		}
	}
	if found == nil {
		return NewError("no child named '"+name+"'", nil)
	}
	return found
}

// HasChild reports whether t has a direct child named name.
func (t *Node) HasChild(name string) bool {
	return !t.GetChild(name).IsError()
}

// GetFirstChild returns t's first direct child regardless of name, used
// to pick the single concrete alternative inside a wrapper variable. It
// returns an error node if t has no children.
func (t *Node) GetFirstChild() *Node {
	for _, c := range t.Children {
		if c != nil {
			return c
		}
	}
	return NewError("node '"+t.Name+"' has no children", nil)
}

// GetToken returns the literal text of t's sole child, for nodes that
// wrap exactly one terminal.
func (t *Node) GetToken() string {
	if len(t.Children) != 1 || t.Children[0] == nil {
		return ""
	}
	return t.Children[0].Name
}
