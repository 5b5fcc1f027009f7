package parsetree

import "testing"

func TestNewLeafConsumesOneToken(t *testing.T) {
	leaf := NewLeaf("x")
	if leaf.NumTokens != 1 {
		t.Errorf("NumTokens = %d, want 1", leaf.NumTokens)
	}
	if leaf.IsError() {
		t.Error("a leaf should never be an error node")
	}
}

func TestNewInteriorSumsChildTokens(t *testing.T) {
	a := NewLeaf("a")
	b := NewLeaf("b")
	interior := NewInterior("pair", []*Node{a, b})
	if interior.NumTokens != 2 {
		t.Errorf("NumTokens = %d, want 2", interior.NumTokens)
	}
}

func TestNewInteriorTreatsNilChildrenAsZeroTokens(t *testing.T) {
	interior := NewInterior("sign", []*Node{nil})
	if interior.NumTokens != 0 {
		t.Errorf("NumTokens = %d, want 0 for a nothing-marker child", interior.NumTokens)
	}
	if interior.IsError() {
		t.Error("a nothing-production should not be an error node")
	}
}

func TestNewErrorCarriesSentinelAndPartialTree(t *testing.T) {
	partial := []*Node{NewLeaf("x")}
	err := NewError("boom", partial)
	if !err.IsError() {
		t.Error("expected an error node")
	}
	if err.NumTokens != ErrorTokens {
		t.Errorf("NumTokens = %d, want %d", err.NumTokens, ErrorTokens)
	}
	if len(err.Children) != 1 {
		t.Errorf("expected the partial tree to survive, got %d children", len(err.Children))
	}
}

func TestNilNodeIsError(t *testing.T) {
	var n *Node
	if !n.IsError() {
		t.Error("a nil node should report itself as an error")
	}
}

func TestGetChildFindsFirstMatchByName(t *testing.T) {
	e1 := NewInterior("expression", []*Node{NewLeaf("1")})
	e2 := NewInterior("expression", []*Node{NewLeaf("2")})
	t1 := NewInterior("condition", []*Node{e1, NewLeaf("="), e2})

	if got := t1.GetChild("expression"); got != e1 {
		t.Error("GetChild should return the first matching child")
	}
	if got := t1.GetLastChild("expression"); got != e2 {
		t.Error("GetLastChild should return the last matching child")
	}
}

func TestGetChildMissingReturnsErrorNode(t *testing.T) {
	t1 := NewInterior("empty", nil)
	if !t1.GetChild("anything").IsError() {
		t.Error("GetChild on a missing name should return an error node")
	}
	if t1.HasChild("anything") {
		t.Error("HasChild should be false for a missing name")
	}
}

func TestGetFirstChildSkipsNilEntries(t *testing.T) {
	leaf := NewLeaf("x")
	t1 := NewInterior("statement", []*Node{nil, leaf})
	if got := t1.GetFirstChild(); got != leaf {
		t.Error("GetFirstChild should skip nil children")
	}
}

func TestGetFirstChildOnEmptyIsError(t *testing.T) {
	t1 := NewInterior("statement", nil)
	if !t1.GetFirstChild().IsError() {
		t.Error("GetFirstChild on a childless node should return an error node")
	}
}

func TestGetTokenReturnsSoleChildLiteral(t *testing.T) {
	ident := NewInterior("identifier", []*Node{NewLeaf("squ")})
	if got := ident.GetToken(); got != "squ" {
		t.Errorf("GetToken() = %q, want %q", got, "squ")
	}
}

func TestGetTokenOnNothingMarkerIsEmpty(t *testing.T) {
	sign := NewInterior("sign", []*Node{nil})
	if got := sign.GetToken(); got != "" {
		t.Errorf("GetToken() = %q, want empty string for a nothing-production", got)
	}
}

func TestGetTokenOnMultiChildNodeIsEmpty(t *testing.T) {
	pair := NewInterior("pair", []*Node{NewLeaf("a"), NewLeaf("b")})
	if got := pair.GetToken(); got != "" {
		t.Errorf("GetToken() = %q, want empty string for a multi-child node", got)
	}
}
