package ast

// Expr is a node of an expression tree. The set of implementations is
// closed: Bool, Char, Int, Float, String, Symbol and List are the only
// variants.
type Expr interface {
	// Equal reports whether the expression is structurally equal to other.
	// Equality is variant-exact, so Int(1) and Float(1) are not equal; two
	// lists are equal when they have the same length and pairwise equal
	// elements, in order.
	Equal(other Expr) bool

	expr()
}

// Atom variants. The parser only ever produces Int, Float, String and
// Symbol: Bool and Char exist for trees built programmatically.
type (
	Bool   bool
	Char   rune
	Int    int64
	Float  float64
	String string
	Symbol string
)

// List is an ordered sequence of expressions. It owns its elements; a
// parsed tree is finite and acyclic, so plain value comparison and
// traversal are always safe.
type List []Expr

func (Bool) expr()   {}
func (Char) expr()   {}
func (Int) expr()    {}
func (Float) expr()  {}
func (String) expr() {}
func (Symbol) expr() {}
func (List) expr()   {}

func (v Bool) Equal(other Expr) bool {
	o, ok := other.(Bool)
	return ok && v == o
}

func (v Char) Equal(other Expr) bool {
	o, ok := other.(Char)
	return ok && v == o
}

func (v Int) Equal(other Expr) bool {
	o, ok := other.(Int)
	return ok && v == o
}

func (v Float) Equal(other Expr) bool {
	o, ok := other.(Float)
	return ok && v == o
}

func (v String) Equal(other Expr) bool {
	o, ok := other.(String)
	return ok && v == o
}

func (v Symbol) Equal(other Expr) bool {
	o, ok := other.(Symbol)
	return ok && v == o
}

func (v List) Equal(other Expr) bool {
	o, ok := other.(List)
	if !ok || len(v) != len(o) {
		return false
	}
	for i := range v {
		if !v[i].Equal(o[i]) {
			return false
		}
	}
	return true
}
