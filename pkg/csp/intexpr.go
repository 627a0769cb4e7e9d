package csp

import "fmt"

// IntExpr is a handle returned by Builder.ConstrainVar and by every
// arithmetic operator on it: it names either an original integer variable
// or a previously derived auxiliary, and each arithmetic call produces a
// new auxiliary variable wired to compute its value from the operands'
// values whenever both become assigned (see Problem.cascadeAssign).
//
// Arithmetic is decomposed this way — rather than building one large
// n-ary predicate over every variable mentioned in an expression — so that
// each step stays a binary (or unary, against a literal) constraint, the
// granularity node/arc consistency and forward checking reason about.
//
// Comparison methods (Equal, LessThan, ...) are the chain's terminators:
// they register a finalized constraint on the builder and return it: no
// further arithmetic can extend past a comparison.
type IntExpr struct {
	b        *Builder
	varIndex int
}

// ConstrainVar starts an integer expression rooted at the original
// variable at index i.
func (b *Builder) ConstrainVar(i int) *IntExpr {
	return &IntExpr{b: b, varIndex: i}
}

// Var returns the index e currently names, for passing to Constrain/
// ConstrainEach and friends alongside hand-built constraints.
func (e *IntExpr) Var() int { return e.varIndex }

func (b *Builder) bounds(idx int) (int, int) {
	if bnds, ok := b.auxBounds[idx]; ok {
		return bnds[0], bnds[1]
	}
	id, ok := AsIntervalDomain(b.variables[idx].Domain())
	if !ok {
		panic(fmt.Sprintf("csp: ConstrainVar(%d): not an IntervalDomain-backed variable", idx))
	}
	lo, _ := id.Min()
	hi, _ := id.Max()
	return lo, hi
}

// addAuxiliary appends a new auxiliary variable computed by rel, records
// its bound estimate, and returns its index.
func (b *Builder) addAuxiliary(rel Relation, lo, hi int, label string) int {
	idx := len(b.variables)
	b.variables = append(b.variables, newAuxiliaryVariable(idx, label, rel))
	if b.auxBounds == nil {
		b.auxBounds = make(map[int][2]int)
	}
	b.auxBounds[idx] = [2]int{lo, hi}
	return idx
}

func addBounds(xlo, xhi, ylo, yhi int) (int, int) { return xlo + ylo, xhi + yhi }
func subBounds(xlo, xhi, ylo, yhi int) (int, int) { return xlo - yhi, xhi - ylo }

func mulBounds(xlo, xhi, ylo, yhi int) (int, int) {
	corners := [4]int{xlo * ylo, xlo * yhi, xhi * ylo, xhi * yhi}
	lo, hi := corners[0], corners[0]
	for _, c := range corners[1:] {
		if c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
	}
	return lo, hi
}

// divBounds bounds x/y by evaluating all four corner quotients of the
// operand ranges directly, skipping any corner whose divisor is zero,
// rather than the shortcut of assuming the extremes always land at
// min/value and max/value — that shortcut breaks once the divisor's range
// is negative. The corner bounds cover every quotient when the divisor's
// range excludes zero; when it contains zero, quotients by divisors of
// smaller magnitude (such as -1 and 1) are not considered, so the result
// can be narrower than the true range (divBounds(-6, 6, -3, 3) is [-2, 2]).
func divBounds(xlo, xhi, ylo, yhi int) (int, int) {
	type corner struct{ x, y int }
	corners := [4]corner{{xlo, ylo}, {xlo, yhi}, {xhi, ylo}, {xhi, yhi}}
	lo, hi, have := 0, 0, false
	for _, c := range corners {
		if c.y == 0 {
			continue
		}
		q := c.x / c.y
		if !have {
			lo, hi, have = q, q, true
			continue
		}
		if q < lo {
			lo = q
		}
		if q > hi {
			hi = q
		}
	}
	return lo, hi
}

func (e *IntExpr) binary(other *IntExpr, op func(x, y int) int, boundsFn func(xlo, xhi, ylo, yhi int) (int, int), label string) *IntExpr {
	xlo, xhi := e.b.bounds(e.varIndex)
	ylo, yhi := e.b.bounds(other.varIndex)
	lo, hi := boundsFn(xlo, xhi, ylo, yhi)
	rel := Relation{
		Input0: e.varIndex,
		Input1: other.varIndex,
		Binary: func(x, y any) any { return op(x.(int), y.(int)) },
	}
	idx := e.b.addAuxiliary(rel, lo, hi, label)
	return &IntExpr{b: e.b, varIndex: idx}
}

func (e *IntExpr) withValue(k int, op func(x, k int) int, boundsFn func(xlo, xhi, k int) (int, int), label string) *IntExpr {
	xlo, xhi := e.b.bounds(e.varIndex)
	lo, hi := boundsFn(xlo, xhi, k)
	rel := Relation{
		Input0: e.varIndex,
		Input1: -1,
		Unary:  func(x any) any { return op(x.(int), k) },
	}
	idx := e.b.addAuxiliary(rel, lo, hi, label)
	return &IntExpr{b: e.b, varIndex: idx}
}

// Add returns an expression for e + other.
func (e *IntExpr) Add(other *IntExpr) *IntExpr {
	return e.binary(other, func(x, y int) int { return x + y }, addBounds, "add")
}

// AddValue returns an expression for e + k.
func (e *IntExpr) AddValue(k int) *IntExpr {
	return e.withValue(k, func(x, k int) int { return x + k },
		func(lo, hi, k int) (int, int) { return lo + k, hi + k }, "add")
}

// Sub returns an expression for e - other.
func (e *IntExpr) Sub(other *IntExpr) *IntExpr {
	return e.binary(other, func(x, y int) int { return x - y }, subBounds, "sub")
}

// SubValue returns an expression for e - k.
func (e *IntExpr) SubValue(k int) *IntExpr {
	return e.withValue(k, func(x, k int) int { return x - k },
		func(lo, hi, k int) (int, int) { return lo - k, hi - k }, "sub")
}

// Mul returns an expression for e * other.
func (e *IntExpr) Mul(other *IntExpr) *IntExpr {
	return e.binary(other, func(x, y int) int { return x * y }, mulBounds, "mul")
}

// MulValue returns an expression for e * k.
func (e *IntExpr) MulValue(k int) *IntExpr {
	return e.withValue(k, func(x, k int) int { return x * k },
		func(lo, hi, k int) (int, int) {
			a, b := lo*k, hi*k
			if a > b {
				a, b = b, a
			}
			return a, b
		}, "mul")
}

// Div returns an expression for e / other (integer division). If other
// evaluates to zero at search time the relation yields zero rather than
// panicking; a caller relying on division should constrain the divisor's
// domain (or add a NotEqualValue(0) constraint on it) to exclude zero.
func (e *IntExpr) Div(other *IntExpr) *IntExpr {
	return e.binary(other, func(x, y int) int {
		if y == 0 {
			return 0
		}
		return x / y
	}, divBounds, "div")
}

// DivValue returns an expression for e / k. It panics at construction if
// k is zero, since the divisor is fixed and known up front.
func (e *IntExpr) DivValue(k int) *IntExpr {
	if k == 0 {
		panic("csp: IntExpr.DivValue: division by zero")
	}
	return e.withValue(k, func(x, k int) int { return x / k },
		func(lo, hi, k int) (int, int) {
			a, b := lo/k, hi/k
			if a > b {
				a, b = b, a
			}
			return a, b
		}, "div")
}

// Neg returns an expression for -e.
func (e *IntExpr) Neg() *IntExpr { return e.MulValue(-1) }

func (e *IntExpr) compareValue(k int, cmp func(x, k int) bool, name string) *Constraint {
	return e.b.registerConstraint([]int{e.varIndex}, func(view *View) bool {
		return cmp(view.Int(0), k)
	}, name)
}

func (e *IntExpr) compare(other *IntExpr, cmp func(x, y int) bool, name string) *Constraint {
	return e.b.registerConstraint([]int{e.varIndex, other.varIndex}, func(view *View) bool {
		return cmp(view.Int(0), view.Int(1))
	}, name)
}

// EqualValue finalizes and registers e == k.
func (e *IntExpr) EqualValue(k int) *Constraint {
	return e.compareValue(k, func(x, k int) bool { return x == k }, "eq")
}

// Equal finalizes and registers e == other.
func (e *IntExpr) Equal(other *IntExpr) *Constraint {
	return e.compare(other, func(x, y int) bool { return x == y }, "eq")
}

// NotEqualValue finalizes and registers e != k.
func (e *IntExpr) NotEqualValue(k int) *Constraint {
	return e.compareValue(k, func(x, k int) bool { return x != k }, "neq")
}

// NotEqual finalizes and registers e != other.
func (e *IntExpr) NotEqual(other *IntExpr) *Constraint {
	return e.compare(other, func(x, y int) bool { return x != y }, "neq")
}

// LessThanValue finalizes and registers e < k.
func (e *IntExpr) LessThanValue(k int) *Constraint {
	return e.compareValue(k, func(x, k int) bool { return x < k }, "lt")
}

// LessThan finalizes and registers e < other.
func (e *IntExpr) LessThan(other *IntExpr) *Constraint {
	return e.compare(other, func(x, y int) bool { return x < y }, "lt")
}

// GreaterThanValue finalizes and registers e > k.
func (e *IntExpr) GreaterThanValue(k int) *Constraint {
	return e.compareValue(k, func(x, k int) bool { return x > k }, "gt")
}

// GreaterThan finalizes and registers e > other.
func (e *IntExpr) GreaterThan(other *IntExpr) *Constraint {
	return e.compare(other, func(x, y int) bool { return x > y }, "gt")
}
