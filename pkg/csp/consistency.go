package csp

// marks tracks, per variable, the set of domain positions found to violate
// some constraint during node/arc consistency pre-processing. Positions are
// tracked rather than values because they must be resolved against the
// domain's ascending order at removal time, after every variable has been
// marked (removal happens only once pre-processing can no longer fail).
type marks map[int]map[int]bool

func (m marks) mark(v, pos int) {
	set, ok := m[v]
	if !ok {
		set = make(map[int]bool)
		m[v] = set
	}
	set[pos] = true
}

func (m marks) count(v int) int { return len(m[v]) }

// checkSharedDomains fails fast if two variables of p reference the same
// domain instance — a violated precondition for consistency pre-processing,
// per spec §4.4/§5.
func checkSharedDomains(p *Problem) error {
	for i := 0; i < len(p.Variables); i++ {
		di := p.Variables[i].Domain()
		if di == nil {
			continue
		}
		for j := i + 1; j < len(p.Variables); j++ {
			dj := p.Variables[j].Domain()
			if dj == nil {
				continue
			}
			if sameDomainInstance(di, dj) {
				return &SharedDomain{I: i, J: j}
			}
		}
	}
	return nil
}

func sameDomainInstance(a, b Domain) bool {
	if ia, ok := AsIntervalDomain(a); ok {
		if ib, ok := AsIntervalDomain(b); ok {
			return ia == ib
		}
		return false
	}
	if oa, ok := a.(objectDomainAdapter); ok {
		if ob, ok := b.(objectDomainAdapter); ok {
			return oa.d == ob.d
		}
	}
	return false
}

// AchieveNodeConsistency enforces node consistency (AC-1 over unary
// constraints): for each unary constraint on variable v, every value
// violating the constraint is removed from v's domain. It fails with
// Overconstrained(v) — leaving every domain unchanged — if removing the
// marked values would empty v's domain, and with SharedDomain if two
// variables share a domain instance.
func AchieveNodeConsistency(p *Problem) error {
	if err := checkSharedDomains(p); err != nil {
		return err
	}
	m, err := markNodeInconsistentValues(p)
	if err != nil {
		return err
	}
	applyMarks(p, m)
	return nil
}

func markNodeInconsistentValues(p *Problem) (marks, error) {
	m := make(marks)
	tmp := NewSolution(len(p.Variables))
	for _, c := range p.Constraints {
		if !c.IsUnary() {
			continue
		}
		v := c.Tuple[0]
		dom := p.Variables[v].Domain()
		for i := 0; i < dom.Size(); i++ {
			val, _ := dom.Get(i)
			tmp.Assign(v, val)
			if c.IsViolated(tmp) {
				m.mark(v, i)
			}
			tmp.Unassign(v)
		}
		if dom.Size() > 0 && m.count(v) == dom.Size() {
			return nil, &Overconstrained{VariableIndex: v}
		}
	}
	return m, nil
}

// AchieveArcConsistency enforces arc consistency (AC-1 over binary
// constraints), running node consistency first. For each binary constraint
// (v0, v1), a value a of v0 is marked unless some unmarked value b of v1
// satisfies the constraint, and symmetrically for v1. It fails with
// Overconstrained(v) — leaving every domain unchanged — if any variable's
// marks would cover its whole domain.
func AchieveArcConsistency(p *Problem) error {
	if err := checkSharedDomains(p); err != nil {
		return err
	}
	m, err := markNodeInconsistentValues(p)
	if err != nil {
		return err
	}
	if err := markArcInconsistentValues(p, m); err != nil {
		return err
	}
	applyMarks(p, m)
	return nil
}

func markArcInconsistentValues(p *Problem, m marks) error {
	changed := true
	for changed {
		changed = false
		for _, c := range p.Constraints {
			if !c.IsBinary() {
				continue
			}
			v0, v1 := c.Tuple[0], c.Tuple[1]
			ch0, err := reviseArc(p, m, v0, v1, c)
			if err != nil {
				return err
			}
			ch1, err := reviseArc(p, m, v1, v0, c)
			if err != nil {
				return err
			}
			changed = changed || ch0 || ch1
		}
	}
	return nil
}

// reviseArc marks every unmarked value of vFrom that has no supporting
// unmarked value of vTo satisfying c, and reports whether any new mark was
// made.
func reviseArc(p *Problem, m marks, vFrom, vTo int, c *Constraint) (bool, error) {
	domFrom := p.Variables[vFrom].Domain()
	domTo := p.Variables[vTo].Domain()
	changed := false

	tmp := NewSolution(len(p.Variables))
	for i := 0; i < domFrom.Size(); i++ {
		if m[vFrom][i] {
			continue
		}
		a, _ := domFrom.Get(i)
		supported := false
		for j := 0; j < domTo.Size(); j++ {
			if m[vTo][j] {
				continue
			}
			b, _ := domTo.Get(j)
			tmp.Assign(vFrom, a)
			tmp.Assign(vTo, b)
			violated := c.IsViolated(tmp)
			tmp.Unassign(vFrom)
			tmp.Unassign(vTo)
			if !violated {
				supported = true
				break
			}
		}
		if !supported {
			m.mark(vFrom, i)
			changed = true
			if m.count(vFrom) == domFrom.Size() {
				return false, &Overconstrained{VariableIndex: vFrom}
			}
		}
	}
	return changed, nil
}

// applyMarks physically removes every marked domain position, via each
// domain's iterator, from the highest position down so earlier positions
// stay valid as later ones are removed.
func applyMarks(p *Problem, m marks) {
	for v, set := range m {
		if len(set) == 0 {
			continue
		}
		positions := make([]int, 0, len(set))
		for pos := range set {
			positions = append(positions, pos)
		}
		sortDesc(positions)

		dom := p.Variables[v].Domain()
		for _, pos := range positions {
			removeAtByIterator(dom, pos)
		}
	}
}

// removeAtByIterator advances dom's iterator to position pos and removes
// it, exercising the same iterator.Remove path the rest of the engine uses
// rather than an index-shifting bulk delete.
func removeAtByIterator(dom Domain, pos int) {
	it := dom.NewIterator()
	for i := 0; i <= pos; i++ {
		_, _ = it.Next()
	}
	_ = it.Remove()
}

func sortDesc(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] < xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}
