package hooks

type cellKind uint8

const (
	kindState cellKind = iota
	kindMemo
	kindRef
	kindEffect
)

func (k cellKind) String() string {
	switch k {
	case kindState:
		return "state"
	case kindMemo:
		return "memo"
	case kindRef:
		return "ref"
	case kindEffect:
		return "effect"
	default:
		return "unknown"
	}
}

// cell is one slot in an owner's ordered cell store. The concrete type
// carries the per-kind shape; position in the store is fixed for the
// lifetime of the owner.
type cell interface {
	kind() cellKind
}

// Deps is an ordered snapshot of captured values. A nil Deps means "no
// dependency list": the guarded work reruns on every render. A non-nil
// empty Deps compares equal to itself, so the work runs once. Elements
// are compared positionally with == and must be comparable.
type Deps []any

// changed reports whether next differs from prev. Either list being nil
// counts as changed, as does a length mismatch or any positional
// inequality.
func (prev Deps) changed(next Deps) bool {
	if prev == nil || next == nil {
		return true
	}
	if len(prev) != len(next) {
		return true
	}
	for i := range next {
		if prev[i] != next[i] {
			return true
		}
	}
	return false
}
