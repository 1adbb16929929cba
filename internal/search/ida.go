// Package search implements a generic iterative-deepening A* (IDA*) engine.
// It knows nothing about cubes: a search space is described purely in terms
// of a state type, an admissible heuristic, a successor function, and a goal
// test, so the same engine drives both Kociemba phases (and, in principle,
// any other bounded shortest-path problem with a precomputed heuristic).
package search

// Step is one generator application: the state it leads to and the
// generator index used to reach it from its parent frame.
type Step[T comparable] struct {
	State T
	Move  int
}

// Problem describes a search space. Heuristic must be admissible (never
// overestimate the true distance to a goal) and consistent (differ by at
// most one generator step) for IDA*'s pruning to be correct; a pruning
// table's Distance method satisfies both properties by construction.
type Problem[T comparable] struct {
	Start     T
	Heuristic func(T) int
	Neighbors func(T) []Step[T]
	IsGoal    func(T) bool
}

// Solve runs IDA* to completion and returns the shortest generator-index
// sequence reaching the goal from p.Start within maxLength moves, or false
// if none exists. It is the single-call finder built on top of Enumerator.
func Solve[T comparable](p Problem[T], maxLength int) ([]int, bool) {
	return NewEnumerator(p, maxLength).Next()
}

// frame is one level of the depth-bounded DFS: the state at this level, its
// path cost so far, and — once expanded — its successors and how far the
// iteration over them has gotten.
type frame[T comparable] struct {
	state    T
	g        int
	children []Step[T]
	idx      int
}

// Enumerator performs iterative-deepening DFS and yields successive
// solutions in non-decreasing length order. It walks an explicit stack of
// frames rather than recursing, so a partial traversal can be suspended
// between calls to Next and resumed exactly where it left off at the next
// call — which is what lets a caller pull one solution at a time instead of
// materializing every solution up front. The two-phase driver relies on
// this: it only needs the first Phase-1 candidate whose Phase-2 projection
// also solves, not the full list of Phase-1 solutions at a given length.
type Enumerator[T comparable] struct {
	p         Problem[T]
	maxLength int
	bound     int
	nextBound int
	path      []int
	stack     []frame[T]
	exhausted bool
}

// NewEnumerator prepares a lazy solution stream bounded by maxLength moves,
// starting the first depth bound at the heuristic value of p.Start.
func NewEnumerator[T comparable](p Problem[T], maxLength int) *Enumerator[T] {
	e := &Enumerator[T]{p: p, maxLength: maxLength}
	e.bound = p.Heuristic(p.Start)
	e.resetStack()
	return e
}

func (e *Enumerator[T]) resetStack() {
	e.stack = []frame[T]{{state: e.p.Start, g: 0}}
	e.path = e.path[:0]
	e.nextBound = -1
}

// Next resumes the search, deepening the bound as many times as necessary,
// until it finds another solution or exhausts maxLength. It returns
// (solution, true) on success, or (nil, false) once no further solution
// exists within the length budget.
func (e *Enumerator[T]) Next() ([]int, bool) {
	if e.exhausted {
		return nil, false
	}
	for {
		if e.bound > e.maxLength {
			e.exhausted = true
			return nil, false
		}
		if sol, found := e.advance(); found {
			return sol, true
		}
		if e.nextBound < 0 {
			// No frame at this bound was pruned for exceeding it, and the
			// stack still drained — the reachable space is exhausted.
			e.exhausted = true
			return nil, false
		}
		e.bound = e.nextBound
		e.resetStack()
	}
}

// advance walks the stack until it yields the next solution at the current
// bound or drains it entirely, meaning the bound is fully explored. On
// drain, e.nextBound holds the smallest f-value that exceeded the bound —
// the next threshold to try, per the standard IDA* deepening rule.
func (e *Enumerator[T]) advance() ([]int, bool) {
	for len(e.stack) > 0 {
		top := &e.stack[len(e.stack)-1]

		if top.children == nil {
			f := top.g + e.p.Heuristic(top.state)
			if f > e.bound {
				if e.nextBound < 0 || f < e.nextBound {
					e.nextBound = f
				}
				e.pop()
				continue
			}
			if e.p.IsGoal(top.state) {
				// A goal reached in fewer moves than the bound was already
				// yielded under an earlier, smaller bound; only paths of
				// exactly the bound's length are new at this bound.
				if top.g == e.bound {
					sol := append([]int(nil), e.path...)
					e.pop()
					return sol, true
				}
				e.pop()
				continue
			}
			top.children = e.scan(top.state)
			top.idx = 0
		}

		if top.idx >= len(top.children) {
			e.pop()
			continue
		}

		child := top.children[top.idx]
		top.idx++
		e.path = append(e.path, child.Move)
		e.stack = append(e.stack, frame[T]{state: child.State, g: top.g + 1})
	}
	return nil, false
}

// scan enumerates one frame's successors. Kept as its own step (rather than
// inlined) because it is the one point where the engine calls back into
// problem-specific code to expand a node.
func (e *Enumerator[T]) scan(state T) []Step[T] {
	return e.p.Neighbors(state)
}

func (e *Enumerator[T]) pop() {
	e.stack = e.stack[:len(e.stack)-1]
	if len(e.path) > 0 {
		e.path = e.path[:len(e.path)-1]
	}
}
