package skewb

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrStateNotReached is returned when a queried state number never showed
// up during table generation. Given full generation that means the state
// is unreachable under the move set, almost always a malformed input.
var ErrStateNotReached = errors.New("skewb: state not reached by table generation")

// tableEntry records how breadth-first enumeration first reached a state:
// the state it was expanded from, the move that produced it, and its
// distance from solved.
type tableEntry struct {
	pred  uint64
	move  Move
	depth uint8
}

// frontierEntry tags a frontier state with the move that produced it, so
// expansion can skip repeating that move.
type frontierEntry struct {
	num  uint64
	last Move
}

// GenerateOptions configures table generation.
type GenerateOptions struct {
	// Ctx is optional. If non-nil, generation aborts at the next layer
	// boundary once ctx.Done() is signaled. A table abandoned this way
	// stays valid for lookups up to the last completed layer.
	Ctx context.Context

	// OnLayer, if set, is called after each completed layer with the
	// layer's depth, the number of states first reached in it, and the
	// running total.
	OnLayer func(depth, layerSize, total int)
}

// SolutionTable maps every reachable state number to its predecessor link,
// letting a shortest solution be read back for any reachable state. The
// zero value is not usable; construct with NewSolutionTable.
type SolutionTable struct {
	entries     map[uint64]tableEntry
	layerCounts []int
}

// NewSolutionTable creates an empty table seeded with the solved state at
// depth 0.
func NewSolutionTable() *SolutionTable {
	t := &SolutionTable{
		entries:     make(map[uint64]tableEntry),
		layerCounts: []int{1},
	}
	t.entries[0] = tableEntry{pred: 0, depth: 0}
	return t
}

// Generate enumerates the reachable state space outward from solved, one
// breadth-first layer at a time. Expanding a frontier state skips exactly
// the move that produced it; inverse moves and every other duplicate fall
// to the first-visit check. Generation terminates when a layer yields no
// new states.
func (t *SolutionTable) Generate(opts *GenerateOptions) error {
	topts := GenerateOptions{}
	ctx := context.Background()
	if opts != nil {
		topts = *opts
		if opts.Ctx != nil {
			ctx = opts.Ctx
		}
	}

	frontier := []frontierEntry{{num: 0, last: Move{}}}
	depth := 0

	for len(frontier) > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		depth++
		var next []frontierEntry

		for _, f := range frontier {
			base := NewSkewbFromState(f.num)
			for _, move := range Moves {
				if move == f.last {
					continue
				}
				s := *base
				s.ApplyMove(move)
				num := s.StateNum()
				if _, seen := t.entries[num]; seen {
					continue
				}
				t.entries[num] = tableEntry{pred: f.num, move: move, depth: uint8(depth)}
				next = append(next, frontierEntry{num: num, last: move})
			}
		}

		if len(next) > 0 {
			t.layerCounts = append(t.layerCounts, len(next))
			if topts.OnLayer != nil {
				topts.OnLayer(depth, len(next), len(t.entries))
			}
		}
		frontier = next
	}

	return nil
}

// Solve returns a shortest move sequence taking the state with the given
// number to solved. ErrStateNotReached is returned for numbers absent from
// the table; a broken predecessor chain is a generation bug and panics.
func (t *SolutionTable) Solve(stateNum uint64) ([]Move, error) {
	entry, ok := t.entries[stateNum]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrStateNotReached, stateNum)
	}

	moves := make([]Move, 0, entry.depth)
	for entry.depth > 0 {
		moves = append(moves, entry.move.Inverse())
		pred := entry.pred
		entry, ok = t.entries[pred]
		if !ok {
			panic(fmt.Sprintf("skewb: solution table entry %d has no predecessor entry", pred))
		}
	}

	return moves, nil
}

// Contains reports whether the state number was reached.
func (t *SolutionTable) Contains(stateNum uint64) bool {
	_, ok := t.entries[stateNum]
	return ok
}

// Depth returns the BFS depth recorded for the state number, which equals
// its optimal solution length.
func (t *SolutionTable) Depth(stateNum uint64) (int, bool) {
	entry, ok := t.entries[stateNum]
	return int(entry.depth), ok
}

// Size returns the number of states reached so far.
func (t *SolutionTable) Size() int {
	return len(t.entries)
}

// MaxDepth returns the deepest completed layer: after full generation,
// the eccentricity of the solved state in the move graph.
func (t *SolutionTable) MaxDepth() int {
	return len(t.layerCounts) - 1
}

// LayerCounts returns the number of states first reached at each depth,
// index 0 being the solved state itself.
func (t *SolutionTable) LayerCounts() []int {
	counts := make([]int, len(t.layerCounts))
	copy(counts, t.layerCounts)
	return counts
}

// SolverResult represents the result of a solve attempt.
type SolverResult struct {
	Solution []Move
	Steps    int
	Duration time.Duration
}

// Solver interface for solving algorithms.
type Solver interface {
	Solve(s *Skewb) (*SolverResult, error)
	Name() string
}

// BFSSolver solves optimally from an exhaustive breadth-first table. The
// table is built on first use and reused across solves.
type BFSSolver struct {
	table *SolutionTable
	opts  *GenerateOptions
}

// NewBFSSolver creates a BFSSolver. opts may be nil; it is forwarded to
// table generation on first solve.
func NewBFSSolver(opts *GenerateOptions) *BFSSolver {
	return &BFSSolver{opts: opts}
}

func (s *BFSSolver) Name() string {
	return "BFS"
}

// Table returns the solver's solution table, generating it if needed.
func (s *BFSSolver) Table() (*SolutionTable, error) {
	if s.table == nil {
		t := NewSolutionTable()
		if err := t.Generate(s.opts); err != nil {
			return nil, err
		}
		s.table = t
	}
	return s.table, nil
}

func (s *BFSSolver) Solve(sk *Skewb) (*SolverResult, error) {
	start := time.Now()

	table, err := s.Table()
	if err != nil {
		return nil, err
	}

	solution, err := table.Solve(sk.StateNum())
	if err != nil {
		return nil, err
	}

	return &SolverResult{
		Solution: solution,
		Steps:    len(solution),
		Duration: time.Since(start),
	}, nil
}

// GetSolver returns a solver by name.
func GetSolver(name string) (Solver, error) {
	switch name {
	case "bfs", "optimal":
		return NewBFSSolver(nil), nil
	default:
		return nil, fmt.Errorf("unknown solver: %s", name)
	}
}
