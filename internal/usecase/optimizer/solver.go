package optimizer

import (
	"context"
	"sort"
)

type SolverStatus string

const (
	StatusOptimal      SolverStatus = "optimal"
	StatusInfeasible   SolverStatus = "infeasible"
	StatusNoCandidates SolverStatus = "no_candidates"
)

// Variable is one 0/1 decision variable in a selection problem.
type Variable struct {
	// ID identifies the variable to the caller, typically a
	// photographer id.
	ID int
	// Objective is the variable's contribution to the maximized
	// objective when selected.
	Objective float64
	// TieCost breaks objective ties deterministically: equal-objective
	// variables are preferred by ascending TieCost, then ascending ID.
	TieCost float64
}

type ConstraintKind string

// ConstraintCardinality requires exactly min(Count, variable count)
// variables selected. Further kinds (per-group caps, diversity) slot in
// here without changing the engine.
const ConstraintCardinality ConstraintKind = "cardinality"

type Constraint struct {
	Kind  ConstraintKind
	Count int
}

// Problem is a linear-objective 0/1 selection problem.
type Problem struct {
	Variables   []Variable
	Constraints []Constraint
}

// Solution lists the selected variable IDs in rank order.
type Solution struct {
	Status   SolverStatus
	Selected []int
}

// Solver maximizes a Problem's linear objective subject to its
// constraints. Implementations must handle an empty variable set by
// returning StatusNoCandidates rather than failing.
type Solver interface {
	Solve(ctx context.Context, p Problem) (Solution, error)
}

// CardinalitySolver solves problems whose only constraint is a
// cardinality bound. With a linear objective and no other coupling, the
// optimum is exactly the top-k variables by objective, so a sort is an
// exact solve rather than a heuristic.
type CardinalitySolver struct{}

func NewCardinalitySolver() *CardinalitySolver {
	return &CardinalitySolver{}
}

func (s *CardinalitySolver) Solve(ctx context.Context, p Problem) (Solution, error) {
	if len(p.Variables) == 0 {
		return Solution{Status: StatusNoCandidates, Selected: []int{}}, nil
	}

	count := len(p.Variables)
	for _, c := range p.Constraints {
		if c.Kind != ConstraintCardinality {
			// A constraint this solver cannot honor makes the problem
			// infeasible for it; callers branch on the status.
			return Solution{Status: StatusInfeasible, Selected: []int{}}, nil
		}
		if c.Count < count {
			count = c.Count
		}
	}
	if count <= 0 {
		return Solution{Status: StatusInfeasible, Selected: []int{}}, nil
	}

	ranked := make([]Variable, len(p.Variables))
	copy(ranked, p.Variables)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Objective != ranked[j].Objective {
			return ranked[i].Objective > ranked[j].Objective
		}
		if ranked[i].TieCost != ranked[j].TieCost {
			return ranked[i].TieCost < ranked[j].TieCost
		}
		return ranked[i].ID < ranked[j].ID
	})

	selected := make([]int, count)
	for i := 0; i < count; i++ {
		selected[i] = ranked[i].ID
	}
	return Solution{Status: StatusOptimal, Selected: selected}, nil
}
