package optimizer

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/photomatch/photomatch-backend/internal/domain"
)

// OptimizationMethod names the formulation reported to clients. The
// problem is a binary selection ILP with a cardinality constraint; the
// shipped solver solves it exactly by ranking.
const OptimizationMethod = "binary_selection_ilp"

var validate = validator.New()

// Request carries the client's constraints for one optimization run.
type Request struct {
	ClientCity       string  `json:"client_city" binding:"required" validate:"required"`
	EventDate        string  `json:"event_date" binding:"required,datetime=2006-01-02" validate:"required,datetime=2006-01-02"`
	MaxBudget        float64 `json:"max_budget" binding:"required,gt=0" validate:"required,gt=0"`
	GenderPreference string  `json:"gender_preference" validate:"omitempty,oneof=male female"`
	Specialty        string  `json:"specialty"`
	TopK             int     `json:"top_k" binding:"required,min=1" validate:"required,min=1"`
}

func (r Request) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}

// SelectionResult is the outcome of one optimization run.
type SelectionResult struct {
	Method          string       `json:"optimization_method"`
	SolverStatus    SolverStatus `json:"solver_status"`
	Reason          string       `json:"reason,omitempty"`
	TotalCandidates int          `json:"total_candidates"`
	SnapshotVersion string       `json:"snapshot_version"`
	Selected        []Candidate  `json:"selected_photographers"`
}

// Explanation is the client-facing "why these photographers" rendering.
type Explanation struct {
	SolverStatus    SolverStatus `json:"solver_status"`
	SnapshotVersion string       `json:"snapshot_version"`
	Explanation     string       `json:"explanation"`
	Selected        []Candidate  `json:"selected_photographers"`
}

// CatalogProvider supplies the immutable snapshot a run scores against.
// Satisfied by the catalog use case.
type CatalogProvider interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// ExplanationPolisher optionally rewrites a deterministic explanation
// draft into friendlier prose. Satisfied by the Gemini client; nil
// leaves drafts untouched.
type ExplanationPolisher interface {
	PolishExplanation(ctx context.Context, draft string) (string, error)
}

type UseCase struct {
	catalog  CatalogProvider
	bookings AvailabilityChecker
	solver   Solver
	polisher ExplanationPolisher
	weights  Weights
	travel   TravelParams
	maxTopK  int
}

// NewUseCase wires the selection pipeline. maxTopK caps the requestable
// selection size; 0 disables the cap.
func NewUseCase(
	catalog CatalogProvider,
	bookings AvailabilityChecker,
	solver Solver,
	polisher ExplanationPolisher,
	weights Weights,
	travel TravelParams,
	maxTopK int,
) *UseCase {
	return &UseCase{
		catalog:  catalog,
		bookings: bookings,
		solver:   solver,
		polisher: polisher,
		weights:  weights,
		travel:   travel,
		maxTopK:  maxTopK,
	}
}

// Select runs the full pipeline: snapshot, filter, formulate, solve. An
// empty feasible set is reported through the no_candidates status, never
// as an error.
func (uc *UseCase) Select(ctx context.Context, req Request) (*SelectionResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if uc.maxTopK > 0 && req.TopK > uc.maxTopK {
		return nil, fmt.Errorf("%w: top_k %d exceeds the maximum of %d", domain.ErrValidation, req.TopK, uc.maxTopK)
	}

	snapshot, err := uc.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog snapshot: %w", err)
	}

	candidates, emptyReason, err := uc.buildCandidates(ctx, snapshot, req)
	if err != nil {
		return nil, err
	}

	result := &SelectionResult{
		Method:          OptimizationMethod,
		TotalCandidates: len(candidates),
		SnapshotVersion: snapshot.Version,
		Selected:        []Candidate{},
	}

	problem := Problem{
		Variables:   make([]Variable, len(candidates)),
		Constraints: []Constraint{{Kind: ConstraintCardinality, Count: req.TopK}},
	}
	byID := make(map[int]Candidate, len(candidates))
	for i, c := range candidates {
		problem.Variables[i] = Variable{
			ID:        c.Photographer.ID,
			Objective: c.Breakdown.TotalScore,
			TieCost:   c.TotalCost,
		}
		byID[c.Photographer.ID] = c
	}

	solution, err := uc.solver.Solve(ctx, problem)
	if err != nil {
		return nil, fmt.Errorf("solver failed: %w", err)
	}

	result.SolverStatus = solution.Status
	switch solution.Status {
	case StatusNoCandidates:
		result.Reason = emptyReason
	case StatusInfeasible:
		result.Reason = domain.ErrSolverInfeasible.Error()
	case StatusOptimal:
		for _, id := range solution.Selected {
			result.Selected = append(result.Selected, byID[id])
		}
	}
	return result, nil
}

// ExplainCandidate recomputes a candidate's score breakdown from its
// normalized attributes. It must agree with the engine's internal score
// exactly; both call Weights.Score.
func (uc *UseCase) ExplainCandidate(c Candidate) ScoreBreakdown {
	return uc.weights.Score(c.Normalized)
}

// Explain runs a selection and renders the ranked contribution
// breakdown as text. With no feasible candidates there is nothing to
// explain, so the no-candidates outcome surfaces as ErrNoCandidates.
func (uc *UseCase) Explain(ctx context.Context, req Request) (*Explanation, error) {
	result, err := uc.Select(ctx, req)
	if err != nil {
		return nil, err
	}
	if result.SolverStatus == StatusNoCandidates {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoCandidates, result.Reason)
	}

	draft := renderExplanation(result, uc.weights)
	text := draft
	if uc.polisher != nil {
		polished, err := uc.polisher.PolishExplanation(ctx, draft)
		if err == nil && polished != "" {
			text = polished
		}
	}

	return &Explanation{
		SolverStatus:    result.SolverStatus,
		SnapshotVersion: result.SnapshotVersion,
		Explanation:     text,
		Selected:        result.Selected,
	}, nil
}
