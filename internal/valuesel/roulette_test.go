package valuesel

import (
	"testing"

	"github.com/h00dieB0y/antares/internal/cspmodel"
	"github.com/h00dieB0y/antares/internal/pheromone"
)

func mustVar(t *testing.T, id int, name string, domain []int) *cspmodel.Variable {
	t.Helper()
	v, err := cspmodel.NewVariable(id, name, domain)
	if err != nil {
		t.Fatalf("NewVariable: %v", err)
	}
	return v
}

func TestSelectEmptyDomain(t *testing.T) {
	x := mustVar(t, 0, "X", []int{1})
	p, _ := cspmodel.NewProblem([]*cspmodel.Variable{x}, nil)
	m, _ := pheromone.Initialize(p, 10)

	r := New(1, nil)
	_, ok, err := r.Select(x, nil, m, 1, 0)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if ok {
		t.Fatal("expected no selection for an empty domain")
	}
}

func TestSelectSingletonNoRNG(t *testing.T) {
	x := mustVar(t, 0, "X", []int{1, 2})
	p, _ := cspmodel.NewProblem([]*cspmodel.Variable{x}, nil)
	m, _ := pheromone.Initialize(p, 10)

	r := New(1, nil)
	val, ok, err := r.Select(x, []int{2}, m, 1, 0)
	if err != nil || !ok {
		t.Fatalf("Select: val=%d ok=%v err=%v", val, ok, err)
	}
	if val != 2 {
		t.Fatalf("Select singleton = %d, want 2", val)
	}
}

func TestSelectAllZeroWeightsIsError(t *testing.T) {
	x := mustVar(t, 0, "X", []int{1, 2})
	p, _ := cspmodel.NewProblem([]*cspmodel.Variable{x}, nil)
	m, _ := pheromone.Initialize(p, 10)
	m.Evaporate(1.0) // drives every tau to 0, alpha > 0 so weight is 0

	r := New(1, nil)
	if _, _, err := r.Select(x, []int{1, 2}, m, 1, 0); err == nil {
		t.Fatal("expected weight-degeneracy error when all weights are zero")
	}
}

func TestSelectDeterministicWithSameSeed(t *testing.T) {
	x := mustVar(t, 0, "X", []int{1, 2, 3})
	p, _ := cspmodel.NewProblem([]*cspmodel.Variable{x}, nil)
	m1, _ := pheromone.Initialize(p, 10)
	m2, _ := pheromone.Initialize(p, 10)
	m1.Deposit(assignOne(x, 2), []*cspmodel.Variable{x}, 5)
	m2.Deposit(assignOne(x, 2), []*cspmodel.Variable{x}, 5)

	r1 := New(42, nil)
	r2 := New(42, nil)

	for i := 0; i < 20; i++ {
		v1, _, _ := r1.Select(x, []int{1, 2, 3}, m1, 2, 0)
		v2, _, _ := r2.Select(x, []int{1, 2, 3}, m2, 2, 0)
		if v1 != v2 {
			t.Fatalf("iteration %d: same-seed selectors diverged: %d != %d", i, v1, v2)
		}
	}
}

// scenario: selector proportionality (spec.md §8) — with heavily skewed
// pheromone, the large majority of draws should land on the reinforced
// value.
func TestSelectProportionality(t *testing.T) {
	x := mustVar(t, 0, "X", []int{1, 2})
	p, _ := cspmodel.NewProblem([]*cspmodel.Variable{x}, nil)
	m, _ := pheromone.Initialize(p, 0.01)
	m.Deposit(assignOne(x, 1), []*cspmodel.Variable{x}, 100)

	r := New(7, nil)
	hits := 0
	const trials = 500
	for i := 0; i < trials; i++ {
		v, _, err := r.Select(x, []int{1, 2}, m, 2, 0)
		if err != nil {
			t.Fatalf("Select: %v", err)
		}
		if v == 1 {
			hits++
		}
	}
	if hits < trials*9/10 {
		t.Fatalf("expected value 1 to dominate selection, got %d/%d", hits, trials)
	}
}

func assignOne(v *cspmodel.Variable, value int) *cspmodel.Assignment {
	a := cspmodel.NewAssignment()
	a.Assign(v, value)
	return a
}
