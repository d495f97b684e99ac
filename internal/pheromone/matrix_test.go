package pheromone

import (
	"math"
	"testing"

	"github.com/h00dieB0y/antares/internal/cspmodel"
)

func mustProblem(t *testing.T, vars []*cspmodel.Variable) *cspmodel.Problem {
	t.Helper()
	p, err := cspmodel.NewProblem(vars, nil)
	if err != nil {
		t.Fatalf("NewProblem: %v", err)
	}
	return p
}

func mustVar(t *testing.T, id int, name string, domain []int) *cspmodel.Variable {
	t.Helper()
	v, err := cspmodel.NewVariable(id, name, domain)
	if err != nil {
		t.Fatalf("NewVariable: %v", err)
	}
	return v
}

func TestInitializeRejectsNonPositiveTauMax(t *testing.T) {
	x := mustVar(t, 0, "X", []int{1, 2})
	p := mustProblem(t, []*cspmodel.Variable{x})
	if _, err := Initialize(p, 0); err == nil {
		t.Fatal("expected error for tauMax <= 0")
	}
}

func TestInitializeCountsAllTrails(t *testing.T) {
	x := mustVar(t, 0, "X", []int{1, 2, 3})
	y := mustVar(t, 1, "Y", []int{1, 2})
	p := mustProblem(t, []*cspmodel.Variable{x, y})
	m, err := Initialize(p, 10)
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if m.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", m.Len())
	}
	if got := m.Get(x, 1); got != 10 {
		t.Fatalf("Get(X,1) = %f, want 10", got)
	}
}

func TestGetMissingPairIsZero(t *testing.T) {
	x := mustVar(t, 0, "X", []int{1, 2})
	p := mustProblem(t, []*cspmodel.Variable{x})
	m, _ := Initialize(p, 10)
	if got := m.Get(x, 99); got != 0 {
		t.Fatalf("Get(X,99) = %f, want 0", got)
	}
}

// scenario 3 of spec.md §8: evaporation exactness.
func TestEvaporationExactness(t *testing.T) {
	x := mustVar(t, 0, "X", []int{1, 2})
	p := mustProblem(t, []*cspmodel.Variable{x})
	m, _ := Initialize(p, 10)

	if err := m.Evaporate(0.1); err != nil {
		t.Fatalf("Evaporate: %v", err)
	}
	for _, val := range []int{1, 2} {
		got := m.Get(x, val)
		if math.Abs(got-9.0) > 1e-12 {
			t.Fatalf("Get(X,%d) = %f, want 9.0", val, got)
		}
	}

	if err := m.Clamp(0.01, 10); err != nil {
		t.Fatalf("Clamp: %v", err)
	}
	for _, val := range []int{1, 2} {
		got := m.Get(x, val)
		if math.Abs(got-9.0) > 1e-12 {
			t.Fatalf("after no-op clamp, Get(X,%d) = %f, want 9.0", val, got)
		}
	}
}

func TestClampBounds(t *testing.T) {
	x := mustVar(t, 0, "X", []int{1})
	p := mustProblem(t, []*cspmodel.Variable{x})
	m, _ := Initialize(p, 10)

	m.Evaporate(1.0) // drives tau to 0
	if err := m.Clamp(0.5, 10); err != nil {
		t.Fatalf("Clamp: %v", err)
	}
	if got := m.Get(x, 1); got != 0.5 {
		t.Fatalf("Get(X,1) = %f, want 0.5 (floor)", got)
	}
}

func TestDepositSkipsUnassignedVariables(t *testing.T) {
	x := mustVar(t, 0, "X", []int{1, 2})
	y := mustVar(t, 1, "Y", []int{1, 2})
	p := mustProblem(t, []*cspmodel.Variable{x, y})
	m, _ := Initialize(p, 10)

	a := cspmodel.NewAssignment()
	a.Assign(x, 1)

	if err := m.Deposit(a, []*cspmodel.Variable{x, y}, 1.0); err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	if got := m.Get(x, 1); got != 11 {
		t.Fatalf("Get(X,1) = %f, want 11", got)
	}
	if got := m.Get(y, 1); got != 10 {
		t.Fatalf("Get(Y,1) = %f, want unchanged 10", got)
	}
}

func TestDepositRejectsNonPositiveDelta(t *testing.T) {
	x := mustVar(t, 0, "X", []int{1})
	p := mustProblem(t, []*cspmodel.Variable{x})
	m, _ := Initialize(p, 10)
	a := cspmodel.NewAssignment()
	a.Assign(x, 1)
	if err := m.Deposit(a, []*cspmodel.Variable{x}, 0); err == nil {
		t.Fatal("expected error for delta <= 0")
	}
}
