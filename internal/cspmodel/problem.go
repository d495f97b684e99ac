package cspmodel

import "fmt"

// Problem — агрегат из одной или более переменных и нуля или более
// ограничений.
type Problem struct {
	variables   []*Variable
	constraints []Constraint
}

// NewProblem собирает Problem из переменных и ограничений. Требует хотя бы
// одну переменную и уникальные ID переменных.
func NewProblem(variables []*Variable, constraints []Constraint) (*Problem, error) {
	if len(variables) == 0 {
		return nil, fmt.Errorf("problem must have at least one variable")
	}
	seen := make(map[int]bool, len(variables))
	for _, v := range variables {
		if seen[v.ID] {
			return nil, fmt.Errorf("duplicate variable id %d (%q)", v.ID, v.Name)
		}
		seen[v.ID] = true
	}
	vs := make([]*Variable, len(variables))
	copy(vs, variables)
	cs := make([]Constraint, len(constraints))
	copy(cs, constraints)
	return &Problem{variables: vs, constraints: cs}, nil
}

// Variables возвращает переменные задачи в порядке объявления.
func (p *Problem) Variables() []*Variable {
	out := make([]*Variable, len(p.variables))
	copy(out, p.variables)
	return out
}

// Constraints возвращает ограничения задачи.
func (p *Problem) Constraints() []Constraint {
	out := make([]Constraint, len(p.constraints))
	copy(out, p.constraints)
	return out
}

// NumVariables возвращает число переменных задачи.
func (p *Problem) NumVariables() int {
	return len(p.variables)
}

// IsConsistent сообщает, удовлетворены ли все ограничения задачи текущим
// (возможно, частичным) присваиванием.
func (p *Problem) IsConsistent(a *Assignment) bool {
	for _, c := range p.constraints {
		if !c.IsSatisfiedBy(a) {
			return false
		}
	}
	return true
}

// IsSolution сообщает, полно ли присваивание и согласовано ли оно со всеми
// ограничениями.
func (p *Problem) IsSolution(a *Assignment) bool {
	return a.IsComplete(p.NumVariables()) && p.IsConsistent(a)
}
