// Package pheromone хранит и мутирует силу феромона по парам
// (переменная, значение). Представление — плоский contiguous []float64 с
// отдельной картой индексов, построенной один раз при Initialize: линейный
// проход по всему массиву на Evaporate/Clamp, O(1) доступ на Get/Deposit.
package pheromone

import (
	"fmt"

	"github.com/h00dieB0y/antares/internal/cspmodel"
)

type trail struct {
	variableID int
	value      int
}

// Matrix — таблица феромонов τ(v,x) для всех пар (переменная, значение ∈
// домен переменной).
type Matrix struct {
	tau   []float64
	index map[trail]int
}

// Initialize строит Matrix с одной записью на каждую пару (v, x ∈
// v.Domain()), инициализированную значением tauMax. Требует tauMax > 0.
func Initialize(problem *cspmodel.Problem, tauMax float64) (*Matrix, error) {
	if tauMax <= 0 {
		return nil, fmt.Errorf("tauMax must be > 0 (got %f)", tauMax)
	}

	vars := problem.Variables()
	index := make(map[trail]int)
	var tau []float64

	for _, v := range vars {
		domain := v.Domain()
		if len(domain) == 0 {
			return nil, fmt.Errorf("variable %q has an empty domain", v.Name)
		}
		for _, x := range domain {
			key := trail{variableID: v.ID, value: x}
			if _, ok := index[key]; ok {
				continue
			}
			index[key] = len(tau)
			tau = append(tau, tauMax)
		}
	}

	return &Matrix{tau: tau, index: index}, nil
}

// Get возвращает τ(v,value). Возвращает 0, если пара отсутствует в
// матрице — защитное поведение, не паника.
func (m *Matrix) Get(v *cspmodel.Variable, value int) float64 {
	idx, ok := m.index[trail{variableID: v.ID, value: value}]
	if !ok {
		return 0
	}
	return m.tau[idx]
}

// Evaporate умножает каждый след на (1-ρ). Требует ρ ∈ [0,1].
func (m *Matrix) Evaporate(rho float64) error {
	if rho < 0 || rho > 1 {
		return fmt.Errorf("rho must be in [0,1] (got %f)", rho)
	}
	decay := 1 - rho
	for i := range m.tau {
		m.tau[i] *= decay
	}
	return nil
}

// Deposit добавляет delta к τ(v, assignment[v]) для каждой назначенной
// переменной v. Неназначенные переменные пропускаются. Требует delta > 0.
func (m *Matrix) Deposit(assignment *cspmodel.Assignment, variables []*cspmodel.Variable, delta float64) error {
	if delta <= 0 {
		return fmt.Errorf("delta must be > 0 (got %f)", delta)
	}
	byID := make(map[int]*cspmodel.Variable, len(variables))
	for _, v := range variables {
		byID[v.ID] = v
	}
	assignment.ForEach(func(variableID, value int) {
		v, ok := byID[variableID]
		if !ok {
			return
		}
		idx, ok := m.index[trail{variableID: v.ID, value: value}]
		if !ok {
			return
		}
		m.tau[idx] += delta
	})
	return nil
}

// DepositMultiple применяет Deposit для каждого присваивания в assignments,
// используя deltaOf для вычисления величины депозита каждого. Вклады
// аддитивны.
func (m *Matrix) DepositMultiple(assignments []*cspmodel.Assignment, variables []*cspmodel.Variable, deltaOf func(*cspmodel.Assignment) float64) error {
	for _, a := range assignments {
		delta := deltaOf(a)
		if err := m.Deposit(a, variables, delta); err != nil {
			return err
		}
	}
	return nil
}

// Clamp заменяет каждый τ на min(tauMax, max(tauMin, τ)). Требует 0 ≤
// tauMin ≤ tauMax.
func (m *Matrix) Clamp(tauMin, tauMax float64) error {
	if tauMin < 0 || tauMin > tauMax {
		return fmt.Errorf("require 0 <= tauMin <= tauMax (got tauMin=%f, tauMax=%f)", tauMin, tauMax)
	}
	for i, t := range m.tau {
		if t < tauMin {
			m.tau[i] = tauMin
		} else if t > tauMax {
			m.tau[i] = tauMax
		}
	}
	return nil
}

// Len возвращает количество хранимых следов (Σ|domain(v)|).
func (m *Matrix) Len() int {
	return len(m.tau)
}
