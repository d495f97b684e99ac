package colony

import "fmt"

// Parameters — валидированная запись ACO-параметров (spec.md §6):
// α ≥ 0, β ≥ 0, ρ ∈ [0,1], 0 < τ_min < τ_max, муравьёв за цикл ≥ 1.
// Неизменяема после конструирования.
type Parameters struct {
	Alpha float64
	Beta  float64
	Rho   float64
	TauMin float64
	TauMax float64
	Ants   int
}

// DefaultParameters возвращает рекомендуемые значения по умолчанию для
// режима чистого феромона CSP (spec.md §6): α=2.0, β=0.0, ρ=0.01,
// τ_min=0.01, τ_max=10.0, ants=30.
func DefaultParameters() Parameters {
	return Parameters{
		Alpha:  2.0,
		Beta:   0.0,
		Rho:    0.01,
		TauMin: 0.01,
		TauMax: 10.0,
		Ants:   30,
	}
}

// Validate проверяет параметры по таблице валидации spec.md §6.
func (p Parameters) Validate() error {
	if p.Alpha < 0 {
		return fmt.Errorf("alpha must be >= 0 (got %f)", p.Alpha)
	}
	if p.Beta < 0 {
		return fmt.Errorf("beta must be >= 0 (got %f)", p.Beta)
	}
	if p.Rho < 0 || p.Rho > 1 {
		return fmt.Errorf("rho must be in [0,1] (got %f)", p.Rho)
	}
	if p.TauMin <= 0 {
		return fmt.Errorf("tauMin must be > 0 (got %f)", p.TauMin)
	}
	if p.TauMax <= 0 || p.TauMax <= p.TauMin {
		return fmt.Errorf("tauMax must be > 0 and > tauMin (got tauMax=%f, tauMin=%f)", p.TauMax, p.TauMin)
	}
	if p.Ants < 1 {
		return fmt.Errorf("ants must be >= 1 (got %d)", p.Ants)
	}
	return nil
}
