// Package valuesel реализует вероятностный выбор значения (spec.md §4.3):
// однопроходное накопление суммы весов τ^α·η^β, затем второй проход,
// накапливающий вес до порога U·Σw, с U из собственного seedable
// генератора — никогда из глобального math/rand (spec.md §9).
package valuesel

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/h00dieB0y/antares/internal/cspmodel"
	"github.com/h00dieB0y/antares/internal/pheromone"
)

// Heuristic — эвристическая видимость η(v,x). По умолчанию ≡ 1 (режим
// чистого феромона, spec.md §1).
type Heuristic func(v *cspmodel.Variable, value int) float64

// UnitHeuristic — η ≡ 1 для всех пар.
func UnitHeuristic(*cspmodel.Variable, int) float64 { return 1.0 }

// Roulette — колесо рулетки над τ^α·η^β с собственным генератором.
type Roulette struct {
	rng       *rand.Rand
	heuristic Heuristic
}

// New создаёт Roulette с явным сидом — детерминированная функция порядка
// вызовов, состояния феромонов и порядка обхода домена. heuristic может
// быть nil, тогда используется UnitHeuristic.
func New(seed int64, heuristic Heuristic) *Roulette {
	if heuristic == nil {
		heuristic = UnitHeuristic
	}
	return &Roulette{rng: rand.New(rand.NewSource(seed)), heuristic: heuristic}
}

// Select выбирает значение из domain (в порядке, переданном вызывающим —
// обязанность вызывающего соблюдать детерминированный порядок обхода).
// Возвращает ошибку, только если все веса равны нулю (категория 3,
// spec.md §7) — фатальная деградация, означающая, что τ_min был нарушен.
func (r *Roulette) Select(v *cspmodel.Variable, domain []int, matrix *pheromone.Matrix, alpha, beta float64) (int, bool, error) {
	if len(domain) == 0 {
		return 0, false, nil
	}
	if len(domain) == 1 {
		return domain[0], true, nil
	}

	weights := make([]float64, len(domain))
	sum := 0.0
	for i, x := range domain {
		tau := matrix.Get(v, x)
		eta := r.heuristic(v, x)
		w := math.Pow(tau, alpha) * math.Pow(eta, beta)
		weights[i] = w
		sum += w
	}

	if sum <= 0 {
		return 0, false, fmt.Errorf("valuesel: all weights are zero for variable %q (tau_min violated or alpha/beta drove weights to underflow)", v.Name)
	}

	threshold := r.rng.Float64() * sum
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if cumulative >= threshold {
			return domain[i], true, nil
		}
	}
	// floating-point corner: cumulative slightly below threshold due to
	// rounding — return the last candidate (spec.md §4.3 edge case).
	return domain[len(domain)-1], true, nil
}
