// Package statsutil агрегирует результаты повторных запусков колонии по
// разным сидам (spec.md, Supplemental Features): лучший, среднее,
// стандартное отклонение размера найденного присваивания и число циклов.
package statsutil

import "math"

// IntStats — агрегированная статистика по серии целочисленных измерений
// (размер присваивания, число циклов до решения, …).
type IntStats struct {
	N    int
	Best int
	Mean float64
	Std  float64
}

// CalcIntStats считает статистику по values. Best — максимум (в отличие от
// задачи минимизации makespan, здесь больший размер присваивания лучше).
// Пустой слайс возвращает нулевую статистику.
func CalcIntStats(values []int) IntStats {
	s := IntStats{N: len(values)}
	if s.N == 0 {
		return s
	}

	best := values[0]
	sum := 0.0
	for _, v := range values {
		if v > best {
			best = v
		}
		sum += float64(v)
	}
	mean := sum / float64(s.N)

	variance := 0.0
	if s.N >= 2 {
		for _, v := range values {
			d := float64(v) - mean
			variance += d * d
		}
		variance /= float64(s.N - 1)
	}

	s.Best = best
	s.Mean = mean
	s.Std = math.Sqrt(variance)
	return s
}

// RunOutcome — сводка одного запуска колонии, достаточная для построения
// IntStats по нескольким измерениям без хранения полных Result.
type RunOutcome struct {
	Solved       bool
	AssignedSize int
	CyclesRun    int
}

// Summary — агрегированная картина серии запусков: доля успехов и
// статистика по размеру присваивания и числу затраченных циклов.
type Summary struct {
	Runs       int
	Solved     int
	SizeStats  IntStats
	CycleStats IntStats
}

// Summarize строит Summary по серии RunOutcome.
func Summarize(outcomes []RunOutcome) Summary {
	sizes := make([]int, len(outcomes))
	cycles := make([]int, len(outcomes))
	solved := 0
	for i, o := range outcomes {
		sizes[i] = o.AssignedSize
		cycles[i] = o.CyclesRun
		if o.Solved {
			solved++
		}
	}
	return Summary{
		Runs:       len(outcomes),
		Solved:     solved,
		SizeStats:  CalcIntStats(sizes),
		CycleStats: CalcIntStats(cycles),
	}
}
