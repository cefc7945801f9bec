package domain

import "math"

// MaterialsEstimate is the required-quantity breakdown for a footprint.
type MaterialsEstimate struct {
	CementBags int
	Bricks     int
	SteelRods  int
}

// RequiredWorkers returns the headcount needed for a footprint: one worker
// per 500 sq ft, minimum one. Non-positive footprints need nobody.
func RequiredWorkers(sqFt float64) int {
	if sqFt <= 0 {
		return 0
	}
	n := int(math.Ceil(sqFt / 500))
	if n < 1 {
		n = 1
	}
	return n
}

// RequiredMaterials estimates material quantities for a footprint. Recomputed
// on every render from the current footprint, never persisted.
func RequiredMaterials(sqFt float64) MaterialsEstimate {
	if sqFt <= 0 {
		return MaterialsEstimate{}
	}
	return MaterialsEstimate{
		CementBags: int(math.Ceil(sqFt * 0.5)),
		Bricks:     int(math.Ceil(sqFt * 10)),
		SteelRods:  int(math.Ceil(sqFt * 0.1)),
	}
}

// AverageProgress is the rounded mean progress across all projects, 0 when
// there are none. Dashboard summary only.
func AverageProgress(projects []Project) int {
	if len(projects) == 0 {
		return 0
	}
	sum := 0
	for _, p := range projects {
		sum += p.Progress
	}
	return int(math.Round(float64(sum) / float64(len(projects))))
}
