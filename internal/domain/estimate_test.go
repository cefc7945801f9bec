package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredWorkers(t *testing.T) {
	cases := []struct {
		name string
		sqFt float64
		want int
	}{
		{"zero footprint", 0, 0},
		{"negative footprint", -100, 0},
		{"tiny footprint still needs one", 10, 1},
		{"exactly one block", 500, 1},
		{"just over one block", 501, 2},
		{"thousand", 1000, 2},
		{"six hundred", 600, 2},
		{"large", 10000, 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RequiredWorkers(tc.sqFt))
		})
	}
}

func TestRequiredMaterials(t *testing.T) {
	est := RequiredMaterials(1000)
	assert.Equal(t, 500, est.CementBags)
	assert.Equal(t, 10000, est.Bricks)
	assert.Equal(t, 100, est.SteelRods)
}

func TestRequiredMaterials_SixHundred(t *testing.T) {
	est := RequiredMaterials(600)
	assert.Equal(t, MaterialsEstimate{CementBags: 300, Bricks: 6000, SteelRods: 60}, est)
}

func TestRequiredMaterials_NonPositive(t *testing.T) {
	assert.Equal(t, MaterialsEstimate{}, RequiredMaterials(0))
	assert.Equal(t, MaterialsEstimate{}, RequiredMaterials(-50))
}

func TestRequiredMaterials_RoundsUp(t *testing.T) {
	est := RequiredMaterials(101)
	assert.Equal(t, 51, est.CementBags, "50.5 bags rounds up")
	assert.Equal(t, 1010, est.Bricks)
	assert.Equal(t, 11, est.SteelRods, "10.1 rods rounds up")
}

func TestAverageProgress(t *testing.T) {
	cases := []struct {
		name     string
		progress []int
		want     int
	}{
		{"empty", nil, 0},
		{"single", []int{40}, 40},
		{"rounds half up", []int{0, 100, 1}, 34},
		{"all complete", []int{100, 100}, 100},
		{"mixed", []int{10, 20, 30}, 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var projects []Project
			for _, p := range tc.progress {
				projects = append(projects, Project{Progress: p})
			}
			assert.Equal(t, tc.want, AverageProgress(projects))
		})
	}
}
