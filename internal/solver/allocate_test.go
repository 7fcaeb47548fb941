package solver

import (
	"math"
	"testing"

	"adspend/internal/roi"
)

func defaultCurves() []roi.Curve {
	return []roi.Curve{
		{Scale: 2000, Rate: 0.0003},
		{Scale: 1500, Rate: 0.0004},
	}
}

func relDiff(a, b float64) float64 {
	d := math.Abs(a - b)
	if m := math.Max(math.Abs(a), math.Abs(b)); m > 1 {
		return d / m
	}
	return d
}

func TestAllocateSumsToBudget(t *testing.T) {
	curves := defaultCurves()

	for _, budget := range []float64{1, 10, 100, 2500, 10_000, 1_000_000} {
		spends, _, err := Allocate(curves, budget)
		if err != nil {
			t.Fatalf("Allocate(%v): %v", budget, err)
		}

		var total float64
		for i, s := range spends {
			if s < 0 || s > budget {
				t.Fatalf("budget %v: spend[%d] = %v outside [0, %v]", budget, i, s, budget)
			}
			total += s
		}
		if math.Abs(total-budget) > 1e-6*budget {
			t.Fatalf("budget %v: spends sum to %v, residual %v beyond tolerance", budget, total, total-budget)
		}
	}
}

func TestAllocateCombinedMatchesCurveEvaluation(t *testing.T) {
	curves := defaultCurves()

	spends, combined, err := Allocate(curves, 10_000)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}

	var want float64
	for i, c := range curves {
		want += c.Return(spends[i])
	}
	if relDiff(combined, want) > 1e-12 {
		t.Fatalf("combined return %v, independent evaluation %v", combined, want)
	}
}

func TestAllocateMatchesAnalyticOptimum(t *testing.T) {
	// With equal marginal returns at zero spend (2000*0.0003 = 1500*0.0004),
	// the stationarity condition reduces to 0.0003*a = 0.0004*b, giving
	// a = 40000/7 and b = 30000/7 for a 10000 budget.
	spends, _, err := Allocate(defaultCurves(), 10_000)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}

	wantA := 40_000.0 / 7
	wantB := 30_000.0 / 7
	if relDiff(spends[0], wantA) > 1e-6 {
		t.Fatalf("spend A = %v, want %v", spends[0], wantA)
	}
	if relDiff(spends[1], wantB) > 1e-6 {
		t.Fatalf("spend B = %v, want %v", spends[1], wantB)
	}
	if spends[0] <= spends[1] {
		t.Fatalf("spend A (%v) should exceed spend B (%v)", spends[0], spends[1])
	}
}

func TestAllocateOptimumMonotoneInBudget(t *testing.T) {
	curves := defaultCurves()

	prev := -1.0
	for budget := 100.0; budget <= 100_000; budget *= 2 {
		_, combined, err := Allocate(curves, budget)
		if err != nil {
			t.Fatalf("Allocate(%v): %v", budget, err)
		}
		if combined < prev {
			t.Fatalf("optimum dropped from %v to %v as budget grew to %v", prev, combined, budget)
		}
		prev = combined
	}
}

func TestAllocateSingleCampaign(t *testing.T) {
	spends, combined, err := Allocate([]roi.Curve{{Scale: 2000, Rate: 0.0003}}, 5000)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if relDiff(spends[0], 5000) > 1e-9 {
		t.Fatalf("single campaign should take the whole budget, got %v", spends[0])
	}
	want := 2000 * (1 - math.Exp(-0.0003*spends[0]))
	if relDiff(combined, want) > 1e-12 {
		t.Fatalf("combined = %v, want %v", combined, want)
	}
}

func TestAllocateThreeCampaigns(t *testing.T) {
	curves := []roi.Curve{
		{Scale: 2000, Rate: 0.0003},
		{Scale: 1500, Rate: 0.0004},
		{Scale: 900, Rate: 0.001},
	}

	spends, _, err := Allocate(curves, 20_000)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}

	var total float64
	for i, s := range spends {
		if s < 0 || s > 20_000 {
			t.Fatalf("spend[%d] = %v out of bounds", i, s)
		}
		total += s
	}
	if math.Abs(total-20_000) > 1e-6*20_000 {
		t.Fatalf("spends sum to %v, want 20000", total)
	}

	// Interior optimum: marginal returns must agree across campaigns.
	m0 := curves[0].Marginal(spends[0])
	for i := 1; i < len(curves); i++ {
		if spends[i] == 0 {
			continue
		}
		if relDiff(m0, curves[i].Marginal(spends[i])) > 1e-6 {
			t.Fatalf("marginal returns differ at optimum: %v vs %v (campaign %d)",
				m0, curves[i].Marginal(spends[i]), i)
		}
	}
}

func TestAllocateRejectsBadInputs(t *testing.T) {
	curves := defaultCurves()

	for _, budget := range []float64{0, -100, math.NaN(), math.Inf(1)} {
		if _, _, err := Allocate(curves, budget); err == nil {
			t.Fatalf("Allocate accepted budget %v", budget)
		}
	}
	if _, _, err := Allocate(nil, 1000); err == nil {
		t.Fatal("Allocate accepted an empty curve list")
	}
}

func TestAllocateMinimalBudget(t *testing.T) {
	spends, _, err := Allocate(defaultCurves(), 1)
	if err != nil {
		t.Fatalf("Allocate(1): %v", err)
	}
	total := spends[0] + spends[1]
	if math.Abs(total-1) > 1e-6 {
		t.Fatalf("spends sum to %v, want 1", total)
	}
}
