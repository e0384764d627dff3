package witness

import (
	"math"
	"testing"
)

func TestPhi(t *testing.T) {
	if math.Abs(Phi-1.6180339887) > 1e-5 {
		t.Errorf("unexpected phi %v", Phi)
	}
	if math.Abs(Phi*Phi-(Phi+1)) > 1e-10 {
		t.Errorf("phi^2 = %v, phi+1 = %v", Phi*Phi, Phi+1)
	}
}

func TestNewBaseline_Size(t *testing.T) {
	b := NewBaseline()
	if got := len(b.Points()); got != 144 {
		t.Fatalf("expected 144 points, got %d", got)
	}
	if r := b.Report(); r.BaselineSize != 144 {
		t.Errorf("expected report size 144, got %d", r.BaselineSize)
	}
}

func TestNewBaseline_LayerCount(t *testing.T) {
	r := NewBaseline().Report()
	if len(r.Layers) != 12 {
		t.Fatalf("expected 12 layers, got %d", len(r.Layers))
	}
	for layer := 0; layer < 12; layer++ {
		if _, ok := r.Layers[layer]; !ok {
			t.Errorf("missing layer %d", layer)
		}
	}
}

func TestNewBaseline_TotalPositive(t *testing.T) {
	b := NewBaseline()
	if b.TotalBitDepth() <= 0 {
		t.Fatalf("expected positive total, got %v", b.TotalBitDepth())
	}

	var sum float64
	for _, v := range b.Report().Layers {
		sum += v
	}
	if math.Abs(sum-b.TotalBitDepth()) > 1e-9 {
		t.Errorf("layer sum %v != total %v", sum, b.TotalBitDepth())
	}
}

func TestNewBaseline_GoldenRatioDecay(t *testing.T) {
	r := NewBaseline().Report()
	if r.Layers[0] <= r.Layers[11] {
		t.Errorf("expected layer 0 (%v) > layer 11 (%v)", r.Layers[0], r.Layers[11])
	}
}

func TestNewBaseline_LayerZeroValue(t *testing.T) {
	// threshold 1 → 1 raw bit; weights 1 + p/12 for p in [0,12) sum to 17.5.
	r := NewBaseline().Report()
	if math.Abs(r.Layers[0]-17.5) > 1e-9 {
		t.Errorf("expected layer 0 = 17.5, got %v", r.Layers[0])
	}
}

func TestNewBaseline_PointFields(t *testing.T) {
	points := NewBaseline().Points()

	tests := []struct {
		index        int
		wantLayer    int
		wantPosition int
		wantZ        float64
	}{
		{0, 0, 0, 0},
		{13, 1, 1, 13.0 / 143.0},
		{143, 11, 11, 1},
	}
	for _, tt := range tests {
		p := points[tt.index]
		if p.Index != tt.index {
			t.Errorf("point %d: index %d", tt.index, p.Index)
		}
		if p.Layer != tt.wantLayer || p.Position != tt.wantPosition {
			t.Errorf("point %d: layer/position = %d/%d, want %d/%d",
				tt.index, p.Layer, p.Position, tt.wantLayer, tt.wantPosition)
		}
		if math.Abs(p.ZMapped-tt.wantZ) > 1e-12 {
			t.Errorf("point %d: z = %v, want %v", tt.index, p.ZMapped, tt.wantZ)
		}
	}
}

func TestNewBaseline_BitsUseClampedThreshold(t *testing.T) {
	points := NewBaseline().Points()

	// layer → ceil(log2(threshold+1)); layers past 4 reuse 20736 → 15 bits.
	wantRaw := map[int]float64{0: 1, 1: 4, 2: 8, 3: 11, 4: 15, 7: 15, 11: 15}
	for _, p := range points {
		raw, ok := wantRaw[p.Layer]
		if !ok {
			continue
		}
		wantWeight := math.Pow(Phi, -float64(p.Layer)) * (1 + float64(p.Position)/12)
		if math.Abs(p.Weight-wantWeight) > 1e-12 {
			t.Errorf("point %d: weight %v, want %v", p.Index, p.Weight, wantWeight)
		}
		if math.Abs(p.Bits-raw*wantWeight) > 1e-9 {
			t.Errorf("point %d: bits %v, want %v", p.Index, p.Bits, raw*wantWeight)
		}
	}
}

func TestRawBitsFor(t *testing.T) {
	tests := []struct {
		threshold float64
		want      float64
	}{
		{0, 1},
		{-3, 1},
		{1, 1},
		{12, 4},
		{infiniteThreshold, 21},
	}
	for _, tt := range tests {
		if got := rawBitsFor(tt.threshold); got != tt.want {
			t.Errorf("rawBitsFor(%v) = %v, want %v", tt.threshold, got, tt.want)
		}
	}
}

func TestThresholdFor(t *testing.T) {
	thresholds := map[int]float64{0: 1, 4: math.Inf(1)}

	if got := thresholdFor(thresholds, 0); got != 1 {
		t.Errorf("expected 1 for layer 0, got %v", got)
	}
	if got := thresholdFor(thresholds, 4); got != infiniteThreshold {
		t.Errorf("expected %d for infinite threshold, got %v", infiniteThreshold, got)
	}
	if got := thresholdFor(thresholds, 99); got != 1 {
		t.Errorf("expected 1 for missing key, got %v", got)
	}
	if got := thresholdFor(layerThresholds, 4); got != 20736 {
		t.Errorf("expected built-in layer 4 threshold 20736, got %v", got)
	}
}

func TestReport_IsDetached(t *testing.T) {
	b := NewBaseline()
	r := b.Report()
	before := r.Layers[0]
	r.Layers[0] = -1
	delete(r.Layers, 5)

	again := b.Report()
	if again.Layers[0] != before {
		t.Errorf("report mutation leaked: layer 0 = %v", again.Layers[0])
	}
	if _, ok := again.Layers[5]; !ok {
		t.Error("report deletion leaked: layer 5 missing")
	}

	pts := b.Points()
	pts[0].Bits = -1
	if b.Points()[0].Bits == -1 {
		t.Error("points mutation leaked")
	}
}

func TestNewBaseline_Deterministic(t *testing.T) {
	a, b := NewBaseline().Report(), NewBaseline().Report()
	if a.TotalBitDepth != b.TotalBitDepth {
		t.Errorf("non-deterministic total: %v vs %v", a.TotalBitDepth, b.TotalBitDepth)
	}
}
