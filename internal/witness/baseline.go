package witness

import "math"

// #region baseline
// Baseline holds the precomputed witness points. It is immutable after
// NewBaseline returns and may be shared freely.
type Baseline struct {
	points        []Point
	totalBitDepth float64
	layerBits     map[int]float64
}

// NewBaseline computes all BaselineSize points.
func NewBaseline() *Baseline {
	b := &Baseline{
		points:    make([]Point, 0, BaselineSize),
		layerBits: make(map[int]float64),
	}
	b.computeAllPoints()
	return b
}

// #endregion baseline

// #region compute
func (b *Baseline) computeAllPoints() {
	maxKey := maxLayerKey(layerThresholds)

	for i := 0; i < BaselineSize; i++ {
		layer := i / CircleSize
		position := i % CircleSize

		zMapped := 0.0
		if BaselineSize > 1 {
			zMapped = float64(i) / float64(BaselineSize-1)
		}

		rawBits := rawBitsFor(thresholdFor(layerThresholds, min(layer, maxKey)))
		weight := math.Pow(Phi, -float64(layer)) * (1.0 + float64(position)/CircleSize)
		bits := rawBits * weight

		b.points = append(b.points, Point{
			Index:    i,
			Layer:    layer,
			Position: position,
			ZMapped:  zMapped,
			Bits:     bits,
			Weight:   weight,
		})
		b.totalBitDepth += bits
		b.layerBits[layer] += bits
	}
}

func thresholdFor(thresholds map[int]float64, layerKey int) float64 {
	threshold, ok := thresholds[layerKey]
	if !ok {
		return 1
	}
	if math.IsInf(threshold, 1) {
		return infiniteThreshold
	}
	return threshold
}

// rawBitsFor returns the whole bits needed to index threshold+1 states.
func rawBitsFor(threshold float64) float64 {
	if threshold <= 0 {
		return 1
	}
	return math.Ceil(math.Log2(threshold + 1))
}

func maxLayerKey(m map[int]float64) int {
	maxKey := 0
	for k := range m {
		if k > maxKey {
			maxKey = k
		}
	}
	return maxKey
}

// #endregion compute

// #region report
// Report returns the aggregate bit depths. The Layers map is a copy.
func (b *Baseline) Report() Report {
	layers := make(map[int]float64, len(b.layerBits))
	for k, v := range b.layerBits {
		layers[k] = v
	}
	return Report{
		BaselineSize:  BaselineSize,
		TotalBitDepth: b.totalBitDepth,
		Layers:        layers,
	}
}

// Points returns a copy of the computed points in index order.
func (b *Baseline) Points() []Point {
	out := make([]Point, len(b.points))
	copy(out, b.points)
	return out
}

// TotalBitDepth returns the summed bits across all points.
func (b *Baseline) TotalBitDepth() float64 { return b.totalBitDepth }

// #endregion report
