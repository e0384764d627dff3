package witness

// #region constants
const (
	// Phi is the golden ratio (1+√5)/2.
	Phi = 1.6180339887498948482045868343656381

	BaselineSize = 144
	CircleSize   = 12

	// infiniteThreshold stands in for layers with an unbounded threshold.
	infiniteThreshold = 1 << 20
)

// layerThresholds maps a layer to its state-count threshold. Layers beyond the
// largest key use the largest key's threshold. Read only.
var layerThresholds = map[int]float64{
	0: 1,
	1: 12,
	2: 144,
	3: 1728,
	4: 20736,
}

// #endregion constants

// #region point
// Point is one weighted witness point.
type Point struct {
	Index    int     `json:"index"`
	Layer    int     `json:"layer"`
	Position int     `json:"position"`
	ZMapped  float64 `json:"z_mapped"`
	Bits     float64 `json:"bits"`
	Weight   float64 `json:"weight"`
}

// #endregion point

// #region report
// Report is a detached snapshot of the baseline aggregates.
type Report struct {
	BaselineSize  int             `json:"baseline_size"`
	TotalBitDepth float64         `json:"total_bit_depth"`
	Layers        map[int]float64 `json:"layers"`
}

// #endregion report
