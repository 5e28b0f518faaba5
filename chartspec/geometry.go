package chartspec

// GroupedBarOffsets returns the offset of each series' bar center from
// the category center, given the total width allotted to one category's
// group of bars. Series i sits at (i - n/2 + 0.5) * barWidth where
// barWidth is an equal share of slotWidth.
func GroupedBarOffsets(seriesCount int, slotWidth float64) []float64 {
	if seriesCount <= 0 {
		return nil
	}
	barWidth := slotWidth / float64(seriesCount)
	offsets := make([]float64, seriesCount)
	for i := range offsets {
		offsets[i] = (float64(i) - float64(seriesCount)/2 + 0.5) * barWidth
	}
	return offsets
}

// StackSegment is one series' slice of a stacked column: the running
// baseline it starts from and the level it raises the stack to.
type StackSegment struct {
	Bottom float64
	Top    float64
}

// StackSegments accumulates series values on a running baseline per
// category. The result is indexed [series][category]; ragged input
// reads missing values as zero. The Top of the last series in a
// category is that category's stacked total.
func StackSegments(values [][]float64) [][]StackSegment {
	if len(values) == 0 {
		return nil
	}
	cats := 0
	for _, vs := range values {
		if len(vs) > cats {
			cats = len(vs)
		}
	}
	running := make([]float64, cats)
	out := make([][]StackSegment, len(values))
	for s, vs := range values {
		out[s] = make([]StackSegment, cats)
		for c := 0; c < cats; c++ {
			v := 0.0
			if c < len(vs) {
				v = vs[c]
			}
			out[s][c] = StackSegment{Bottom: running[c], Top: running[c] + v}
			running[c] += v
		}
	}
	return out
}

// Wedge is one pie slice. Angles are in degrees with 0 at three o'clock
// increasing counter-clockwise; Frac is the slice's share of the total.
type Wedge struct {
	Start float64
	Sweep float64
	Frac  float64
}

// PieWedges splits values into wedges starting at twelve o'clock and
// proceeding counter-clockwise. Non-positive values keep their slot but
// get a zero sweep. A non-positive total yields nil.
func PieWedges(values []float64) []Wedge {
	total := 0.0
	for _, v := range values {
		if v > 0 {
			total += v
		}
	}
	if total <= 0 {
		return nil
	}
	wedges := make([]Wedge, len(values))
	start := 90.0
	for i, v := range values {
		frac := 0.0
		if v > 0 {
			frac = v / total
		}
		sweep := frac * 360
		wedges[i] = Wedge{Start: start, Sweep: sweep, Frac: frac}
		start += sweep
	}
	return wedges
}
