package plotimg

import (
	"math"
	"strconv"
	"strings"
)

// valueRange tracks the data extent of an axis.
type valueRange struct {
	min, max float64
	seen     bool
}

func (r *valueRange) add(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	if !r.seen {
		r.min, r.max = v, v
		r.seen = true
		return
	}
	r.min = math.Min(r.min, v)
	r.max = math.Max(r.max, v)
}

// span returns a usable (min, max), defaulting to [0,1] when nothing
// was added and widening degenerate ranges.
func (r valueRange) span() (float64, float64) {
	if !r.seen {
		return 0, 1
	}
	mn, mx := r.min, r.max
	if mn == mx {
		if mn == 0 {
			return 0, 1
		}
		pad := math.Abs(mn) * 0.5
		return mn - pad, mx + pad
	}
	return mn, mx
}

// niceNum rounds v to a 1/2/5 multiple of a power of ten; round picks
// the nearest such number rather than the ceiling.
func niceNum(v float64, round bool) float64 {
	exp := math.Floor(math.Log10(v))
	frac := v / math.Pow(10, exp)
	var nice float64
	if round {
		switch {
		case frac < 1.5:
			nice = 1
		case frac < 3:
			nice = 2
		case frac < 7:
			nice = 5
		default:
			nice = 10
		}
	} else {
		switch {
		case frac <= 1:
			nice = 1
		case frac <= 2:
			nice = 2
		case frac <= 5:
			nice = 5
		default:
			nice = 10
		}
	}
	return nice * math.Pow(10, exp)
}

// niceTicks expands [lo, hi] to tick-friendly bounds and returns the
// tick positions, roughly count of them.
func niceTicks(lo, hi float64, count int) []float64 {
	if count < 2 {
		count = 2
	}
	if hi <= lo {
		hi = lo + 1
	}
	span := niceNum(hi-lo, false)
	step := niceNum(span/float64(count-1), true)
	start := math.Floor(lo/step) * step
	end := math.Ceil(hi/step) * step

	n := int(math.Round((end-start)/step)) + 1
	ticks := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		ticks = append(ticks, start+float64(i)*step)
	}
	return ticks
}

// tickStep returns the spacing of a tick slice, 1 when degenerate.
func tickStep(ticks []float64) float64 {
	if len(ticks) < 2 {
		return 1
	}
	return ticks[1] - ticks[0]
}

// tickDecimals returns how many fractional digits the tick step needs.
func tickDecimals(step float64) int {
	if step >= 1 || step <= 0 {
		return 0
	}
	d := int(math.Ceil(-math.Log10(step)))
	if d < 0 {
		d = 0
	}
	if d > 6 {
		d = 6
	}
	return d
}

// formatTick renders a tick value with the given fractional digits and
// thousands separators.
func formatTick(v float64, decimals int) string {
	return groupThousands(strconv.FormatFloat(v, 'f', decimals, 64))
}

// formatValue renders a data label the way the reference charts do:
// no decimals, comma-grouped.
func formatValue(v float64) string {
	return groupThousands(strconv.FormatFloat(v, 'f', 0, 64))
}

// groupThousands inserts commas into the integer part of a formatted
// number.
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}
	if len(intPart) > 3 {
		var b strings.Builder
		lead := len(intPart) % 3
		if lead > 0 {
			b.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}
	out := intPart + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
