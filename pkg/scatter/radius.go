package scatter

import "math"

const (
	// DefaultRadius is used for points without a usable size and for
	// point sets that carry no size information at all.
	DefaultRadius = 8

	minRadius  = 4
	radiusSpan = 14 // minRadius + radiusSpan is the largest scaled radius
)

// RadiusScale maps sizes onto marker radii for one point set. The zero
// value answers DefaultRadius for everything.
type RadiusScale struct {
	scaled bool
	minS   float64
	rng    float64
}

// SizeToRadius derives a RadiusScale from the positive sizes in points.
// The smallest size maps to radius 4 and the largest to 18.
func SizeToRadius(points []Point) RadiusScale {
	var (
		found      bool
		minS, maxS float64
	)
	for _, p := range points {
		if !usableSize(p.Size) {
			continue
		}
		s := *p.Size
		if !found {
			minS, maxS, found = s, s, true
			continue
		}
		minS = math.Min(minS, s)
		maxS = math.Max(maxS, s)
	}

	if !found {
		return RadiusScale{}
	}

	rng := maxS - minS
	if rng == 0 {
		rng = 1
	}
	return RadiusScale{scaled: true, minS: minS, rng: rng}
}

// Radius returns the marker radius for size. NaN, infinite and
// non-positive sizes get DefaultRadius. Sizes outside the observed range
// are not clamped to 4..18, only to the int32 range.
func (rs RadiusScale) Radius(size float64) int {
	if !rs.scaled || !validSize(size) {
		return DefaultRadius
	}
	// round half up
	r := math.Floor(minRadius + radiusSpan*(size-rs.minS)/rs.rng + 0.5)
	return int(max(math.MinInt32, min(r, math.MaxInt32)))
}

// RadiusOf returns the radius for the point's own size.
func (rs RadiusScale) RadiusOf(p Point) int {
	if p.Size == nil {
		return DefaultRadius
	}
	return rs.Radius(*p.Size)
}

// Bounds reports the smallest observed size and the divisor used for
// scaling. ok is false when the scale is constant.
func (rs RadiusScale) Bounds() (minS, rng float64, ok bool) {
	return rs.minS, rs.rng, rs.scaled
}

func usableSize(s *float64) bool {
	return s != nil && validSize(*s)
}

func validSize(s float64) bool {
	return s > 0 && !math.IsInf(s, 1)
}
