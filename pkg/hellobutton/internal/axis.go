package internal

// axisRange is the reported span of an absolute input axis.
type axisRange struct {
	min int32
	max int32
}

// scaleAxis maps v from r onto [0, res). Values outside r are clamped.
// A degenerate range maps everything to 0.
func scaleAxis(v int32, r axisRange, res int32) int32 {
	if r.max <= r.min || res <= 0 {
		return 0
	}

	v = max(r.min, min(r.max, v))
	scaled := int64(v-r.min) * int64(res-1) / int64(r.max-r.min)
	return int32(scaled)
}

// clampAxis keeps a relative-motion coordinate on screen.
func clampAxis(v, res int32) int32 {
	return max(0, min(res-1, v))
}
