package mathx

// Map linearly maps v from [inMin,inMax] to [outMin,outMax] using integer
// arithmetic truncated toward zero. Either range may be descending.
// It does not clamp; inMin == inMax returns outMin.
func Map(v, inMin, inMax, outMin, outMax int) int {
	if inMax == inMin {
		return outMin
	}
	return (v-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}
