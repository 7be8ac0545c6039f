package combat

// constSource always returns v, clamped into the requested range.
type constSource struct{ v int }

func (c constSource) IntRange(minInclusive, maxExclusive int) int {
	if c.v < minInclusive {
		return minInclusive
	}
	if c.v >= maxExclusive {
		return maxExclusive - 1
	}
	return c.v
}

type midpointSource struct{}

func (midpointSource) IntRange(minInclusive, maxExclusive int) int {
	return minInclusive + (maxExclusive-minInclusive)/2
}

type rangeCall struct{ min, max int }

// recordingSource returns the lower bound and remembers every call.
type recordingSource struct{ calls []rangeCall }

func (r *recordingSource) IntRange(minInclusive, maxExclusive int) int {
	r.calls = append(r.calls, rangeCall{minInclusive, maxExclusive})
	return minInclusive
}
