package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceIdentity(t *testing.T) {
	assert.Equal(t, 0.0, Distance(28.6139, 77.2090, 28.6139, 77.2090))
}

func TestDistanceSymmetry(t *testing.T) {
	pairs := [][4]float64{
		{28.6139, 77.2090, 19.0760, 72.8777},
		{12.9716, 77.5946, 13.0827, 80.2707},
		{-33.8688, 151.2093, 51.5074, -0.1278},
		{0, 0, 0, 180},
	}
	for _, p := range pairs {
		ab := Distance(p[0], p[1], p[2], p[3])
		ba := Distance(p[2], p[3], p[0], p[1])
		assert.InDelta(t, ab, ba, 1e-9)
	}
}

func TestDistanceDelhiMumbai(t *testing.T) {
	d := Distance(28.6139, 77.2090, 19.0760, 72.8777)
	assert.InDelta(t, 1153, d, 20)
}

func TestDistanceMonotonicWithSeparation(t *testing.T) {
	near := Distance(28.6139, 77.2090, 28.7041, 77.1025)    // Delhi to nearby Delhi
	far := Distance(28.6139, 77.2090, 19.0760, 72.8777)     // Delhi to Mumbai
	further := Distance(28.6139, 77.2090, 13.0827, 80.2707) // Delhi to Chennai
	assert.Less(t, near, far)
	assert.Less(t, far, further)
}

func TestDistanceNaNPropagates(t *testing.T) {
	assert.True(t, math.IsNaN(Distance(math.NaN(), 77.2090, 19.0760, 72.8777)))
	assert.True(t, math.IsNaN(Distance(28.6139, 77.2090, math.NaN(), 72.8777)))
}
