package diagnosis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeedSampleValid(t *testing.T) {
	assert.True(t, SpeedSample{Download: 12, Upload: 3, Ping: 40}.Valid())
	assert.True(t, SpeedSample{}.Valid())
	assert.False(t, SpeedSample{Download: -1, Upload: 3, Ping: 40}.Valid())
	assert.False(t, SpeedSample{Download: 1, Upload: -3, Ping: 40}.Valid())
	assert.False(t, SpeedSample{Download: 1, Upload: 3, Ping: -0.5}.Valid())
	assert.False(t, SpeedSample{Download: math.NaN()}.Valid())
	assert.False(t, SpeedSample{Upload: math.Inf(1)}.Valid())
}

func TestSanitizeSpeed(t *testing.T) {
	assert.Nil(t, SanitizeSpeed(nil))
	assert.Nil(t, SanitizeSpeed(&SpeedSample{Download: -4, Upload: 1, Ping: 20}))

	{
		in := &SpeedSample{Download: 512.3, Upload: 180, Ping: 1.2}
		out := SanitizeSpeed(in)
		require.NotNil(t, out)
		assert.Equal(t, SpeedSample{Download: 300, Upload: 100, Ping: 5}, *out)
		// input untouched
		assert.Equal(t, 512.3, in.Download)
	}

	{
		out := SanitizeSpeed(&SpeedSample{Download: 23.456, Upload: 4.444, Ping: 38.129})
		require.NotNil(t, out)
		assert.Equal(t, SpeedSample{Download: 23.46, Upload: 4.44, Ping: 38.13}, *out)
	}
}
