package diagnosis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkScore(t *testing.T) {
	// 0.5*100 + 0.5*100
	assert.Equal(t, 100.0, NetworkScore(-75, 25, nil))
	// 0.5*20 + 0.5*20
	assert.Equal(t, 20.0, NetworkScore(-112, -3, nil))
	// 0.5*85 + 0.5*60
	assert.Equal(t, 72.5, NetworkScore(-85, 12, nil))
	// 0.5*70 + 0.5*85
	assert.Equal(t, 77.5, NetworkScore(-95, 14, nil))
	// 0.4*85 + 0.4*85 + 0.2*40
	assert.Equal(t, 76.0, NetworkScore(-85, 15, ptr(3.0)))
	// 0.4*100 + 0.4*100 + 0.2*100
	assert.Equal(t, 100.0, NetworkScore(-70, 30, ptr(45.0)))
	// 0.4*70 + 0.4*60 + 0.2*60
	assert.Equal(t, 64.0, NetworkScore(-95, 5, ptr(7.5)))
	// 0.4*50 + 0.4*20 + 0.2*80
	assert.Equal(t, 44.0, NetworkScore(-105, 0, ptr(12.0)))
}

func TestSpeedSubScore(t *testing.T) {
	assert.Equal(t, 100, SpeedSubScore(20.1))
	assert.Equal(t, 80, SpeedSubScore(20))
	assert.Equal(t, 80, SpeedSubScore(10.5))
	assert.Equal(t, 60, SpeedSubScore(10))
	assert.Equal(t, 60, SpeedSubScore(5.01))
	assert.Equal(t, 40, SpeedSubScore(5))
	assert.Equal(t, 40, SpeedSubScore(0))
}

func TestStarRating(t *testing.T) {
	assert.Equal(t, Stars(5), StarRating(100))
	assert.Equal(t, Stars(5), StarRating(90))
	assert.Equal(t, Stars(4), StarRating(89.9))
	assert.Equal(t, Stars(4), StarRating(75))
	assert.Equal(t, Stars(3), StarRating(74.9))
	assert.Equal(t, Stars(3), StarRating(60))
	assert.Equal(t, Stars(2), StarRating(59.9))
	assert.Equal(t, Stars(2), StarRating(40))
	assert.Equal(t, Stars(1), StarRating(39.9))
	assert.Equal(t, Stars(1), StarRating(0))

	assert.Equal(t, "⭐⭐⭐⭐", Stars(4).String())
}

func TestBreakdown(t *testing.T) {
	{
		b := Breakdown(-75, 25, nil)
		assert.Equal(t, 100.0, b.Overall)
		assert.Equal(t, Stars(5), b.Stars)
		assert.Equal(t, 100, b.Coverage)
		assert.Equal(t, 100, b.Quality)
		assert.Nil(t, b.Speed)
	}

	{
		b := Breakdown(-112, -3, nil)
		assert.Equal(t, 20.0, b.Overall)
		assert.Equal(t, Stars(1), b.Stars)
	}

	{
		b := Breakdown(-85, 15, ptr(12.5))
		assert.Equal(t, 84.0, b.Overall)
		require.NotNil(t, b.Speed)
		assert.Equal(t, 25, *b.Speed)
	}

	{
		// speed performance is capped
		b := Breakdown(-85, 15, ptr(120.0))
		require.NotNil(t, b.Speed)
		assert.Equal(t, 100, *b.Speed)
	}

	{
		b := Breakdown(-85, 15, ptr(0.0))
		require.NotNil(t, b.Speed)
		assert.Equal(t, 0, *b.Speed)
	}
}

func TestBreakdownJSON(t *testing.T) {
	data, err := json.Marshal(Breakdown(-85, 15, nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"overall":85,"stars":4,"coverage":85,"quality":85,"speed":null}`, string(data))
}
