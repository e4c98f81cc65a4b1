package spherecast

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSequentialMatchesParallel(t *testing.T) {
	cam, err := NewCamera(80, 48, FOV)
	require.NoError(t, err)

	seq, seqStats, err := Render(context.Background(), cam, unitAt3, 1)
	require.NoError(t, err)
	par, parStats, err := Render(context.Background(), cam, unitAt3, 4)
	require.NoError(t, err)

	assert.Equal(t, seq.Buf, par.Buf)
	assert.Equal(t, int64(80*48), seqStats.Total())
	assert.Equal(t, seqStats.Count(Hit), parStats.Count(Hit))
	assert.Equal(t, int64(seq.Hits()), seqStats.Count(Hit))
	// the camera sits outside the sphere, so nothing is only behind it
	assert.Zero(t, seqStats.Count(Behind))
}

func TestRenderPixelsMatchIntersect(t *testing.T) {
	cam, err := NewCamera(32, 20, 60)
	require.NoError(t, err)
	fb, _, err := Render(context.Background(), cam, unitAt3, 0)
	require.NoError(t, err)
	for y := 0; y < cam.Height; y++ {
		for x := 0; x < cam.Width; x++ {
			require.Equal(t, unitAt3.Hit(cam.RayFor(x, y)), fb.At(x, y), "pixel (%d, %d)", x, y)
		}
	}
	assert.True(t, fb.At(16, 10))
	assert.False(t, fb.At(0, 0))
}

func TestRenderCameraInsideSphere(t *testing.T) {
	cam, err := NewCamera(8, 6, FOV)
	require.NoError(t, err)
	fb, stats, err := Render(context.Background(), cam, Sphere{Position: Vector{}, Radius: 5}, 2)
	require.NoError(t, err)
	assert.Equal(t, 8*6, fb.Hits())
	assert.Equal(t, int64(8*6), stats.Count(Hit))
}

func TestRenderCancelled(t *testing.T) {
	cam, err := NewCamera(16, 16, FOV)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		fb, stats, err := Render(ctx, cam, unitAt3, workers)
		require.ErrorIs(t, err, context.Canceled, "workers=%d", workers)
		assert.Nil(t, fb)
		assert.Nil(t, stats)
	}
}
