package render

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStatistics_AddFrame(t *testing.T) {
	var stats Statistics
	stats.Clear()

	require.Equal(t, time.Duration(math.MaxInt64), stats.FrameTimeMin)
	require.Equal(t, time.Duration(0), stats.FrameTimeAverage())

	stats.AddFrame(2 * time.Millisecond)
	stats.AddFrame(4 * time.Millisecond)
	stats.AddFrame(6 * time.Millisecond)
	stats.AddSkippedFrame()

	require.Equal(t, 3, stats.SubmittedFrames)
	require.Equal(t, 1, stats.SkippedFrames)
	require.Equal(t, 2*time.Millisecond, stats.FrameTimeMin)
	require.Equal(t, 6*time.Millisecond, stats.FrameTimeMax)
	require.Equal(t, 4*time.Millisecond, stats.FrameTimeAverage())
}

func TestStatistics_AddStatistics(t *testing.T) {
	var left, right Statistics
	left.Clear()
	right.Clear()

	left.AddFrame(3 * time.Millisecond)
	left.AddReconfiguration()
	right.AddFrame(time.Millisecond)
	right.AddFrame(9 * time.Millisecond)
	right.AddSkippedFrame()

	left.AddStatistics(&right)

	require.Equal(t, 3, left.SubmittedFrames)
	require.Equal(t, 1, left.SkippedFrames)
	require.Equal(t, 1, left.Reconfigurations)
	require.Equal(t, time.Millisecond, left.FrameTimeMin)
	require.Equal(t, 9*time.Millisecond, left.FrameTimeMax)
	require.Equal(t, 13*time.Millisecond, left.FrameTimeTotal)
}

func TestStatistics_JSON(t *testing.T) {
	var stats Statistics
	stats.Clear()

	require.JSONEq(t, `{"SubmittedFrames":0,"SkippedFrames":0,"Reconfigurations":0}`, stats.JSON())

	stats.AddFrame(1500 * time.Microsecond)
	stats.AddFrame(2500 * time.Microsecond)
	stats.AddSkippedFrame()
	stats.AddReconfiguration()

	require.JSONEq(t, `{
		"SubmittedFrames": 2,
		"SkippedFrames": 1,
		"Reconfigurations": 1,
		"FrameTime": {"Min": 1500, "Max": 2500, "Avg": 2000}
	}`, stats.JSON())
}
