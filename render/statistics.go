package render

import (
	"math"
	"time"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// Statistics counts the frames a WindowRenderer has produced and how long they took to record
// and submit
type Statistics struct {
	SubmittedFrames  int
	SkippedFrames    int
	Reconfigurations int

	FrameTimeMin   time.Duration
	FrameTimeMax   time.Duration
	FrameTimeTotal time.Duration
}

func (s *Statistics) Clear() {
	s.SubmittedFrames = 0
	s.SkippedFrames = 0
	s.Reconfigurations = 0
	s.FrameTimeMin = math.MaxInt64
	s.FrameTimeMax = 0
	s.FrameTimeTotal = 0
}

func (s *Statistics) AddFrame(frameTime time.Duration) {
	s.SubmittedFrames++
	s.FrameTimeTotal += frameTime

	if frameTime < s.FrameTimeMin {
		s.FrameTimeMin = frameTime
	}

	if frameTime > s.FrameTimeMax {
		s.FrameTimeMax = frameTime
	}
}

func (s *Statistics) AddSkippedFrame() {
	s.SkippedFrames++
}

func (s *Statistics) AddReconfiguration() {
	s.Reconfigurations++
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.SubmittedFrames += other.SubmittedFrames
	s.SkippedFrames += other.SkippedFrames
	s.Reconfigurations += other.Reconfigurations
	s.FrameTimeTotal += other.FrameTimeTotal

	if other.FrameTimeMin < s.FrameTimeMin {
		s.FrameTimeMin = other.FrameTimeMin
	}

	if other.FrameTimeMax > s.FrameTimeMax {
		s.FrameTimeMax = other.FrameTimeMax
	}
}

// FrameTimeAverage is the mean time spent in RenderFrame across submitted frames
func (s Statistics) FrameTimeAverage() time.Duration {
	if s.SubmittedFrames == 0 {
		return 0
	}
	return s.FrameTimeTotal / time.Duration(s.SubmittedFrames)
}

// WriteJSON writes the counters as a single object. Frame times are in microseconds.
func (s Statistics) WriteJSON(writer *jwriter.Writer) {
	obj := writer.Object()
	defer obj.End()

	obj.Name("SubmittedFrames").Int(s.SubmittedFrames)
	obj.Name("SkippedFrames").Int(s.SkippedFrames)
	obj.Name("Reconfigurations").Int(s.Reconfigurations)

	if s.SubmittedFrames == 0 {
		return
	}

	frameTimes := obj.Name("FrameTime").Object()
	frameTimes.Name("Min").Float64(microseconds(s.FrameTimeMin))
	frameTimes.Name("Max").Float64(microseconds(s.FrameTimeMax))
	frameTimes.Name("Avg").Float64(microseconds(s.FrameTimeAverage()))
	frameTimes.End()
}

func (s Statistics) JSON() string {
	writer := jwriter.NewWriter()
	s.WriteJSON(&writer)
	return string(writer.Bytes())
}

func microseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}
