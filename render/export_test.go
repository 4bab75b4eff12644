package render

import "time"

func SetClock(renderer *WindowRenderer, clock func() time.Duration) {
	renderer.clock = clock
}
