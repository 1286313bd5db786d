package main

// Animation is a running instance of an effect drawn procedurally. It only
// counts frames, Draw() decides what a given point of the animation looks
// like. Animations advance once per Update(), which is once per tick of the
// Session, so durations are converted to frames with the tick rate.
type Animation struct {
	FrameIdx int64
	NFrames  int64
}

func NewAnimation(seconds float64, fps int64) Animation {
	return Animation{NFrames: max(1, int64(seconds*float64(fps)))}
}

func (a *Animation) Step() {
	if a.FrameIdx < a.NFrames {
		a.FrameIdx++
	}
}

// Progress goes from 0 on the first frame to 1 on the last one.
func (a *Animation) Progress() float64 {
	if a.NFrames <= 1 {
		return 1
	}
	return float64(a.FrameIdx) / float64(a.NFrames-1)
}

func (a *Animation) Done() bool {
	return a.FrameIdx >= a.NFrames
}
