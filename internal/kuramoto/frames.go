package kuramoto

// FrameCount returns floor(length / stepsPerFrame).
func FrameCount(length, stepsPerFrame int) (int, error) {
	if stepsPerFrame < 1 {
		return 0, ErrStepsPerFrame
	}
	if length < 0 {
		return 0, nil
	}
	return length / stepsPerFrame, nil
}

// FrameTimestep maps a frame index to the timestep it displays.
func FrameTimestep(frame, stepsPerFrame int) int {
	return frame * stepsPerFrame
}
