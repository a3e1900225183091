package edgepipe

import "errors"

// Configuration and frame errors. Steady-state stepping never fails; every
// error is reported at construction or when a frame is handed over.
var (
	// ErrGeometry is returned for a zero, negative or odd raw frame size.
	ErrGeometry = errors.New("edgepipe: invalid frame geometry")

	// ErrThreshold is returned for a noise floor above the 12-bit range.
	ErrThreshold = errors.New("edgepipe: threshold out of range")

	// ErrLineGap is returned for a negative line gap.
	ErrLineGap = errors.New("edgepipe: negative line gap")

	// ErrLatencyMismatch is returned when an impulse driven through a stage
	// reaches the output data or the output valid flag after a different
	// number of steps than the stage's declared latency.
	ErrLatencyMismatch = errors.New("edgepipe: stage latency mismatch")

	// ErrNilFrame is returned when a nil frame is processed.
	ErrNilFrame = errors.New("edgepipe: nil frame")

	// ErrFrameSize is returned when a frame does not match the pipeline
	// geometry.
	ErrFrameSize = errors.New("edgepipe: frame size does not match pipeline")

	// ErrSampleCount is returned when a frame drains with a different number
	// of output samples than its decimated size.
	ErrSampleCount = errors.New("edgepipe: unexpected output sample count")
)
