package replay

import (
	"errors"
	"strings"

	"github.com/younwookim/motionctl/internal/infrastructure/input"
)

// FormatVersion is written to new recordings; files with another major version are rejected
const FormatVersion = "2.0"

var (
	// ErrNoFrames is returned when saving or loading a recording without frames
	ErrNoFrames = errors.New("replay has no frames")
	// ErrVersion is returned for recordings in an incompatible format
	ErrVersion = errors.New("unsupported replay version")
)

// FrameInput records input levels for a single tick
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	AX float64 `json:"ax,omitempty"` // Horizontal axis
	J  bool    `json:"j,omitempty"`  // Jump held
	S  bool    `json:"s,omitempty"`  // Sprint held
}

// State converts the frame to input levels
func (f FrameInput) State() input.State {
	return input.State{Axis: f.AX, Jump: f.J, Sprint: f.S}
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	TickDt    float64      `json:"tickDt"` // seconds per recorded frame
	Frames    []FrameInput `json:"frames"`
}

// Validate checks the version and that there is something to play
func (d *ReplayData) Validate() error {
	if major(d.Version) != major(FormatVersion) {
		return ErrVersion
	}
	if len(d.Frames) == 0 {
		return ErrNoFrames
	}
	return nil
}

func major(version string) string {
	m, _, _ := strings.Cut(version, ".")
	return m
}

// FromStates builds replay data from a scripted list of input levels
func FromStates(stage string, tickDt float64, states []input.State) ReplayData {
	data := ReplayData{
		Version: FormatVersion,
		Stage:   stage,
		TickDt:  tickDt,
		Frames:  make([]FrameInput, len(states)),
	}
	for i, s := range states {
		data.Frames[i] = FrameInput{F: i, AX: s.Axis, J: s.Jump, S: s.Sprint}
	}
	return data
}
