package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/younwookim/motionctl/internal/infrastructure/input"
)

// Replayer steps through recorded frames
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// Decode reads and validates replay data
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("replay %q: %w", data.Version, err)
	}
	return &data, nil
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Next returns the input for the current frame and advances
func (r *Replayer) Next() (input.State, bool) {
	if r.frame >= len(r.data.Frames) {
		return input.State{}, false
	}
	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.State(), true
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// TickDt returns the recorded tick length
func (r *Replayer) TickDt() float64 {
	return r.data.TickDt
}

// Stage returns the stage the replay was recorded on
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Source plays a recording as a live input device.
// Each Advance applies one frame and emits the edges it implies.
type Source struct {
	input.Tracker
	replayer *Replayer
}

// NewSource creates an input source over data
func NewSource(data ReplayData) *Source {
	return &Source{replayer: NewReplayer(data)}
}

// Advance applies the next frame. Past the end, input returns to neutral and false is returned.
func (s *Source) Advance() bool {
	st, ok := s.replayer.Next()
	s.Apply(st)
	return ok
}

// Replayer exposes playback position
func (s *Source) Replayer() *Replayer {
	return s.replayer
}
