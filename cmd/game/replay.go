package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/younwookim/motionctl/internal/application/replay"
	"github.com/younwookim/motionctl/internal/application/sim"
	"github.com/younwookim/motionctl/internal/domain/entity"
	"github.com/younwookim/motionctl/internal/infrastructure/config"
)

// runHeadless replays data against the grid world and writes a summary to w
func runHeadless(ctx context.Context, w io.Writer, cfg *config.MotionConfig, stage *entity.Stage, data replay.ReplayData, logger *slog.Logger) error {
	trace, err := sim.Replay(ctx, cfg, stage, data, logger)
	if err != nil {
		return err
	}

	last := trace.Last()
	ground, double := trace.Jumps()
	_, err = fmt.Fprintf(w,
		"stage:       %s\nframes:      %d\nfinal pos:   (%.3f, %.3f)\nfinal vel:   (%.3f, %.3f)\ngrounded:    %v\nfacing:      %s\njumps:       %d ground, %d double\nmax height:  %.3f\n",
		data.Stage, len(trace),
		last.Pos.X, last.Pos.Y,
		last.Vel.X, last.Vel.Y,
		last.Grounded, last.Facing,
		ground, double,
		trace.MaxHeight(),
	)
	return err
}
