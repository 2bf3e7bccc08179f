package config

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/motionctl/internal/domain/entity"
)

func TestLoader_LoadMotion(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadMotion()
	require.NoError(t, err)

	assert.Equal(t, 320, cfg.Display.ScreenWidth)
	assert.Equal(t, 240, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, -9.81, cfg.Physics.Gravity)
	assert.Equal(t, 3.0, cfg.Motion.MoveSpeed)
	assert.Equal(t, 5.0, cfg.Motion.RunSpeed)
	assert.Equal(t, 0.15, cfg.Motion.CoyoteTime)
	assert.Equal(t, 0.2, cfg.Motion.JumpBufferTime)
	assert.True(t, cfg.Motion.CanDoubleJump)
	assert.Equal(t, entity.LayerGround, cfg.Motion.GroundMask())
	assert.Equal(t, entity.LayerWall, cfg.Motion.WallMask())
	assert.Equal(t, -0.5, cfg.Body.GroundAnchor.Y)
}

func TestLoader_LoadStage(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadStage("demo")
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.ID)
	assert.Equal(t, 1.0, cfg.TileSize)
	assert.Equal(t, 3.0, cfg.PlayerSpawn.X)
	assert.Len(t, cfg.Layers.Collision, 15)

	ground, ok := cfg.TileMapping["#"]
	require.True(t, ok)
	assert.True(t, ground.Solid)
	assert.Equal(t, "ground", ground.Layer)

	wall, ok := cfg.TileMapping["|"]
	require.True(t, ok)
	assert.Equal(t, "wall", wall.Type)
}

func TestLoader_LoadStage_YAML(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadStage("flat")
	require.NoError(t, err)

	assert.Equal(t, "flat", cfg.ID)
	assert.Len(t, cfg.Layers.Collision, 5)
	assert.Equal(t, "wall", cfg.TileMapping["|"].Layer)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll("demo")
	require.NoError(t, err)

	assert.NotNil(t, cfg.Motion)
	assert.NotNil(t, cfg.Stage)
}

func TestLoader_LoadMotion_YAMLOverridesDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"motion.yaml": &fstest.MapFile{Data: []byte(`
motion:
  moveSpeed: 4
  canDoubleJump: false
physics:
  substeps: 5
`)},
	}
	loader := NewFSLoader(fsys, "mem")

	cfg, err := loader.LoadMotion()
	require.NoError(t, err)

	assert.Equal(t, 4.0, cfg.Motion.MoveSpeed)
	assert.False(t, cfg.Motion.CanDoubleJump)
	assert.Equal(t, 5, cfg.Physics.Substeps)

	// Untouched fields keep their defaults
	assert.Equal(t, 5.0, cfg.Motion.RunSpeed)
	assert.Equal(t, 10.0, cfg.Motion.JumpForce)
	assert.True(t, cfg.Motion.ControlEnabled)
	assert.Equal(t, -9.81, cfg.Physics.Gravity)
}

func TestLoader_LoadMotion_Missing(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, "mem")

	_, err := loader.LoadMotion()
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoader_LoadMotion_Invalid(t *testing.T) {
	fsys := fstest.MapFS{
		"motion.json": &fstest.MapFile{Data: []byte(`{"motion": {"coyoteTime": -1}}`)},
	}
	loader := NewFSLoader(fsys, "mem")

	_, err := loader.LoadMotion()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNegativeValue)
}

func TestLoader_LoadMotion_Malformed(t *testing.T) {
	fsys := fstest.MapFS{
		"motion.json": &fstest.MapFile{Data: []byte(`{"motion": `)},
	}
	loader := NewFSLoader(fsys, "mem")

	_, err := loader.LoadMotion()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse motion.json")
}

func TestLoader_LoadMotionFile_UnknownFormat(t *testing.T) {
	fsys := fstest.MapFS{
		"motion.toml": &fstest.MapFile{Data: []byte(`moveSpeed = 1`)},
	}
	loader := NewFSLoader(fsys, "mem")

	_, err := loader.LoadMotionFile("motion.toml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoader_BasePath(t *testing.T) {
	assert.Equal(t, "configs", NewFSLoader(fstest.MapFS{}, "configs").BasePath())
}
