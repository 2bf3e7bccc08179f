package entity

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileGround
	TileWall
)

// String returns the string representation of the tile type
func (t TileType) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileGround:
		return "ground"
	case TileWall:
		return "wall"
	default:
		return "unknown"
	}
}

// LayerMask selects collision layers for contact queries
type LayerMask uint32

const (
	LayerGround LayerMask = 1 << iota
	LayerWall
)

// LayerAll matches every layer
const LayerAll = ^LayerMask(0)

var layerNames = []struct {
	layer LayerMask
	name  string
}{
	{LayerGround, "ground"},
	{LayerWall, "wall"},
}

// Has reports whether m shares any layer with o
func (m LayerMask) Has(o LayerMask) bool {
	return m&o != 0
}

// Tags returns the names of the layers set in the mask
func (m LayerMask) Tags() []string {
	tags := make([]string, 0, len(layerNames))
	for _, ln := range layerNames {
		if m.Has(ln.layer) {
			tags = append(tags, ln.name)
		}
	}
	return tags
}

// ParseLayer returns the layer for a name ("ground", "wall")
func ParseLayer(name string) (LayerMask, bool) {
	for _, ln := range layerNames {
		if ln.name == name {
			return ln.layer, true
		}
	}
	return 0, false
}

// Tile represents a single tile in the stage
type Tile struct {
	Type   TileType
	Solid  bool
	Layers LayerMask
}

// Stage represents the current stage's tile data.
// Tiles[0] is the top row; world Y grows upward, so row 0 sits at the highest Y.
type Stage struct {
	Width    int
	Height   int
	TileSize float64 // world units per tile
	Tiles    [][]Tile
	SpawnX   float64
	SpawnY   float64
}

// GetTile returns the tile at the given tile coordinates
func (s *Stage) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return Tile{Type: TileWall, Solid: true, Layers: LayerWall}
	}
	return s.Tiles[ty][tx]
}

// TileRect returns the tile's world rectangle (bottom-left corner and size)
func (s *Stage) TileRect(tx, ty int) (x, y, w, h float64) {
	size := s.tileSize()
	return float64(tx) * size, float64(s.Height-1-ty) * size, size, size
}

// WorldSize returns the stage size in world units
func (s *Stage) WorldSize() (w, h float64) {
	size := s.tileSize()
	return float64(s.Width) * size, float64(s.Height) * size
}

// EachSolid calls fn for every solid tile
func (s *Stage) EachSolid(fn func(tx, ty int, tile Tile)) {
	for ty := 0; ty < s.Height && ty < len(s.Tiles); ty++ {
		for tx := 0; tx < s.Width && tx < len(s.Tiles[ty]); tx++ {
			if t := s.Tiles[ty][tx]; t.Solid {
				fn(tx, ty, t)
			}
		}
	}
}

func (s *Stage) tileSize() float64 {
	if s.TileSize <= 0 {
		return 1 // fallback
	}
	return s.TileSize
}
