package system

import (
	"github.com/younwookim/motionctl/internal/domain/entity"
	"github.com/younwookim/motionctl/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a Stage entity
func LoadStage(cfg *config.StageConfig) *entity.Stage {
	tileHeight := len(cfg.Layers.Collision)
	tileWidth := 0
	for _, row := range cfg.Layers.Collision {
		if n := len([]rune(row)); n > tileWidth {
			tileWidth = n
		}
	}

	tiles := make([][]entity.Tile, tileHeight)
	for y, row := range cfg.Layers.Collision {
		tiles[y] = make([]entity.Tile, tileWidth)
		x := 0
		for _, char := range row {
			mapping, ok := cfg.TileMapping[string(char)]
			if ok {
				tiles[y][x] = tileFromMapping(mapping)
			}
			x++
		}
	}

	stage := &entity.Stage{
		Width:    tileWidth,
		Height:   tileHeight,
		TileSize: cfg.TileSize,
		Tiles:    tiles,
	}

	// Spawn is given in tile coordinates; place the body at that tile's center
	x, y, w, h := stage.TileRect(int(cfg.PlayerSpawn.X), int(cfg.PlayerSpawn.Y))
	stage.SpawnX = x + w/2
	stage.SpawnY = y + h/2
	return stage
}

func tileFromMapping(m config.TileMappingConfig) entity.Tile {
	var tileType entity.TileType
	switch m.Type {
	case "ground":
		tileType = entity.TileGround
	case "wall":
		tileType = entity.TileWall
	default:
		tileType = entity.TileEmpty
	}

	// The collision layer defaults to the tile type's name
	layerName := m.Layer
	if layerName == "" {
		layerName = m.Type
	}
	layer, _ := entity.ParseLayer(layerName)
	if !m.Solid {
		layer = 0
	}

	return entity.Tile{
		Type:   tileType,
		Solid:  m.Solid,
		Layers: layer,
	}
}
