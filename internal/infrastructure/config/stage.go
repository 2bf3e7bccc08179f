package config

// StageConfig is the root config for stage files
type StageConfig struct {
	ID          string                       `json:"id" yaml:"id"`
	Name        string                       `json:"name" yaml:"name"`
	TileSize    float64                      `json:"tileSize" yaml:"tileSize"`
	PlayerSpawn PositionConfig               `json:"playerSpawn" yaml:"playerSpawn"`
	Layers      LayersConfig                 `json:"layers" yaml:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping" yaml:"tileMapping"`
}

// PositionConfig is a position in tile coordinates (column, row from the top)
type PositionConfig struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type LayersConfig struct {
	Collision []string `json:"collision" yaml:"collision"`
}

type TileMappingConfig struct {
	Type  string `json:"type" yaml:"type"`
	Solid bool   `json:"solid" yaml:"solid"`
	Layer string `json:"layer" yaml:"layer"`
}
