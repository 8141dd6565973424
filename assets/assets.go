package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/blaster/config"
	"github.com/automoto/blaster/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// LoadLevels parses every embedded TMX level, ordered by file name.
func LoadLevels() ([]*leveldata.Level, error) {
	levels, err := leveldata.LoadAllLevels(assetFS, config.Level.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load levels: %w", err)
	}
	return levels, nil
}

// MustLoadLevels is LoadLevels for scene setup, where a broken level set
// cannot be recovered from.
func MustLoadLevels() []*leveldata.Level {
	levels, err := LoadLevels()
	if err != nil {
		panic(err)
	}
	return levels
}
