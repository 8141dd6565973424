package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

var (
	ErrNoPlayerSpawn = errors.New("leveldata: level has no PlayerSpawn object")
	ErrNoLevels      = errors.New("leveldata: no .tmx files found")
)

// Defaults for enemy objects that leave properties unset.
const (
	DefaultEnemyAttackPower = 1
	DefaultEnemyHealth      = 3
	DefaultHealAmount       = 1
)

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass the
// embedded assets or an fstest.MapFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Ground":
			for _, o := range og.Objects {
				level.Solids = append(level.Solids, rectOf(o))
			}
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				level.PlayerSpawn = Point{X: o.X, Y: o.Y}
				spawnFound = true
			}
		case "Enemies":
			for _, o := range og.Objects {
				level.Enemies = append(level.Enemies, EnemySpawn{
					Rect:        rectOf(o),
					AttackPower: intOr(o, "attackPower", DefaultEnemyAttackPower),
					Health:      intOr(o, "health", DefaultEnemyHealth),
					Patrol:      o.Properties.GetFloat("patrol"),
				})
			}
		case "HealthPickUps":
			for _, o := range og.Objects {
				level.HealthPickUps = append(level.HealthPickUps, HealthPickUp{
					Rect:       rectOf(o),
					HealAmount: intOr(o, "healAmount", DefaultHealAmount),
				})
			}
		case "CameraTriggers":
			for _, o := range og.Objects {
				p := o.Properties
				trigger := CameraTrigger{Rect: rectOf(o)}
				trigger.Rig.MinX = p.GetFloat("minX")
				trigger.Rig.MinY = p.GetFloat("minY")
				trigger.Rig.MaxX = p.GetFloat("maxX")
				trigger.Rig.MaxY = p.GetFloat("maxY")
				trigger.Rig.OffsetX = p.GetFloat("offsetX")
				trigger.Rig.OffsetY = p.GetFloat("offsetY")
				level.CameraTriggers = append(level.CameraTriggers, trigger)
			}
		case "LevelClear":
			for _, o := range og.Objects {
				level.LevelClears = append(level.LevelClears, rectOf(o))
			}
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoPlayerSpawn)
	}

	// Left to right keeps entity creation order stable between loads.
	sort.Slice(level.Enemies, func(i, j int) bool {
		return level.Enemies[i].X < level.Enemies[j].X
	})

	return level, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys and returns
// them sorted by name.
func LoadAllLevels(fsys fs.FS, levelsDir string) ([]*Level, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLevels, levelsDir)
	}
	sort.Strings(matches)

	levels := make([]*Level, 0, len(matches))
	for _, p := range matches {
		level, err := LoadLevel(fsys, p)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}

func rectOf(o *tiled.Object) Rect {
	return Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

// intOr reads an int property, falling back to def when it is absent.
func intOr(o *tiled.Object, name string, def int) int {
	if len(o.Properties.Get(name)) == 0 {
		return def
	}
	return o.Properties.GetInt(name)
}
