package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="40" height="20" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Ground">
  <object id="1" x="0" y="288" width="640" height="32"/>
  <object id="2" x="100" y="200" width="64" height="16"/>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="3" x="32" y="256"/>
 </objectgroup>
 <objectgroup id="3" name="Enemies">
  <object id="4" x="400" y="256" width="16" height="32">
   <properties>
    <property name="attackPower" type="int" value="2"/>
    <property name="health" type="int" value="5"/>
    <property name="patrol" type="float" value="48"/>
   </properties>
  </object>
  <object id="5" x="200" y="256" width="16" height="32"/>
 </objectgroup>
 <objectgroup id="4" name="HealthPickUps">
  <object id="6" x="120" y="180" width="12" height="12">
   <properties>
    <property name="healAmount" type="int" value="3"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="5" name="CameraTriggers">
  <object id="7" x="0" y="0" width="320" height="320">
   <properties>
    <property name="minX" type="float" value="10"/>
    <property name="minY" type="float" value="20"/>
    <property name="maxX" type="float" value="30"/>
    <property name="maxY" type="float" value="40"/>
    <property name="offsetX" type="float" value="5"/>
    <property name="offsetY" type="float" value="-6"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="6" name="LevelClear">
  <object id="8" x="600" y="224" width="32" height="64"/>
 </objectgroup>
</map>
`

const noSpawnTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Ground">
  <object id="1" x="0" y="144" width="160" height="16"/>
 </objectgroup>
</map>
`

func TestLoadLevel(t *testing.T) {
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(testTMX)}}

	level, err := LoadLevel(fsys, "levels/test.tmx")
	require.NoError(t, err)

	assert.Equal(t, "test", level.Name)
	assert.Equal(t, 640, level.Width)
	assert.Equal(t, 320, level.Height)

	assert.Equal(t, []Rect{
		{X: 0, Y: 288, W: 640, H: 32},
		{X: 100, Y: 200, W: 64, H: 16},
	}, level.Solids)
	assert.Equal(t, Point{X: 32, Y: 256}, level.PlayerSpawn)

	require.Len(t, level.Enemies, 2)
	// sorted left to right; the second one falls back to defaults
	assert.Equal(t, EnemySpawn{
		Rect:        Rect{X: 200, Y: 256, W: 16, H: 32},
		AttackPower: DefaultEnemyAttackPower,
		Health:      DefaultEnemyHealth,
	}, level.Enemies[0])
	assert.Equal(t, 2, level.Enemies[1].AttackPower)
	assert.Equal(t, 5, level.Enemies[1].Health)
	assert.Equal(t, 48.0, level.Enemies[1].Patrol)

	require.Len(t, level.HealthPickUps, 1)
	assert.Equal(t, 3, level.HealthPickUps[0].HealAmount)

	require.Len(t, level.CameraTriggers, 1)
	rig := level.CameraTriggers[0].Rig
	assert.Equal(t, 10.0, rig.MinX)
	assert.Equal(t, 20.0, rig.MinY)
	assert.Equal(t, 30.0, rig.MaxX)
	assert.Equal(t, 40.0, rig.MaxY)
	assert.Equal(t, 5.0, rig.OffsetX)
	assert.Equal(t, -6.0, rig.OffsetY)

	assert.Equal(t, []Rect{{X: 600, Y: 224, W: 32, H: 64}}, level.LevelClears)
}

func TestLoadLevel_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fsys    fstest.MapFS
		path    string
		wantErr error
	}{
		{
			name:    "missing spawn",
			fsys:    fstest.MapFS{"levels/empty.tmx": {Data: []byte(noSpawnTMX)}},
			path:    "levels/empty.tmx",
			wantErr: ErrNoPlayerSpawn,
		},
		{
			name: "missing file",
			fsys: fstest.MapFS{},
			path: "levels/nope.tmx",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadLevel(tt.fsys, tt.path)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/level02.tmx": {Data: []byte(testTMX)},
		"levels/level01.tmx": {Data: []byte(testTMX)},
		"levels/readme.txt":  {Data: []byte("ignored")},
	}
	levels, err := LoadAllLevels(fsys, "levels")
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, "level01", levels[0].Name)
	assert.Equal(t, "level02", levels[1].Name)

	_, err = LoadAllLevels(fstest.MapFS{}, "levels")
	assert.ErrorIs(t, err, ErrNoLevels)
}
