package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/automoto/blaster/shared/playercontrol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTuning(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
		check   func(t *testing.T, p PlayerConfig)
	}{
		{
			name: "empty document keeps defaults",
			doc:  "",
			check: func(t *testing.T, p PlayerConfig) {
				assert.Equal(t, Player, p)
			},
		},
		{
			name: "overrides floats and durations",
			doc:  "running_speed: 2.5\ndeath_wait: 750ms\nhealth: 9\n",
			check: func(t *testing.T, p PlayerConfig) {
				assert.Equal(t, 2.5, p.RunningSpeed)
				assert.Equal(t, 750*time.Millisecond, p.DeathWait)
				assert.Equal(t, 9, p.Health)
				assert.Equal(t, Player.RunningDrag, p.RunningDrag)
			},
		},
		{
			name:    "unknown key",
			doc:     "runing_speed: 2\n",
			wantErr: true,
		},
		{
			name:    "bad duration",
			doc:     "death_wait: soon\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning, err := ParseTuning([]byte(tt.doc))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, tuning.Apply(Player))
		})
	}
}

func TestValidatePlayer(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *PlayerConfig)
		wantErr bool
	}{
		{"defaults", func(p *PlayerConfig) {}, false},
		{"zero health", func(p *PlayerConfig) { p.Health = 0 }, true},
		{"negative health", func(p *PlayerConfig) { p.Health = -2 }, true},
		{"negative invincibility", func(p *PlayerConfig) { p.InvincibilityTime = -time.Second }, true},
		{"drag above one", func(p *PlayerConfig) { p.RunningDrag = 1.5 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Player
			tt.mutate(&p)
			err := ValidatePlayer(p)
			if tt.wantErr {
				assert.ErrorIs(t, err, playercontrol.ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPhysicsDefaults(t *testing.T) {
	// Terminal fall speed must not be cut short by the per-tick step limit.
	assert.GreaterOrEqual(t, Physics.MaxStepSpeed, Physics.MaxFallSpeed)
}

func TestLoadTuning(t *testing.T) {
	saved := Player
	t.Cleanup(func() { Player = saved })

	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("bullet_speed: 12\n"), 0o644))
	require.NoError(t, LoadTuning(good))
	assert.Equal(t, 12.0, Player.BulletSpeed)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("running_drag: 3\n"), 0o644))
	assert.Error(t, LoadTuning(bad))
	assert.Equal(t, saved.RunningDrag, Player.RunningDrag)

	dead := filepath.Join(dir, "dead.yaml")
	require.NoError(t, os.WriteFile(dead, []byte("health: 0\n"), 0o644))
	assert.ErrorIs(t, LoadTuning(dead), playercontrol.ErrInvalidConfig)
	assert.Equal(t, saved.Health, Player.Health)

	assert.Error(t, LoadTuning(filepath.Join(dir, "missing.yaml")))
}
