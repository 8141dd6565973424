package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/automoto/blaster/shared/playercontrol"
	"gopkg.in/yaml.v3"
)

// PlayerTuning is the subset of Player that can be overridden from a YAML
// file. Absent keys keep their defaults.
type PlayerTuning struct {
	RunningSpeed      *float64       `yaml:"running_speed"`
	RunningDrag       *float64       `yaml:"running_drag"`
	InitialJumpSpeed  *float64       `yaml:"initial_jump_speed"`
	ShotReloadTime    *time.Duration `yaml:"shot_reload_time"`
	BulletSpeed       *float64       `yaml:"bullet_speed"`
	Health            *int           `yaml:"health"`
	KnockbackSpeed    *float64       `yaml:"knockback_speed"`
	DamageRecovery    *time.Duration `yaml:"damage_recovery"`
	InvincibilityTime *time.Duration `yaml:"invincibility_time"`
	DeathWait         *time.Duration `yaml:"death_wait"`
}

// ParseTuning decodes a tuning document. Unknown keys are rejected so typos
// don't silently fall back to defaults.
func ParseTuning(data []byte) (PlayerTuning, error) {
	var t PlayerTuning
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return PlayerTuning{}, fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	return t, nil
}

// LoadTuning reads path and applies it on top of Player. Player is left
// untouched when the result would not validate.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: load tuning %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return err
	}
	tuned := t.Apply(Player)
	if err := ValidatePlayer(tuned); err != nil {
		return err
	}
	Player = tuned
	return nil
}

// ValidatePlayer checks the controller tuning plus the values the
// controller does not own.
func ValidatePlayer(p PlayerConfig) error {
	if err := playerControlConfig(p).Validate(); err != nil {
		return err
	}
	if p.Health <= 0 {
		return fmt.Errorf("%w: health %d must be positive", playercontrol.ErrInvalidConfig, p.Health)
	}
	if p.InvincibilityTime < 0 {
		return fmt.Errorf("%w: negative invincibility time", playercontrol.ErrInvalidConfig)
	}
	return nil
}

// Apply returns p with every set field of t copied over.
func (t PlayerTuning) Apply(p PlayerConfig) PlayerConfig {
	setFloat(&p.RunningSpeed, t.RunningSpeed)
	setFloat(&p.RunningDrag, t.RunningDrag)
	setFloat(&p.InitialJumpSpeed, t.InitialJumpSpeed)
	setDuration(&p.ShotReloadTime, t.ShotReloadTime)
	setFloat(&p.BulletSpeed, t.BulletSpeed)
	if t.Health != nil {
		p.Health = *t.Health
	}
	setFloat(&p.KnockbackSpeed, t.KnockbackSpeed)
	setDuration(&p.DamageRecovery, t.DamageRecovery)
	setDuration(&p.InvincibilityTime, t.InvincibilityTime)
	setDuration(&p.DeathWait, t.DeathWait)
	return p
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *time.Duration) {
	if v != nil {
		*dst = *v
	}
}
