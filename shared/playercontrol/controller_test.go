package playercontrol

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBody struct {
	vel       Vec
	kinematic bool
	forces    []Vec
	setCalls  int
}

func (b *fakeBody) Velocity() Vec       { return b.vel }
func (b *fakeBody) SetVelocity(v Vec)   { b.vel = v; b.setCalls++ }
func (b *fakeBody) SetKinematic(k bool) { b.kinematic = k }

// ApplyForce integrates immediately with unit mass and unit step.
func (b *fakeBody) ApplyForce(f Vec) {
	b.forces = append(b.forces, f)
	b.vel = b.vel.Add(f)
}

type fakeGround struct{ grounded bool }

func (g *fakeGround) IsTouchingGround() bool { return g.grounded }

type fakePos struct{ pos Vec }

func (p *fakePos) Position() Vec { return p.pos }

type projectile struct{ pos, vel Vec }

type fakeSink struct {
	sounds      []SoundID
	projectiles []projectile
	restarts    int
}

func (s *fakeSink) PlaySound(id SoundID) { s.sounds = append(s.sounds, id) }
func (s *fakeSink) SpawnProjectile(pos, vel Vec) {
	s.projectiles = append(s.projectiles, projectile{pos, vel})
}
func (s *fakeSink) RequestLevelRestart() { s.restarts++ }

type fakeClock struct{ t time.Duration }

func (c *fakeClock) Now() time.Duration      { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t += d }

type harness struct {
	ctrl   *Controller
	body   *fakeBody
	ground *fakeGround
	pos    *fakePos
	sink   *fakeSink
	clock  *fakeClock
}

func testConfig() Config {
	return Config{
		RunningSpeed:      10,
		RunningDrag:       0.8,
		InitialJumpSpeed:  12,
		ShotReloadTime:    250 * time.Millisecond,
		BulletSpawnOffset: Vec{X: 8, Y: -3},
		BulletSpeed:       20,
		KnockbackSpeed:    200,
		DamageRecovery:    500 * time.Millisecond,
		DeathWait:         3 * time.Second,
	}
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		body:   &fakeBody{},
		ground: &fakeGround{},
		pos:    &fakePos{pos: Vec{X: 100, Y: 50}},
		sink:   &fakeSink{},
		clock:  &fakeClock{t: time.Second},
	}
	ctrl, err := New(testConfig(), Deps{
		Body:     h.body,
		Ground:   h.ground,
		Position: h.pos,
		Events:   h.sink,
		Clock:    h.clock,
	})
	require.NoError(t, err)
	h.ctrl = ctrl
	return h
}

func (h *harness) controllable(t *testing.T) {
	t.Helper()
	require.NoError(t, h.ctrl.SetState(Controllable))
}

func TestNew_MissingCollaborators(t *testing.T) {
	full := Deps{
		Body:     &fakeBody{},
		Ground:   &fakeGround{},
		Position: &fakePos{},
		Events:   &fakeSink{},
		Clock:    &fakeClock{},
	}
	tests := []struct {
		name   string
		mutate func(d *Deps)
		want   error
	}{
		{name: "no body", mutate: func(d *Deps) { d.Body = nil }, want: ErrMissingBody},
		{name: "no ground sensor", mutate: func(d *Deps) { d.Ground = nil }, want: ErrMissingGroundSensor},
		{name: "no positioner", mutate: func(d *Deps) { d.Position = nil }, want: ErrMissingPositioner},
		{name: "no event sink", mutate: func(d *Deps) { d.Events = nil }, want: ErrMissingEventSink},
		{name: "no clock", mutate: func(d *Deps) { d.Clock = nil }, want: ErrMissingClock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := full
			tt.mutate(&deps)
			ctrl, err := New(testConfig(), deps)
			assert.Nil(t, ctrl)
			assert.ErrorIs(t, err, ErrMissingCollaborator)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.RunningDrag = 1.5
	_, err := New(cfg, Deps{
		Body: &fakeBody{}, Ground: &fakeGround{}, Position: &fakePos{},
		Events: &fakeSink{}, Clock: &fakeClock{},
	})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestController_StartsUncontrollable(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, Uncontrollable, h.ctrl.State())

	h.ctrl.OnFrame(Intent{Horizontal: 1, JumpPressed: true, ShootHeld: true})
	h.ground.grounded = true
	h.ctrl.OnTick()

	assert.Empty(t, h.body.forces)
	assert.Zero(t, h.body.setCalls)
	assert.Empty(t, h.sink.sounds)
	assert.Empty(t, h.sink.projectiles)
}

func TestController_SetStateRejectsUnknown(t *testing.T) {
	h := newHarness(t)
	h.controllable(t)

	err := h.ctrl.SetState(State(42))
	assert.ErrorIs(t, err, ErrUnknownState)
	assert.Equal(t, Controllable, h.ctrl.State())

	err = h.ctrl.SetState(State(-1))
	assert.ErrorIs(t, err, ErrUnknownState)
	assert.Equal(t, Controllable, h.ctrl.State())
}

func TestController_DragAppliedAfterForce(t *testing.T) {
	h := newHarness(t)
	h.controllable(t)
	cfg := testConfig()

	intents := []int{1, 1, 0, -1, -1, 0, 1}
	for _, dir := range intents {
		prev := h.body.vel
		h.ctrl.OnFrame(Intent{Horizontal: dir})
		h.ctrl.OnTick()

		want := (prev.X + cfg.RunningSpeed*float64(dir)) * cfg.RunningDrag
		assert.InDelta(t, want, h.body.vel.X, 1e-9)
		assert.Equal(t, prev.Y, h.body.vel.Y, "drag must not touch vertical velocity")
	}
}

func TestController_OneForceAndOneVelocityWritePerTick(t *testing.T) {
	h := newHarness(t)
	h.controllable(t)
	h.ground.grounded = true

	h.ctrl.OnFrame(Intent{Horizontal: 1, JumpPressed: true, ShootHeld: true})
	h.ctrl.OnTick()

	assert.Len(t, h.body.forces, 1)
	assert.Equal(t, 1, h.body.setCalls)
}

func TestController_FacingPersists(t *testing.T) {
	h := newHarness(t)
	h.controllable(t)

	h.ctrl.OnFrame(Intent{Horizontal: 1})
	h.ctrl.OnTick()
	assert.Equal(t, 1.0, h.ctrl.Facing())
	require.Len(t, h.body.forces, 1)
	assert.Greater(t, h.body.forces[0].X, 0.0)

	h.ctrl.OnFrame(Intent{Horizontal: -1})
	h.ctrl.OnTick()
	assert.Equal(t, -1.0, h.ctrl.Facing())

	h.ctrl.OnFrame(Intent{Horizontal: 0})
	h.ctrl.OnTick()
	assert.Equal(t, -1.0, h.ctrl.Facing(), "facing is kept when intent returns to zero")
}

func TestController_HorizontalIsNormalized(t *testing.T) {
	h := newHarness(t)
	h.controllable(t)

	h.ctrl.OnFrame(Intent{Horizontal: 5})
	h.ctrl.OnTick()
	require.Len(t, h.body.forces, 1)
	assert.Equal(t, testConfig().RunningSpeed, h.body.forces[0].X)
}

func TestController_Jump(t *testing.T) {
	tests := []struct {
		name       string
		grounded   bool
		intent     Intent
		wantJump   bool
		wantLatch  bool
		wantSounds []SoundID
	}{
		{
			name:       "grounded press jumps",
			grounded:   true,
			intent:     Intent{JumpPressed: true},
			wantJump:   true,
			wantLatch:  false,
			wantSounds: []SoundID{SoundJump},
		},
		{
			name:      "airborne press is buffered",
			grounded:  false,
			intent:    Intent{JumpPressed: true},
			wantJump:  false,
			wantLatch: true,
		},
		{
			name:     "no request no jump",
			grounded: true,
			intent:   Intent{},
			wantJump: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.controllable(t)
			h.ground.grounded = tt.grounded

			h.ctrl.OnFrame(tt.intent)
			h.ctrl.OnTick()

			if tt.wantJump {
				assert.Equal(t, testConfig().InitialJumpSpeed, h.body.vel.Y)
			} else {
				assert.Zero(t, h.body.vel.Y)
			}
			assert.Equal(t, tt.wantLatch, h.ctrl.JumpRequested())
			assert.Equal(t, tt.grounded, h.ctrl.TouchingGround())
			assert.Equal(t, tt.wantSounds, h.sink.sounds)
		})
	}
}

func TestController_BufferedJumpFiresOnLanding(t *testing.T) {
	h := newHarness(t)
	h.controllable(t)

	h.ctrl.OnFrame(Intent{JumpPressed: true})
	h.ctrl.OnTick()
	assert.Zero(t, h.body.vel.Y)

	// Still held, nothing new this frame.
	h.ctrl.OnFrame(Intent{})
	h.ctrl.OnTick()
	assert.True(t, h.ctrl.JumpRequested())

	h.ground.grounded = true
	h.ctrl.OnFrame(Intent{})
	h.ctrl.OnTick()
	assert.Equal(t, testConfig().InitialJumpSpeed, h.body.vel.Y)
	assert.False(t, h.ctrl.JumpRequested())
}

func TestController_ReleaseMidAirDropsJump(t *testing.T) {
	h := newHarness(t)
	h.controllable(t)

	h.ctrl.OnFrame(Intent{JumpPressed: true})
	h.ctrl.OnTick()
	h.ctrl.OnFrame(Intent{JumpReleased: true})
	h.ctrl.OnTick()
	assert.False(t, h.ctrl.JumpRequested())

	h.ground.grounded = true
	h.ctrl.OnFrame(Intent{})
	h.ctrl.OnTick()
	assert.Zero(t, h.body.vel.Y)
	assert.NotContains(t, h.sink.sounds, SoundJump)
}

func TestController_NoMultiJumpPerHold(t *testing.T) {
	h := newHarness(t)
	h.controllable(t)
	h.ground.grounded = true

	h.ctrl.OnFrame(Intent{JumpPressed: true})
	h.ctrl.OnTick()
	h.body.vel.Y = 0
	for i := 0; i < 5; i++ {
		h.ctrl.OnFrame(Intent{})
		h.ctrl.OnTick()
	}
	assert.Zero(t, h.body.vel.Y)
	assert.Equal(t, []SoundID{SoundJump}, h.sink.sounds)
}

func TestController_ShootSpawnsMirroredProjectile(t *testing.T) {
	tests := []struct {
		name    string
		dir     int
		wantPos Vec
		wantVel Vec
	}{
		{name: "facing right", dir: 1, wantPos: Vec{X: 108, Y: 47}, wantVel: Vec{X: 20}},
		{name: "facing left", dir: -1, wantPos: Vec{X: 92, Y: 47}, wantVel: Vec{X: -20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.controllable(t)

			h.ctrl.OnFrame(Intent{Horizontal: tt.dir, ShootHeld: true})
			h.ctrl.OnTick()

			require.Len(t, h.sink.projectiles, 1)
			assert.Equal(t, tt.wantPos, h.sink.projectiles[0].pos)
			assert.Equal(t, tt.wantVel, h.sink.projectiles[0].vel)
			assert.Equal(t, []SoundID{SoundShoot}, h.sink.sounds)
			assert.False(t, h.ctrl.CanShoot())
			assert.True(t, h.ctrl.Shooting())
		})
	}
}

func TestController_ReloadLimitsFireRate(t *testing.T) {
	h := newHarness(t)
	h.controllable(t)
	h.ctrl.OnFrame(Intent{ShootHeld: true})

	h.ctrl.OnTick()
	require.Len(t, h.sink.projectiles, 1)

	// Within the reload window nothing fires.
	for i := 0; i < 12; i++ {
		h.clock.advance(20 * time.Millisecond)
		h.ctrl.OnTick()
	}
	assert.Len(t, h.sink.projectiles, 1)

	// 260ms after the shot the reload elapsed: this tick re-arms, the next fires.
	h.clock.advance(20 * time.Millisecond)
	h.ctrl.OnTick()
	assert.True(t, h.ctrl.CanShoot())
	assert.Len(t, h.sink.projectiles, 1)

	h.ctrl.OnTick()
	assert.Len(t, h.sink.projectiles, 2)
	assert.False(t, h.ctrl.CanShoot())
}

func TestController_ShootingFlagTracksHold(t *testing.T) {
	h := newHarness(t)
	h.controllable(t)

	h.ctrl.OnFrame(Intent{ShootHeld: true})
	h.ctrl.OnTick()
	assert.True(t, h.ctrl.Shooting())

	h.ctrl.OnFrame(Intent{})
	h.ctrl.OnTick()
	assert.False(t, h.ctrl.Shooting())
}

func TestController_GettingDamaged(t *testing.T) {
	tests := []struct {
		name      string
		dir       int
		wantForce float64
	}{
		{name: "facing right is pushed left", dir: 1, wantForce: -200},
		{name: "facing left is pushed right", dir: -1, wantForce: 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.controllable(t)
			h.ctrl.OnFrame(Intent{Horizontal: tt.dir})
			h.ctrl.OnTick()
			h.body.vel = Vec{X: 7, Y: -4}
			h.body.forces = nil

			h.ctrl.Hurt(false)

			assert.Equal(t, GettingDamaged, h.ctrl.State())
			require.Len(t, h.body.forces, 1)
			assert.Equal(t, tt.wantForce, h.body.forces[0].X)
			// zeroed first, so only the knockback remains
			assert.Equal(t, Vec{X: tt.wantForce}, h.body.vel)
			assert.Contains(t, h.sink.sounds, SoundHurt)
		})
	}
}

func TestController_RecoversAfterDamage(t *testing.T) {
	h := newHarness(t)
	h.controllable(t)
	h.ctrl.Hurt(false)

	h.ctrl.OnFrame(Intent{Horizontal: 1, ShootHeld: true})
	h.clock.advance(400 * time.Millisecond)
	h.ctrl.OnTick()
	assert.Equal(t, GettingDamaged, h.ctrl.State())
	assert.Empty(t, h.sink.projectiles, "no control while recovering")

	h.clock.advance(100 * time.Millisecond)
	h.ctrl.OnTick()
	assert.Equal(t, Controllable, h.ctrl.State())
}

func TestController_HurtIgnoredOutsideControllable(t *testing.T) {
	h := newHarness(t)
	h.ctrl.Hurt(false)
	assert.Equal(t, Uncontrollable, h.ctrl.State())

	h.controllable(t)
	h.ctrl.Hurt(false)
	before := len(h.sink.sounds)
	h.ctrl.Hurt(false)
	assert.Equal(t, GettingDamaged, h.ctrl.State())
	assert.Len(t, h.sink.sounds, before)
}

func TestController_DyingIsTerminal(t *testing.T) {
	h := newHarness(t)
	h.controllable(t)
	h.body.vel = Vec{X: 3, Y: 3}

	h.ctrl.Hurt(true)
	assert.Equal(t, Dying, h.ctrl.State())
	assert.Equal(t, Vec{}, h.body.vel)
	assert.True(t, h.body.kinematic)
	assert.Equal(t, []SoundID{SoundHurt}, h.sink.sounds)

	assert.ErrorIs(t, h.ctrl.SetState(Controllable), ErrTerminal)
	h.ctrl.Hurt(false)
	h.ctrl.Hurt(true)
	assert.Equal(t, Dying, h.ctrl.State())
	assert.Len(t, h.sink.sounds, 1)

	h.clock.advance(2 * time.Second)
	h.ctrl.OnTick()
	assert.Zero(t, h.sink.restarts)

	h.clock.advance(time.Second)
	for i := 0; i < 10; i++ {
		h.ctrl.OnTick()
		h.clock.advance(time.Second)
	}
	assert.Equal(t, 1, h.sink.restarts)
	assert.Equal(t, Dying, h.ctrl.State())
}

func TestController_LethalDamageWhileRecovering(t *testing.T) {
	h := newHarness(t)
	h.controllable(t)
	h.ctrl.Hurt(false)
	h.ctrl.Hurt(true)
	assert.Equal(t, Dying, h.ctrl.State())

	h.clock.advance(time.Second)
	h.ctrl.OnTick()
	assert.Equal(t, Dying, h.ctrl.State(), "recovery timer no longer runs")
}
