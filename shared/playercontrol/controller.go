package playercontrol

import "fmt"

// Controller drives player locomotion, jumping, shooting, damage response and
// death. It is single-threaded: OnFrame and OnTick must be called from the
// host's update goroutine.
type Controller struct {
	cfg  Config
	deps Deps

	state      State
	step       func()
	stateSince int64 // Clock.Now() when the current state was entered, in ns

	intent      Intent
	jumpLatched bool

	facing         float64
	touchingGround bool
	canShoot       bool
	shooting       bool
	lastShot       int64

	restartRequested bool
}

// New builds a controller in the Uncontrollable state.
func New(cfg Config, deps Deps) (*Controller, error) {
	if err := checkDeps(deps); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		cfg:      cfg,
		deps:     deps,
		facing:   1,
		canShoot: true,
	}
	c.enter(Uncontrollable)
	return c, nil
}

func checkDeps(d Deps) error {
	switch {
	case d.Body == nil:
		return fmt.Errorf("%w: %w", ErrMissingCollaborator, ErrMissingBody)
	case d.Ground == nil:
		return fmt.Errorf("%w: %w", ErrMissingCollaborator, ErrMissingGroundSensor)
	case d.Position == nil:
		return fmt.Errorf("%w: %w", ErrMissingCollaborator, ErrMissingPositioner)
	case d.Events == nil:
		return fmt.Errorf("%w: %w", ErrMissingCollaborator, ErrMissingEventSink)
	case d.Clock == nil:
		return fmt.Errorf("%w: %w", ErrMissingCollaborator, ErrMissingClock)
	}
	return nil
}

// OnFrame caches the latest input sample. The jump request is edge
// triggered: latched on press, dropped on release or when consumed.
func (c *Controller) OnFrame(in Intent) {
	switch {
	case in.Horizontal > 0:
		in.Horizontal = 1
	case in.Horizontal < 0:
		in.Horizontal = -1
	}
	c.intent = in
	if in.JumpPressed {
		c.jumpLatched = true
	}
	if in.JumpReleased {
		c.jumpLatched = false
	}
}

// OnTick advances the active state by one fixed step.
func (c *Controller) OnTick() {
	if c.step != nil {
		c.step()
	}
}

// SetState requests a transition from outside the controller.
func (c *Controller) SetState(s State) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownState, int(s))
	}
	if c.state == Dying {
		return ErrTerminal
	}
	c.enter(s)
	return nil
}

// Hurt reports a damage event. Lethal damage kills from any state but Dying;
// non-lethal damage only interrupts the Controllable state.
func (c *Controller) Hurt(lethal bool) {
	switch {
	case c.state == Dying:
	case lethal:
		c.enter(Dying)
	case c.state == Controllable:
		c.enter(GettingDamaged)
	}
}

// State returns the active state.
func (c *Controller) State() State { return c.state }

// Facing is 1 for right and -1 for left. It keeps its value while there is
// no horizontal input.
func (c *Controller) Facing() float64 { return c.facing }

// TouchingGround is the ground query result from the last Controllable tick.
func (c *Controller) TouchingGround() bool { return c.touchingGround }

// Shooting reports whether shoot was held on the last Controllable tick.
func (c *Controller) Shooting() bool { return c.shooting }

// JumpRequested reports whether a jump press is latched and not yet used.
func (c *Controller) JumpRequested() bool { return c.jumpLatched }

// CanShoot reports whether the reload has finished.
func (c *Controller) CanShoot() bool { return c.canShoot }

func (c *Controller) now() int64 {
	return int64(c.deps.Clock.Now())
}

func (c *Controller) elapsedInState() int64 {
	return c.now() - c.stateSince
}

// enter swaps the step function and runs the new state's entry action.
func (c *Controller) enter(s State) {
	c.state = s
	c.stateSince = c.now()

	switch s {
	case Uncontrollable:
		c.step = nil
	case Controllable:
		c.step = c.controllingStep
	case GettingDamaged:
		c.shooting = false
		c.deps.Body.SetVelocity(Vec{})
		c.deps.Body.ApplyForce(Vec{X: -c.facing * c.cfg.KnockbackSpeed})
		c.deps.Events.PlaySound(SoundHurt)
		c.step = c.gettingDamagedStep
	case Dying:
		c.shooting = false
		c.deps.Body.SetVelocity(Vec{})
		c.deps.Body.SetKinematic(true)
		c.deps.Events.PlaySound(SoundHurt)
		c.step = c.dyingStep
	}
}

func (c *Controller) controllingStep() {
	in := c.intent
	body := c.deps.Body

	if in.Horizontal != 0 {
		c.facing = float64(in.Horizontal)
	}

	body.ApplyForce(Vec{X: c.cfg.RunningSpeed * float64(in.Horizontal)})
	vel := body.Velocity()

	c.touchingGround = c.deps.Ground.IsTouchingGround()
	if c.touchingGround && c.jumpLatched {
		vel.Y = c.cfg.InitialJumpSpeed
		c.jumpLatched = false
		c.deps.Events.PlaySound(SoundJump)
	}

	if c.canShoot && in.ShootHeld {
		c.shoot()
	} else if !c.canShoot && c.now()-c.lastShot >= int64(c.cfg.ShotReloadTime) {
		c.canShoot = true
	}
	c.shooting = in.ShootHeld

	vel.X *= c.cfg.RunningDrag
	body.SetVelocity(vel)
}

func (c *Controller) shoot() {
	offset := c.cfg.BulletSpawnOffset
	pos := c.deps.Position.Position().Add(Vec{X: offset.X * c.facing, Y: offset.Y})
	c.deps.Events.SpawnProjectile(pos, Vec{X: c.cfg.BulletSpeed * c.facing})
	c.canShoot = false
	c.lastShot = c.now()
	c.deps.Events.PlaySound(SoundShoot)
}

func (c *Controller) gettingDamagedStep() {
	if c.elapsedInState() >= int64(c.cfg.DamageRecovery) {
		c.enter(Controllable)
	}
}

func (c *Controller) dyingStep() {
	if c.restartRequested {
		return
	}
	if c.elapsedInState() >= int64(c.cfg.DeathWait) {
		c.restartRequested = true
		c.deps.Events.RequestLevelRestart()
	}
}
