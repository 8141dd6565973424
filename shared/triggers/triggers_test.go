package triggers

import (
	"testing"
	"time"

	"github.com/automoto/blaster/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		tags []string
		want Kind
	}{
		{[]string{"solid"}, KindNone},
		{nil, KindNone},
		{[]string{"trigger", TagHealthPickUp}, KindHealthPickUp},
		{[]string{TagEnemyHitBox}, KindEnemyHitBox},
		{[]string{TagCameraTrigger}, KindCameraTrigger},
		{[]string{TagLevelClearTrigger}, KindLevelClear},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KindOf(tt.tags), "%v", tt.tags)
	}
}

func TestResolve_HealthPickUp(t *testing.T) {
	tests := []struct {
		name       string
		hp, amount int
		wantHP     int
		wantHealed int
	}{
		{"heals", 2, 1, 3, 1},
		{"capped at max", 4, 3, 5, 1},
		{"at max still consumed", 5, 2, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Status{HP: tt.hp, MaxHP: 5}
			out := Resolve(s, Contact{Kind: KindHealthPickUp, Amount: tt.amount}, 0, time.Second)
			assert.True(t, out.Consume)
			assert.Equal(t, tt.wantHealed, out.Healed)
			assert.Equal(t, tt.wantHP, s.HP)
		})
	}
}

func TestResolve_EnemyHitBoxInvincibility(t *testing.T) {
	s := &Status{HP: 5, MaxHP: 5}
	hit := Contact{Kind: KindEnemyHitBox, Amount: 2}
	window := time.Second

	out := Resolve(s, hit, 0, window)
	assert.True(t, out.Hurt)
	assert.False(t, out.Lethal)
	assert.Equal(t, 3, s.HP)
	assert.True(t, s.Invincible(0))

	// staying inside the hitbox does nothing during the window
	for now := 100 * time.Millisecond; now < window; now += 100 * time.Millisecond {
		out = Resolve(s, hit, now, window)
		assert.False(t, out.Hurt)
	}
	assert.Equal(t, 3, s.HP)

	out = Resolve(s, hit, window, window)
	assert.True(t, out.Hurt)
	assert.Equal(t, 1, s.HP)
}

func TestStatus_InvincibleAtLeavesStateAlone(t *testing.T) {
	s := &Status{HP: 5, MaxHP: 5}
	Resolve(s, Contact{Kind: KindEnemyHitBox, Amount: 1}, 0, time.Second)

	snapshot := *s
	assert.True(t, s.InvincibleAt(500*time.Millisecond))
	assert.False(t, s.InvincibleAt(2*time.Second))
	assert.Equal(t, snapshot, *s, "querying must not expire the window")

	// the window is still open for an earlier time after the expired query
	assert.True(t, s.InvincibleAt(900*time.Millisecond))

	assert.False(t, s.Invincible(2*time.Second))
	assert.False(t, s.InvincibleAt(900*time.Millisecond), "Invincible closes an expired window")
}

func TestResolve_EnemyHitBoxLethal(t *testing.T) {
	s := &Status{HP: 2, MaxHP: 5}
	out := Resolve(s, Contact{Kind: KindEnemyHitBox, Amount: 2}, 0, time.Second)
	assert.True(t, out.Hurt)
	assert.True(t, out.Lethal)
	assert.Equal(t, 0, s.HP)

	out = Resolve(s, Contact{Kind: KindEnemyHitBox, Amount: 2}, time.Hour, time.Second)
	assert.False(t, out.Hurt, "no further hits once dead")
}

func TestResolve_CameraAndLevelClear(t *testing.T) {
	s := &Status{HP: 1, MaxHP: 1}
	rig := gamemath.CameraRig{MinX: 1, MaxX: 2, OffsetY: 3}

	out := Resolve(s, Contact{Kind: KindCameraTrigger, Rig: rig}, 0, 0)
	require.NotNil(t, out.Rig)
	assert.Equal(t, rig, *out.Rig)
	assert.False(t, out.Consume)

	out = Resolve(s, Contact{Kind: KindLevelClear}, 0, 0)
	assert.True(t, out.LevelClear)

	out = Resolve(s, Contact{Kind: KindNone}, 0, 0)
	assert.Equal(t, Outcome{}, out)
}

func TestGroundProbe(t *testing.T) {
	p := GroundProbe(100, 50, 20, 30, 1)
	assert.InDelta(t, 100.4, p.X, 1e-9)
	assert.InDelta(t, 19.2, p.W, 1e-9)
	assert.Equal(t, 80.0, p.Y)
	assert.Equal(t, 1.0, p.H)

	tests := []struct {
		name       string
		x, y, w, h float64
		want       bool
	}{
		{"floor under feet", 0, 80, 400, 16, true},
		{"floor one pixel below leeway", 0, 81, 400, 16, false},
		{"wall touching the side", 120, 0, 16, 200, false},
		{"ledge under the toes", 115, 80, 50, 16, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Overlaps(tt.x, tt.y, tt.w, tt.h))
		})
	}
}
