package components

import "github.com/yohamta/donburi"

type BulletData struct {
	SpeedX, SpeedY float64
	FramesLeft     int
}

var Bullet = donburi.NewComponentType[BulletData]()
