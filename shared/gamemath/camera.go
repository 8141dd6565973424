package gamemath

// CameraRig is the follow-camera configuration: the offset added to the
// target and the limits the result is clamped to, per axis.
type CameraRig struct {
	MinX, MinY       float64
	MaxX, MaxY       float64
	OffsetX, OffsetY float64
}

// Follow returns the camera position for a target position.
func (r CameraRig) Follow(targetX, targetY float64) (float64, float64) {
	return Clamp(targetX+r.OffsetX, r.MinX, r.MaxX),
		Clamp(targetY+r.OffsetY, r.MinY, r.MaxY)
}

// Constrain narrows the rig's limits to keep the view inside a level of the
// given size. Limits already tighter than the level are kept.
func (r CameraRig) Constrain(screenW, screenH, levelW, levelH float64) CameraRig {
	r.MinX = Clamp(r.MinX, screenW/2, levelW-screenW/2)
	r.MaxX = Clamp(r.MaxX, screenW/2, levelW-screenW/2)
	r.MinY = Clamp(r.MinY, screenH/2, levelH-screenH/2)
	r.MaxY = Clamp(r.MaxY, screenH/2, levelH-screenH/2)
	return r
}
