package triggers

// GroundProbeHalfWidth is the probe's half extent as a share of the body
// width. Less than half keeps a body hugging a wall from reading as grounded.
const GroundProbeHalfWidth = 0.48

// ProbeRect is an axis aligned box, top-left anchored like resolv objects.
type ProbeRect struct {
	X, Y, W, H float64
}

// GroundProbe returns the thin box under a body's feet that must overlap a
// solid for the body to count as grounded.
func GroundProbe(x, y, w, h, leeway float64) ProbeRect {
	half := w * GroundProbeHalfWidth
	cx := x + w/2
	return ProbeRect{X: cx - half, Y: y + h, W: half * 2, H: leeway}
}

// Overlaps reports whether p and the box (x, y, w, h) intersect.
func (p ProbeRect) Overlaps(x, y, w, h float64) bool {
	return p.X < x+w && x < p.X+p.W && p.Y < y+h && y < p.Y+p.H
}
