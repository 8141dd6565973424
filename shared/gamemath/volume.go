package gamemath

// StepVolume moves current to the neighbouring entry of steps in direction
// (-1 or +1), starting from the closest step. The result stays within steps.
func StepVolume(current float64, steps []float64, direction int) float64 {
	if len(steps) == 0 {
		return current
	}
	idx := closestStep(current, steps) + direction
	idx = max(0, min(len(steps)-1, idx))
	return steps[idx]
}

func closestStep(value float64, steps []float64) int {
	closest := 0
	minDiff := 2.0
	for i, step := range steps {
		diff := value - step
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return closest
}
