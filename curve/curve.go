package curve

import "github.com/abrantigan/KMD-Display/model"

// Split divides one recorded press-and-release cycle into its downstroke
// and upstroke at the deepest point of key travel (maximum x). Ties go to
// the first occurrence of the maximum, and the turnaround point belongs
// to both halves so the rendered curves stay connected. Points are never
// reordered, deduplicated, or smoothed; an empty input yields two empty
// halves rather than an error.
func Split(points []model.Point) (downstroke, upstroke []model.Point) {
	if len(points) == 0 {
		return []model.Point{}, []model.Point{}
	}
	turnaround := 0
	for i, p := range points {
		if p.X > points[turnaround].X {
			turnaround = i
		}
	}
	return points[:turnaround+1], points[turnaround:]
}
