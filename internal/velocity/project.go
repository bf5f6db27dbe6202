package velocity

// Projection is the expected point count per group for a future
// allocation of working days, plus the sum over all groups.
type Projection struct {
	Points map[string]int
	Total  int
}

// Project multiplies each group's mean historical ratio by its future
// day allocation. The float product is truncated toward zero, never
// rounded. Labels in futureDays with no historical ratio project to
// zero points; they still appear in the result and count toward the
// total. Pure function of its inputs.
func Project(ratios RatioMap, futureDays map[string]int) Projection {
	points := make(map[string]int, len(futureDays))
	total := 0
	for label, days := range futureDays {
		p := int(ratios[label] * float64(days))
		points[label] = p
		total += p
	}
	return Projection{Points: points, Total: total}
}
