package itinerary

// MinSEODays is the shortest program published as an SEO example.
const MinSEODays = 3

// IsSEOEligible reports whether a program is complete enough to publish:
// at least MinSEODays days and at least one activity on every day.
func IsSEOEligible(p *Program) bool {
	if p == nil || len(p.Days) < MinSEODays {
		return false
	}
	for _, d := range p.Days {
		if len(d.Activities) == 0 {
			return false
		}
	}
	return true
}
