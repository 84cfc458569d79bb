// README: Finds a stored plan that can answer a request without calling the model.
package travelplan

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

// CandidateSource lists stored plans for a destination and duration, newest first.
type CandidateSource interface {
	FindRecent(ctx context.Context, destinationID string, duration, limit int) ([]TravelPlan, error)
}

type Matcher struct {
	src CandidateSource
	log *slog.Logger
}

func NewMatcher(src CandidateSource, log *slog.Logger) *Matcher {
	if log == nil {
		log = slog.Default()
	}
	return &Matcher{src: src, log: log}
}

// FindReusable returns a stored plan for the criteria, if any. Lookup
// failures are logged and reported as no match.
func (m *Matcher) FindReusable(ctx context.Context, c Criteria) (*TravelPlan, bool) {
	plans, err := m.src.FindRecent(ctx, c.DestinationID, c.Duration, MatchCandidates)
	if err != nil {
		m.log.Error("find similar travel plan", "destinationId", c.DestinationID, "err", err)
		return nil, false
	}
	if len(plans) == 0 {
		return nil, false
	}

	best := &plans[0]
	if c.HasRankingHints() {
		for i := range plans {
			if score(c, &plans[i]) > 0 {
				best = &plans[i]
				break
			}
		}
	}

	if season := SeasonOf(c.StartDate); season != "" && best.Season != nil &&
		strings.Contains(strings.ToLower(*best.Season), season) {
		m.log.Info("found matching season", "season", season, "planId", best.ID)
	}
	m.log.Info("found similar travel plan", "planId", best.ID, "destinationId", c.DestinationID, "duration", c.Duration)
	return best, true
}

func score(c Criteria, p *TravelPlan) int {
	program := p.Program.Program()
	n := 0

	if c.Locale != "" {
		locale := p.Locale
		if locale == "" {
			locale = program.Locale
		}
		if strings.EqualFold(locale, c.Locale) {
			n += 5
		}
	}
	if c.TravelStyle != "" && containsFold(program.TravelStyle, c.TravelStyle) {
		n += 3
	}
	if c.Theme != "" {
		subject := program.Theme
		if subject == "" {
			subject = program.Title
		}
		if containsFold(subject, c.Theme) {
			n += 2
		}
	}
	if c.Budget != "" && p.Budget != nil && containsFold(*p.Budget, c.Budget) {
		n++
	}
	return n
}

func containsFold(s, sub string) bool {
	return s != "" && strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// SeasonOf names the season of a YYYY-MM-DD date, or "" when the date does not parse.
func SeasonOf(date string) string {
	if date == "" {
		return ""
	}
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	switch m := t.Month(); {
	case m >= time.March && m <= time.May:
		return "printemps"
	case m >= time.June && m <= time.August:
		return "été"
	case m >= time.September && m <= time.November:
		return "automne"
	default:
		return "hiver"
	}
}
