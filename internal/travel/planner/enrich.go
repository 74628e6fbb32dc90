package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"travel-planner/internal/travel"
)

// Enrich looks up places for up to MaxEnrichedPreferences preferences in
// parallel. Lookups are best-effort: failures are logged and skipped, so the
// result may be empty but never an error.
func (p *Planner) Enrich(ctx context.Context, s travel.Slots) []PlaceGroup {
	if p.places == nil || strings.TrimSpace(s.Destination) == "" || len(s.Preferences) == 0 {
		return nil
	}

	prefs := lo.Uniq(lo.Compact(s.Preferences))
	if len(prefs) > MaxEnrichedPreferences {
		prefs = prefs[:MaxEnrichedPreferences]
	}

	groups := make([]PlaceGroup, len(prefs))
	var g errgroup.Group
	g.SetLimit(MaxEnrichedPreferences)
	for i, pref := range prefs {
		g.Go(func() error {
			places, err := p.places.SearchByPreference(ctx, s.Destination, pref)
			if err != nil {
				p.l.Warnf(ctx, "%s: lookup %q in %q failed: %v", LogPrefixEnrich, pref, s.Destination, err)
				return nil
			}
			if len(places) > PlacesPerPreference {
				places = places[:PlacesPerPreference]
			}
			groups[i] = PlaceGroup{Preference: pref, Places: places}
			return nil
		})
	}
	_ = g.Wait()

	return lo.Filter(groups, func(g PlaceGroup, _ int) bool { return len(g.Places) > 0 })
}

func placeBlock(groups []PlaceGroup) string {
	if len(groups) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(placesHeader)
	for _, g := range groups {
		fmt.Fprintf(&b, "[%s]\n", g.Preference)
		for _, pl := range g.Places {
			fmt.Fprintf(&b, "- %s (%s) %s", pl.Name, pl.Category, pl.Address)
			if pl.Phone != "" {
				fmt.Fprintf(&b, " ☎ %s", pl.Phone)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
