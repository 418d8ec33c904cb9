package factories

import (
	"github.com/chrisdamba/foodstories/internal/models"
	"github.com/lucsky/cuid"
)

// share of simulated viewers per segment
var viewerSegments = []struct {
	name  string
	ratio float64
}{
	{"foodie", 0.2},
	{"regular", 0.5},
	{"browser", 0.3},
}

type ViewerFactory struct{}

func (vf *ViewerFactory) CreateViewer(restaurants []models.Restaurant) models.Viewer {
	segment := vf.assignViewerSegment()
	return models.Viewer{
		ID:          cuid.New(),
		Name:        fake.Person().Name(),
		Segment:     segment,
		Profile:     vf.createViewerProfile(segment),
		Preferences: vf.generatePreferences(restaurants),
	}
}

func (vf *ViewerFactory) assignViewerSegment() string {
	r := rng.Float64()
	sum := 0.0
	for _, s := range viewerSegments {
		sum += s.ratio
		if r < sum {
			return s.name
		}
	}
	return viewerSegments[len(viewerSegments)-1].name
}

// createViewerProfile draws propensities around a per-segment baseline.
func (vf *ViewerFactory) createViewerProfile(segment string) models.ViewerProfile {
	var p models.ViewerProfile
	switch segment {
	case "foodie":
		p = models.ViewerProfile{Curiosity: 0.8, Customization: 0.7, Purchase: 0.6, Patience: 0.7, ExtraPreference: 0.5, RemovePreference: 0.2}
	case "regular":
		p = models.ViewerProfile{Curiosity: 0.5, Customization: 0.4, Purchase: 0.4, Patience: 0.5, ExtraPreference: 0.3, RemovePreference: 0.3}
	default:
		p = models.ViewerProfile{Curiosity: 0.3, Customization: 0.1, Purchase: 0.1, Patience: 0.3, ExtraPreference: 0.1, RemovePreference: 0.1}
	}

	jitter := func(v float64) float64 {
		v += fake.Float64(2, -10, 10) / 100
		switch {
		case v < 0:
			return 0
		case v > 1:
			return 1
		}
		return v
	}
	p.Curiosity = jitter(p.Curiosity)
	p.Customization = jitter(p.Customization)
	p.Purchase = jitter(p.Purchase)
	p.Patience = jitter(p.Patience)
	p.ExtraPreference = jitter(p.ExtraPreference)
	p.RemovePreference = jitter(p.RemovePreference)
	return p
}

// generatePreferences orders 1 to 3 restaurants by preference.
func (vf *ViewerFactory) generatePreferences(restaurants []models.Restaurant) []string {
	if len(restaurants) == 0 {
		return nil
	}
	count := fake.IntBetween(1, 3)
	if count > len(restaurants) {
		count = len(restaurants)
	}
	preferences := make([]string, 0, count)
	for _, i := range rng.Perm(len(restaurants))[:count] {
		preferences = append(preferences, restaurants[i].ID)
	}
	return preferences
}
