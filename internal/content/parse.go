package content

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"portfolio_content/internal/domain"
)

const activitySeparator = " - "

// defaultActivity is shown when the profile has no parseable activities.
var defaultActivity = domain.Activity{Date: "Today", Activity: "Setting up the website"}

// parseActivities splits a "date - activity" per line blob into entries.
// Blank lines are skipped; a blob without entries yields defaultActivity.
func parseActivities(blob string) []domain.Activity {
	var activities []domain.Activity
	for _, line := range strings.Split(blob, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		date, activity, _ := strings.Cut(line, activitySeparator)

		entry := domain.Activity{
			Date:     strings.TrimSpace(date),
			Activity: strings.TrimSpace(activity),
		}
		if entry.Date == "" {
			entry.Date = "No date"
		}
		if entry.Activity == "" {
			entry.Activity = "No activity"
		}
		activities = append(activities, entry)
	}

	if len(activities) == 0 {
		return []domain.Activity{defaultActivity}
	}
	return activities
}

// Month-granular labels are the common case in CVs and are tried before dateparse.
var startDateLayouts = []string{
	"Jan 2006",
	"January 2006",
	"Jan. 2006",
	"01/2006",
	"2006-01",
	"2006",
}

func parseStartDate(label string) (time.Time, bool) {
	label = strings.TrimSpace(label)
	if label == "" || label == notAvailable {
		return time.Time{}, false
	}
	for _, layout := range startDateLayouts {
		if t, err := time.Parse(layout, label); err == nil {
			return t, true
		}
	}
	t, err := dateparse.ParseAny(label)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// sortExperiences orders by start date, newest first. Records whose start
// date cannot be parsed go last and keep their relative order.
func sortExperiences(experiences []domain.Experience) {
	type keyed struct {
		exp   domain.Experience
		start time.Time
		ok    bool
	}
	keys := make([]keyed, len(experiences))
	for i, e := range experiences {
		start, ok := parseStartDate(e.StartDate)
		keys[i] = keyed{exp: e, start: start, ok: ok}
	}

	slices.SortStableFunc(keys, func(a, b keyed) int {
		switch {
		case a.ok && b.ok:
			return b.start.Compare(a.start)
		case a.ok:
			return -1
		case b.ok:
			return 1
		default:
			return 0
		}
	})

	for i, k := range keys {
		experiences[i] = k.exp
	}
}

// platformHosts is checked in order; the first fragment contained in the URL wins.
var platformHosts = []struct {
	fragment string
	platform domain.Platform
}{
	{"medium.com", domain.PlatformMedium},
	{"linkedin.com", domain.PlatformLinkedIn},
}

// PlatformFromURL infers the publishing platform of a blog post URL,
// defaulting to Medium.
func PlatformFromURL(url string) domain.Platform {
	lower := strings.ToLower(url)
	for _, h := range platformHosts {
		if strings.Contains(lower, h.fragment) {
			return h.platform
		}
	}
	return domain.PlatformMedium
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug derives the URL slug of a project title.
func Slug(title string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(title), "-"), "-")
}
