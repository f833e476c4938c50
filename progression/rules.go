package progression

import "fmt"

// Facts is the context bag for one evaluation call: named numeric/string
// facts computed by the caller's statistics collaborators. It is never
// persisted.
type Facts map[string]interface{}

// Well-known fact names supplied by the statistics provider.
const (
	FactTotalReports      = "totalReports"
	FactReportDaysStreak  = "reportDaysStreak"
	FactTotalComments     = "totalComments"
	FactCommentDaysStreak = "commentDaysStreak"
	FactMentionsReceived  = "mentionsReceived"
	FactWeeklyLoginStreak = "weeklyLoginStreak"
)

// Int returns the named fact as an int, accepting the numeric types a
// JSON-decoded context bag may carry. Missing or non-numeric facts are 0.
func (f Facts) Int(name string) int {
	switch v := f[name].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// Rule describes one achievement: when its trigger fires and its predicate
// holds against the context bag, the slug is unlocked once for the user.
// Predicates must be pure; they may be called speculatively and must not
// assume ordering relative to other rules.
type Rule struct {
	Slug        string
	Trigger     TriggerTag
	Predicate   func(Facts) bool
	Label       string
	Description string
	Icon        string
}

// Registry is an immutable rule table built once at startup and injected
// into the engine.
type Registry struct {
	bySlug    map[string]Rule
	byTrigger map[TriggerTag][]Rule
}

// NewRegistry validates and indexes a rule set. Duplicate slugs, unknown
// triggers and nil predicates are configuration errors.
func NewRegistry(rules []Rule) (*Registry, error) {
	r := &Registry{
		bySlug:    make(map[string]Rule, len(rules)),
		byTrigger: make(map[TriggerTag][]Rule),
	}
	for _, rule := range rules {
		if rule.Slug == "" {
			return nil, fmt.Errorf("rule with empty slug")
		}
		if _, dup := r.bySlug[rule.Slug]; dup {
			return nil, fmt.Errorf("duplicate rule slug %q", rule.Slug)
		}
		if !rule.Trigger.Valid() {
			return nil, fmt.Errorf("rule %q has unknown trigger %q", rule.Slug, rule.Trigger)
		}
		if rule.Predicate == nil {
			return nil, fmt.Errorf("rule %q has no predicate", rule.Slug)
		}
		r.bySlug[rule.Slug] = rule
		r.byTrigger[rule.Trigger] = append(r.byTrigger[rule.Trigger], rule)
	}
	return r, nil
}

// ForTrigger returns the rules eligible for a trigger.
func (r *Registry) ForTrigger(trigger TriggerTag) []Rule {
	return r.byTrigger[trigger]
}

// Lookup returns the rule for a slug.
func (r *Registry) Lookup(slug string) (Rule, bool) {
	rule, ok := r.bySlug[slug]
	return rule, ok
}

// Slugs returns every registered slug.
func (r *Registry) Slugs() []string {
	slugs := make([]string, 0, len(r.bySlug))
	for slug := range r.bySlug {
		slugs = append(slugs, slug)
	}
	return slugs
}

func atLeast(fact string, n int) func(Facts) bool {
	return func(f Facts) bool { return f.Int(fact) >= n }
}

// DefaultRules is the production rule set.
func DefaultRules() []Rule {
	return []Rule{
		{
			Slug:        "first-report",
			Trigger:     TriggerReportCreate,
			Predicate:   atLeast(FactTotalReports, 1),
			Label:       "First Report",
			Description: "Create your first report",
			Icon:        "📝",
		},
		{
			Slug:        "report-10",
			Trigger:     TriggerReportCreate,
			Predicate:   atLeast(FactTotalReports, 10),
			Label:       "Reporter",
			Description: "Create 10 reports",
			Icon:        "📚",
		},
		{
			Slug:        "report-streak-7",
			Trigger:     TriggerReportCreate,
			Predicate:   atLeast(FactReportDaysStreak, 7),
			Label:       "On a Roll",
			Description: "Report on 7 days in a row",
			Icon:        "🔥",
		},
		{
			Slug:        "first-comment",
			Trigger:     TriggerComment,
			Predicate:   atLeast(FactTotalComments, 1),
			Label:       "First Comment",
			Description: "Post your first comment",
			Icon:        "💬",
		},
		{
			Slug:        "comment-10",
			Trigger:     TriggerComment,
			Predicate:   atLeast(FactTotalComments, 10),
			Label:       "Conversationalist",
			Description: "Post 10 comments",
			Icon:        "🗣️",
		},
		{
			Slug:        "comment-streak-3",
			Trigger:     TriggerComment,
			Predicate:   atLeast(FactCommentDaysStreak, 3),
			Label:       "Regular",
			Description: "Comment on 3 days in a row",
			Icon:        "📅",
		},
		{
			Slug:        "first-mention",
			Trigger:     TriggerMention,
			Predicate:   atLeast(FactMentionsReceived, 1),
			Label:       "Noticed",
			Description: "Get mentioned by another user",
			Icon:        "👋",
		},
		{
			Slug:        "mention-10",
			Trigger:     TriggerMention,
			Predicate:   atLeast(FactMentionsReceived, 10),
			Label:       "Popular",
			Description: "Get mentioned 10 times",
			Icon:        "⭐",
		},
		{
			Slug:        "week-streak-4",
			Trigger:     TriggerStreak,
			Predicate:   atLeast(FactWeeklyLoginStreak, 4),
			Label:       "Committed",
			Description: "Log in every week for 4 weeks",
			Icon:        "🏆",
		},
	}
}
