package progression

import "testing"

func TestNewRegistryRejectsDuplicateSlugs(t *testing.T) {
	rules := []Rule{
		{Slug: "dup", Trigger: TriggerComment, Predicate: atLeast(FactTotalComments, 1)},
		{Slug: "dup", Trigger: TriggerMention, Predicate: atLeast(FactMentionsReceived, 1)},
	}
	if _, err := NewRegistry(rules); err == nil {
		t.Error("expected error for duplicate slug")
	}
}

func TestNewRegistryRejectsBadRules(t *testing.T) {
	if _, err := NewRegistry([]Rule{{Slug: "", Trigger: TriggerComment, Predicate: atLeast(FactTotalComments, 1)}}); err == nil {
		t.Error("expected error for empty slug")
	}
	if _, err := NewRegistry([]Rule{{Slug: "x", Trigger: "onWhatever", Predicate: atLeast(FactTotalComments, 1)}}); err == nil {
		t.Error("expected error for unknown trigger")
	}
	if _, err := NewRegistry([]Rule{{Slug: "x", Trigger: TriggerComment}}); err == nil {
		t.Error("expected error for nil predicate")
	}
}

func TestDefaultRulesBuild(t *testing.T) {
	registry, err := NewRegistry(DefaultRules())
	if err != nil {
		t.Fatalf("DefaultRules failed to build: %v", err)
	}
	if len(registry.Slugs()) != len(DefaultRules()) {
		t.Errorf("registry has %d slugs, want %d", len(registry.Slugs()), len(DefaultRules()))
	}
	for _, trigger := range []TriggerTag{TriggerComment, TriggerReportCreate, TriggerMention, TriggerStreak} {
		if len(registry.ForTrigger(trigger)) == 0 {
			t.Errorf("no default rules for trigger %s", trigger)
		}
	}
}

func TestCommentRulePredicateBoundaries(t *testing.T) {
	registry, err := NewRegistry(DefaultRules())
	if err != nil {
		t.Fatal(err)
	}

	firstComment, ok := registry.Lookup("first-comment")
	if !ok {
		t.Fatal("first-comment rule missing")
	}
	commentTen, ok := registry.Lookup("comment-10")
	if !ok {
		t.Fatal("comment-10 rule missing")
	}

	cases := []struct {
		total     int
		wantFirst bool
		wantTen   bool
	}{
		{0, false, false},
		{1, true, false},
		{2, true, false},
		{9, true, false},
		{10, true, true},
	}
	for _, tc := range cases {
		facts := Facts{FactTotalComments: tc.total}
		if got := firstComment.Predicate(facts); got != tc.wantFirst {
			t.Errorf("first-comment with %d comments = %v, want %v", tc.total, got, tc.wantFirst)
		}
		if got := commentTen.Predicate(facts); got != tc.wantTen {
			t.Errorf("comment-10 with %d comments = %v, want %v", tc.total, got, tc.wantTen)
		}
	}
}

func TestFactsIntAcceptsJSONNumbers(t *testing.T) {
	// Context bags arriving over HTTP decode numbers as float64.
	facts := Facts{FactTotalReports: float64(3), FactMentionsReceived: int64(2)}
	if got := facts.Int(FactTotalReports); got != 3 {
		t.Errorf("Int(totalReports) = %d, want 3", got)
	}
	if got := facts.Int(FactMentionsReceived); got != 2 {
		t.Errorf("Int(mentionsReceived) = %d, want 2", got)
	}
	if got := facts.Int("missing"); got != 0 {
		t.Errorf("Int(missing) = %d, want 0", got)
	}
	facts[FactTotalComments] = "not-a-number"
	if got := facts.Int(FactTotalComments); got != 0 {
		t.Errorf("Int of non-numeric fact = %d, want 0", got)
	}
}
