package progression

import "testing"

func TestDefaultTariff(t *testing.T) {
	tariff := DefaultTariff()

	want := map[ActionTag]int{
		ActionComment:        10,
		ActionReport:         25,
		ActionMention:        5,
		ActionLoginStreakDay: 5,
	}
	if len(tariff) != len(want) {
		t.Errorf("tariff has %d entries, want %d", len(tariff), len(want))
	}
	for action, gain := range want {
		if tariff[action] != gain {
			t.Errorf("tariff[%s] = %d, want %d", action, tariff[action], gain)
		}
	}
}

func TestTriggerForAction(t *testing.T) {
	cases := []struct {
		action ActionTag
		want   TriggerTag
	}{
		{ActionComment, TriggerComment},
		{ActionReport, TriggerReportCreate},
		{ActionMention, TriggerMention},
		{ActionLoginStreakDay, TriggerStreak},
	}
	for _, tc := range cases {
		got, err := TriggerForAction(tc.action)
		if err != nil {
			t.Errorf("TriggerForAction(%s) returned error: %v", tc.action, err)
			continue
		}
		if got != tc.want {
			t.Errorf("TriggerForAction(%s) = %s, want %s", tc.action, got, tc.want)
		}
	}

	if _, err := TriggerForAction("delete-account"); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestTagValidity(t *testing.T) {
	if ActionTag("upvote").Valid() {
		t.Error("unknown action reported as valid")
	}
	if !ActionReport.Valid() {
		t.Error("report action reported as invalid")
	}
	if TriggerTag("onUpvote").Valid() {
		t.Error("unknown trigger reported as valid")
	}
	if !TriggerStreak.Valid() {
		t.Error("streak trigger reported as invalid")
	}
}
