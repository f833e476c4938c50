package progression

import "fmt"

// ActionTag identifies an XP-earning user action. The set is closed: an
// engine configured with an action outside this list fails at construction.
type ActionTag string

const (
	ActionComment        ActionTag = "comment"
	ActionReport         ActionTag = "report"
	ActionMention        ActionTag = "mention"
	ActionLoginStreakDay ActionTag = "login-streak-day"
)

// TriggerTag identifies a category of action that makes a subset of
// achievement rules eligible for evaluation.
type TriggerTag string

const (
	TriggerComment      TriggerTag = "onComment"
	TriggerReportCreate TriggerTag = "onReportCreate"
	TriggerMention      TriggerTag = "onMention"
	TriggerStreak       TriggerTag = "onStreak"
)

// DefaultTariff is the fixed XP gain per action.
func DefaultTariff() map[ActionTag]int {
	return map[ActionTag]int{
		ActionComment:        10,
		ActionReport:         25,
		ActionMention:        5,
		ActionLoginStreakDay: 5,
	}
}

// TriggerForAction maps an action to the achievement trigger it fires.
func TriggerForAction(action ActionTag) (TriggerTag, error) {
	switch action {
	case ActionComment:
		return TriggerComment, nil
	case ActionReport:
		return TriggerReportCreate, nil
	case ActionMention:
		return TriggerMention, nil
	case ActionLoginStreakDay:
		return TriggerStreak, nil
	default:
		return "", fmt.Errorf("no trigger for action %q", action)
	}
}

// Valid reports whether the tag is one of the known actions.
func (a ActionTag) Valid() bool {
	_, err := TriggerForAction(a)
	return err == nil
}

// Valid reports whether the tag is one of the known triggers.
func (t TriggerTag) Valid() bool {
	switch t {
	case TriggerComment, TriggerReportCreate, TriggerMention, TriggerStreak:
		return true
	}
	return false
}
