package progression

import (
	"context"
	"fmt"
	"log"
	"time"

	"reporthub/models"
)

// ProgressStore is Store A: the durable per-user progress ledger. The xp
// field is mutated exclusively through IncrementXp; no other code path
// writes xp or level directly.
type ProgressStore interface {
	// IncrementXp atomically adds gain to the user's xp, creating the
	// record on first use, and returns the record as written. The level
	// field of the returned record may lag behind Level(xp).
	IncrementXp(ctx context.Context, userID string, gain int) (*models.ProgressRecord, error)

	// RaiseLevel lifts the cached level to at least the given value.
	// It never lowers it, which makes concurrent calls safe in any order.
	RaiseLevel(ctx context.Context, userID string, level int) error

	// Get returns the user's record, or a fresh {xp:0, level:1} record
	// if the user has never earned XP.
	Get(ctx context.Context, userID string) (*models.ProgressRecord, error)
}

// UnlockStore is Store B: the append-only achievement log.
type UnlockStore interface {
	// UnlockedSlugs returns the set of slugs the user already holds.
	UnlockedSlugs(ctx context.Context, userID string) (map[string]bool, error)

	// Insert records an unlock. It returns false when the (user, slug)
	// pair already exists — a lost race, not an error.
	Insert(ctx context.Context, userID, slug string, unlockedAt time.Time) (bool, error)
}

// StatsProvider computes the context facts for a trigger on demand. It is
// an external collaborator; the engine never derives statistics itself.
type StatsProvider interface {
	Facts(ctx context.Context, userID string, trigger TriggerTag) (Facts, error)
}

// XpResult is what AddXp reports back to the caller.
type XpResult struct {
	NewXp                int      `json:"newXp"`
	NewLevel             int      `json:"newLevel"`
	LeveledUp            bool     `json:"leveledUp"`
	UnlockedAchievements []string `json:"unlockedAchievements"`
}

const defaultStoreTimeout = 5 * time.Second

// Engine converts user actions into XP, levels and one-time achievements.
// It is safe for concurrent use from independent request handlers.
type Engine struct {
	progress ProgressStore
	unlocks  UnlockStore
	rules    *Registry
	stats    StatsProvider
	tariff   map[ActionTag]int
	timeout  time.Duration
}

// NewEngine wires the engine. The tariff must cover exactly the known
// action tags; a hole or an unknown tag is a configuration error and
// fails here rather than at call time.
func NewEngine(progress ProgressStore, unlocks UnlockStore, rules *Registry, stats StatsProvider, tariff map[ActionTag]int) (*Engine, error) {
	if progress == nil || unlocks == nil {
		return nil, fmt.Errorf("progression: both stores are required")
	}
	if rules == nil {
		return nil, fmt.Errorf("progression: rule registry is required")
	}
	for action, gain := range tariff {
		if !action.Valid() {
			return nil, fmt.Errorf("progression: tariff lists unknown action %q", action)
		}
		if gain <= 0 {
			return nil, fmt.Errorf("progression: tariff for %q must be positive, got %d", action, gain)
		}
	}
	for _, action := range []ActionTag{ActionComment, ActionReport, ActionMention, ActionLoginStreakDay} {
		if _, ok := tariff[action]; !ok {
			return nil, fmt.Errorf("progression: tariff missing action %q", action)
		}
	}
	return &Engine{
		progress: progress,
		unlocks:  unlocks,
		rules:    rules,
		stats:    stats,
		tariff:   tariff,
		timeout:  defaultStoreTimeout,
	}, nil
}

// AddXp applies the tariff gain for an action to the user's ledger and
// reports the new totals. After the XP write commits it evaluates the
// achievement rules for the action's trigger; failures on that path are
// logged and never unwind the XP update.
func (e *Engine) AddXp(ctx context.Context, userID string, action ActionTag) (*XpResult, error) {
	gain, ok := e.tariff[action]
	if !ok {
		return nil, fmt.Errorf("progression: unknown action %q", action)
	}

	storeCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	rec, err := e.progress.IncrementXp(storeCtx, userID, gain)
	if err != nil {
		return nil, fmt.Errorf("progression: xp update for %s failed: %w", userID, err)
	}

	// The previous level is recomputable from the atomically returned
	// total, so no read-before-write is needed.
	newLevel := Level(rec.Xp)
	prevLevel := Level(rec.Xp - gain)
	if newLevel > rec.Level {
		if err := e.progress.RaiseLevel(storeCtx, userID, newLevel); err != nil {
			// The cached level is monotone and recomputed on every
			// write, so a failed raise heals on the next action.
			log.Printf("progression: raising level for %s to %d failed: %v", userID, newLevel, err)
		}
	}

	result := &XpResult{
		NewXp:     rec.Xp,
		NewLevel:  newLevel,
		LeveledUp: newLevel > prevLevel,
	}

	trigger, err := TriggerForAction(action)
	if err != nil {
		return result, nil
	}
	result.UnlockedAchievements = e.checkAfterXp(ctx, userID, trigger)
	return result, nil
}

// checkAfterXp runs the achievement path best-effort. The XP write has
// already committed; a missed evaluation is re-derivable from durable
// statistics on the user's next action of the same type.
func (e *Engine) checkAfterXp(ctx context.Context, userID string, trigger TriggerTag) []string {
	if e.stats == nil {
		return nil
	}
	checkCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	facts, err := e.stats.Facts(checkCtx, userID, trigger)
	if err != nil {
		log.Printf("progression: stats for %s / %s unavailable, skipping achievements: %v", userID, trigger, err)
		return nil
	}
	unlocked, err := e.CheckAchievements(checkCtx, userID, trigger, facts)
	if err != nil {
		log.Printf("progression: achievement check for %s / %s failed: %v", userID, trigger, err)
		return nil
	}
	return unlocked
}

// CheckAchievements evaluates every not-yet-unlocked rule for the trigger
// against the supplied facts and records the ones that hold. It returns
// only the slugs this call inserted; a concurrent call that wins the
// insert race reports the slug instead. Safe to call any number of times.
func (e *Engine) CheckAchievements(ctx context.Context, userID string, trigger TriggerTag, facts Facts) ([]string, error) {
	if !trigger.Valid() {
		return nil, fmt.Errorf("progression: unknown trigger %q", trigger)
	}

	storeCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	unlocked, err := e.unlocks.UnlockedSlugs(storeCtx, userID)
	if err != nil {
		return nil, fmt.Errorf("progression: loading unlocks for %s failed: %w", userID, err)
	}

	var newly []string
	for _, rule := range e.rules.ForTrigger(trigger) {
		if unlocked[rule.Slug] {
			continue
		}
		if !e.evaluate(rule, facts) {
			continue
		}
		inserted, err := e.unlocks.Insert(storeCtx, userID, rule.Slug, time.Now())
		if err != nil {
			// One rule's write failing must not block its siblings.
			log.Printf("progression: recording unlock %s for %s failed: %v", rule.Slug, userID, err)
			continue
		}
		if inserted {
			newly = append(newly, rule.Slug)
		}
	}
	return newly, nil
}

// evaluate runs a predicate, treating a panic as "condition not met" so a
// faulty rule cannot take down evaluation of its siblings.
func (e *Engine) evaluate(rule Rule, facts Facts) (met bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("progression: predicate for rule %s panicked: %v", rule.Slug, r)
			met = false
		}
	}()
	return rule.Predicate(facts)
}

// DescribeAchievements resolves slugs to display metadata. Slugs absent
// from the registry (a rule removed after being unlocked historically)
// are dropped with a warning rather than failing the lookup.
func (e *Engine) DescribeAchievements(slugs []string) []models.AchievementInfo {
	infos := make([]models.AchievementInfo, 0, len(slugs))
	for _, slug := range slugs {
		rule, ok := e.rules.Lookup(slug)
		if !ok {
			log.Printf("progression: no rule registered for unlocked slug %q", slug)
			continue
		}
		infos = append(infos, models.AchievementInfo{
			Slug:        rule.Slug,
			Label:       rule.Label,
			Description: rule.Description,
			Icon:        rule.Icon,
		})
	}
	return infos
}

// Progress returns the user's current ledger row, defaulting to a fresh
// level-1 record for users who have never earned XP.
func (e *Engine) Progress(ctx context.Context, userID string) (*models.ProgressRecord, error) {
	storeCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	return e.progress.Get(storeCtx, userID)
}

// Unlocked returns the set of slugs the user holds.
func (e *Engine) Unlocked(ctx context.Context, userID string) (map[string]bool, error) {
	storeCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	return e.unlocks.UnlockedSlugs(storeCtx, userID)
}
