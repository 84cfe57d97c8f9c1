package goal

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/masterplan/backend/domain"
)

// touchActivity records that the goal saw activity at now. A first touch or a
// touch after a gap starts the streak at one; activity on consecutive days
// extends it; repeated touches within the same day are counted once.
func touchActivity(g *domain.Goal, now time.Time) {
	switch {
	case g.LastActivityAt == nil:
		g.Streak = 1
	case sameDay(*g.LastActivityAt, now):
		if g.Streak == 0 {
			g.Streak = 1
		}
	case sameDay(g.LastActivityAt.AddDate(0, 0, 1), now):
		g.Streak++
	default:
		g.Streak = 1
	}
	g.LastActivityAt = &now
}

// ResetIdleStreaks zeroes the streak of every goal that saw no activity since
// the start of the previous day. Invoked by the daily maintenance job.
func (uc *UseCase) ResetIdleStreaks(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	userIDs, err := uc.goals.UserIDs(ctx)
	if err != nil {
		return err
	}

	now := uc.clock.Now()
	cutoff := startOfDay(now).AddDate(0, 0, -1)

	for _, userID := range userIDs {
		goals, err := uc.goals.LoadCollection(ctx, userID)
		if err != nil {
			uc.logger.Warn("streak sweep: load failed",
				zap.String("user_id", userID), zap.Error(err))
			continue
		}

		changed := false
		for i := range goals {
			g := &goals[i]
			if g.Streak == 0 {
				continue
			}
			if g.LastActivityAt == nil || g.LastActivityAt.Before(cutoff) {
				g.Streak = 0
				changed = true
			}
		}
		if !changed {
			continue
		}
		if err := uc.goals.SaveCollection(ctx, userID, goals); err != nil {
			uc.logger.Warn("streak sweep: save failed",
				zap.String("user_id", userID), zap.Error(err))
		}
	}
	return nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
