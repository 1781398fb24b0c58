package session

import (
	"context"
	"log/slog"
)

// IntentKind tells which catalog an intent targets.
type IntentKind string

const (
	IntentCourse  IntentKind = "course"
	IntentProgram IntentKind = "program"
)

// Intent is a deferred enroll action recorded when an unauthenticated
// user clicks an enroll button. It survives the redirect through the
// login flow and replays once, on the page it was recorded on.
type Intent struct {
	ItemID string     `json:"itemId"`
	Kind   IntentKind `json:"kind"`
	Path   string     `json:"path"`
}

func intentKey(sid string) string { return "intent:" + sid }

// RecordIntent stores intent for sid, overwriting any previous one.
// At most one pending intent exists per session; last write wins.
func (s *Store) RecordIntent(ctx context.Context, sid string, intent Intent) error {
	const op = "session.RecordIntent"
	if err := s.cache.Set(ctx, intentKey(sid), intent, s.cfg.TTL); err != nil {
		return err
	}
	s.log.Info("enrollment intent recorded",
		slog.String("op", op),
		slog.String("item_id", intent.ItemID),
		slog.String("kind", string(intent.Kind)),
		slog.String("path", intent.Path))
	return nil
}

// TryReplay fires fn with the stored intent exactly once iff an intent
// exists, a session is present and the intent was recorded on
// currentPath. The intent is deleted before fn runs, so a crash inside
// fn cannot cause a second submission. A path mismatch leaves the
// intent untouched: navigating back to the recorded path later still
// replays it, any other navigation silently keeps it pending.
//
// It is safe to call on every page render.
func (s *Store) TryReplay(ctx context.Context, sid, currentPath string, sessionPresent bool, fn func(Intent)) (bool, error) {
	const op = "session.TryReplay"
	if sid == "" || !sessionPresent {
		return false, nil
	}

	var intent Intent
	found, err := s.cache.Get(ctx, intentKey(sid), &intent)
	if err != nil || !found {
		return false, err
	}
	if intent.Path != currentPath {
		return false, nil
	}

	// Delete first: replay must fire at most once per stored intent.
	if err := s.cache.Invalidate(ctx, intentKey(sid)); err != nil {
		return false, err
	}
	s.log.Info("replaying enrollment intent",
		slog.String("op", op),
		slog.String("item_id", intent.ItemID),
		slog.String("kind", string(intent.Kind)))
	fn(intent)
	return true, nil
}

// MigrateIntent moves a pending intent from one session id to another.
// Login rotates the session id; without this the intent recorded
// before the redirect would be orphaned under the old id.
func (s *Store) MigrateIntent(ctx context.Context, oldSID, newSID string) error {
	if oldSID == "" || oldSID == newSID {
		return nil
	}

	var intent Intent
	found, err := s.cache.Get(ctx, intentKey(oldSID), &intent)
	if err != nil || !found {
		return err
	}
	if err := s.cache.Set(ctx, intentKey(newSID), intent, s.cfg.TTL); err != nil {
		return err
	}
	return s.cache.Invalidate(ctx, intentKey(oldSID))
}
