package store

import (
	"encoding/json"

	"go.uber.org/zap"
)

// Load decodes the named slot into T. A slot that is absent, unreadable, or
// undecodable yields the caller-supplied default; the failure is logged and
// never surfaced. Persistence is best-effort by contract, so callers get a
// usable value on every path.
func Load[T any](s *LocalStore, key string, def T) T {
	raw, ok, err := s.Get(key)
	if err != nil {
		s.logger.Warn("slot read failed, falling back to default",
			zap.String("slot", key), zap.Error(err))
		return def
	}
	if !ok {
		return def
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.logger.Warn("slot holds undecodable data, falling back to default",
			zap.String("slot", key), zap.Error(err))
		return def
	}
	return v
}

// Save encodes v as JSON and writes it to the named slot. Failures are logged
// and swallowed: a full disk or locked database must never take the running
// session down with it.
func Save[T any](s *LocalStore, key string, v T) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.logger.Warn("slot value failed to encode, skipping persist",
			zap.String("slot", key), zap.Error(err))
		return
	}
	if err := s.Set(key, raw); err != nil {
		s.logger.Warn("slot write failed, in-memory state remains authoritative",
			zap.String("slot", key), zap.Error(err))
	}
}
