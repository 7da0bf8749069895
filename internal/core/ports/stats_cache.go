package ports

import "context"

// StatsCache is a best-effort TTL cache for dashboard and analytics
// payloads. Get reports a miss with (false, nil); errors are surfaced so
// callers can log them, but a failing cache must never fail the request.
type StatsCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}
