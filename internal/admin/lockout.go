package admin

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Lockout counts failed logins per username and client IP. After limit
// failures inside window the pair is refused until the window expires.
type Lockout struct {
	failures *gocache.Cache
	limit    int
	window   time.Duration
}

// NewLockout builds an in-process lockout. Replicas keep separate counters.
func NewLockout(limit int, window time.Duration) *Lockout {
	return &Lockout{
		failures: gocache.New(window, 2*window),
		limit:    limit,
		window:   window,
	}
}

func lockoutKey(username, ip string) string {
	return strings.ToLower(username) + "|" + ip
}

// Locked reports whether the pair is refused and until when.
func (l *Lockout) Locked(username, ip string) (bool, time.Time) {
	v, expires, ok := l.failures.GetWithExpiration(lockoutKey(username, ip))
	if !ok {
		return false, time.Time{}
	}
	return v.(int) >= l.limit, expires
}

// RecordFailure counts one failure. The window starts at the first failure.
func (l *Lockout) RecordFailure(username, ip string) {
	key := lockoutKey(username, ip)
	if err := l.failures.Add(key, 1, l.window); err == nil {
		return
	}
	_, _ = l.failures.IncrementInt(key, 1)
}

// Clear forgets the failures after a successful login.
func (l *Lockout) Clear(username, ip string) {
	l.failures.Delete(lockoutKey(username, ip))
}
