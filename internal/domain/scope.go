package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=scope.go -destination=scope_mock.go -package=domain

// Scope is a region for which one shared daily event schedule is
// computed. Times produced for a scope are local to its Location; the
// timezone anchoring is explicit rather than inferred.
type Scope struct {
	Code     string // ISO 3166-1 alpha-3, e.g. "SAU"
	Name     string
	Location *time.Location
}

// ScopeProvider enumerates the scopes the daily recompute job must
// cover. Owned by the geography collaborator; read-only here.
type ScopeProvider interface {
	ListScopes(ctx context.Context) ([]Scope, error)
}

// DailyTimeCalculator is the external astronomy/geo collaborator. It
// returns the scope's event labels mapped to local HH:MM strings for
// the given date. Fails with ErrScopeNotFound or ErrCalculationError.
type DailyTimeCalculator interface {
	ComputeDailyTimes(ctx context.Context, scope Scope, date time.Time) (map[string]string, error)
}
