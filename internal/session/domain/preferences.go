package domain

import "context"

type Flag string

const (
	FlagOnboardingCompleted Flag = "isOnboardingCompleted"
	FlagHasLoggedInBefore   Flag = "hasLoggedInBefore"
)

// Preferences stores durable boolean flags, an unknown flag reads as false.
type Preferences interface {
	Get(ctx context.Context, flag Flag) (bool, error)
	Set(ctx context.Context, flag Flag, value bool) error
}
