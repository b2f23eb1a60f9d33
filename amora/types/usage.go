package types

// UsageKind selects which daily counter a quota operation targets.
type UsageKind string

const (
	UsageSwipe   UsageKind = "swipe"
	UsageMessage UsageKind = "message"
)
