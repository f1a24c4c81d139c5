package messages

const (
	AggregateNotFound = "no %s aggregate found for %s"
	CouldNotDecode    = "couldn't decode the match file %s"
	CouldNotParse     = "couldn't parse the match %s"
	FailedToPersist   = "failed to persist the %s aggregate %s"
	NotInitializedMsg = "%s aggregator '%s' has not been initialized"
	PatchNotMatched   = "unable to match the patch, game_version: %s"
	SkippedUnitMsg    = "skipped unit %s on match %s: %v"
	UnknownScopeMsg   = "unknown scope %s"
)
