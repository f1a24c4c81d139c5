package aggregator

import (
	"fmt"
	"tftstats/pkg/messages"
)

// NotInitializedError is returned when a aggregator is used before Initialize or FromDict.
type NotInitializedError struct {
	Kind string
	Key  string
}

func (e *NotInitializedError) Error() string {
	return fmt.Sprintf(messages.NotInitializedMsg, e.Kind, e.Key)
}

// IdentityMismatchError is returned when a unit doesn't belong to the aggregator key.
type IdentityMismatchError struct {
	Kind     string
	Expected string
	Got      string
}

func (e *IdentityMismatchError) Error() string {
	return fmt.Sprintf("incorrect %s, aggregator is '%s' and input data is '%s'", e.Kind, e.Expected, e.Got)
}
