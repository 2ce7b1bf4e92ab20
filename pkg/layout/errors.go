package layout

import "fmt"

// UsageError reports an API misuse, such as requesting an unsupported dump
// mode. It is a programmer error: callers are not expected to recover from
// it, so the engine panics with it to surface the bug immediately.
type UsageError struct {
	Op     string
	Detail string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("layout: invalid use of %s: %s", e.Op, e.Detail)
}

// InvariantError reports a broken internal invariant, such as computing a
// canvas location for a box with no parent. It is fatal to the current
// layout pass: the tree was mutated in an invalid order and continuing
// would produce silently wrong geometry.
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("layout: invariant violated in %s: %s", e.Op, e.Detail)
}
