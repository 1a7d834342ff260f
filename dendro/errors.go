package dendro

import "errors"

// ErrUnknownGroup indicates a merge record referencing a group ID that is
// neither a seed group nor the child of an earlier record. It means the
// merge log and the item list do not belong to the same run.
var ErrUnknownGroup = errors.New("dendro: merge record references unknown group")
