package watchset

import "errors"

var (
	ErrNotRoot = errors.New("not a watch root")
)
