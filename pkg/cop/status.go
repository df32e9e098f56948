package cop

import (
	"fmt"
	"strings"
)

// Status is the tri-state enablement value used both for a cop's default
// posture and for per-cop configuration entries. The pending state marks
// newly introduced cops that stay dormant until explicitly enabled or
// force-included.
type Status int

const (
	StatusUnset Status = iota
	StatusEnabled
	StatusDisabled
	StatusPending
)

// ParseStatus converts a configuration value into a Status. Booleans and the
// strings "true"/"false"/"enable"/"disable"/"pending" are accepted; anything
// else is an error.
func ParseStatus(v interface{}) (Status, error) {
	switch t := v.(type) {
	case bool:
		if t {
			return StatusEnabled, nil
		}
		return StatusDisabled, nil
	case string:
		switch strings.ToLower(t) {
		case "true", "enable", "enabled":
			return StatusEnabled, nil
		case "false", "disable", "disabled":
			return StatusDisabled, nil
		case "pending":
			return StatusPending, nil
		}
		return StatusUnset, fmt.Errorf("unrecognized enabled value %q", t)
	case nil:
		return StatusUnset, nil
	default:
		return StatusUnset, fmt.Errorf("unrecognized enabled value of type %T", v)
	}
}

// String returns the configuration-file spelling of the status.
func (s Status) String() string {
	switch s {
	case StatusEnabled:
		return "enabled"
	case StatusDisabled:
		return "disabled"
	case StatusPending:
		return "pending"
	default:
		return "unset"
	}
}
