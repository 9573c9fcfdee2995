// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of expgen

package experiments

// Policy is the default activation state assigned to an experiment by its
// rollout record. All views derived from a policy (metadata default, fixed
// accessor body, inclusion marker, build-tag category) hang off this one
// type so that adding a tag cannot leave a lookup table behind.
type Policy int

const (
	// PolicyBroken marks an experiment that must not be enabled anywhere,
	// not even for testing.
	PolicyBroken Policy = iota

	// PolicyDisabled is off by default but may be enabled at runtime.
	PolicyDisabled

	// PolicyEnabled is on by default.
	PolicyEnabled

	// PolicyDebugOnly is on in debug builds and off otherwise.
	PolicyDebugOnly
)

// ParsePolicyValue parses the rollout document's "default" field. Four
// literal forms are recognized: the YAML booleans true and false and the
// strings "broken" and "debug".
func ParsePolicyValue(v any) (Policy, bool) {
	switch value := v.(type) {
	case bool:
		if value {
			return PolicyEnabled, true
		}
		return PolicyDisabled, true
	case string:
		switch value {
		case "broken":
			return PolicyBroken, true
		case "debug":
			return PolicyDebugOnly, true
		}
	}
	return PolicyBroken, false
}

func (p Policy) String() string {
	switch p {
	case PolicyBroken:
		return "broken"
	case PolicyDisabled:
		return "disabled"
	case PolicyEnabled:
		return "enabled"
	case PolicyDebugOnly:
		return "debug-only"
	default:
		return "unknown"
	}
}

// DefaultExpr is the Go expression populating the metadata table's default
// field.
func (p Policy) DefaultExpr() string {
	switch p {
	case PolicyEnabled:
		return "true"
	case PolicyDebugOnly:
		return "expruntime.DebugBuild"
	default:
		return "false"
	}
}

// ReturnExpr is the body of a fixed-mode accessor.
func (p Policy) ReturnExpr() string {
	switch p {
	case PolicyEnabled:
		return "return true"
	case PolicyDebugOnly:
		return "return expruntime.DebugBuild"
	default:
		return "return false"
	}
}

// MarkerExpr is the value of the inclusion marker constant in fixed mode.
// Broken and disabled experiments have their code path compiled out, so no
// marker is emitted for them.
func (p Policy) MarkerExpr() (string, bool) {
	switch p {
	case PolicyEnabled:
		return "true", true
	case PolicyDebugOnly:
		return "expruntime.DebugBuild", true
	default:
		return "", false
	}
}

// BuildCategory is the build-tag map category. Broken experiments are
// dropped from the map entirely.
func (p Policy) BuildCategory() (string, bool) {
	switch p {
	case PolicyDisabled:
		return "off", true
	case PolicyEnabled:
		return "on", true
	case PolicyDebugOnly:
		return "dbg", true
	default:
		return "", false
	}
}
