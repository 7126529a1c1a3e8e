package types

// CapabilitySet is the explicit permission parameter a host passes with a
// proposed transition. Privileged operations name the capability they
// need instead of consulting an ambient authorized-hash list.
type CapabilitySet uint32

const (
	// CapEmergencyWithdraw authorizes withdrawals flagged Emergency.
	CapEmergencyWithdraw CapabilitySet = 1 << iota

	// CapPausedOverride authorizes emergency withdrawals against a
	// paused pool.
	CapPausedOverride
)

// Has reports whether every capability in want is present.
func (c CapabilitySet) Has(want CapabilitySet) bool {
	return c&want == want
}
