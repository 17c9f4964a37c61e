// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package once

// Guard is a run-once guard.
//
// Do runs f if the guard observed itself unset and set it. Later calls skip f.
// Done reports the fired flag, read under the variant's own ordering policy.
// A Guard must not be copied after first use.
type Guard interface {
	Do(f func())
	Done() bool
}

// Policy is the ordering discipline attached to a guard's fired flag.
type Policy uint8

const (
	// PolicyNone is a plain memory access the compiler may cache or reorder.
	PolicyNone Policy = iota
	// PolicyVolatile forces a fresh load and store on every access.
	PolicyVolatile
	// PolicyRelaxed is an atomic access with no cross-goroutine ordering.
	PolicyRelaxed
	// PolicySeqCst is an atomic access in the single global order.
	PolicySeqCst
	// PolicyExclusive reads under a shared lock and writes under an exclusive lock.
	PolicyExclusive
	// PolicyCompareAndSwap flips the flag in one indivisible step.
	PolicyCompareAndSwap
)

var policyNames = [...]string{
	PolicyNone:           "none",
	PolicyVolatile:       "volatile",
	PolicyRelaxed:        "relaxed",
	PolicySeqCst:         "seqcst",
	PolicyExclusive:      "exclusive",
	PolicyCompareAndSwap: "cas",
}

func (p Policy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return "unknown"
}

// Variant names, matching the benchmark entries they register under.
const (
	NamePlain    = "mut_bool"
	NameVolatile = "mut_volatile_bool"
	NameRelaxed  = "abool_relaxed"
	NameSeqCst   = "abool_seqcst"
	NameRWLock   = "rwlock"
	NameCAS      = "cas"
)

// Variant describes one guard implementation.
type Variant struct {
	Name   string
	Policy Policy
	// Sound reports whether every flag access is atomic or lock-protected,
	// so concurrent use is defined behavior. It does not imply the race
	// detector accepts it: atomix-backed flags order through plain loads and
	// stores the detector cannot see.
	Sound bool
	// ExactlyOnce reports whether concurrent first callers run the action
	// exactly once.
	ExactlyOnce bool
	// New returns a fresh, unset guard.
	New func() Guard
}

var variants = []Variant{
	{Name: NamePlain, Policy: PolicyNone, New: func() Guard { return new(Plain) }},
	{Name: NameVolatile, Policy: PolicyVolatile, New: func() Guard { return new(Volatile) }},
	{Name: NameRelaxed, Policy: PolicyRelaxed, Sound: true, New: func() Guard { return new(Relaxed) }},
	{Name: NameSeqCst, Policy: PolicySeqCst, Sound: true, New: func() Guard { return new(SeqCst) }},
	{Name: NameRWLock, Policy: PolicyExclusive, Sound: true, New: func() Guard { return new(RWLock) }},
	{Name: NameCAS, Policy: PolicyCompareAndSwap, Sound: true, ExactlyOnce: true, New: func() Guard { return new(CAS) }},
}

// Variants returns every guard variant in order of increasing
// synchronization overhead, with [CAS] last.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}

// Lookup returns the variant registered under name.
func Lookup(name string) (Variant, bool) {
	for _, v := range variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}
