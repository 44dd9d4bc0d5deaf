package wealthsense

import (
	"errors"
	"fmt"
)

// pinLength is the fixed access-secret policy: exactly this many digits.
// The product wavered between 4 and 6; this implementation settles on 4.
const pinLength = 4

var (
	// ErrWrongPIN reports a failed unlock or export verification. It never
	// changes the lock state and there is no lockout: retries are unlimited.
	ErrWrongPIN = errors.New("incorrect PIN")
	// ErrLocked reports an operation attempted while the gate is locked.
	ErrLocked = errors.New("ledger is locked")
)

// ValidatePIN checks the PIN format policy: exactly pinLength numeric digits.
func ValidatePIN(pin string) error {
	if len(pin) != pinLength {
		return fmt.Errorf("PIN must be exactly %d digits", pinLength)
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return fmt.Errorf("PIN must be exactly %d digits", pinLength)
		}
	}
	return nil
}

// Gate is the optional PIN lock wrapping entry into the ledger and its
// export path. Two states, Locked and Unlocked; the initial state is
// Locked exactly when a PIN is stored.
//
// The stored PIN is compared by exact string equality: the backup
// document carries it in clear so that export/import round-trips, which
// rules out one-way hashing.
type Gate struct {
	ledger   *Ledger
	unlocked bool
}

// NewGate wraps a ledger, computing the initial lock state from the
// presence of a stored PIN.
func NewGate(l *Ledger) *Gate {
	return &Gate{ledger: l, unlocked: l.PIN() == ""}
}

// Locked reports whether the gate currently blocks entry.
func (g *Gate) Locked() bool { return !g.unlocked }

// Unlock attempts entry with the submitted digits. On success the gate
// opens; on failure it stays locked and surfaces ErrWrongPIN. The caller
// owns clearing any input buffer either way.
func (g *Gate) Unlock(pin string) error {
	if g.ledger.PIN() == "" {
		g.unlocked = true
		return nil
	}
	if pin != g.ledger.PIN() {
		return ErrWrongPIN
	}
	g.unlocked = true
	return nil
}

// Lock re-locks immediately, independent of any timeout. With no PIN set
// there is nothing to lock behind, so it is a no-op.
func (g *Gate) Lock() {
	if g.ledger.PIN() != "" {
		g.unlocked = false
	}
}

// SetPIN installs a new access secret. Empty input means "disable": the
// PIN is cleared and the gate forced open. Anything else must satisfy the
// digit policy or the call fails with no state change. Requires the gate
// to be open.
func (g *Gate) SetPIN(pin string) error {
	if !g.unlocked {
		return ErrLocked
	}
	if pin == "" {
		g.ledger.setPIN("")
		g.unlocked = true
		return nil
	}
	if err := ValidatePIN(pin); err != nil {
		return err
	}
	g.ledger.setPIN(pin)
	return nil
}

// VerifyPIN is the dedicated re-entry check gating export. With a PIN
// set, the submitted digits must match exactly; a mismatch blocks the
// caller with ErrWrongPIN but does not change the lock state.
func (g *Gate) VerifyPIN(pin string) error {
	if g.ledger.PIN() == "" {
		return nil
	}
	if pin != g.ledger.PIN() {
		return ErrWrongPIN
	}
	return nil
}
