package common

import (
	"errors"

	"github.com/questx-lab/marketplace/config"
)

var ErrBeforeGenesis = errors.New("timestamp is before genesis")

// Slot is a (period, thread) pair of the chain clock.
type Slot struct {
	Period uint64 `json:"period"`
	Thread uint64 `json:"thread"`
}

func (s Slot) Before(o Slot) bool {
	if s.Period != o.Period {
		return s.Period < o.Period
	}

	return s.Thread < o.Thread
}

// SlotAt returns the slot containing ts (milliseconds).
func SlotAt(chain config.ChainConfigs, ts uint64) (Slot, error) {
	if ts < chain.GenesisTimestamp {
		return Slot{}, ErrBeforeGenesis
	}

	elapsed := ts - chain.GenesisTimestamp
	period := elapsed / chain.T0
	thread := (elapsed - period*chain.T0) / (chain.T0 / chain.ThreadCount)

	return Slot{Period: period, Thread: thread}, nil
}

// SlotStart returns the first millisecond of slot.
func SlotStart(chain config.ChainConfigs, slot Slot) uint64 {
	return chain.GenesisTimestamp + slot.Period*chain.T0 + slot.Thread*(chain.T0/chain.ThreadCount)
}

// SlotEnd returns the last millisecond of slot.
func SlotEnd(chain config.ChainConfigs, slot Slot) uint64 {
	return SlotStart(chain, slot) + chain.T0/chain.ThreadCount - 1
}

// ExpiryWindow returns the delivery window of a message scheduled at ts: from
// the slot of ts to the last thread of the period ExpiryWindowPeriods later.
func ExpiryWindow(chain config.ChainConfigs, ts uint64) (Slot, Slot, error) {
	start, err := SlotAt(chain, ts)
	if err != nil {
		return Slot{}, Slot{}, err
	}

	end := Slot{
		Period: start.Period + chain.ExpiryWindowPeriods,
		Thread: chain.ThreadCount - 1,
	}

	return start, end, nil
}
