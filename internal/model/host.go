package model

import (
	"encoding/json"

	"github.com/questx-lab/marketplace/internal/common"
)

// Operation is a top-level call submitted to the host.
type Operation struct {
	Caller   string          `json:"caller"`
	Target   string          `json:"target"`
	Function string          `json:"function"`
	Coins    uint64          `json:"coins"`
	Params   json.RawMessage `json:"params,omitempty"`
}

type Receipt struct {
	TxID      string          `json:"tx_id"`
	Timestamp uint64          `json:"timestamp"`
	Result    json.RawMessage `json:"result,omitempty"`
	Events    []Event         `json:"events"`
}

type Event struct {
	ID        int64           `json:"id"`
	TxID      string          `json:"tx_id"`
	Contract  string          `json:"contract"`
	Name      string          `json:"name"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp uint64          `json:"timestamp"`
}

// ScheduledMessage asks the host to call Function of Target, with Target
// itself as the caller, at some point of the window [StartSlot, EndSlot].
type ScheduledMessage struct {
	ID        string          `json:"id"`
	Target    string          `json:"target"`
	Function  string          `json:"function"`
	Params    json.RawMessage `json:"params,omitempty"`
	StartSlot common.Slot     `json:"start_slot"`
	EndSlot   common.Slot     `json:"end_slot"`
	StartTime uint64          `json:"start_time"`
	EndTime   uint64          `json:"end_time"`
}

type BalanceRequest struct {
	Address string `json:"address"`
}

type BalanceResponse struct {
	Address string `json:"address"`
	Balance uint64 `json:"balance"`
}
