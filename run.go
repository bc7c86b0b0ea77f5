package twincount

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// RunResult describes one completed increment operation.
type RunResult struct {
	ID            uuid.UUID       `json:"id"`
	Strategy      Strategy        `json:"strategy"`
	Granularity   LockGranularity `json:"granularity"`
	NumberOfItems int             `json:"numberOfItems"`
	Sum           int64           `json:"sum"`
	StartedAt     time.Time       `json:"startedAt"`
	Duration      time.Duration   `json:"duration"`
}

// Expected is the sum a run on a freshly constructed array must return.
func (r RunResult) Expected() int64 {
	return 2 * int64(r.NumberOfItems)
}

func (r RunResult) MarshalBinary() ([]byte, error) {
	return json.Marshal(r)
}

func (r *RunResult) UnmarshalBinary(b []byte) error {
	return json.Unmarshal(b, r)
}
