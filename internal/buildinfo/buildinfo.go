package buildinfo

import "time"

// Set via -ldflags "-X github.com/loongsen/qcrelay/internal/buildinfo.CommitHash=..."
var (
	BuildTime  string
	CommitHash string
)

// StartTime is recorded when the process starts
var StartTime = time.Now().UTC().Format(time.RFC3339)

// Info is the build metadata reported by the health endpoint
type Info struct {
	BuildTime  string `json:"build_time,omitempty"`
	CommitHash string `json:"commit,omitempty"`
	StartedAt  string `json:"started_at"`
}

// Get returns the build metadata of the running binary
func Get() Info {
	return Info{
		BuildTime:  BuildTime,
		CommitHash: CommitHash,
		StartedAt:  StartTime,
	}
}
