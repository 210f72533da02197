package version

import (
	"fmt"
	"time"
)

// Set through -ldflags "-X github.com/automoto/betrothed/version.BuildDate=2026-10-18".
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
)

var buildEpoch = time.Date(1994, time.June, 13, 0, 0, 0, 0, time.UTC)

// Info describes the running build.
type Info struct {
	BuildID   int
	BuildDate string
	Commit    string
	Err       error
}

// CalculateBuildID returns the number of whole days between the epoch and BuildDate.
func CalculateBuildID() (int, error) {
	if BuildDate == "" {
		return 0, fmt.Errorf("version: BuildDate is empty")
	}
	t, err := time.ParseInLocation("2006-01-02", BuildDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("version: invalid BuildDate %q: %w", BuildDate, err)
	}
	return BuildIDFor(t)
}

// BuildIDFor returns the build ID a build made on t would carry.
func BuildIDFor(t time.Time) (int, error) {
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("version: %s is before epoch", t.Format("2006-01-02"))
	}
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Current returns build info. It never fails; Err records why BuildID is zero.
func Current() Info {
	id, err := CalculateBuildID()
	return Info{BuildID: id, BuildDate: BuildDate, Commit: BuildCommit, Err: err}
}

func (i Info) String() string {
	if i.Err != nil {
		return "dev"
	}
	if i.Commit != "" {
		return fmt.Sprintf("build %d (%s)", i.BuildID, i.Commit)
	}
	return fmt.Sprintf("build %d", i.BuildID)
}
