package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// Заполняются через -ldflags "-X squad-sim/internal/version.BuildDate=..."
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
)

// buildEpoch - день ноль нумерации сборок.
var buildEpoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// VersionInfo describes the build metadata in structured form.
type VersionInfo struct {
	BuildID    int
	BuildDate  string
	Commit     string
	Branch     string
	GoVersion  string
	Modified   bool // собрано из грязного дерева
	Calculated bool
	Error      string
}

// CalculateBuildID возвращает номер сборки: число дней от buildEpoch.
func CalculateBuildID(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("build date is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid build date %q: %w", date, err)
	}

	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("build date %s is before epoch", date)
	}

	// Using hours avoids DST issues; epoch and build date are both UTC.
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Info returns structured version information.
// Без ldflags коммит берётся из VCS-меток, которые вшивает go build.
func Info() VersionInfo {
	info := VersionInfo{
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Branch:    BuildBranch,
		GoVersion: runtime.Version(),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = s.Value
				}
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}
	}

	id, err := CalculateBuildID(BuildDate)
	if err != nil {
		info.Error = err.Error()
		return info
	}

	info.BuildID = id
	info.Calculated = true
	return info
}

// String returns a human-readable build string.
func String() string {
	return Info().String()
}

func (v VersionInfo) String() string {
	commit := coalesce(shortCommit(v.Commit), "unknown")
	if v.Modified {
		commit += "+dirty"
	}

	if !v.Calculated {
		return fmt.Sprintf("squad-sim dev build commit[%s] %s", commit, v.GoVersion)
	}

	return fmt.Sprintf(
		"squad-sim build %d (%s) commit[%s] branch[%s] %s",
		v.BuildID,
		v.BuildDate,
		commit,
		coalesce(v.Branch, "unknown"),
		v.GoVersion,
	)
}

func shortCommit(c string) string {
	if len(c) > 12 {
		return c[:12]
	}
	return c
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
