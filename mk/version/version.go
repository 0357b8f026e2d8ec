// Package version records build version information.
package version

import (
	"fmt"
	"runtime/debug"
	"strconv"
	"time"
)

// Variables replaced via -ldflags -X.
var (
	commit string
	date   string
	dirty  string
)

// Version records build version information.
type Version struct {
	Version string    `json:"version"`
	Commit  string    `json:"commit"`
	Date    time.Time `json:"date"`
	Dirty   bool      `json:"dirty"`
}

func (v Version) String() string {
	return v.Version
}

// fromBuildInfo fills commit, date, and dirty from VCS stamping of the Go toolchain.
func fromBuildInfo() (c string, dt time.Time, d bool, ok bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			c = s.Value
		case "vcs.time":
			dt, _ = time.Parse(time.RFC3339, s.Value)
		case "vcs.modified":
			d = s.Value == "true"
		}
	}
	return c, dt, d, len(c) == 40 && !dt.IsZero()
}

// Get returns version information.
// It prefers values set via -ldflags, then VCS stamping in the binary.
func Get() (v Version) {
	if dt, e := strconv.ParseInt(date, 10, 64); e == nil && len(commit) == 40 {
		v.Commit, v.Date, v.Dirty = commit, time.Unix(dt, 0), dirty != ""
	} else if c, dt, d, ok := fromBuildInfo(); ok {
		v.Commit, v.Date, v.Dirty = c, dt, d
	} else {
		v.Version = "development"
		v.Commit = "unknown"
		v.Date = time.Now()
		v.Dirty = true
		return
	}

	dirtySuffix := ""
	if v.Dirty {
		dirtySuffix = "-dirty"
	}
	v.Version = fmt.Sprintf("v0.0.0-%s-%s%s", v.Date.UTC().Format("20060102150405"), v.Commit[:12], dirtySuffix)
	return
}
