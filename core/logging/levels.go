package logging

import (
	"os"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// PkgLevel represents log level of a package.
type PkgLevel struct {
	pkg string
	lvl byte
	al  zap.AtomicLevel
}

// Package returns package name.
func (pl PkgLevel) Package() string {
	return pl.pkg
}

// Level returns log level as a letter.
func (pl PkgLevel) Level() byte {
	return pl.lvl
}

// SetLevel assigns log level.
// The first letter of input selects the level: V or D for debug, I for info, W for warning,
// E for error, F or N for fatal only. Other inputs select info level.
func (pl *PkgLevel) SetLevel(input string) {
	if len(input) == 0 {
		pl.lvl = 'I'
		pl.al.SetLevel(zap.InfoLevel)
		return
	}

	switch input[0] {
	case 'V', 'D':
		pl.al.SetLevel(zap.DebugLevel)
	case 'I':
		pl.al.SetLevel(zap.InfoLevel)
	case 'W':
		pl.al.SetLevel(zap.WarnLevel)
	case 'E':
		pl.al.SetLevel(zap.ErrorLevel)
	case 'F', 'N':
		pl.al.SetLevel(zap.DPanicLevel)
	default:
		pl.lvl = 'I'
		pl.al.SetLevel(zap.InfoLevel)
		return
	}
	pl.lvl = input[0]
}

var (
	pkgLevelsLock sync.Mutex
	pkgLevels     = map[string]*PkgLevel{}
)

// ListLevels returns all package levels, sorted by package name.
func ListLevels() (list []PkgLevel) {
	pkgLevelsLock.Lock()
	defer pkgLevelsLock.Unlock()
	for _, pl := range pkgLevels {
		list = append(list, *pl)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].pkg < list[j].pkg })
	return list
}

// FindLevel returns package log level object.
func FindLevel(pkg string) (pl *PkgLevel) {
	pkgLevelsLock.Lock()
	defer pkgLevelsLock.Unlock()
	return pkgLevels[pkg]
}

// GetLevel finds or creates package log level object.
func GetLevel(pkg string) (pl *PkgLevel) {
	pkgLevelsLock.Lock()
	defer pkgLevelsLock.Unlock()
	pl = pkgLevels[pkg]
	if pl == nil {
		pl = &PkgLevel{
			pkg: pkg,
			al:  zap.NewAtomicLevel(),
		}
		pl.SetLevel(envLevel(pkg))
		pkgLevels[pkg] = pl
	}
	return pl
}

// envLevel reads the level of a package from the environment.
// Loggers in this module are named sigtranlayer, sigdump, and sigtrandump.
// SIGTRAN_LOG_<pkg> is tried with the logger name as given and then in upper case, e.g. SIGTRAN_LOG_SIGTRANLAYER.
// SIGTRAN_LOG applies to packages without their own variable.
func envLevel(pkg string) string {
	for _, key := range []string{"SIGTRAN_LOG_" + pkg, "SIGTRAN_LOG_" + strings.ToUpper(pkg)} {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
	}
	return os.Getenv("SIGTRAN_LOG")
}
