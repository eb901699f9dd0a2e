package engine

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Version is the running engine version, recorded in save headers.
const Version = "1.3.7"

// HeaderMode tells the version pre-check how much of the save it is vetting.
type HeaderMode int

const (
	// HeaderModeMap vets a full map/session load.
	HeaderModeMap HeaderMode = iota
	// HeaderModeWorld vets a world-only load.
	HeaderModeWorld
)

// VersionGuard runs the version-compatibility pre-check before a save is
// loaded. On mismatch it reports the problem itself (here: a warning log,
// standing in for the confirmation dialog) and does not invoke the
// continuation.
type VersionGuard struct {
	saves *SaveRegistry
	log   logrus.FieldLogger
}

// NewVersionGuard creates a guard over the given registry.
func NewVersionGuard(saves *SaveRegistry, log logrus.FieldLogger) *VersionGuard {
	return &VersionGuard{saves: saves, log: log}
}

// CheckVersionAndLoad parses the save header at path and calls onSuccess
// only when the save's engine version is compatible with the running one.
func (g *VersionGuard) CheckVersionAndLoad(path string, mode HeaderMode, onSuccess func()) {
	payload, err := g.saves.Read(path)
	if err != nil {
		g.log.WithError(err).WithField("path", path).Error("version pre-check failed to read save")
		return
	}
	if !VersionsCompatible(payload.EngineVersion, Version) {
		g.log.WithFields(logrus.Fields{
			"save_version":   payload.EngineVersion,
			"engine_version": Version,
			"mode":           mode,
		}).Warn("save was created by an incompatible engine version")
		return
	}
	onSuccess()
}

// VersionsCompatible reports whether two engine versions can load each
// other's saves. Major and minor must match; patch differences are fine.
func VersionsCompatible(a, b string) bool {
	return majorMinor(a) != "" && majorMinor(a) == majorMinor(b)
}

func majorMinor(v string) string {
	parts := strings.Split(v, ".")
	if len(parts) < 2 {
		return ""
	}
	return parts[0] + "." + parts[1]
}
