package quickstart

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// log is shared by the package; tests and the run command may swap it for a
// logger with a capture hook.
var log logrus.FieldLogger = logrus.StandardLogger()

// SetLogger redirects package logging.
func SetLogger(l logrus.FieldLogger) {
	log = l
}

// EncounterSize is the fixed small size prepended to every catalog.
const EncounterSize = 75

// SizeEntry pairs a valid map size with its display label.
type SizeEntry struct {
	Size  int
	Label string
}

// sizeTiers annotates the four well-known sizes; anything else is listed
// without a tier.
var sizeTiers = map[int]string{
	200: "small",
	250: "medium",
	300: "large",
	350: "extreme",
}

// BuildCatalog derives the valid map size list from the host's defaults.
// The 75 "encounter" entry always comes first. An empty host list means the
// defaults are unavailable: an error is logged and the empty catalog tells
// callers to skip snapping.
func BuildCatalog(hostSizes []int) []SizeEntry {
	if len(hostSizes) == 0 {
		log.Error("host default map sizes unavailable; size snapping skipped")
		return nil
	}

	entries := make([]SizeEntry, 0, len(hostSizes)+1)
	entries = append(entries, SizeEntry{Size: EncounterSize, Label: sizeLabel(EncounterSize, "encounter")})
	for _, size := range hostSizes {
		entries = append(entries, SizeEntry{Size: size, Label: sizeLabel(size, sizeTiers[size])})
	}
	return entries
}

// SnapToNearest adjusts cfg.MapSize to the catalog entry with the smallest
// absolute difference. Ties keep the earlier entry, which favors the
// smaller size since the encounter entry is first and host sizes ascend.
// Snapping an already valid size is a no-op.
func SnapToNearest(cfg *Config, catalog []SizeEntry) {
	if len(catalog) == 0 {
		return
	}

	best := catalog[0].Size
	bestDiff := absDiff(cfg.MapSize, best)
	for _, entry := range catalog[1:] {
		if d := absDiff(cfg.MapSize, entry.Size); d < bestDiff {
			best = entry.Size
			bestDiff = d
		}
	}
	cfg.MapSize = best
}

func sizeLabel(size int, tier string) string {
	if tier == "" {
		return fmt.Sprintf("%d x %d", size, size)
	}
	return fmt.Sprintf("%d x %d (%s)", size, size, tier)
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
