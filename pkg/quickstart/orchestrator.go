package quickstart

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/verdantsim/verdant/pkg/engine"
)

// Task phase labels shown by the host while the deferred work runs.
const (
	PhaseQuickstart    = "Quickstart"
	PhaseGeneratingMap = "Generating map"
	PhaseLoadingSave   = "Loading save"
)

// Host is the bridge the host engine must provide. It covers every engine
// internal the orchestrator touches, so the core never reaches into engine
// state directly.
type Host interface {
	DefaultMapSizes() []int
	FindScenario(name string) (engine.Scenario, bool)
	ListSaves() ([]engine.SaveFileInfo, error)
	SavePath(name string) string
	SaveExists(path string) bool
	CheckVersionAndLoad(path string, onSuccess func())
	ClearWorld()
	ResetGameContext()
	RunGeneration(ctx context.Context) error
	StartLoadedSession(ctx context.Context, saveName string) error
	Enqueue(label string, fn func(ctx context.Context) error)
	StartupErrors() bool
	StartupWarnings() bool
	QuicktestRequested() bool
}

// AbortError is the recoverable outcome of a validating step. It is caught
// at the top of InitiateQuickstart, logged once, and never escapes to the
// host. Any other error propagates through normal host error reporting.
type AbortError struct {
	Reason string
}

func (e *AbortError) Error() string {
	return "quickstart aborted: " + e.Reason
}

func abortf(format string, args ...interface{}) error {
	return &AbortError{Reason: fmt.Sprintf(format, args...)}
}

// Orchestrator sequences validation, the countdown gate, and the two
// automated actions. All methods must be called from the host's single
// update goroutine; the pending flags are unguarded by design.
type Orchestrator struct {
	host  Host
	store *Store
	log   logrus.FieldLogger

	cfg  *Config
	gate *AbortGate

	quickstartPending    bool
	mapGenerationPending bool
	confirmedScenario    engine.Scenario
}

// New creates an orchestrator over the given host bridge and settings store.
func New(host Host, store *Store, logger logrus.FieldLogger) *Orchestrator {
	if logger == nil {
		logger = log
	}
	return &Orchestrator{host: host, store: store, log: logger}
}

// Config returns the loaded configuration. Nil before OnEarlyInitialize.
func (o *Orchestrator) Config() *Config {
	return o.cfg
}

// Gate returns the armed abort gate, or nil when quickstart is not pending.
func (o *Orchestrator) Gate() *AbortGate {
	return o.gate
}

// QuickstartPending reports whether the automated action is still pending.
func (o *Orchestrator) QuickstartPending() bool {
	return o.quickstartPending
}

// MapGenerationPending reports whether a prepared generation has not yet
// been consumed by the host's generation pipeline.
func (o *Orchestrator) MapGenerationPending() bool {
	return o.mapGenerationPending
}

// OnEarlyInitialize loads the configuration and, when quickstart is enabled,
// arms the abort gate. Name resolution for the gate's display text never
// fails; unresolved names degrade to an empty string.
func (o *Orchestrator) OnEarlyInitialize() error {
	cfg, err := o.store.Load()
	if err != nil {
		return err
	}
	o.cfg = cfg

	if cfg.Mode == ModeDisabled {
		return nil
	}

	o.gate = NewAbortGate(o.pendingAction(), o.handleAbort)
	o.quickstartPending = true
	o.log.WithField("mode", cfg.Mode).Debug("quickstart armed")
	return nil
}

// OnLateInitialize rebuilds the map size catalog, snaps the configured size,
// and schedules the deferred quickstart task. The task is only scheduled
// when devMode is set: automated startup must never silently hijack a
// non-development run, regardless of the persisted mode.
func (o *Orchestrator) OnLateInitialize(devMode bool) {
	catalog := BuildCatalog(o.host.DefaultMapSizes())
	if o.cfg != nil {
		SnapToNearest(o.cfg, catalog)
	}

	if !devMode || !o.quickstartPending {
		return
	}
	o.host.Enqueue(PhaseQuickstart, func(ctx context.Context) error {
		return o.InitiateQuickstart(ctx)
	})
}

// InitiateQuickstart is the deferred task body. It no-ops when the operator
// already aborted, otherwise tears down the gate and runs the configured
// action. Recoverable aborts are logged here as a single clean line.
func (o *Orchestrator) InitiateQuickstart(ctx context.Context) error {
	if !o.quickstartPending {
		return nil
	}
	o.quickstartPending = false
	if o.gate != nil {
		o.gate.Commit()
		o.gate = nil
	}
	return o.logAborts(o.runConfiguredAction(ctx))
}

// GenerateNow triggers map generation immediately, bypassing the countdown.
// Used by the debug toolbar path.
func (o *Orchestrator) GenerateNow(ctx context.Context) error {
	o.quickstartPending = false
	if o.gate != nil {
		o.gate.Commit()
		o.gate = nil
	}
	return o.logAborts(o.initiateMapGeneration(ctx))
}

// ResolveScenario returns the quickstart scenario while a prepared
// generation is pending, else passes original through unchanged.
func (o *Orchestrator) ResolveScenario(original engine.Scenario) engine.Scenario {
	if !o.mapGenerationPending {
		return original
	}
	return o.confirmedScenario
}

// ResolveMapSize returns the configured size while a prepared generation is
// pending, else passes original through unchanged.
func (o *Orchestrator) ResolveMapSize(original int) int {
	if !o.mapGenerationPending || o.cfg == nil {
		return original
	}
	return o.cfg.MapSize
}

// MarkGenerationConsumed clears the pending-generation flag. The host's
// generation pipeline calls this once it commits, so the override never
// leaks into later, unrelated generation.
func (o *Orchestrator) MarkGenerationConsumed() {
	o.mapGenerationPending = false
}

func (o *Orchestrator) runConfiguredAction(ctx context.Context) error {
	if err := o.validateStartupLog(); err != nil {
		return err
	}

	switch o.cfg.Mode {
	case ModeDisabled:
		return nil
	case ModeGenerateMap:
		if o.host.QuicktestRequested() {
			// Another host-driven path forces the scene change; only arm
			// the override here.
			return o.prepareMapGeneration()
		}
		return o.initiateMapGeneration(ctx)
	case ModeLoadMap:
		return o.initiateSaveLoading(ctx)
	default:
		return fmt.Errorf("unknown quickstart mode %q", o.cfg.Mode)
	}
}

// validateStartupLog aborts the sequence when the session is already
// faulted, so an unattended run doesn't compound a broken state.
func (o *Orchestrator) validateStartupLog() error {
	if o.cfg.StopOnErrors && o.host.StartupErrors() {
		return abortf("errors were logged before quickstart could run")
	}
	if o.cfg.StopOnWarnings && o.host.StartupWarnings() {
		return abortf("warnings were logged before quickstart could run")
	}
	return nil
}

// prepareMapGeneration validates the scenario and arms the generation
// override without forcing a scene change.
func (o *Orchestrator) prepareMapGeneration() error {
	scenario, ok := o.host.FindScenario(o.cfg.Scenario)
	if !ok {
		return abortf("scenario %q not found", o.cfg.Scenario)
	}
	o.confirmedScenario = scenario
	o.mapGenerationPending = true
	o.log.WithFields(logrus.Fields{
		"scenario": scenario.Name,
		"map_size": o.cfg.MapSize,
	}).Info("quickstart: generating map")
	return nil
}

func (o *Orchestrator) initiateMapGeneration(ctx context.Context) error {
	if err := o.prepareMapGeneration(); err != nil {
		return err
	}

	o.host.ClearWorld()
	o.host.Enqueue(PhaseGeneratingMap, func(ctx context.Context) error {
		o.host.ResetGameContext()
		return o.host.RunGeneration(ctx)
	})
	return nil
}

func (o *Orchestrator) initiateSaveLoading(ctx context.Context) error {
	name := o.cfg.SaveFile
	if name == "" {
		name = o.newestSaveName()
	}
	if name == "" {
		return abortf("no save file to load")
	}

	path := o.host.SavePath(name)
	if !o.host.SaveExists(path) {
		return abortf("save file %s does not exist", path)
	}
	o.log.WithField("save", name).Info("quickstart: loading save")

	if o.cfg.BypassVersionCheck {
		o.scheduleSaveLoad(name)
		return nil
	}
	o.host.CheckVersionAndLoad(path, func() {
		o.scheduleSaveLoad(name)
	})
	return nil
}

func (o *Orchestrator) scheduleSaveLoad(name string) {
	o.host.ClearWorld()
	o.host.Enqueue(PhaseLoadingSave, func(ctx context.Context) error {
		return o.host.StartLoadedSession(ctx, name)
	})
}

// pendingAction builds the gate's display description. Resolution here must
// not fail: a save name that can't be determined yet shows as empty.
func (o *Orchestrator) pendingAction() PendingAction {
	if o.cfg.Mode == ModeLoadMap {
		name := o.cfg.SaveFile
		if name == "" {
			name = o.newestSaveName()
		}
		return LoadSaveAction{SaveName: name}
	}
	return GenerateMapAction{Scenario: o.cfg.Scenario, MapSize: o.cfg.MapSize}
}

// newestSaveName returns the base name of the most recently modified save,
// or "" when there are none or the listing fails.
func (o *Orchestrator) newestSaveName() string {
	saves, err := o.host.ListSaves()
	if err != nil || len(saves) == 0 {
		return ""
	}
	return saves[0].Name
}

func (o *Orchestrator) handleAbort(disable bool) {
	o.quickstartPending = false
	o.gate = nil

	if !disable {
		o.log.Info("quickstart aborted by operator")
		return
	}
	o.cfg.Mode = ModeDisabled
	if err := o.store.Save(o.cfg); err != nil {
		o.log.WithError(err).Error("failed to persist disabled quickstart mode")
	}
	o.log.Info("quickstart aborted and disabled")
}

// logAborts converts a recoverable abort into a single error log line and
// swallows it; anything else surfaces to the caller untouched.
func (o *Orchestrator) logAborts(err error) error {
	var abort *AbortError
	if errors.As(err, &abort) {
		o.log.WithField("reason", abort.Reason).Error("quickstart aborted")
		return nil
	}
	return err
}
