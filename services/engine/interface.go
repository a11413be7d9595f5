package engine

import (
	"fmt"
	"time"

	"concierge/config"
	"concierge/models"
)

// ResolutionEngine turns one free-text booking utterance into structured,
// explained booking decisions. One outcome is returned per service the
// utterance names; a single synchronous pass, no hidden state, and the
// booking snapshot is read-only throughout.
type ResolutionEngine interface {
	Resolve(rawText string, now time.Time, snapshot []models.ExistingBooking) ([]models.ResolutionOutcome, error)
}

// Config carries the engine tunables. Zero values are replaced by defaults
// so a literal Config{} still behaves sensibly in tests.
type Config struct {
	AutoFillThreshold float64 // confidence at which a field may auto-fill without delegation
	BusinessOpenMin   int     // minutes from midnight
	BusinessCloseMin  int
	SlotStepMin       int // candidate scan granularity
	HorizonDays       int // how far ahead the slot engine looks
}

// DefaultConfig returns production defaults: business hours 09:00-19:00,
// 30-minute slot steps, a 14-day horizon and an 0.8 auto-fill threshold.
func DefaultConfig() Config {
	return Config{
		AutoFillThreshold: 0.8,
		BusinessOpenMin:   540,
		BusinessCloseMin:  1140,
		SlotStepMin:       30,
		HorizonDays:       14,
	}
}

// ConfigFromApp builds an engine config from the loaded application config.
func ConfigFromApp() Config {
	cfg := Config{
		AutoFillThreshold: config.AppConfig.AutoFillThreshold,
		BusinessOpenMin:   config.AppConfig.BusinessOpenMin,
		BusinessCloseMin:  config.AppConfig.BusinessCloseMin,
		SlotStepMin:       config.AppConfig.SlotStepMin,
		HorizonDays:       config.AppConfig.BookingHorizonDays,
	}
	return cfg.withDefaults()
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.AutoFillThreshold <= 0 {
		c.AutoFillThreshold = def.AutoFillThreshold
	}
	if c.BusinessCloseMin <= c.BusinessOpenMin {
		c.BusinessOpenMin = def.BusinessOpenMin
		c.BusinessCloseMin = def.BusinessCloseMin
	}
	if c.SlotStepMin <= 0 {
		c.SlotStepMin = def.SlotStepMin
	}
	if c.HorizonDays <= 0 {
		c.HorizonDays = def.HorizonDays
	}
	return c
}

// DefaultResolutionEngine is the production implementation.
type DefaultResolutionEngine struct {
	Cfg Config
}

// NewDefaultResolutionEngine builds an engine, filling config defaults.
func NewDefaultResolutionEngine(cfg Config) *DefaultResolutionEngine {
	return &DefaultResolutionEngine{Cfg: cfg.withDefaults()}
}

// Resolve runs the full pipeline: extraction, fuzzy-time resolution, the
// delegation policy (consulting the slot engine where autonomy allows),
// conflict analysis and explainability scoring.
func (e *DefaultResolutionEngine) Resolve(rawText string, now time.Time, snapshot []models.ExistingBooking) ([]models.ResolutionOutcome, error) {
	if isBlank(rawText) {
		return nil, ErrEmptyInput
	}
	if err := validateSnapshot(snapshot); err != nil {
		return nil, err
	}

	// Each completed sub-request holds its window against the ones after it,
	// so one utterance never books the user into overlapping appointments.
	working := append([]models.ExistingBooking(nil), snapshot...)

	subs := e.extract(rawText, now)
	outcomes := make([]models.ResolutionOutcome, 0, len(subs))
	for i := range subs {
		x := &subs[i]
		e.resolveTime(x, now)
		conflicts := e.applyDelegation(x, now, working)
		report := e.buildReport(x)
		outcomes = append(outcomes, models.ResolutionOutcome{
			Request:   x.req,
			Conflicts: conflicts,
			Report:    report,
		})

		req := &x.req
		if req.Complete() && req.Time.Window != nil {
			working = append(working, models.ExistingBooking{
				ID:       fmt.Sprintf("hold-%d", i),
				Service:  req.Service.Value,
				Date:     req.Time.Window.Date,
				Start:    req.Time.Window.Start,
				End:      req.Time.Window.End,
				Location: req.Location.Value,
				Status:   models.BookingStatusConfirmed,
			})
		}
	}
	return outcomes, nil
}
