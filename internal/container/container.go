// Package container provides dependency injection for the card-spend application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"sync"
	"time"

	"fjacquet/card-spend/internal/chart"
	"fjacquet/card-spend/internal/config"
	"fjacquet/card-spend/internal/loader"
	"fjacquet/card-spend/internal/logging"
	"fjacquet/card-spend/internal/models"
	"fjacquet/card-spend/internal/predictor"
	"fjacquet/card-spend/internal/report"

	"github.com/google/uuid"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation. The dataset is read lazily on the
// first call to Dataset and shared by every later call.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	sessionID string

	loader    *loader.Loader
	predictor *predictor.Predictor
	generator *report.Generator
	chart     *chart.BarChart

	loadOnce sync.Once
	dataset  *models.Dataset
	loadErr  error
}

// NewContainer creates and wires all application dependencies, logging
// through a logrus adapter built from cfg.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format))
}

// NewContainerWithLogger wires the dependencies around an existing logger.
// Every component logs with the run's session id attached.
func NewContainerWithLogger(cfg *config.Config, base logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if base == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	sessionID := uuid.NewString()
	logger := base.WithField(logging.FieldSession, sessionID)

	var barChart *chart.BarChart
	if cfg.Chart.Enabled {
		barChart = chart.New(cfg.Chart.Width, cfg.Chart.Color)
	}

	c := &Container{
		logger:    logger,
		config:    cfg,
		sessionID: sessionID,
		loader:    loader.NewLoader(loader.OptionsFromConfig(cfg), logger),
		predictor: predictor.New(logger),
		generator: report.NewGenerator(logger, cfg.Report.Precision, cfg.Delimiter()),
		chart:     barChart,
	}

	logger.Debug("Container initialized",
		logging.F(logging.FieldFile, cfg.Data.File),
		logging.F("chart_enabled", cfg.Chart.Enabled))

	return c, nil
}

// Dataset loads the configured transaction log on first use and returns
// the same dataset, or the same error, on every call.
func (c *Container) Dataset() (*models.Dataset, error) {
	c.loadOnce.Do(func() {
		start := time.Now()
		c.dataset, c.loadErr = c.loader.Load(c.config.Data.File)
		if c.loadErr != nil {
			c.loadErr = fmt.Errorf("loading %s: %w", c.config.Data.File, c.loadErr)
			return
		}
		c.logger.Debug("Dataset ready",
			logging.F(logging.FieldCount, c.dataset.Len()),
			logging.F(logging.FieldDuration, time.Since(start).Milliseconds()))
	})
	return c.dataset, c.loadErr
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// SessionID identifies this run in every log line.
func (c *Container) SessionID() string {
	return c.sessionID
}

// GetPredictor returns the spending predictor.
func (c *Container) GetPredictor() *predictor.Predictor {
	return c.predictor
}

// GetReportGenerator returns the report renderer.
func (c *Container) GetReportGenerator() *report.Generator {
	return c.generator
}

// GetChart returns the bar chart renderer, or nil when charts are disabled.
func (c *Container) GetChart() *chart.BarChart {
	return c.chart
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
