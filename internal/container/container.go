// Package container provides dependency injection for the fintrack application.
// It creates the logger, the store and the report generator from a Config and
// hands them to the commands through getters.
package container

import (
	"fmt"

	"fjacquet/fintrack/internal/config"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/report"
	"fjacquet/fintrack/internal/store"
)

// Container holds all application dependencies.
//
// Container is immutable after creation; fields are reached through getters only.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	store     store.Store
	generator *report.ReportGenerator
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	return NewContainerWithLogger(cfg, logger)
}

// NewContainerWithLogger is NewContainer with an injected logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	s, err := store.New(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	generator := report.NewReportGenerator(logger, LayoutFromConfig(cfg.Report), cfg.Delimiter())

	logger.Info("Container initialized successfully",
		logging.Field{Key: logging.FieldStore, Value: cfg.Storage.Driver})

	return &Container{
		logger:    logger,
		config:    cfg,
		store:     s,
		generator: generator,
	}, nil
}

// LayoutFromConfig maps the report section of the configuration to a page layout.
func LayoutFromConfig(rc config.ReportConfig) report.Layout {
	return report.Layout{
		Title:        rc.Title,
		PageHeight:   rc.PageHeight,
		TopMargin:    rc.TopMargin,
		HeaderHeight: rc.HeaderHeight,
		LineHeight:   rc.LineHeight,
		LabelX:       rc.LabelX,
		AmountX:      rc.AmountX,
		TextWidth:    rc.TextWidth,
	}
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the transaction and settings store.
func (c *Container) GetStore() store.Store {
	return c.store
}

// GetReportGenerator returns the report generator.
func (c *Container) GetReportGenerator() *report.ReportGenerator {
	return c.generator
}

// Close releases the store.
func (c *Container) Close() error {
	if err := c.store.Close(); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}
	c.logger.Debug("Container closed")
	return nil
}
