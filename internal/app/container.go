package app

import (
	"context"
	"fmt"

	"github.com/ochronus/goopenload/internal/config"
	"github.com/ochronus/goopenload/openload"
	"github.com/sirupsen/logrus"
)

// Container centralizes the core dependencies used by the CLI.
// It uses interfaces so callers (and tests) can substitute implementations.
type Container struct {
	Config         *config.Config
	Logger         *logrus.Logger
	Client         openload.ClientAPI
	ValidateClient bool

	clientOpts []openload.Option
}

// Option allows customizing the container during construction.
type Option func(*Container) error

// WithLogger overrides the default logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Container) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		c.Logger = logger
		return nil
	}
}

// WithClient overrides the default openload client.
func WithClient(client openload.ClientAPI) Option {
	return func(c *Container) error {
		if client == nil {
			return fmt.Errorf("openload client cannot be nil")
		}
		c.Client = client
		return nil
	}
}

// WithClientOptions passes extra options to the default openload client.
func WithClientOptions(opts ...openload.Option) Option {
	return func(c *Container) error {
		c.clientOpts = append(c.clientOpts, opts...)
		return nil
	}
}

// WithClientValidation enables or disables credential validation against
// account/info (default: disabled).
func WithClientValidation(validate bool) Option {
	return func(c *Container) error {
		c.ValidateClient = validate
		return nil
	}
}

// NewContainer builds a Container with defaults derived from cfg.
// Options can be supplied to override specific dependencies.
func NewContainer(ctx context.Context, cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	container := &Container{
		Config: cfg,
		Logger: buildDefaultLogger(cfg.Loglevel),
	}

	for _, opt := range opts {
		if err := opt(container); err != nil {
			return nil, err
		}
	}

	if container.Client == nil {
		container.Client = buildClient(cfg, container.Logger, container.clientOpts)
	}

	if container.ValidateClient {
		if _, err := container.Client.AccountInfo(ctx); err != nil {
			return nil, fmt.Errorf("failed to verify openload credentials: %w", err)
		}
	}

	return container, nil
}

func buildDefaultLogger(levelStr string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}

func buildClient(cfg *config.Config, logger *logrus.Logger, extra []openload.Option) *openload.Client {
	opts := []openload.Option{
		openload.WithHost(cfg.Host),
		openload.WithAPIVersion(cfg.APIVersion),
		openload.WithTimeout(cfg.TimeoutDuration()),
		openload.WithLogger(logger),
	}
	opts = append(opts, extra...)
	return openload.NewClient(cfg.Login, cfg.Key, opts...)
}
