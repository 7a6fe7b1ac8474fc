package wheel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/osse101/SpinWheel_Go/internal/domain"
	"github.com/osse101/SpinWheel_Go/internal/logger"
	"github.com/osse101/SpinWheel_Go/internal/validation"
)

var seedSchema = validation.NewSchemaValidator()

// LoadFile reads a wheel configuration from a JSON file and checks it
// against the bundled wheel schema before decoding
func LoadFile(path string) (*domain.WheelConfiguration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFile, path, err)
	}

	if err := seedSchema.ValidateBytes(data, validation.WheelSchema); err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgSchemaConfigFile, domain.ErrInvalidArgument, path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var cfg domain.WheelConfiguration
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeConfigFile, path, err)
	}
	return &cfg, nil
}

// SeedIfMissing publishes the configuration at path when the store has none.
// An existing configuration is never overwritten.
func SeedIfMissing(ctx context.Context, store ConfigStore, path string) error {
	log := logger.FromContext(ctx)

	_, err := store.LoadActive(ctx)
	if err == nil {
		log.Debug(LogMsgSeedSkipped)
		return nil
	}
	if !errors.Is(err, domain.ErrConfigurationNotFound) {
		return fmt.Errorf(ErrMsgSeedLoadFailed, err)
	}

	if path == "" {
		log.Warn(LogMsgSeedNoPath)
		return nil
	}

	cfg, err := LoadFile(path)
	if err != nil {
		return err
	}

	published, err := store.Publish(ctx, cfg)
	if err != nil {
		return fmt.Errorf(ErrMsgSeedPublishFailed, err)
	}

	log.Info(LogMsgSeedPublished, "path", path, "version", published.Version, "segments", len(published.Segments))
	return nil
}
