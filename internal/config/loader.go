// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clemsoncpsc-discord/clembot/internal/logger"
)

// Loader resolves [BotSecrets] from environment variables, configuration
// files and built-in defaults.
//
// Precedence per key, highest first:
//  1. environment variable with the exact key;
//  2. the rightmost file that defines the key;
//  3. the built-in default.
//
// A key with no value from any of them fails the load with
// ErrMissingRequired. Loads are fail-fast: the first error aborts.
type Loader struct {
	log     *logger.Logger
	reader  SourceReader
	environ map[string]string

	mu sync.Mutex
}

// Option customises a [Loader].
type Option func(*Loader)

// WithLogger sets the logger that receives one entry per resolved key and
// per file. The default discards everything.
func WithLogger(log *logger.Logger) Option {
	return func(l *Loader) {
		l.log = log
	}
}

// WithSourceReader replaces the filesystem reader.
func WithSourceReader(reader SourceReader) Option {
	return func(l *Loader) {
		l.reader = reader
	}
}

// WithEnvironment makes the loader use environ instead of the process
// environment.
func WithEnvironment(environ map[string]string) Option {
	return func(l *Loader) {
		l.environ = environ
	}
}

// NewLoader builds a Loader. Without options it reads the local filesystem,
// snapshots the process environment at load time and logs nothing.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		log:    logger.Nop(),
		reader: NewFileReader(),
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load returns a new [BotSecrets] filled from sources, read in order.
func (l *Loader) Load(sources ...string) (*BotSecrets, error) {
	secrets := NewBotSecrets()
	if err := l.LoadInto(secrets, sources...); err != nil {
		return nil, err
	}

	return secrets, nil
}

// LoadInto fills secrets from sources. Missing files are skipped; a file that
// exists but cannot be read or decoded aborts the load. Fields set before a
// failure stay set, so calling LoadInto again on the same store fails with
// ErrDoubleInit.
func (l *Loader) LoadInto(secrets *BotSecrets, sources ...string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	log := l.log.With().Str("load_id", newLoadID()).Logger()

	layers, err := l.readLayers(log, sources)
	if err != nil {
		return err
	}

	merged, origins, err := mergeLayers(layers)
	if err != nil {
		return err
	}

	environ := l.environ
	if environ == nil {
		environ = EnvironmentFromOS()
	}

	for _, field := range fieldDefs {
		value, src, err := resolve(field, environ, merged, origins)
		if err != nil {
			log.Error().Err(err).Str("key", field.key).Msg("error resolving configuration")
			return err
		}

		if err = field.assign(secrets, value); err != nil {
			log.Error().Err(err).Str("key", field.key).Msg("error assigning configuration")
			return err
		}
		secrets.recordOrigin(field.key, src)

		log.Info().Str("key", field.key).Stringer("source", src).Msg("configuration loaded")
	}

	log.Info().Msg("all bot secrets loaded successfully")
	return nil
}

func (l *Loader) readLayers(log zerolog.Logger, sources []string) ([]fileLayer, error) {
	layers := make([]fileLayer, 0, len(sources))

	for _, path := range sources {
		data, err := l.reader.ReadSource(path)
		if errors.Is(err, fs.ErrNotExist) {
			log.Info().Str("path", path).Msg("no file found, skipping")
			continue
		}
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("error reading configuration file")
			return nil, fileError(path, ErrReadFailure, err)
		}

		values, err := decodeSource(path, data)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("error parsing configuration file")
			return nil, fileError(path, ErrParseFailure, err)
		}

		layers = append(layers, fileLayer{path: path, values: values})
		log.Info().Str("path", path).Int("keys", len(values)).Msg("loaded configuration file")
	}

	return layers, nil
}

// resolve picks the value for one field from the highest-precedence source
// that has it.
func resolve(field fieldDef, environ map[string]string, merged map[string]any, origins map[string]string) (any, Source, error) {
	if raw, ok := lookupEnv(environ, field.key); ok {
		value, err := CoerceText(raw, field.kind)
		if err != nil {
			return nil, Source{}, keyError(field.key, ErrInvalidValue, err)
		}
		return value, Source{Kind: SourceEnvironment}, nil
	}

	if raw, ok := merged[field.key]; ok {
		path := origins[field.key]
		value, err := CoerceNative(raw, field.kind)
		if err != nil {
			return nil, Source{}, &ConfigAccessError{Key: field.key, Path: path, Err: fmt.Errorf("%w: %w", ErrInvalidValue, err)}
		}
		return value, Source{Kind: SourceFile, Path: path}, nil
	}

	if !field.required() {
		return field.def, Source{Kind: SourceDefault}, nil
	}

	return nil, Source{}, keyError(field.key, ErrMissingRequired, nil)
}

func newLoadID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
