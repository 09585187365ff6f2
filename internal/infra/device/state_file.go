// Package device contains the on-device adapters used by the gate runner:
// the state file, the consent prompt, the foreground notifier and the
// static coordinate provider.
package device

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"afrimart/config"
	"afrimart/internal/domain/service"

	"github.com/pkg/errors"
)

const stateFileName = "device_state.json"

// StateFile is a small JSON key-value file that survives restarts.
// Writes go to a temp file first and are renamed into place.
type StateFile struct {
	path string

	mu     sync.Mutex
	values map[string]any
	loaded bool
}

// NewStateFile creates the state file under cfg.Device.StateDir.
func NewStateFile(cfg *config.Config) (*StateFile, error) {
	dir := "."
	if cfg.Device != nil && cfg.Device.StateDir != "" {
		dir = cfg.Device.StateDir
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "failed to create device state directory")
	}

	return &StateFile{path: filepath.Join(dir, stateFileName)}, nil
}

// AsFlagStore exposes the state file as the domain FlagStore.
func AsFlagStore(s *StateFile) service.FlagStore {
	return s
}

func (s *StateFile) GetBool(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return false, err
	}

	v, _ := s.values[key].(bool)

	return v, nil
}

func (s *StateFile) SetBool(_ context.Context, key string, value bool) error {
	return s.set(key, value)
}

func (s *StateFile) GetString(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return "", err
	}

	v, _ := s.values[key].(string)

	return v, nil
}

func (s *StateFile) SetString(_ context.Context, key, value string) error {
	return s.set(key, value)
}

func (s *StateFile) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}

	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)

	return s.flush()
}

func (s *StateFile) set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}

	s.values[key] = value

	return s.flush()
}

func (s *StateFile) load() error {
	if s.loaded {
		return nil
	}

	s.values = make(map[string]any)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.loaded = true

			return nil
		}

		return errors.Wrap(err, "failed to read device state")
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.values); err != nil {
			return errors.Wrapf(err, "device state %s is corrupt", s.path)
		}
	}
	s.loaded = true

	return nil
}

func (s *StateFile) flush() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode device state")
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), stateFileName+".*")
	if err != nil {
		return errors.Wrap(err, "failed to create temp state file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()

		return errors.Wrap(err, "failed to write device state")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to close device state")
	}

	return errors.Wrap(os.Rename(tmp.Name(), s.path), "failed to replace device state")
}
