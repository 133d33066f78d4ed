package config

import (
	"github.com/cockroachdb/errors"
	"github.com/dexopt/middleware/log"
	"github.com/dexopt/utils"
	"go.uber.org/zap"
)

// Manager merges several config sources and resolves each key against the
// source with the strongest priority that defines it.
type Manager struct {
	sources      *utils.ConcurrentMap[string, Source]
	keySourceMap *utils.ConcurrentMap[string, string]
}

func NewManager() *Manager {
	return &Manager{
		sources:      utils.NewConcurrentMap[string, Source](),
		keySourceMap: utils.NewConcurrentMap[string, string](),
	}
}

func (m *Manager) AddSource(source Source) error {
	sourceName := source.GetSourceName()
	_, loaded := m.sources.GetOrInsert(sourceName, source)
	if loaded {
		err := errors.Newf("duplicate source: %s", sourceName)
		log.Warn("AddSource failed", zap.Error(err))
		return err
	}

	source.SetEventHandler(m)
	return m.pullSourceConfigs(sourceName)
}

// GetConfig returns the resolved value for key, ErrKeyNotFound when no
// source defines it.
func (m *Manager) GetConfig(key string) (string, error) {
	realKey := formatKey(key)
	sourceName, ok := m.keySourceMap.Get(realKey)
	if !ok {
		return "", errors.Wrap(ErrKeyNotFound, key)
	}
	return m.getConfigValueBySource(realKey, sourceName)
}

// GetConfigs returns one resolved snapshot of every known key.
func (m *Manager) GetConfigs() map[string]string {
	config := make(map[string]string)
	m.keySourceMap.Range(func(key, sourceName string) bool {
		value, err := m.getConfigValueBySource(key, sourceName)
		if err != nil {
			return true
		}
		config[key] = value
		return true
	})
	return config
}

func (m *Manager) Close() {
	m.sources.Range(func(name string, source Source) bool {
		source.Close()
		return true
	})
}

// OnEvent implements EventHandler, keeping the key ownership map in sync
// with source changes.
func (m *Manager) OnEvent(event *Event) {
	m.updateEvent(event)
}

func (m *Manager) GetIdentifier() string {
	return "config-manager"
}

func (m *Manager) getConfigValueBySource(configKey, sourceName string) (string, error) {
	source, ok := m.sources.Get(sourceName)
	if !ok {
		return "", ErrKeyNotFound
	}
	return source.GetConfigurationByKey(configKey)
}

func (m *Manager) pullSourceConfigs(sourceName string) error {
	source, ok := m.sources.Get(sourceName)
	if !ok {
		return errors.Newf("source not found: %s", sourceName)
	}

	configs, err := source.GetConfigurations()
	if err != nil {
		log.Error("fail to load configuration", zap.String("source", sourceName), zap.Error(err))
		return errors.Wrap(err, "failed to load configuration from source")
	}

	sourcePriority := source.GetPriority()
	for key := range configs {
		formattedKey := formatKey(key)
		boundSource, ok := m.keySourceMap.Get(formattedKey)
		if !ok {
			m.keySourceMap.Insert(formattedKey, sourceName)
			continue
		}
		currentSource, ok := m.sources.Get(boundSource)
		if !ok {
			m.keySourceMap.Insert(formattedKey, sourceName)
			continue
		}
		// Smaller priority value wins.
		if currentSource.GetPriority() > sourcePriority {
			m.keySourceMap.Insert(formattedKey, sourceName)
		}
	}
	return nil
}

func (m *Manager) updateEvent(event *Event) {
	key := formatKey(event.Key)
	switch event.EventType {
	case CreateType, UpdateType:
		boundSource, ok := m.keySourceMap.Get(key)
		if !ok || boundSource == event.EventSource {
			m.keySourceMap.Insert(key, event.EventSource)
			event.HasUpdated = true
			return
		}
		current, ok := m.sources.Get(boundSource)
		updating, ok2 := m.sources.Get(event.EventSource)
		if ok && ok2 && current.GetPriority() > updating.GetPriority() {
			m.keySourceMap.Insert(key, event.EventSource)
			event.HasUpdated = true
		}
	case DeleteType:
		boundSource, ok := m.keySourceMap.Get(key)
		if ok && boundSource == event.EventSource {
			m.keySourceMap.GetAndRemove(key)
			event.HasUpdated = true
		}
	default:
		log.Warn("unknown config event type", zap.String("type", event.EventType))
	}
}
