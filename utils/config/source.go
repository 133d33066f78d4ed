package config

import "time"

const (
	HighPriority   = 1
	NormalPriority = HighPriority + 10
	LowPriority    = NormalPriority + 10
)

type Source interface {
	GetConfigurations() (map[string]string, error)
	GetConfigurationByKey(string) (string, error)
	GetPriority() int
	GetSourceName() string
	SetEventHandler(eh EventHandler)
	UpdateOptions(opt Options)
	Close()
}

// FileInfo has attribute for file source
type FileInfo struct {
	Files           []string
	RefreshInterval time.Duration
}

// Options hold options
type Options struct {
	FileInfo        *FileInfo
	EnvKeyFormatter func(string) string
}

// Option is a func
type Option func(options *Options)

// WithFilesSource tell the manager to watch files, missing files are skipped
func WithFilesSource(fi *FileInfo) Option {
	return func(options *Options) {
		options.FileInfo = fi
	}
}

// WithEnvSource enable env source
// the manager will read ENV as key value
func WithEnvSource(keyFormatter func(string) string) Option {
	return func(options *Options) {
		options.EnvKeyFormatter = keyFormatter
	}
}

// EventHandler handles config change event
type EventHandler interface {
	OnEvent(event *Event)
	GetIdentifier() string
}

type simpleHandler struct {
	identity string
	onEvent  func(*Event)
}

func NewHandler(ident string, onEvent func(*Event)) EventHandler {
	return &simpleHandler{identity: ident, onEvent: onEvent}
}

func (h *simpleHandler) OnEvent(event *Event) {
	h.onEvent(event)
}

func (h *simpleHandler) GetIdentifier() string {
	return h.identity
}
