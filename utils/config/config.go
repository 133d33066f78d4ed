package config

import (
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	ErrNotInitial   = errors.New("config is not initialized")
	ErrIgnoreChange = errors.New("ignore change")
	ErrKeyNotFound  = errors.New("key not found")
)

func Init(opts ...Option) (*Manager, error) {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	sourceManager := NewManager()
	if o.FileInfo != nil {
		s := NewFileSource(o.FileInfo)
		if err := sourceManager.AddSource(s); err != nil {
			return nil, err
		}
	}
	if o.EnvKeyFormatter != nil {
		if err := sourceManager.AddSource(NewEnvSource(o.EnvKeyFormatter)); err != nil {
			return nil, err
		}
	}
	return sourceManager, nil
}

// formatKey normalizes keys so lookups ignore case and separator style.
func formatKey(key string) string {
	ret := strings.ToLower(key)
	return strings.NewReplacer("/", "", "_", "", ".", "").Replace(ret)
}
