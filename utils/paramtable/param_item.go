package paramtable

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dexopt/utils"
	"github.com/dexopt/utils/config"
	"github.com/spf13/cast"
)

type ParamItem struct {
	Key          string
	Version      string
	Doc          string
	DefaultValue string
	FallbackKeys []string
	PanicIfEmpty bool
	Export       bool

	Formatter func(originValue string) string
	Forbidden bool

	tempValue atomic.Pointer[string]
	manager   *config.Manager
}

func (pi *ParamItem) Init(manager *config.Manager) {
	pi.manager = manager
}

// Get original value with error
func (pi *ParamItem) get() (string, error) {
	// For unittest.
	if s := pi.tempValue.Load(); s != nil {
		return *s, nil
	}

	if pi.manager == nil {
		panic(fmt.Sprintf("manager is nil %s", pi.Key))
	}
	ret, err := pi.manager.GetConfig(pi.Key)
	if err != nil {
		for _, key := range pi.FallbackKeys {
			ret, err = pi.manager.GetConfig(key)
			if err == nil {
				break
			}
		}
	}
	if err != nil {
		ret = pi.DefaultValue
	}
	if pi.Formatter != nil {
		ret = pi.Formatter(ret)
	}
	if ret == "" && pi.PanicIfEmpty {
		panic(fmt.Sprintf("%s is empty", pi.Key))
	}
	return ret, err
}

// SetTempValue pins the value in memory, shadowing every config source.
// Clear it by setting nil.
func (pi *ParamItem) SetTempValue(s string) {
	pi.tempValue.Store(&s)
}

func (pi *ParamItem) GetValue() string {
	v, _ := pi.get()
	return v
}

func (pi *ParamItem) GetAsStrings() []string {
	return getAsStrings(pi.GetValue())
}

func (pi *ParamItem) GetAsBool() bool {
	return getAsBool(pi.GetValue())
}

func (pi *ParamItem) GetAsInt() int {
	return getAsInt(pi.GetValue())
}

func (pi *ParamItem) GetAsInt32() int32 {
	return int32(getAsInt64(pi.GetValue()))
}

func (pi *ParamItem) GetAsInt64() int64 {
	return getAsInt64(pi.GetValue())
}

func (pi *ParamItem) GetAsUint() uint {
	return uint(getAsUint64(pi.GetValue()))
}

func (pi *ParamItem) GetAsFloat() float64 {
	return getAsFloat(pi.GetValue())
}

func (pi *ParamItem) GetAsDuration(unit time.Duration) time.Duration {
	return getAsDuration(pi.GetValue(), unit)
}

func (pi *ParamItem) GetAsJSONMap() map[string]string {
	m, err := utils.JSONToMap(pi.GetValue())
	if err != nil {
		return nil
	}
	return m
}

func getAsStrings(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	ret := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			ret = append(ret, p)
		}
	}
	return ret
}

func getAsBool(v string) bool {
	return cast.ToBool(v)
}

func getAsInt(v string) int {
	return cast.ToInt(v)
}

func getAsInt64(v string) int64 {
	return cast.ToInt64(v)
}

func getAsUint64(v string) uint64 {
	return cast.ToUint64(v)
}

func getAsFloat(v string) float64 {
	return cast.ToFloat64(v)
}

func getAsDuration(v string, unit time.Duration) time.Duration {
	return time.Duration(cast.ToInt64(v)) * unit
}
