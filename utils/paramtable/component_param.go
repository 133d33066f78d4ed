package paramtable

import (
	"sync"

	"github.com/dexopt/utils/config"
)

// ComponentParam groups every tunable of the optimizer toolchain.
type ComponentParam struct {
	once sync.Once

	PolicyCfg PolicyConfig
	RunnerCfg RunnerConfig
}

func (p *ComponentParam) Init(manager *config.Manager) {
	p.once.Do(func() {
		p.init(manager)
	})
}

func (p *ComponentParam) init(manager *config.Manager) {
	p.PolicyCfg.init(manager)
	p.RunnerCfg.init(manager)
}

// PolicyConfig lists the member names the shrinking policy must not touch.
// Values are comma separated dex descriptors or member names.
type PolicyConfig struct {
	KeepNames       ParamItem
	SeedNames       ParamItem
	DeleteDenyNames ParamItem
	RenameDenyNames ParamItem
}

func (p *PolicyConfig) init(manager *config.Manager) {
	p.KeepNames = ParamItem{
		Key:          "policy.keepNames",
		Version:      "1.0",
		DefaultValue: "",
		Doc:          "members that must survive every optimization pass",
		Export:       true,
	}
	p.KeepNames.Init(manager)

	p.SeedNames = ParamItem{
		Key:          "policy.seedNames",
		Version:      "1.0",
		DefaultValue: "",
		Doc:          "reachability roots for the shrinking analysis",
		Export:       true,
	}
	p.SeedNames.Init(manager)

	p.DeleteDenyNames = ParamItem{
		Key:          "policy.deleteDenyNames",
		Version:      "1.0",
		DefaultValue: "",
		Doc:          "members that may be renamed but never deleted",
		Export:       true,
	}
	p.DeleteDenyNames.Init(manager)

	p.RenameDenyNames = ParamItem{
		Key:          "policy.renameDenyNames",
		Version:      "1.0",
		FallbackKeys: []string{"policy.keepNames"},
		DefaultValue: "",
		Doc:          "members whose names are part of a stable surface",
		Export:       true,
	}
	p.RenameDenyNames.Init(manager)
}

// RunnerConfig tunes the pass runner.
type RunnerConfig struct {
	Workers       ParamItem
	QueueCapacity ParamItem
	CheckInterval ParamItem
	PassArgs      ParamItem
}

func (p *RunnerConfig) init(manager *config.Manager) {
	p.Workers = ParamItem{
		Key:          "runner.workers",
		Version:      "1.0",
		DefaultValue: "0",
		Doc:          "worker goroutines per pass, 0 means one per CPU",
		Export:       true,
	}
	p.Workers.Init(manager)

	p.QueueCapacity = ParamItem{
		Key:          "runner.queueCapacity",
		Version:      "1.0",
		DefaultValue: "1024",
		Doc:          "pending class buffer between producer and workers",
		Export:       true,
	}
	p.QueueCapacity.Init(manager)

	p.CheckInterval = ParamItem{
		Key:          "runner.checkIntervalSeconds",
		Version:      "1.0",
		DefaultValue: "60",
		Doc:          "interval of the stuck worker watchdog",
		Export:       true,
	}
	p.CheckInterval.Init(manager)

	p.PassArgs = ParamItem{
		Key:          "runner.passArgs",
		Version:      "1.0",
		DefaultValue: "{}",
		Doc:          "per pass options as a JSON object of string pairs",
		Export:       true,
	}
	p.PassArgs.Init(manager)
}
