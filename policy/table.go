package policy

import (
	"github.com/dexopt/dex"
	"github.com/dexopt/middleware/log"
	"github.com/dexopt/utils"
	"github.com/dexopt/utils/paramtable"
	"go.uber.org/zap"
)

// Table is a name-keyed dex.Policy. The four verdict sets are fixed at
// construction, so lookups need no locking.
type Table struct {
	keep       utils.NameSet
	seeds      utils.NameSet
	deleteDeny utils.NameSet
	renameDeny utils.NameSet
}

var _ dex.Policy = (*Table)(nil)

func NewTable(keep, seeds, deleteDeny, renameDeny utils.NameSet) *Table {
	return &Table{
		keep:       keep,
		seeds:      seeds,
		deleteDeny: deleteDeny,
		renameDeny: renameDeny,
	}
}

// FromConfig builds a Table from the configured name lists.
func FromConfig(cfg *paramtable.PolicyConfig) *Table {
	t := NewTable(
		utils.NewNameSet(cfg.KeepNames.GetAsStrings()...),
		utils.NewNameSet(cfg.SeedNames.GetAsStrings()...),
		utils.NewNameSet(cfg.DeleteDenyNames.GetAsStrings()...),
		utils.NewNameSet(cfg.RenameDenyNames.GetAsStrings()...),
	)
	log.Info("policy table loaded",
		zap.Int("keep", t.keep.Len()),
		zap.Int("seeds", t.seeds.Len()),
		zap.Int("deleteDeny", t.deleteDeny.Len()),
		zap.Int("renameDeny", t.renameDeny.Len()))
	return t
}

// Keep reports whether m must survive every pass. Seeds are always kept.
func (t *Table) Keep(m dex.Member) bool {
	return t.keep.Contain(m.Name()) || t.IsSeed(m)
}

func (t *Table) IsSeed(m dex.Member) bool {
	return t.seeds.Contain(m.Name())
}

func (t *Table) CanDelete(m dex.Member) bool {
	return !t.Keep(m) && !t.deleteDeny.Contain(m.Name())
}

func (t *Table) CanRename(m dex.Member) bool {
	return !t.Keep(m) && !t.renameDeny.Contain(m.Name())
}
