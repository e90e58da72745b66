package importer

import (
	"cocktail-importer/internal/core/cocktailpi"
	"cocktail-importer/internal/pkg/common"
)

// DuplicateGuard 防止重複匯入同名配方
// 名稱以小寫去空白形式比對；執行起點從伺服器快照建立，
// 每次成功匯入後寫回，同一次執行內不會重複提交
type DuplicateGuard struct {
	names map[string]struct{}
}

// NewDuplicateGuard 由伺服器配方快照建立防重守衛
func NewDuplicateGuard(existing []cocktailpi.RecipeSummary) *DuplicateGuard {
	g := &DuplicateGuard{names: make(map[string]struct{}, len(existing))}
	for _, r := range existing {
		g.names[common.NormalizeName(r.Name)] = struct{}{}
	}
	return g
}

// Seen 名稱是否已存在
func (g *DuplicateGuard) Seen(name string) bool {
	_, ok := g.names[common.NormalizeName(name)]
	return ok
}

// Record 記下已匯入的名稱
func (g *DuplicateGuard) Record(name string) {
	g.names[common.NormalizeName(name)] = struct{}{}
}

// Size 快照中的名稱數
func (g *DuplicateGuard) Size() int {
	return len(g.names)
}
