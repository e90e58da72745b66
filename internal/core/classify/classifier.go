package classify

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"cocktail-importer/internal/pkg/common"

	"go.uber.org/zap"
)

// Creator 在目標詞彙表中建立新原料的外部協作者
// 建立成功須回傳伺服器端的 id 與正式名稱；名稱衝突時回傳 common.ErrConflict
type Creator interface {
	CreateManualIngredient(ctx context.Context, name string, parentGroupID int64) (int64, string, error)
}

// Result 單一原料的處置結果
// 三種去向恰好一種成立：出酒（Resolved）、書面指示（Instruction 非空）或默默略過
type Result struct {
	IngredientID int64  // 解析出的詞彙表 id，僅在 Resolved 為真時有效
	Resolved     bool   // 可出酒：有正容量且解析出 id
	Instruction  string // 書面指示文字，空字串表示沒有
}

// Classifier 原料分類與解析器
// vocab 是跨配方共用的可變狀態：自動建立的原料會立刻寫回，
// 讓同一次執行中後續原料與配方能直接命中
type Classifier struct {
	vocab         map[string]int64
	creator       Creator
	parentGroupID int64 // 自動建立時的預設父群組，0 表示不可用
}

// New 創建分類器
func New(vocab map[string]int64, creator Creator, parentGroupID int64) *Classifier {
	return &Classifier{
		vocab:         vocab,
		creator:       creator,
		parentGroupID: parentGroupID,
	}
}

// IsImpliedElement 判斷原料名是否為慣例上已存在的元素（裝飾、冰、泛用指示）
// 兩種判法：某個詞條等於名稱、或是名稱的子字串且長度差小於 3；
// 以及組合詞判斷——多詞名稱的每個詞（連接詞除外）都是 implied 詞條
// （"ice cubes"、"cubes of ice"、"lemon wedge"）。
func IsImpliedElement(name string) bool {
	cleaned := common.NormalizeName(name)
	if cleaned == "" {
		return false
	}
	for _, elem := range impliedElements {
		if cleaned == elem {
			return true
		}
		if strings.Contains(cleaned, elem) && len(cleaned)-len(elem) < 3 {
			return true
		}
	}
	return isImpliedComposite(cleaned)
}

// isImpliedComposite 多詞名稱是否完全由 implied 詞條組成
func isImpliedComposite(cleaned string) bool {
	words := strings.Fields(cleaned)
	if len(words) < 2 {
		return false
	}
	for _, w := range words {
		// 連接詞（"of"）不影響判斷
		if len([]rune(w)) <= 2 {
			continue
		}
		if !impliedWordSet[w] {
			return false
		}
	}
	return true
}

// isGenericOnly implied 原料是否連書面指示都不值得留
// 裸泛用詞（ice/sugar/salt/water/none）與純粹由 implied 詞組成的名稱
// 不帶任何配方資訊，直接略過
func isGenericOnly(cleaned string) bool {
	if genericTerms[cleaned] {
		return true
	}
	return isImpliedComposite(cleaned)
}

// Classify 決定單一原料的處置（嚴格依序，先成立者勝）
func (c *Classifier) Classify(ctx context.Context, ing common.ScrapedIngredient) Result {
	rawName := strings.TrimSpace(ing.Name)
	cleanedName := common.NormalizeName(ing.Name)
	hasVolume := ing.VolumeML != nil && *ing.VolumeML > 0

	// 1. implied 元素：永遠不自動建立、不出酒
	if IsImpliedElement(cleanedName) {
		if hasVolume {
			common.LogInfo("原料帶有液體容量但屬於 implied 元素，不出酒",
				zap.String("原料", rawName),
				zap.Float64("容量ml", *ing.VolumeML),
			)
		} else {
			common.LogDebug("略過 implied 原料", zap.String("原料", rawName))
		}
		if isGenericOnly(cleanedName) {
			return Result{}
		}
		if msg := buildInstruction(ing, rawName, true); msg != "" {
			return Result{Instruction: msg}
		}
		return Result{}
	}

	// 2. 與詞彙表完全一致
	if id, ok := c.vocab[cleanedName]; ok {
		common.LogDebug("直接命中詞彙表",
			zap.String("原料", rawName),
			zap.Int64("id", id),
		)
		return c.finish(ing, rawName, id, hasVolume)
	}

	// 3. 分類規則表：宣告順序即優先序
	// 第一條「關鍵字命中且目標存在於詞彙表」的規則勝出
	for _, rule := range ClassificationRules {
		if !strings.Contains(cleanedName, rule.Keyword) {
			continue
		}
		if id, ok := c.vocab[rule.Target]; ok {
			common.LogInfo("規則分類命中",
				zap.String("原料", rawName),
				zap.String("關鍵字", rule.Keyword),
				zap.String("目標", rule.Target),
			)
			return c.finish(ing, rawName, id, hasVolume)
		}
	}

	// 4. 模糊包含比對（兩側長度 ≤3 時不比，避免短字串誤中）
	if id, matched, ok := c.fuzzyMatch(cleanedName); ok {
		common.LogInfo("模糊比對命中",
			zap.String("原料", rawName),
			zap.String("詞彙表名稱", matched),
		)
		return c.finish(ing, rawName, id, hasVolume)
	}

	// 5. 自動建立：僅限帶正容量且前面全部落空的原料
	if hasVolume {
		if c.parentGroupID == 0 {
			common.LogWarn("原料無法比對，且沒有預設父群組可用，略過自動建立",
				zap.String("原料", rawName),
			)
		} else if id, ok := c.autoCreate(ctx, rawName); ok {
			return c.finish(ing, rawName, id, hasVolume)
		}
		// 6. 帶容量卻無法解析：放棄出酒，原始名稱就此遺失（僅留警告）
		common.LogWarn("原料帶液體容量但無法比對或建立，將不出酒（來源資訊遺失）",
			zap.String("原料", rawName),
		)
		return Result{}
	}

	// 7. 無容量且無法解析：降級為書面指示
	if msg := buildInstruction(ing, rawName, !genericTerms[cleanedName]); msg != "" {
		return Result{Instruction: msg}
	}
	common.LogDebug("原料產生不出有意義的指示，略過", zap.String("原料", rawName))
	return Result{}
}

// finish 已解析出 id 的原料依容量決定出酒或降級為指示
func (c *Classifier) finish(ing common.ScrapedIngredient, rawName string, id int64, hasVolume bool) Result {
	if hasVolume {
		return Result{IngredientID: id, Resolved: true}
	}
	// 解析得到 id 但沒有可出酒的容量（"gin" 無量、純裝飾用途）
	if msg := buildInstruction(ing, rawName, true); msg != "" {
		return Result{Instruction: msg}
	}
	return Result{}
}

// fuzzyMatch 名稱與詞彙表任一名稱互為子字串即命中
// 依排序後的鍵比對，確保同一輸入永遠得到同一結果
func (c *Classifier) fuzzyMatch(cleanedName string) (int64, string, bool) {
	names := make([]string, 0, len(c.vocab))
	for name := range c.vocab {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, cpName := range names {
		if (strings.Contains(cpName, cleanedName) || strings.Contains(cleanedName, cpName)) &&
			(len(cleanedName) > 3 || len(cpName) > 3) {
			return c.vocab[cpName], cpName, true
		}
	}
	return 0, "", false
}

// autoCreate 在目標伺服器建立手動原料並寫回詞彙表
func (c *Classifier) autoCreate(ctx context.Context, rawName string) (int64, bool) {
	common.LogInfo("嘗試自動建立缺少的液體原料", zap.String("原料", rawName))

	id, createdName, err := c.creator.CreateManualIngredient(ctx, rawName, c.parentGroupID)
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			common.LogInfo("原料已存在於伺服器，略過建立", zap.String("原料", rawName))
		} else {
			common.LogWarn("自動建立原料失敗",
				zap.String("原料", rawName),
				zap.Error(err),
			)
		}
		return 0, false
	}

	key := common.NormalizeName(createdName)
	c.vocab[key] = id
	common.LogInfo("已建立原料並寫回詞彙表",
		zap.String("原料", createdName),
		zap.Int64("id", id),
	)
	return id, true
}

// buildInstruction 組出 "Add {amount} {unit} {name}" 形式的書面指示
// amount/unit 若缺值或本身是 implied 詞條則不出現；includeName 為假時不含名稱
func buildInstruction(ing common.ScrapedIngredient, rawName string, includeName bool) string {
	var parts []string

	if s := amountText(ing.Amount); s != "" && !isImpliedTerm(s) {
		parts = append(parts, s)
	}
	if u := strings.TrimSpace(ing.Unit); u != "" && common.NormalizeName(u) != "none" && !isImpliedTerm(u) {
		parts = append(parts, u)
	}
	if includeName && rawName != "" {
		parts = append(parts, rawName)
	}

	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("Add %s", strings.Join(parts, " "))
}

// isImpliedTerm 字串整體是否為 implied 詞條
func isImpliedTerm(s string) bool {
	cleaned := common.NormalizeName(s)
	for _, elem := range impliedElements {
		if cleaned == elem {
			return true
		}
	}
	return false
}

// amountText 把 amount 轉成指示文字；缺值回傳空字串
func amountText(amount any) string {
	if amount == nil {
		return ""
	}
	if f, ok := common.AmountToFloat(amount); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := fmt.Sprintf("%v", amount)
	if common.NormalizeName(s) == "none" {
		return ""
	}
	return strings.TrimSpace(s)
}
