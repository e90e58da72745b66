// Package classify 決定每一行抽取原料的去向：自動出酒、書面指示或默默略過。
package classify

// Rule 一條分類規則：原料名中出現 Keyword 時對應到目標詞彙表名稱
type Rule struct {
	Keyword string // 小寫關鍵字，以子字串比對
	Target  string // CocktailPi 端的原料或原料群組名稱（小寫）
}

// ClassificationRules 依宣告順序逐條比對，第一條命中即停
// 順序有語意：具體的要排在概括的前面（"creme de cacao" 在 "liqueur" 前）
var ClassificationRules = []Rule{
	// 烈酒
	{"vodka", "vodka"},
	{"dry gin", "gin"},
	{"gin", "gin"},
	{"white rum", "white rum"},
	{"gold rum", "gold rum"},
	{"aged rum", "aged rum"},
	{"rum", "rum"},
	{"tequila", "tequila"},
	{"mezcal", "mezcal"},
	{"bourbon", "bourbon"},
	{"rye", "rye whiskey"},
	{"scotch", "scotch"},
	{"whiskey", "whiskey"},
	{"cognac", "cognac"},
	{"pisco", "pisco"},
	{"brandy", "brandy"},

	// 利口酒（具體優先）
	{"blue curaçao", "blue curaçao"},
	{"creme de cacao", "chocolate liqueur"},
	{"creme de cassis", "cassis liqueur"},
	{"coffee liqueur", "coffee liqueur"},
	{"orange liqueur", "orange liqueur"},
	{"triple sec", "orange liqueur"},
	{"cointreau", "orange liqueur"},
	{"grand marnier", "orange liqueur"},
	{"amaretto", "amaretto"},
	{"peach schnapps", "peach schnapps"},
	{"elderflower liqueur", "elderflower liqueur"},
	{"absinthe", "absinthe"},
	{"aperol", "aperol"},
	{"campari", "campari"},
	{"schnapps", "schnapps"},
	{"liqueur", "liqueur"},

	// 苦艾酒與苦味酒
	{"sweet vermouth", "sweet vermouth"},
	{"dry vermouth", "dry vermouth"},
	{"blanc vermouth", "blanc vermouth"},
	{"vermouth", "vermouth"},
	{"amaro", "amaro"},
	{"fernet", "fernet"},
	{"lillet", "lillet"},

	// 果汁
	{"lemon juice", "lemon juice"},
	{"lime juice", "lime juice"},
	{"orange juice", "orange juice"},
	{"cranberry juice", "cranberry juice"},
	{"pineapple juice", "pineapple juice"},
	{"grapefruit juice", "grapefruit juice"},
	{"passion fruit juice", "passion fruit juice"},
	{"apple juice", "apple juice"},
	{"juice", "juice"},

	// 糖漿
	{"simple syrup", "simple syrup"},
	{"sugar syrup", "simple syrup"},
	{"orgeat", "orgeat syrup"},
	{"grenadine", "grenadine"},
	{"honey syrup", "honey syrup"},
	{"agave nectar", "agave nectar"},
	{"syrup", "syrup"},
	{"honey", "honey syrup"},

	// 苦精
	{"angostura bitters", "bitters"},
	{"orange bitters", "orange bitters"},
	{"peychaud's bitters", "peychauds bitters"},
	{"bitters", "bitters"},

	// 調和飲料
	{"soda water", "soda water"},
	{"club soda", "soda water"},
	{"tonic water", "tonic water"},
	{"cola", "cola"},
	{"sprite", "lemon-lime soda"},
	{"lemon-lime", "lemon-lime soda"},
	{"ginger ale", "ginger ale"},
	{"ginger beer", "ginger beer"},
	{"condensed milk", "condensed milk"},
	{"milk", "milk"},
	{"cream", "cream"},

	// 酒類氣泡飲
	{"sherry", "sherry"},
	{"prosecco", "prosecco"},
	{"champagne", "champagne"},
	{"cava", "cava"},
	{"dry white wine", "dry white wine"},
}

// impliedElements 裝飾物、冰塊與泛用指示詞——這些永遠不會被自動建立或出酒
var impliedElements = []string{
	"ice", "cubes", "garnish", "sprig", "slice", "wedge", "peel", "leaf",
	"cherry", "olive", "salt", "sugar", "nutmeg", "cinnamon", "to taste",
	"fill", "top with", "splash of", "none", "rim", "dashes", "drops", "twist",
	"dash", "drop", "muddle", "muddled", "fresh", "dry", "whole", "powder",
	"water", "hot water", "coffee", "tea", "egg white", "egg yolk",
	"mint", "lime", "lemon",
	"orange", "grapefruit", "pineapple", "cranberry", "apple", "passion fruit",
}

// genericTerms 本身就是泛用指示的裸詞，連書面指示都不需要
var genericTerms = map[string]bool{
	"ice":   true,
	"sugar": true,
	"salt":  true,
	"water": true,
	"none":  true,
}

// impliedWordSet impliedElements 的逐詞索引，用於組合詞判斷（"ice cubes"）
var impliedWordSet = buildImpliedWordSet()

func buildImpliedWordSet() map[string]bool {
	set := make(map[string]bool, len(impliedElements))
	for _, elem := range impliedElements {
		set[elem] = true
	}
	return set
}
