package catalog

import "github.com/appengine-ltd/harvest-calc/internal/farm"

// In-game Chinese names of the mutations the rule tables refer to. Catalogs
// exported from the game use these as names.
var ruleNameAliases = map[string]string{
	"银":    farm.MutationSilver,
	"金":    farm.MutationGold,
	"水晶":   farm.MutationCrystal,
	"流光":   farm.MutationPrismatic,
	"星空":   farm.MutationStarry,
	"潮湿":   farm.MutationMoist,
	"结霜":   farm.MutationFrost,
	"冰冻":   farm.MutationFrozen,
	"太阳耀斑": farm.MutationSolarFlare,
	"灼热":   farm.MutationScorched,
	"流火":   farm.MutationFlux,
	"沙尘":   farm.MutationDust,
	"陶化":   farm.MutationClay,
	"瓷化":   farm.MutationPorcelain,
	"日蚀":   farm.MutationEclipse,
	"暗雾":   farm.MutationGloom,
	"陨石":   farm.MutationMeteor,
}

var categoryAliases = map[string]farm.CropCategory{
	"普通":     farm.CategoryNormal,
	"月球":     farm.CategoryMoon,
	"normal": farm.CategoryNormal,
	"moon":   farm.CategoryMoon,
}

var colorAliases = map[string]farm.ColorTier{
	"灰色": farm.ColorGray,
	"绿色": farm.ColorGreen,
	"蓝色": farm.ColorBlue,
	"金色": farm.ColorGold,
	"彩色": farm.ColorRainbow,
	"紫色": farm.ColorPurple,
}

// canonicalName returns the rule-table name for an exported in-game name,
// along with the original as label.
func canonicalName(raw string) (name, label string) {
	if n, ok := ruleNameAliases[raw]; ok {
		return n, raw
	}
	return raw, ""
}

func parseCategory(raw string) farm.CropCategory {
	if c, ok := categoryAliases[raw]; ok {
		return c
	}
	return farm.CropCategory(raw)
}

func parseColor(raw string) farm.ColorTier {
	if c, ok := colorAliases[raw]; ok {
		return c
	}
	return farm.ColorTier(raw)
}
