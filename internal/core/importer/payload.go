package importer

import (
	"context"
	"math"
	"strings"

	"cocktail-importer/internal/core/classify"
	"cocktail-importer/internal/core/cocktailpi"
	"cocktail-importer/internal/pkg/common"

	"go.uber.org/zap"
)

// FallbackInstruction 完全組不出步驟時的通用指示
const FallbackInstruction = "No specific instructions found for this recipe. Combine ingredients and serve."

// PayloadBuilder 把抽取配方組裝成可提交的 CocktailPi payload
type PayloadBuilder struct {
	classifier *classify.Classifier
	ownerID    int64
	glassID    int64
	categoryID int64
}

// NewPayloadBuilder 創建 payload 組裝器
func NewPayloadBuilder(classifier *classify.Classifier, ownerID, glassID, categoryID int64) *PayloadBuilder {
	return &PayloadBuilder{
		classifier: classifier,
		ownerID:    ownerID,
		glassID:    glassID,
		categoryID: categoryID,
	}
}

// Build 依來源順序分類每一行原料並組出有序的生產步驟：
// 所有可出酒原料合併成一個 addIngredients 步驟放最前面，
// 之後依序是各原料的書面指示、來源的調製步驟（空白行略過）
func (b *PayloadBuilder) Build(ctx context.Context, recipe *common.ScrapedRecipe) *cocktailpi.RecipePayload {
	var dispensable []cocktailpi.StepIngredient
	var instructions []cocktailpi.ProductionStep

	for _, ing := range recipe.Ingredients {
		result := b.classifier.Classify(ctx, ing)
		switch {
		case result.Resolved:
			dispensable = append(dispensable, cocktailpi.StepIngredient{
				Amount:       int(math.Round(*ing.VolumeML)),
				Scale:        true,
				Boostable:    true,
				IngredientID: result.IngredientID,
			})
		case result.Instruction != "":
			instructions = append(instructions, cocktailpi.WrittenInstruction(result.Instruction))
		default:
			// implied 元素或無法解析的原料，已在分類器留下紀錄
		}
	}

	var steps []cocktailpi.ProductionStep
	if len(dispensable) > 0 {
		steps = append(steps, cocktailpi.AddIngredients(dispensable))
	}
	steps = append(steps, instructions...)

	for _, prep := range recipe.Preparation {
		if trimmed := strings.TrimSpace(prep); trimmed != "" {
			steps = append(steps, cocktailpi.WrittenInstruction(trimmed))
		}
	}

	if len(steps) == 0 {
		common.LogDebug("配方組不出任何步驟，改用通用指示",
			zap.String("配方", recipe.Name),
		)
		steps = append(steps, cocktailpi.WrittenInstruction(FallbackInstruction))
	}

	return &cocktailpi.RecipePayload{
		Name:            recipe.Name,
		OwnerID:         b.ownerID,
		Description:     recipe.Description,
		ProductionSteps: steps,
		DefaultGlassID:  b.glassID,
		CategoryIDs:     []int64{b.categoryID},
	}
}

// HasMeaningfulSteps 配方是否值得提交：
// 有非空的出酒步驟，或有通用退路以外的書面指示
func HasMeaningfulSteps(payload *cocktailpi.RecipePayload) bool {
	for _, step := range payload.ProductionSteps {
		if step.Type == cocktailpi.StepTypeAddIngredients && len(step.StepIngredients) > 0 {
			return true
		}
		if step.Type == cocktailpi.StepTypeWrittenInstruction && step.Message != FallbackInstruction {
			return true
		}
	}
	return false
}
