package migration

import (
	"fmt"

	"foodgram/entities"
	"foodgram/internal/utils/logger"

	"gorm.io/gorm"
)

// Migrate creates or updates every table. Order follows foreign keys.
func Migrate(db *gorm.DB) error {
	models := []any{
		&entities.User{},
		&entities.Subscription{},
		&entities.Tag{},
		&entities.Ingredient{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.RecipeTag{},
		&entities.Favorite{},
		&entities.ShoppingCart{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrating %T: %w", model, err)
		}
	}

	logger.Info().Int("tables", len(models)).Msg("database migration complete")
	return nil
}
