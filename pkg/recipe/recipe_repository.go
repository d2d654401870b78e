package recipe

import (
	"context"

	"foodgram/domain"
	"foodgram/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=recipe_repository.go -destination=mock/recipe_repository.go -package=mock

type (
	RecipeRepository interface {
		GetRecipes(ctx context.Context, filter domain.RecipeFilter, viewerID int64) ([]*entities.Recipe, int64, error)
		GetRecipeByID(ctx context.Context, id int64, viewerID int64) (*entities.Recipe, error)
		GetRecipeAuthorID(ctx context.Context, id int64) (int64, error)
		CreateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []*entities.RecipeIngredient, tags []*entities.RecipeTag) error
		ReplaceRecipe(ctx context.Context, id int64, fields map[string]any, ingredients []*entities.RecipeIngredient, tags []*entities.RecipeTag) error
		UpdateRecipeImage(ctx context.Context, id int64, imageURL string) error
		DeleteRecipe(ctx context.Context, id int64) error
		AddFavorite(ctx context.Context, userID, recipeID int64) (bool, error)
		RemoveFavorite(ctx context.Context, userID, recipeID int64) (bool, error)
		AddToShoppingCart(ctx context.Context, userID, recipeID int64) (bool, error)
		RemoveFromShoppingCart(ctx context.Context, userID, recipeID int64) (bool, error)
		GetShoppingCartRows(ctx context.Context, userID int64) ([]domain.ShoppingListRow, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// annotate selects recipes.* plus is_favorited and is_in_shopping_cart for
// viewerID as correlated EXISTS columns, so the flags cost no extra round
// trip. Anonymous viewers get constant FALSE columns.
func annotate(db *gorm.DB, viewerID int64) *gorm.DB {
	if viewerID == 0 {
		return db.Select("recipes.*, FALSE AS is_favorited, FALSE AS is_in_shopping_cart")
	}
	return db.Select(
		"recipes.*, "+
			"EXISTS (SELECT 1 FROM favorites f WHERE f.user_id = ? AND f.recipe_id = recipes.id) AS is_favorited, "+
			"EXISTS (SELECT 1 FROM shopping_carts sc WHERE sc.user_id = ? AND sc.recipe_id = recipes.id) AS is_in_shopping_cart",
		viewerID, viewerID,
	)
}

func applyFilter(db *gorm.DB, filter domain.RecipeFilter, viewerID int64) *gorm.DB {
	if len(filter.Tags) > 0 {
		db = db.Where(
			"EXISTS (SELECT 1 FROM recipe_tags rt JOIN tags t ON t.id = rt.tag_id WHERE rt.recipe_id = recipes.id AND t.slug IN ?)",
			filter.Tags,
		)
	}
	if filter.AuthorID != 0 {
		db = db.Where("recipes.author_id = ?", filter.AuthorID)
	}
	if filter.IsFavorited {
		db = db.Where("EXISTS (SELECT 1 FROM favorites f WHERE f.user_id = ? AND f.recipe_id = recipes.id)", viewerID)
	}
	if filter.IsInShoppingCart {
		db = db.Where("EXISTS (SELECT 1 FROM shopping_carts sc WHERE sc.user_id = ? AND sc.recipe_id = recipes.id)", viewerID)
	}
	return db
}

func preloadAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_ingredients.id asc")
		}).
		Preload("Ingredients.Ingredient").
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_tags.id asc")
		}).
		Preload("Tags.Tag")
}

func (r *recipeRepository) GetRecipes(ctx context.Context, filter domain.RecipeFilter, viewerID int64) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	if err := applyFilter(r.db.WithContext(ctx).Model(&entities.Recipe{}), filter, viewerID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	query := annotate(r.db.WithContext(ctx).Model(&entities.Recipe{}), viewerID)
	query = applyFilter(query, filter, viewerID)
	if err := preloadAssociations(query).
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Order("recipes.pub_date desc").
		Order("recipes.id desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id int64, viewerID int64) (*entities.Recipe, error) {
	var recipe entities.Recipe
	query := annotate(r.db.WithContext(ctx).Model(&entities.Recipe{}), viewerID)
	if err := preloadAssociations(query).
		Where("recipes.id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeAuthorID(ctx context.Context, id int64) (int64, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Select("id", "author_id").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return 0, err
	}
	return recipe.AuthorID, nil
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []*entities.RecipeIngredient, tags []*entities.RecipeTag) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(recipe).Error; err != nil {
			return err
		}
		return insertAssociations(tx, recipe.ID, ingredients, tags)
	})
}

// ReplaceRecipe updates the scalar fields and swaps the whole ingredient and
// tag sets in one transaction.
func (r *recipeRepository) ReplaceRecipe(ctx context.Context, id int64, fields map[string]any, ingredients []*entities.RecipeIngredient, tags []*entities.RecipeTag) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Recipe{}).Where("id = ?", id).Updates(withUpdatedAt(fields))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeTag{}).Error; err != nil {
			return err
		}
		return insertAssociations(tx, id, ingredients, tags)
	})
}

func withUpdatedAt(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["updated_at"] = gorm.Expr("NOW()")
	return out
}

func insertAssociations(tx *gorm.DB, recipeID int64, ingredients []*entities.RecipeIngredient, tags []*entities.RecipeTag) error {
	for _, ri := range ingredients {
		ri.ID = 0
		ri.RecipeID = recipeID
	}
	for _, rt := range tags {
		rt.ID = 0
		rt.RecipeID = recipeID
	}

	if len(ingredients) > 0 {
		if err := tx.Omit(clause.Associations).Create(&ingredients).Error; err != nil {
			return err
		}
	}
	if len(tags) > 0 {
		if err := tx.Omit(clause.Associations).Create(&tags).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *recipeRepository) UpdateRecipeImage(ctx context.Context, id int64, imageURL string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", id).
		Update("image_url", imageURL).Error
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// insertPair inserts the row unless the unique (user_id, recipe_id) pair
// already exists, reporting whether a row was written.
func (r *recipeRepository) insertPair(ctx context.Context, row any) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit(clause.Associations).
		Create(row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *recipeRepository) deletePair(ctx context.Context, model any, userID, recipeID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(model)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *recipeRepository) AddFavorite(ctx context.Context, userID, recipeID int64) (bool, error) {
	return r.insertPair(ctx, &entities.Favorite{UserID: userID, RecipeID: recipeID})
}

func (r *recipeRepository) RemoveFavorite(ctx context.Context, userID, recipeID int64) (bool, error) {
	return r.deletePair(ctx, &entities.Favorite{}, userID, recipeID)
}

func (r *recipeRepository) AddToShoppingCart(ctx context.Context, userID, recipeID int64) (bool, error) {
	return r.insertPair(ctx, &entities.ShoppingCart{UserID: userID, RecipeID: recipeID})
}

func (r *recipeRepository) RemoveFromShoppingCart(ctx context.Context, userID, recipeID int64) (bool, error) {
	return r.deletePair(ctx, &entities.ShoppingCart{}, userID, recipeID)
}

// GetShoppingCartRows returns one row per recipe ingredient of every recipe
// in the user's cart. Summing happens in AggregateShoppingList.
func (r *recipeRepository) GetShoppingCartRows(ctx context.Context, userID int64) ([]domain.ShoppingListRow, error) {
	var rows []domain.ShoppingListRow
	if err := r.db.WithContext(ctx).
		Table("shopping_carts AS sc").
		Select("i.name AS name, i.measurement_unit AS measurement_unit, ri.amount AS amount").
		Joins("JOIN recipe_ingredients AS ri ON ri.recipe_id = sc.recipe_id").
		Joins("JOIN ingredients AS i ON i.id = ri.ingredient_id").
		Where("sc.user_id = ?", userID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
