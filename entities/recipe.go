// File: entities/recipe.go
package entities

import (
	"time"
)

type Recipe struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	AuthorID    int64     `gorm:"not null;index" json:"author_id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	CookingTime int       `gorm:"not null;check:chk_recipes_cooking_time,cooking_time >= 1" json:"cooking_time"`
	ImageURL    string    `json:"image_url,omitempty"`
	PubDate     time.Time `gorm:"type:timestamp;not null;index;autoCreateTime" json:"pub_date"`

	// Filled by the annotated recipe query, never persisted.
	IsFavorited      bool `gorm:"->;-:migration" json:"is_favorited"`
	IsInShoppingCart bool `gorm:"->;-:migration" json:"is_in_shopping_cart"`

	Author      *User               `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Ingredients []*RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Tags        []*RecipeTag        `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Timestamp
}

type RecipeIngredient struct {
	ID           int64 `gorm:"primaryKey" json:"id"`
	RecipeID     int64 `gorm:"not null;uniqueIndex:idx_recipe_ingredients_recipe_ingredient" json:"recipe_id"`
	IngredientID int64 `gorm:"not null;uniqueIndex:idx_recipe_ingredients_recipe_ingredient;index" json:"ingredient_id"`
	Amount       int   `gorm:"not null;check:chk_recipe_ingredients_amount,amount >= 1" json:"amount"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:RESTRICT"`
}

type RecipeTag struct {
	ID       int64 `gorm:"primaryKey" json:"id"`
	RecipeID int64 `gorm:"not null;uniqueIndex:idx_recipe_tags_recipe_tag" json:"recipe_id"`
	TagID    int64 `gorm:"not null;uniqueIndex:idx_recipe_tags_recipe_tag;index" json:"tag_id"`

	Tag *Tag `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
}

type Favorite struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_favorites_user_recipe" json:"user_id"`
	RecipeID  int64     `gorm:"not null;uniqueIndex:idx_favorites_user_recipe;index" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp;autoCreateTime" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

type ShoppingCart struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_shopping_carts_user_recipe" json:"user_id"`
	RecipeID  int64     `gorm:"not null;uniqueIndex:idx_shopping_carts_user_recipe;index" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp;autoCreateTime" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}
