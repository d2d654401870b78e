package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetRecipes        = "success get recipes"
	MessageSuccessGetRecipeDetail   = "success get recipe detail"
	MessageSuccessCreateRecipe      = "recipe created successfully"
	MessageSuccessUpdateRecipe      = "recipe updated successfully"
	MessageSuccessUploadRecipeImage = "recipe image uploaded successfully"
	MessageSuccessAddFavorite       = "recipe added to favorites"
	MessageSuccessAddShoppingCart   = "recipe added to shopping cart"

	MessageFailedGetRecipes           = "failed to get recipes"
	MessageFailedGetRecipeDetail      = "failed to get recipe detail"
	MessageFailedCreateRecipe         = "failed to create recipe"
	MessageFailedUpdateRecipe         = "failed to update recipe"
	MessageFailedDeleteRecipe         = "failed to delete recipe"
	MessageFailedUploadRecipeImage    = "failed to upload recipe image"
	MessageFailedAddFavorite          = "failed to add recipe to favorites"
	MessageFailedRemoveFavorite       = "failed to remove recipe from favorites"
	MessageFailedAddShoppingCart      = "failed to add recipe to shopping cart"
	MessageFailedRemoveShoppingCart   = "failed to remove recipe from shopping cart"
	MessageFailedDownloadShoppingCart = "failed to download shopping cart"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
	ErrAlreadyFavorited         = errors.New("recipe is already in favorites")
	ErrNotFavorited             = errors.New("recipe is not in favorites")
	ErrAlreadyInShoppingCart    = errors.New("recipe is already in shopping cart")
	ErrNotInShoppingCart        = errors.New("recipe is not in shopping cart")
	ErrShoppingCartEmpty        = errors.New("shopping cart is empty")
	ErrRecipeImageRequired      = errors.New("image is required")
	ErrInvalidCookingTime       = errors.New("cooking time must be at least 1 minute")
)

type (
	RecipeFilter struct {
		Tags             []string
		AuthorID         int64
		IsFavorited      bool
		IsInShoppingCart bool
		Pagination
	}

	RecipeIngredientRequest struct {
		ID     int64 `json:"id" validate:"required,gt=0"`
		Amount int   `json:"amount" validate:"required,min=1,max=32000"`
	}

	CreateRecipeRequest struct {
		Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"dive"`
		Tags        []int64                   `json:"tags" validate:"dive,gt=0"`
		Name        string                    `json:"name" validate:"required,max=200"`
		Text        string                    `json:"text" validate:"required"`
		CookingTime int                       `json:"cooking_time" validate:"required,min=1,max=32000"`
	}

	// UpdateRecipeRequest replaces the ingredient and tag sets wholesale; both
	// must be sent on every update.
	UpdateRecipeRequest struct {
		Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"dive"`
		Tags        []int64                   `json:"tags" validate:"dive,gt=0"`
		Name        *string                   `json:"name" validate:"omitempty,min=1,max=200"`
		Text        *string                   `json:"text" validate:"omitempty,min=1"`
		CookingTime *int                      `json:"cooking_time" validate:"omitempty,min=1,max=32000"`
	}

	UploadRecipeImageRequest struct {
		Image *multipart.FileHeader `form:"image"`
	}

	RecipeIngredientResponse struct {
		ID              int64  `json:"id"`
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
		Amount          int    `json:"amount"`
	}

	RecipeResponse struct {
		ID               int64                      `json:"id"`
		Tags             []TagResponse              `json:"tags"`
		Author           UserResponse               `json:"author"`
		Ingredients      []RecipeIngredientResponse `json:"ingredients"`
		IsFavorited      bool                       `json:"is_favorited"`
		IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
		Name             string                     `json:"name"`
		Image            string                     `json:"image"`
		Text             string                     `json:"text"`
		CookingTime      int                        `json:"cooking_time"`
		PubDate          time.Time                  `json:"pub_date"`
	}

	RecipeShortResponse struct {
		ID          int64  `json:"id"`
		Name        string `json:"name"`
		Image       string `json:"image"`
		CookingTime int    `json:"cooking_time"`
	}

	// RecipeView is implemented only by RecipeResponse and RecipeShortResponse.
	RecipeView interface {
		recipeView()
	}

	ShoppingListRow struct {
		Name            string
		MeasurementUnit string
		Amount          int
	}

	ShoppingListItem struct {
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
		TotalAmount     int    `json:"total_amount"`
	}
)

func (RecipeResponse) recipeView()      {}
func (RecipeShortResponse) recipeView() {}
