//go:build integration

package recipe

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/internal/testinfra"
	"foodgram/pkg/ingredient"
	"foodgram/pkg/tag"
	"foodgram/pkg/user"

	"gorm.io/gorm"
)

type seed struct {
	u1, u2 *entities.User
	flour  *entities.Ingredient
	eggs   *entities.Ingredient
	tag    *entities.Tag
}

func seedCatalog(t *testing.T, db *gorm.DB) seed {
	t.Helper()
	s := seed{
		u1:    &entities.User{Email: "u1@example.com", Username: "u1", FirstName: "U", LastName: "One", Password: "x", Role: domain.RoleUser},
		u2:    &entities.User{Email: "u2@example.com", Username: "u2", FirstName: "U", LastName: "Two", Password: "x", Role: domain.RoleUser},
		flour: &entities.Ingredient{Name: "flour", MeasurementUnit: "g"},
		eggs:  &entities.Ingredient{Name: "eggs", MeasurementUnit: "pcs"},
		tag:   &entities.Tag{Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"},
	}
	for _, row := range []any{s.u1, s.u2, s.flour, s.eggs, s.tag} {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("seed %T: %v", row, err)
		}
	}
	return s
}

func newIntegrationService(db *gorm.DB) (RecipeRepository, RecipeService) {
	repo := NewRecipeRepository(db)
	svc := NewRecipeService(
		repo,
		user.NewUserRepository(db),
		tag.NewTagRepository(db),
		ingredient.NewIngredientRepository(db),
		nil,
	)
	return repo, svc
}

func createRecipe(t *testing.T, svc RecipeService, author *entities.User, s seed, amount int) int64 {
	t.Helper()
	view, err := svc.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Ingredients: []domain.RecipeIngredientRequest{{ID: s.flour.ID, Amount: amount}},
		Tags:        []int64{s.tag.ID},
		Name:        "Bread",
		Text:        "Bake it.",
		CookingTime: 60,
	}, domain.Viewer{ID: author.ID, Role: author.Role})
	if err != nil {
		t.Fatalf("CreateRecipe() error = %v", err)
	}
	return view.(domain.RecipeResponse).ID
}

func TestRecipeIntegration(t *testing.T) {
	db := testinfra.StartPostgres(t)
	s := seedCatalog(t, db)
	repo, svc := newIntegrationService(db)
	ctx := context.Background()

	v1 := domain.Viewer{ID: s.u1.ID, Role: domain.RoleUser}
	v2 := domain.Viewer{ID: s.u2.ID, Role: domain.RoleUser}

	recipeID := createRecipe(t, svc, s.u1, s, 2)

	t.Run("IsFavoritedPerViewer", func(t *testing.T) {
		if _, err := svc.AddFavorite(ctx, recipeID, v2); err != nil {
			t.Fatalf("AddFavorite() error = %v", err)
		}

		for _, tc := range []struct {
			name   string
			viewer domain.Viewer
			want   bool
		}{
			{"Favoriter", v2, true},
			{"Author", v1, false},
			{"Anonymous", domain.Viewer{}, false},
		} {
			view, err := svc.GetRecipeByID(ctx, recipeID, tc.viewer)
			if err != nil {
				t.Fatalf("%s: GetRecipeByID() error = %v", tc.name, err)
			}
			if got := view.(domain.RecipeResponse).IsFavorited; got != tc.want {
				t.Errorf("%s: is_favorited = %v, want %v", tc.name, got, tc.want)
			}
		}

		list, count, err := svc.GetRecipes(ctx, domain.RecipeFilter{
			IsFavorited: true,
			Pagination:  domain.Pagination{Page: 1, Limit: 10},
		}, v2)
		if err != nil || count != 1 || len(list) != 1 {
			t.Errorf("favorited filter = %d items, count %d, err %v", len(list), count, err)
		}
	})

	t.Run("DoubleAddAndRemoveAbsent", func(t *testing.T) {
		if _, err := svc.AddFavorite(ctx, recipeID, v2); !errors.Is(err, domain.ErrAlreadyFavorited) {
			t.Errorf("second AddFavorite() error = %v, want %v", err, domain.ErrAlreadyFavorited)
		}
		if err := svc.RemoveFavorite(ctx, recipeID, v2); err != nil {
			t.Fatalf("RemoveFavorite() error = %v", err)
		}
		if err := svc.RemoveFavorite(ctx, recipeID, v2); !errors.Is(err, domain.ErrNotFavorited) {
			t.Errorf("second RemoveFavorite() error = %v, want %v", err, domain.ErrNotFavorited)
		}
	})

	t.Run("ShoppingListSumsAcrossRecipes", func(t *testing.T) {
		otherID := createRecipe(t, svc, s.u1, s, 3)
		for _, id := range []int64{recipeID, otherID} {
			if _, err := svc.AddToShoppingCart(ctx, id, v2); err != nil {
				t.Fatalf("AddToShoppingCart(%d) error = %v", id, err)
			}
		}

		got, err := svc.GetShoppingList(ctx, v2)
		if err != nil {
			t.Fatalf("GetShoppingList() error = %v", err)
		}
		want := []domain.ShoppingListItem{{Name: "flour", MeasurementUnit: "g", TotalAmount: 5}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("GetShoppingList() = %+v, want %+v", got, want)
		}

		if _, err := svc.GetShoppingList(ctx, v1); !errors.Is(err, domain.ErrShoppingCartEmpty) {
			t.Errorf("empty cart error = %v, want %v", err, domain.ErrShoppingCartEmpty)
		}
	})

	t.Run("UpdateWithEmptyIngredientsKeepsPriorSet", func(t *testing.T) {
		_, err := svc.UpdateRecipe(ctx, recipeID, domain.UpdateRecipeRequest{
			Ingredients: []domain.RecipeIngredientRequest{},
			Tags:        []int64{s.tag.ID},
		}, v1)
		if !errors.Is(err, domain.ErrNoIngredients) {
			t.Fatalf("UpdateRecipe() error = %v, want %v", err, domain.ErrNoIngredients)
		}

		r, err := repo.GetRecipeByID(ctx, recipeID, 0)
		if err != nil {
			t.Fatalf("GetRecipeByID() error = %v", err)
		}
		if len(r.Ingredients) != 1 || r.Ingredients[0].IngredientID != s.flour.ID {
			t.Errorf("ingredients after failed update = %+v", r.Ingredients)
		}
	})

	t.Run("ReplaceRollsBackOnFailure", func(t *testing.T) {
		err := repo.ReplaceRecipe(ctx, recipeID, map[string]any{"name": "Renamed"},
			[]*entities.RecipeIngredient{{IngredientID: 999999, Amount: 1}},
			[]*entities.RecipeTag{{TagID: s.tag.ID}},
		)
		if err == nil {
			t.Fatal("ReplaceRecipe() with unknown ingredient succeeded")
		}

		r, err := repo.GetRecipeByID(ctx, recipeID, 0)
		if err != nil {
			t.Fatalf("GetRecipeByID() error = %v", err)
		}
		if r.Name != "Bread" || len(r.Ingredients) != 1 || len(r.Tags) != 1 {
			t.Errorf("recipe after rollback = name %q, %d ingredients, %d tags", r.Name, len(r.Ingredients), len(r.Tags))
		}
	})

	t.Run("ReplaceSwapsSets", func(t *testing.T) {
		view, err := svc.UpdateRecipe(ctx, recipeID, domain.UpdateRecipeRequest{
			Ingredients: []domain.RecipeIngredientRequest{{ID: s.eggs.ID, Amount: 4}},
			Tags:        []int64{s.tag.ID},
		}, v1)
		if err != nil {
			t.Fatalf("UpdateRecipe() error = %v", err)
		}
		ings := view.(domain.RecipeResponse).Ingredients
		if len(ings) != 1 || ings[0].Name != "eggs" || ings[0].Amount != 4 {
			t.Errorf("ingredients = %+v", ings)
		}
	})

	t.Run("NonOwnerCannotDelete", func(t *testing.T) {
		if err := svc.DeleteRecipe(ctx, recipeID, v2); !errors.Is(err, domain.ErrUnauthorizedRecipeAccess) {
			t.Errorf("DeleteRecipe() error = %v, want %v", err, domain.ErrUnauthorizedRecipeAccess)
		}
	})
}
