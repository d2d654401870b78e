package recipe

import (
	"context"
	"errors"
	"fmt"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/internal/utils/logger"
	"foodgram/internal/utils/storage"
	"foodgram/pkg/ingredient"
	"foodgram/pkg/tag"
	"foodgram/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=recipe_service.go -destination=mock/recipe_service.go -package=mock

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, filter domain.RecipeFilter, viewer domain.Viewer) ([]domain.RecipeView, int64, error)
		GetRecipeByID(ctx context.Context, id int64, viewer domain.Viewer) (domain.RecipeView, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, viewer domain.Viewer) (domain.RecipeView, error)
		UpdateRecipe(ctx context.Context, id int64, req domain.UpdateRecipeRequest, viewer domain.Viewer) (domain.RecipeView, error)
		DeleteRecipe(ctx context.Context, id int64, viewer domain.Viewer) error
		UploadRecipeImage(ctx context.Context, id int64, req domain.UploadRecipeImageRequest, viewer domain.Viewer) (domain.RecipeView, error)
		AddFavorite(ctx context.Context, id int64, viewer domain.Viewer) (domain.RecipeView, error)
		RemoveFavorite(ctx context.Context, id int64, viewer domain.Viewer) error
		AddToShoppingCart(ctx context.Context, id int64, viewer domain.Viewer) (domain.RecipeView, error)
		RemoveFromShoppingCart(ctx context.Context, id int64, viewer domain.Viewer) error
		GetShoppingList(ctx context.Context, viewer domain.Viewer) ([]domain.ShoppingListItem, error)
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		userRepository       user.UserRepository
		tagRepository        tag.TagRepository
		ingredientRepository ingredient.IngredientRepository
		s3                   storage.AwsS3
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	userRepository user.UserRepository,
	tagRepository tag.TagRepository,
	ingredientRepository ingredient.IngredientRepository,
	s3 storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		userRepository:       userRepository,
		tagRepository:        tagRepository,
		ingredientRepository: ingredientRepository,
		s3:                   s3,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, filter domain.RecipeFilter, viewer domain.Viewer) ([]domain.RecipeView, int64, error) {
	// anonymous viewers have no favorites or cart
	if !viewer.Authenticated() && (filter.IsFavorited || filter.IsInShoppingCart) {
		return []domain.RecipeView{}, 0, nil
	}

	recipes, count, err := s.recipeRepository.GetRecipes(ctx, filter, viewer.ID)
	if err != nil {
		return nil, 0, err
	}

	if err := s.markSubscribedAuthors(ctx, viewer, recipes...); err != nil {
		return nil, 0, err
	}

	res := make([]domain.RecipeView, 0, len(recipes))
	for _, r := range recipes {
		view, err := Serialize(ActionList, r)
		if err != nil {
			return nil, 0, err
		}
		res = append(res, view)
	}
	return res, count, nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id int64, viewer domain.Viewer) (domain.RecipeView, error) {
	return s.render(ctx, ActionRetrieve, id, viewer)
}

// render re-reads the recipe with its annotations and serializes it for
// action.
func (s *recipeService) render(ctx context.Context, action Action, id int64, viewer domain.Viewer) (domain.RecipeView, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id, viewer.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	if err := s.markSubscribedAuthors(ctx, viewer, recipe); err != nil {
		return nil, err
	}
	return Serialize(action, recipe)
}

func (s *recipeService) markSubscribedAuthors(ctx context.Context, viewer domain.Viewer, recipes ...*entities.Recipe) error {
	if !viewer.Authenticated() || len(recipes) == 0 {
		return nil
	}

	authorIDs := make([]int64, 0, len(recipes))
	seen := make(map[int64]bool, len(recipes))
	for _, r := range recipes {
		if r.Author != nil && !seen[r.AuthorID] {
			seen[r.AuthorID] = true
			authorIDs = append(authorIDs, r.AuthorID)
		}
	}
	if len(authorIDs) == 0 {
		return nil
	}

	subscribed, err := s.userRepository.SubscribedAuthorIDs(ctx, viewer.ID, authorIDs)
	if err != nil {
		return err
	}
	for _, r := range recipes {
		if r.Author != nil {
			r.Author.IsSubscribed = subscribed[r.AuthorID]
		}
	}
	return nil
}

// validateAssociations checks the ingredient and tag lists before any write.
func (s *recipeService) validateAssociations(ctx context.Context, ingredients []domain.RecipeIngredientRequest, tags []int64) error {
	if len(ingredients) == 0 {
		return domain.ErrNoIngredients
	}
	if len(tags) == 0 {
		return domain.ErrNoTags
	}

	ingredientIDs := make([]int64, 0, len(ingredients))
	seen := make(map[int64]bool, len(ingredients))
	for _, i := range ingredients {
		if i.Amount < 1 {
			return domain.ErrInvalidAmount
		}
		if seen[i.ID] {
			return domain.ErrDuplicateIngredient
		}
		seen[i.ID] = true
		ingredientIDs = append(ingredientIDs, i.ID)
	}

	seenTags := make(map[int64]bool, len(tags))
	for _, id := range tags {
		if seenTags[id] {
			return domain.ErrDuplicateTag
		}
		seenTags[id] = true
	}

	count, err := s.ingredientRepository.CountIngredientsByIDs(ctx, ingredientIDs)
	if err != nil {
		return err
	}
	if count != int64(len(ingredientIDs)) {
		return domain.ErrUnknownIngredient
	}

	count, err = s.tagRepository.CountTagsByIDs(ctx, tags)
	if err != nil {
		return err
	}
	if count != int64(len(tags)) {
		return domain.ErrUnknownTag
	}
	return nil
}

func toAssociationRows(ingredients []domain.RecipeIngredientRequest, tags []int64) ([]*entities.RecipeIngredient, []*entities.RecipeTag) {
	ingredientRows := make([]*entities.RecipeIngredient, 0, len(ingredients))
	for _, i := range ingredients {
		ingredientRows = append(ingredientRows, &entities.RecipeIngredient{
			IngredientID: i.ID,
			Amount:       i.Amount,
		})
	}

	tagRows := make([]*entities.RecipeTag, 0, len(tags))
	for _, id := range tags {
		tagRows = append(tagRows, &entities.RecipeTag{TagID: id})
	}
	return ingredientRows, tagRows
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, viewer domain.Viewer) (domain.RecipeView, error) {
	if !viewer.Authenticated() {
		return nil, domain.ErrTokenNotFound
	}
	if req.CookingTime < 1 {
		return nil, domain.ErrInvalidCookingTime
	}
	if err := s.validateAssociations(ctx, req.Ingredients, req.Tags); err != nil {
		return nil, err
	}

	recipe := &entities.Recipe{
		AuthorID:    viewer.ID,
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
	}
	ingredientRows, tagRows := toAssociationRows(req.Ingredients, req.Tags)

	if err := s.recipeRepository.CreateRecipe(ctx, recipe, ingredientRows, tagRows); err != nil {
		return nil, err
	}

	return s.render(ctx, ActionCreate, recipe.ID, viewer)
}

// authorize loads the recipe author and rejects viewers that do not own it.
func (s *recipeService) authorize(ctx context.Context, id int64, viewer domain.Viewer) error {
	authorID, err := s.recipeRepository.GetRecipeAuthorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	if !viewer.Authenticated() || authorID != viewer.ID {
		return domain.ErrUnauthorizedRecipeAccess
	}
	return nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id int64, req domain.UpdateRecipeRequest, viewer domain.Viewer) (domain.RecipeView, error) {
	if err := s.authorize(ctx, id, viewer); err != nil {
		return nil, err
	}

	fields := make(map[string]any)
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Text != nil {
		fields["text"] = *req.Text
	}
	if req.CookingTime != nil {
		if *req.CookingTime < 1 {
			return nil, domain.ErrInvalidCookingTime
		}
		fields["cooking_time"] = *req.CookingTime
	}

	if err := s.validateAssociations(ctx, req.Ingredients, req.Tags); err != nil {
		return nil, err
	}
	ingredientRows, tagRows := toAssociationRows(req.Ingredients, req.Tags)

	if err := s.recipeRepository.ReplaceRecipe(ctx, id, fields, ingredientRows, tagRows); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	return s.render(ctx, ActionUpdate, id, viewer)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id int64, viewer domain.Viewer) error {
	if err := s.authorize(ctx, id, viewer); err != nil {
		return err
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id, 0)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if key := s.s3.GetObjectKeyFromLink(recipe.ImageURL); key != "" {
		if err := s.s3.DeleteFile(key); err != nil {
			logger.Warn().Err(err).Str("key", key).Msg("recipe image not deleted")
		}
	}
	return nil
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, id int64, req domain.UploadRecipeImageRequest, viewer domain.Viewer) (domain.RecipeView, error) {
	if req.Image == nil {
		return nil, domain.ErrRecipeImageRequired
	}
	if err := s.authorize(ctx, id, viewer); err != nil {
		return nil, err
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id, 0)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	oldKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL)

	fileName := fmt.Sprintf("recipe-%d-%s", id, uuid.NewString())
	objectKey, err := s.s3.UploadFile(fileName, req.Image, "recipes", storage.AllowImage...)
	if err != nil {
		return nil, err
	}

	if err := s.recipeRepository.UpdateRecipeImage(ctx, id, s.s3.GetPublicLinkKey(objectKey)); err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return nil, err
	}

	if oldKey != "" {
		if err := s.s3.DeleteFile(oldKey); err != nil {
			logger.Warn().Err(err).Str("key", oldKey).Msg("previous recipe image not deleted")
		}
	}

	return s.render(ctx, ActionUpdate, id, viewer)
}

type toggleFunc func(ctx context.Context, userID, recipeID int64) (bool, error)

// addMembership inserts (viewer, recipe) through add and renders the recipe
// for action. errExists is returned when the pair was already present.
func (s *recipeService) addMembership(ctx context.Context, action Action, id int64, viewer domain.Viewer, add toggleFunc, errExists error) (domain.RecipeView, error) {
	if !viewer.Authenticated() {
		return nil, domain.ErrTokenNotFound
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id, viewer.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	created, err := add(ctx, viewer.ID, id)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, errExists
	}

	return Serialize(action, recipe)
}

func (s *recipeService) removeMembership(ctx context.Context, id int64, viewer domain.Viewer, remove toggleFunc, errMissing error) error {
	if !viewer.Authenticated() {
		return domain.ErrTokenNotFound
	}

	if _, err := s.recipeRepository.GetRecipeAuthorID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	deleted, err := remove(ctx, viewer.ID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errMissing
	}
	return nil
}

func (s *recipeService) AddFavorite(ctx context.Context, id int64, viewer domain.Viewer) (domain.RecipeView, error) {
	return s.addMembership(ctx, ActionFavorite, id, viewer, s.recipeRepository.AddFavorite, domain.ErrAlreadyFavorited)
}

func (s *recipeService) RemoveFavorite(ctx context.Context, id int64, viewer domain.Viewer) error {
	return s.removeMembership(ctx, id, viewer, s.recipeRepository.RemoveFavorite, domain.ErrNotFavorited)
}

func (s *recipeService) AddToShoppingCart(ctx context.Context, id int64, viewer domain.Viewer) (domain.RecipeView, error) {
	return s.addMembership(ctx, ActionShoppingCart, id, viewer, s.recipeRepository.AddToShoppingCart, domain.ErrAlreadyInShoppingCart)
}

func (s *recipeService) RemoveFromShoppingCart(ctx context.Context, id int64, viewer domain.Viewer) error {
	return s.removeMembership(ctx, id, viewer, s.recipeRepository.RemoveFromShoppingCart, domain.ErrNotInShoppingCart)
}

func (s *recipeService) GetShoppingList(ctx context.Context, viewer domain.Viewer) ([]domain.ShoppingListItem, error) {
	if !viewer.Authenticated() {
		return nil, domain.ErrTokenNotFound
	}

	rows, err := s.recipeRepository.GetShoppingCartRows(ctx, viewer.ID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrShoppingCartEmpty
	}

	return AggregateShoppingList(rows), nil
}
