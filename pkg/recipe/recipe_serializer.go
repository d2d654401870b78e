package recipe

import (
	"fmt"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/pkg/ingredient"
	"foodgram/pkg/tag"
	"foodgram/pkg/user"
)

// Action names the operation a recipe is rendered for.
type Action int

const (
	ActionList Action = iota
	ActionRetrieve
	ActionCreate
	ActionUpdate
	ActionFavorite
	ActionShoppingCart
)

func (a Action) String() string {
	switch a {
	case ActionList:
		return "list"
	case ActionRetrieve:
		return "retrieve"
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	case ActionFavorite:
		return "favorite"
	case ActionShoppingCart:
		return "shopping_cart"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

var serializers = map[Action]func(*entities.Recipe) domain.RecipeView{
	ActionList:         toRecipeResponse,
	ActionRetrieve:     toRecipeResponse,
	ActionCreate:       toRecipeResponse,
	ActionUpdate:       toRecipeResponse,
	ActionFavorite:     toRecipeShortResponse,
	ActionShoppingCart: toRecipeShortResponse,
}

// Serialize renders r in the shape registered for action.
func Serialize(action Action, r *entities.Recipe) (domain.RecipeView, error) {
	fn, ok := serializers[action]
	if !ok {
		return nil, fmt.Errorf("no recipe serializer for action %s", action)
	}
	return fn(r), nil
}

func toRecipeResponse(r *entities.Recipe) domain.RecipeView {
	res := domain.RecipeResponse{
		ID:               r.ID,
		Tags:             make([]domain.TagResponse, 0, len(r.Tags)),
		Author:           user.ToUserResponse(r.Author),
		Ingredients:      make([]domain.RecipeIngredientResponse, 0, len(r.Ingredients)),
		IsFavorited:      r.IsFavorited,
		IsInShoppingCart: r.IsInShoppingCart,
		Name:             r.Name,
		Image:            r.ImageURL,
		Text:             r.Text,
		CookingTime:      r.CookingTime,
		PubDate:          r.PubDate,
	}

	for _, rt := range r.Tags {
		if rt.Tag == nil {
			continue
		}
		res.Tags = append(res.Tags, tag.ToTagResponse(rt.Tag))
	}

	for _, ri := range r.Ingredients {
		if ri.Ingredient == nil {
			continue
		}
		i := ingredient.ToIngredientResponse(ri.Ingredient)
		res.Ingredients = append(res.Ingredients, domain.RecipeIngredientResponse{
			ID:              i.ID,
			Name:            i.Name,
			MeasurementUnit: i.MeasurementUnit,
			Amount:          ri.Amount,
		})
	}

	return res
}

func toRecipeShortResponse(r *entities.Recipe) domain.RecipeView {
	return ToRecipeShortResponse(r)
}

func ToRecipeShortResponse(r *entities.Recipe) domain.RecipeShortResponse {
	return domain.RecipeShortResponse{
		ID:          r.ID,
		Name:        r.Name,
		Image:       r.ImageURL,
		CookingTime: r.CookingTime,
	}
}
