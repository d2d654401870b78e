package subscription

import (
	"context"
	"errors"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/pkg/recipe"
	"foodgram/pkg/user"

	"gorm.io/gorm"
)

//go:generate mockgen -source=subscription_service.go -destination=mock/subscription_service.go -package=mock

type (
	SubscriptionService interface {
		Subscribe(ctx context.Context, authorID int64, recipesLimit int, viewer domain.Viewer) (domain.SubscriptionResponse, error)
		Unsubscribe(ctx context.Context, authorID int64, viewer domain.Viewer) error
		GetSubscriptions(ctx context.Context, filter domain.SubscriptionFilter, viewer domain.Viewer) ([]domain.SubscriptionResponse, int64, error)
	}

	subscriptionService struct {
		subscriptionRepository SubscriptionRepository
		userRepository         user.UserRepository
	}
)

func NewSubscriptionService(subscriptionRepository SubscriptionRepository, userRepository user.UserRepository) SubscriptionService {
	return &subscriptionService{
		subscriptionRepository: subscriptionRepository,
		userRepository:         userRepository,
	}
}

// checkTarget rejects self-subscription before touching storage and then
// makes sure the author exists.
func (s *subscriptionService) checkTarget(ctx context.Context, authorID int64, viewer domain.Viewer) (*entities.User, error) {
	if !viewer.Authenticated() {
		return nil, domain.ErrTokenNotFound
	}
	if authorID == viewer.ID {
		return nil, domain.ErrSelfSubscription
	}

	author, err := s.userRepository.GetUserByID(ctx, authorID, viewer.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return author, nil
}

func (s *subscriptionService) Subscribe(ctx context.Context, authorID int64, recipesLimit int, viewer domain.Viewer) (domain.SubscriptionResponse, error) {
	author, err := s.checkTarget(ctx, authorID, viewer)
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}

	created, err := s.subscriptionRepository.Subscribe(ctx, viewer.ID, authorID)
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}
	if !created {
		return domain.SubscriptionResponse{}, domain.ErrAlreadySubscribed
	}
	author.IsSubscribed = true

	res, err := s.buildResponses(ctx, []*entities.User{author}, recipesLimit)
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}
	return res[0], nil
}

func (s *subscriptionService) Unsubscribe(ctx context.Context, authorID int64, viewer domain.Viewer) error {
	if _, err := s.checkTarget(ctx, authorID, viewer); err != nil {
		return err
	}

	deleted, err := s.subscriptionRepository.Unsubscribe(ctx, viewer.ID, authorID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotSubscribed
	}
	return nil
}

func (s *subscriptionService) GetSubscriptions(ctx context.Context, filter domain.SubscriptionFilter, viewer domain.Viewer) ([]domain.SubscriptionResponse, int64, error) {
	if !viewer.Authenticated() {
		return nil, 0, domain.ErrTokenNotFound
	}

	authors, count, err := s.subscriptionRepository.GetSubscribedAuthors(ctx, viewer.ID, filter.Pagination)
	if err != nil {
		return nil, 0, err
	}

	res, err := s.buildResponses(ctx, authors, filter.RecipesLimit)
	if err != nil {
		return nil, 0, err
	}
	return res, count, nil
}

// buildResponses loads recipe counts and previews for the whole page of
// authors with one query each.
func (s *subscriptionService) buildResponses(ctx context.Context, authors []*entities.User, recipesLimit int) ([]domain.SubscriptionResponse, error) {
	res := make([]domain.SubscriptionResponse, 0, len(authors))
	if len(authors) == 0 {
		return res, nil
	}

	authorIDs := make([]int64, 0, len(authors))
	for _, a := range authors {
		authorIDs = append(authorIDs, a.ID)
	}

	counts, err := s.subscriptionRepository.CountRecipesByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	previews, err := s.subscriptionRepository.GetRecipePreviews(ctx, authorIDs, recipesLimit)
	if err != nil {
		return nil, err
	}

	for _, a := range authors {
		recipes := make([]domain.RecipeShortResponse, 0, len(previews[a.ID]))
		for _, r := range previews[a.ID] {
			recipes = append(recipes, recipe.ToRecipeShortResponse(r))
		}

		res = append(res, domain.SubscriptionResponse{
			UserResponse: user.ToUserResponse(a),
			Recipes:      recipes,
			RecipesCount: counts[a.ID],
		})
	}
	return res, nil
}
