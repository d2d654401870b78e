package ingredient

import (
	"context"
	"errors"
	"strings"
	"time"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/internal/utils/cache"
	"foodgram/internal/utils/logger"

	"gorm.io/gorm"
)

//go:generate mockgen -source=ingredient_service.go -destination=mock/ingredient_service.go -package=mock

const (
	ingredientsCachePrefix = "ingredients:"
	ingredientsCacheTTL    = 10 * time.Minute
)

type (
	IngredientService interface {
		GetIngredients(ctx context.Context, name string) ([]domain.IngredientResponse, error)
		GetIngredientByID(ctx context.Context, id int64) (domain.IngredientResponse, error)
		CreateIngredient(ctx context.Context, viewer domain.Viewer, req domain.IngredientRequest) (domain.IngredientResponse, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
		cache                cache.Cache
	}
)

func NewIngredientService(ingredientRepository IngredientRepository, cache cache.Cache) IngredientService {
	return &ingredientService{
		ingredientRepository: ingredientRepository,
		cache:                cache,
	}
}

func ToIngredientResponse(i *entities.Ingredient) domain.IngredientResponse {
	return domain.IngredientResponse{
		ID:              i.ID,
		Name:            i.Name,
		MeasurementUnit: i.MeasurementUnit,
	}
}

func (s *ingredientService) GetIngredients(ctx context.Context, name string) ([]domain.IngredientResponse, error) {
	key := ingredientsCachePrefix + strings.ToLower(strings.TrimSpace(name))

	var cached []domain.IngredientResponse
	if found, err := s.cache.Get(ctx, key, &cached); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
	} else if found {
		return cached, nil
	}

	ingredients, err := s.ingredientRepository.GetIngredients(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}

	res := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, i := range ingredients {
		res = append(res, ToIngredientResponse(i))
	}

	if err := s.cache.Set(ctx, key, res, ingredientsCacheTTL); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
	return res, nil
}

func (s *ingredientService) GetIngredientByID(ctx context.Context, id int64) (domain.IngredientResponse, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, err
	}
	return ToIngredientResponse(ingredient), nil
}

func (s *ingredientService) CreateIngredient(ctx context.Context, viewer domain.Viewer, req domain.IngredientRequest) (domain.IngredientResponse, error) {
	if !viewer.IsAdmin() {
		return domain.IngredientResponse{}, domain.ErrUserNotAllowed
	}

	ingredient := &entities.Ingredient{
		Name:            strings.TrimSpace(req.Name),
		MeasurementUnit: strings.TrimSpace(req.MeasurementUnit),
	}
	if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}

	if err := s.cache.DeletePrefix(ctx, ingredientsCachePrefix); err != nil {
		logger.Warn().Err(err).Msg("cache invalidation failed")
	}
	return ToIngredientResponse(ingredient), nil
}
