package tag

import (
	"context"
	"errors"
	"time"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/internal/utils/cache"
	"foodgram/internal/utils/logger"

	"gorm.io/gorm"
)

//go:generate mockgen -source=tag_service.go -destination=mock/tag_service.go -package=mock

const (
	tagsCacheKey = "tags:all"
	tagsCacheTTL = time.Hour
)

type (
	TagService interface {
		GetTags(ctx context.Context) ([]domain.TagResponse, error)
		GetTagByID(ctx context.Context, id int64) (domain.TagResponse, error)
		CreateTag(ctx context.Context, viewer domain.Viewer, req domain.TagRequest) (domain.TagResponse, error)
	}

	tagService struct {
		tagRepository TagRepository
		cache         cache.Cache
	}
)

func NewTagService(tagRepository TagRepository, cache cache.Cache) TagService {
	return &tagService{
		tagRepository: tagRepository,
		cache:         cache,
	}
}

func ToTagResponse(t *entities.Tag) domain.TagResponse {
	return domain.TagResponse{
		ID:    t.ID,
		Name:  t.Name,
		Color: t.Color,
		Slug:  t.Slug,
	}
}

func (s *tagService) GetTags(ctx context.Context) ([]domain.TagResponse, error) {
	var cached []domain.TagResponse
	if found, err := s.cache.Get(ctx, tagsCacheKey, &cached); err != nil {
		logger.Warn().Err(err).Str("key", tagsCacheKey).Msg("cache read failed")
	} else if found {
		return cached, nil
	}

	tags, err := s.tagRepository.GetTags(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.TagResponse, 0, len(tags))
	for _, t := range tags {
		res = append(res, ToTagResponse(t))
	}

	if err := s.cache.Set(ctx, tagsCacheKey, res, tagsCacheTTL); err != nil {
		logger.Warn().Err(err).Str("key", tagsCacheKey).Msg("cache write failed")
	}
	return res, nil
}

func (s *tagService) GetTagByID(ctx context.Context, id int64) (domain.TagResponse, error) {
	tag, err := s.tagRepository.GetTagByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TagResponse{}, domain.ErrTagNotFound
		}
		return domain.TagResponse{}, err
	}
	return ToTagResponse(tag), nil
}

func (s *tagService) CreateTag(ctx context.Context, viewer domain.Viewer, req domain.TagRequest) (domain.TagResponse, error) {
	if !viewer.IsAdmin() {
		return domain.TagResponse{}, domain.ErrUserNotAllowed
	}

	exists, err := s.tagRepository.CheckSlugExists(ctx, req.Slug)
	if err != nil {
		return domain.TagResponse{}, err
	}
	if exists {
		return domain.TagResponse{}, domain.ErrTagSlugUsed
	}

	tag := &entities.Tag{
		Name:  req.Name,
		Color: req.Color,
		Slug:  req.Slug,
	}
	if err := s.tagRepository.CreateTag(ctx, tag); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.TagResponse{}, domain.ErrTagSlugUsed
		}
		return domain.TagResponse{}, err
	}

	if err := s.cache.Delete(ctx, tagsCacheKey); err != nil {
		logger.Warn().Err(err).Str("key", tagsCacheKey).Msg("cache invalidation failed")
	}
	return ToTagResponse(tag), nil
}
