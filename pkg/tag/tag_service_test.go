package tag

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"foodgram/domain"
	"foodgram/entities"
	cachemock "foodgram/internal/utils/cache/mock"
	"foodgram/pkg/tag/mock"

	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func Test_tagService_GetTags(t *testing.T) {
	want := []domain.TagResponse{{ID: 1, Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"}}

	t.Run("CacheMiss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockTagRepository(ctrl)
		store := cachemock.NewMockCache(ctrl)

		store.EXPECT().Get(gomock.Any(), tagsCacheKey, gomock.Any()).Return(false, nil)
		repo.EXPECT().GetTags(gomock.Any()).
			Return([]*entities.Tag{{ID: 1, Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"}}, nil)
		store.EXPECT().Set(gomock.Any(), tagsCacheKey, want, tagsCacheTTL).Return(nil)

		got, err := NewTagService(repo, store).GetTags(context.Background())
		if err != nil {
			t.Fatalf("GetTags() error = %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("GetTags() = %+v, want %+v", got, want)
		}
	})

	t.Run("CacheHit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockTagRepository(ctrl)
		store := cachemock.NewMockCache(ctrl)

		store.EXPECT().Get(gomock.Any(), tagsCacheKey, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest any) (bool, error) {
				*dest.(*[]domain.TagResponse) = want
				return true, nil
			})

		got, err := NewTagService(repo, store).GetTags(context.Background())
		if err != nil {
			t.Fatalf("GetTags() error = %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("GetTags() = %+v, want %+v", got, want)
		}
	})
}

func Test_tagService_GetTagByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockTagRepository(ctrl)
	repo.EXPECT().GetTagByID(gomock.Any(), int64(4)).Return(nil, gorm.ErrRecordNotFound)

	_, err := NewTagService(repo, cachemock.NewMockCache(ctrl)).GetTagByID(context.Background(), 4)
	if !errors.Is(err, domain.ErrTagNotFound) {
		t.Errorf("GetTagByID() error = %v, want %v", err, domain.ErrTagNotFound)
	}
}

func Test_tagService_CreateTag(t *testing.T) {
	req := domain.TagRequest{Name: "Lunch", Color: "#49B64E", Slug: "lunch"}
	admin := domain.Viewer{ID: 1, Role: domain.RoleAdmin}

	tests := []struct {
		name    string
		viewer  domain.Viewer
		setup   func(repo *mock.MockTagRepository, store *cachemock.MockCache)
		wantErr error
	}{
		{
			name:   "Success",
			viewer: admin,
			setup: func(repo *mock.MockTagRepository, store *cachemock.MockCache) {
				repo.EXPECT().CheckSlugExists(gomock.Any(), "lunch").Return(false, nil)
				repo.EXPECT().CreateTag(gomock.Any(), gomock.Any()).Return(nil)
				store.EXPECT().Delete(gomock.Any(), tagsCacheKey).Return(nil)
			},
		},
		{
			name:    "NotAdmin",
			viewer:  domain.Viewer{ID: 2, Role: domain.RoleUser},
			setup:   func(*mock.MockTagRepository, *cachemock.MockCache) {},
			wantErr: domain.ErrUserNotAllowed,
		},
		{
			name:   "SlugTaken",
			viewer: admin,
			setup: func(repo *mock.MockTagRepository, _ *cachemock.MockCache) {
				repo.EXPECT().CheckSlugExists(gomock.Any(), "lunch").Return(true, nil)
			},
			wantErr: domain.ErrTagSlugUsed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockTagRepository(ctrl)
			store := cachemock.NewMockCache(ctrl)
			tt.setup(repo, store)

			_, err := NewTagService(repo, store).CreateTag(context.Background(), tt.viewer, req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateTag() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
