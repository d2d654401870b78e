package subscription

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/pkg/subscription/mock"
	usermock "foodgram/pkg/user/mock"

	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

var (
	follower = domain.Viewer{ID: 2, Role: domain.RoleUser}
	chef     = &entities.User{ID: 1, Email: "chef@example.com", Username: "chef", FirstName: "Ann", LastName: "Cook"}
)

func Test_subscriptionService_Subscribe(t *testing.T) {
	tests := []struct {
		name     string
		authorID int64
		viewer   domain.Viewer
		setup    func(subs *mock.MockSubscriptionRepository, users *usermock.MockUserRepository)
		want     domain.SubscriptionResponse
		wantErr  error
	}{
		{
			name:     "SelfSubscriptionNeverHitsStorage",
			authorID: follower.ID,
			viewer:   follower,
			setup:    func(*mock.MockSubscriptionRepository, *usermock.MockUserRepository) {},
			wantErr:  domain.ErrSelfSubscription,
		},
		{
			name:     "Anonymous",
			authorID: 1,
			viewer:   domain.Viewer{},
			setup:    func(*mock.MockSubscriptionRepository, *usermock.MockUserRepository) {},
			wantErr:  domain.ErrTokenNotFound,
		},
		{
			name:     "AuthorMissing",
			authorID: 9,
			viewer:   follower,
			setup: func(_ *mock.MockSubscriptionRepository, users *usermock.MockUserRepository) {
				users.EXPECT().GetUserByID(gomock.Any(), int64(9), follower.ID).Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: domain.ErrUserNotFound,
		},
		{
			name:     "AlreadySubscribed",
			authorID: 1,
			viewer:   follower,
			setup: func(subs *mock.MockSubscriptionRepository, users *usermock.MockUserRepository) {
				author := *chef
				users.EXPECT().GetUserByID(gomock.Any(), int64(1), follower.ID).Return(&author, nil)
				subs.EXPECT().Subscribe(gomock.Any(), follower.ID, int64(1)).Return(false, nil)
			},
			wantErr: domain.ErrAlreadySubscribed,
		},
		{
			name:     "Success",
			authorID: 1,
			viewer:   follower,
			setup: func(subs *mock.MockSubscriptionRepository, users *usermock.MockUserRepository) {
				author := *chef
				users.EXPECT().GetUserByID(gomock.Any(), int64(1), follower.ID).Return(&author, nil)
				subs.EXPECT().Subscribe(gomock.Any(), follower.ID, int64(1)).Return(true, nil)
				subs.EXPECT().CountRecipesByAuthors(gomock.Any(), []int64{1}).Return(map[int64]int64{1: 3}, nil)
				subs.EXPECT().GetRecipePreviews(gomock.Any(), []int64{1}, 1).Return(map[int64][]*entities.Recipe{
					1: {{ID: 7, AuthorID: 1, Name: "Borscht", CookingTime: 90}},
				}, nil)
			},
			want: domain.SubscriptionResponse{
				UserResponse: domain.UserResponse{
					ID:           1,
					Email:        "chef@example.com",
					Username:     "chef",
					FirstName:    "Ann",
					LastName:     "Cook",
					IsSubscribed: true,
				},
				Recipes:      []domain.RecipeShortResponse{{ID: 7, Name: "Borscht", CookingTime: 90}},
				RecipesCount: 3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			subs := mock.NewMockSubscriptionRepository(ctrl)
			users := usermock.NewMockUserRepository(ctrl)
			tt.setup(subs, users)

			got, err := NewSubscriptionService(subs, users).Subscribe(context.Background(), tt.authorID, 1, tt.viewer)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Subscribe() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Subscribe() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func Test_subscriptionService_Unsubscribe(t *testing.T) {
	t.Run("NotSubscribed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		subs := mock.NewMockSubscriptionRepository(ctrl)
		users := usermock.NewMockUserRepository(ctrl)

		users.EXPECT().GetUserByID(gomock.Any(), int64(1), follower.ID).Return(chef, nil)
		subs.EXPECT().Unsubscribe(gomock.Any(), follower.ID, int64(1)).Return(false, nil)

		err := NewSubscriptionService(subs, users).Unsubscribe(context.Background(), 1, follower)
		if !errors.Is(err, domain.ErrNotSubscribed) {
			t.Errorf("Unsubscribe() error = %v, want %v", err, domain.ErrNotSubscribed)
		}
	})

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		subs := mock.NewMockSubscriptionRepository(ctrl)
		users := usermock.NewMockUserRepository(ctrl)

		users.EXPECT().GetUserByID(gomock.Any(), int64(1), follower.ID).Return(chef, nil)
		subs.EXPECT().Unsubscribe(gomock.Any(), follower.ID, int64(1)).Return(true, nil)

		if err := NewSubscriptionService(subs, users).Unsubscribe(context.Background(), 1, follower); err != nil {
			t.Errorf("Unsubscribe() error = %v", err)
		}
	})

	t.Run("Self", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		err := NewSubscriptionService(mock.NewMockSubscriptionRepository(ctrl), usermock.NewMockUserRepository(ctrl)).
			Unsubscribe(context.Background(), follower.ID, follower)
		if !errors.Is(err, domain.ErrSelfSubscription) {
			t.Errorf("Unsubscribe() error = %v, want %v", err, domain.ErrSelfSubscription)
		}
	})
}

func Test_subscriptionService_GetSubscriptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	subs := mock.NewMockSubscriptionRepository(ctrl)
	users := usermock.NewMockUserRepository(ctrl)

	filter := domain.SubscriptionFilter{Pagination: domain.Pagination{Page: 1, Limit: 6}}
	quiet := &entities.User{ID: 5, Username: "quiet", IsSubscribed: true}
	author := *chef
	author.IsSubscribed = true

	subs.EXPECT().GetSubscribedAuthors(gomock.Any(), follower.ID, filter.Pagination).
		Return([]*entities.User{&author, quiet}, int64(2), nil)
	subs.EXPECT().CountRecipesByAuthors(gomock.Any(), []int64{1, 5}).Return(map[int64]int64{1: 2}, nil)
	subs.EXPECT().GetRecipePreviews(gomock.Any(), []int64{1, 5}, 0).Return(map[int64][]*entities.Recipe{
		1: {{ID: 8, AuthorID: 1, Name: "Soup"}, {ID: 7, AuthorID: 1, Name: "Borscht"}},
	}, nil)

	got, count, err := NewSubscriptionService(subs, users).GetSubscriptions(context.Background(), filter, follower)
	if err != nil {
		t.Fatalf("GetSubscriptions() error = %v", err)
	}
	if count != 2 || len(got) != 2 {
		t.Fatalf("GetSubscriptions() = %d items, count %d", len(got), count)
	}
	if got[0].RecipesCount != 2 || len(got[0].Recipes) != 2 || got[0].Recipes[0].ID != 8 {
		t.Errorf("first author = %+v", got[0])
	}
	if got[1].RecipesCount != 0 || got[1].Recipes == nil || len(got[1].Recipes) != 0 || !got[1].IsSubscribed {
		t.Errorf("author without recipes = %+v", got[1])
	}
}
