package ingredient

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"foodgram/domain"
	"foodgram/entities"
	cachemock "foodgram/internal/utils/cache/mock"
	"foodgram/pkg/ingredient/mock"

	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func Test_ingredientService_GetIngredients(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockIngredientRepository(ctrl)
	store := cachemock.NewMockCache(ctrl)

	store.EXPECT().Get(gomock.Any(), "ingredients:fl", gomock.Any()).Return(false, errors.New("redis down"))
	repo.EXPECT().GetIngredients(gomock.Any(), "Fl").
		Return([]*entities.Ingredient{{ID: 3, Name: "flour", MeasurementUnit: "g"}}, nil)
	store.EXPECT().Set(gomock.Any(), "ingredients:fl", gomock.Any(), ingredientsCacheTTL).Return(nil)

	got, err := NewIngredientService(repo, store).GetIngredients(context.Background(), " Fl ")
	if err != nil {
		t.Fatalf("GetIngredients() error = %v", err)
	}
	want := []domain.IngredientResponse{{ID: 3, Name: "flour", MeasurementUnit: "g"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetIngredients() = %+v, want %+v", got, want)
	}
}

func Test_ingredientService_GetIngredientByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockIngredientRepository(ctrl)
	repo.EXPECT().GetIngredientByID(gomock.Any(), int64(8)).Return(nil, gorm.ErrRecordNotFound)

	_, err := NewIngredientService(repo, cachemock.NewMockCache(ctrl)).GetIngredientByID(context.Background(), 8)
	if !errors.Is(err, domain.ErrIngredientNotFound) {
		t.Errorf("GetIngredientByID() error = %v, want %v", err, domain.ErrIngredientNotFound)
	}
}

func Test_ingredientService_CreateIngredient(t *testing.T) {
	t.Run("AdminInvalidatesCache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockIngredientRepository(ctrl)
		store := cachemock.NewMockCache(ctrl)

		repo.EXPECT().CreateIngredient(gomock.Any(), &entities.Ingredient{Name: "sugar", MeasurementUnit: "g"}).
			DoAndReturn(func(_ context.Context, i *entities.Ingredient) error {
				i.ID = 12
				return nil
			})
		store.EXPECT().DeletePrefix(gomock.Any(), ingredientsCachePrefix).Return(nil)

		got, err := NewIngredientService(repo, store).CreateIngredient(
			context.Background(),
			domain.Viewer{ID: 1, Role: domain.RoleAdmin},
			domain.IngredientRequest{Name: " sugar", MeasurementUnit: "g "},
		)
		if err != nil {
			t.Fatalf("CreateIngredient() error = %v", err)
		}
		if got.ID != 12 || got.Name != "sugar" {
			t.Errorf("CreateIngredient() = %+v", got)
		}
	})

	t.Run("RegularUserRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		_, err := NewIngredientService(mock.NewMockIngredientRepository(ctrl), cachemock.NewMockCache(ctrl)).
			CreateIngredient(context.Background(), domain.Viewer{ID: 2, Role: domain.RoleUser}, domain.IngredientRequest{Name: "salt", MeasurementUnit: "g"})
		if !errors.Is(err, domain.ErrUserNotAllowed) {
			t.Errorf("CreateIngredient() error = %v, want %v", err, domain.ErrUserNotAllowed)
		}
	})
}

func TestLikeEscaper(t *testing.T) {
	if got := likeEscaper.Replace(`50%_off\`); got != `50\%\_off\\` {
		t.Errorf("likeEscaper.Replace() = %q", got)
	}
}
