package mock

import (
	context "context"
	reflect "reflect"

	domain "foodgram/domain"
	entities "foodgram/entities"
	gomock "go.uber.org/mock/gomock"
)

// MockRecipeRepository is a mock of RecipeRepository interface.
type MockRecipeRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRecipeRepositoryMockRecorder
	isgomock struct{}
}

// MockRecipeRepositoryMockRecorder is the mock recorder for MockRecipeRepository.
type MockRecipeRepositoryMockRecorder struct {
	mock *MockRecipeRepository
}

// NewMockRecipeRepository creates a new mock instance.
func NewMockRecipeRepository(ctrl *gomock.Controller) *MockRecipeRepository {
	mock := &MockRecipeRepository{ctrl: ctrl}
	mock.recorder = &MockRecipeRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRecipeRepository) EXPECT() *MockRecipeRepositoryMockRecorder {
	return m.recorder
}

// AddFavorite mocks base method.
func (m *MockRecipeRepository) AddFavorite(ctx context.Context, userID int64, recipeID int64) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddFavorite", ctx, userID, recipeID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddFavorite indicates an expected call of AddFavorite.
func (mr *MockRecipeRepositoryMockRecorder) AddFavorite(ctx, userID, recipeID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddFavorite", reflect.TypeOf((*MockRecipeRepository)(nil).AddFavorite), ctx, userID, recipeID)
}

// AddToShoppingCart mocks base method.
func (m *MockRecipeRepository) AddToShoppingCart(ctx context.Context, userID int64, recipeID int64) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddToShoppingCart", ctx, userID, recipeID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddToShoppingCart indicates an expected call of AddToShoppingCart.
func (mr *MockRecipeRepositoryMockRecorder) AddToShoppingCart(ctx, userID, recipeID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddToShoppingCart", reflect.TypeOf((*MockRecipeRepository)(nil).AddToShoppingCart), ctx, userID, recipeID)
}

// CreateRecipe mocks base method.
func (m *MockRecipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []*entities.RecipeIngredient, tags []*entities.RecipeTag) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateRecipe", ctx, recipe, ingredients, tags)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateRecipe indicates an expected call of CreateRecipe.
func (mr *MockRecipeRepositoryMockRecorder) CreateRecipe(ctx, recipe, ingredients, tags any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateRecipe", reflect.TypeOf((*MockRecipeRepository)(nil).CreateRecipe), ctx, recipe, ingredients, tags)
}

// DeleteRecipe mocks base method.
func (m *MockRecipeRepository) DeleteRecipe(ctx context.Context, id int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteRecipe", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteRecipe indicates an expected call of DeleteRecipe.
func (mr *MockRecipeRepositoryMockRecorder) DeleteRecipe(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteRecipe", reflect.TypeOf((*MockRecipeRepository)(nil).DeleteRecipe), ctx, id)
}

// GetRecipeAuthorID mocks base method.
func (m *MockRecipeRepository) GetRecipeAuthorID(ctx context.Context, id int64) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRecipeAuthorID", ctx, id)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRecipeAuthorID indicates an expected call of GetRecipeAuthorID.
func (mr *MockRecipeRepositoryMockRecorder) GetRecipeAuthorID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRecipeAuthorID", reflect.TypeOf((*MockRecipeRepository)(nil).GetRecipeAuthorID), ctx, id)
}

// GetRecipeByID mocks base method.
func (m *MockRecipeRepository) GetRecipeByID(ctx context.Context, id int64, viewerID int64) (*entities.Recipe, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRecipeByID", ctx, id, viewerID)
	ret0, _ := ret[0].(*entities.Recipe)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRecipeByID indicates an expected call of GetRecipeByID.
func (mr *MockRecipeRepositoryMockRecorder) GetRecipeByID(ctx, id, viewerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRecipeByID", reflect.TypeOf((*MockRecipeRepository)(nil).GetRecipeByID), ctx, id, viewerID)
}

// GetRecipes mocks base method.
func (m *MockRecipeRepository) GetRecipes(ctx context.Context, filter domain.RecipeFilter, viewerID int64) ([]*entities.Recipe, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRecipes", ctx, filter, viewerID)
	ret0, _ := ret[0].([]*entities.Recipe)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetRecipes indicates an expected call of GetRecipes.
func (mr *MockRecipeRepositoryMockRecorder) GetRecipes(ctx, filter, viewerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRecipes", reflect.TypeOf((*MockRecipeRepository)(nil).GetRecipes), ctx, filter, viewerID)
}

// GetShoppingCartRows mocks base method.
func (m *MockRecipeRepository) GetShoppingCartRows(ctx context.Context, userID int64) ([]domain.ShoppingListRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetShoppingCartRows", ctx, userID)
	ret0, _ := ret[0].([]domain.ShoppingListRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetShoppingCartRows indicates an expected call of GetShoppingCartRows.
func (mr *MockRecipeRepositoryMockRecorder) GetShoppingCartRows(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetShoppingCartRows", reflect.TypeOf((*MockRecipeRepository)(nil).GetShoppingCartRows), ctx, userID)
}

// RemoveFavorite mocks base method.
func (m *MockRecipeRepository) RemoveFavorite(ctx context.Context, userID int64, recipeID int64) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveFavorite", ctx, userID, recipeID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RemoveFavorite indicates an expected call of RemoveFavorite.
func (mr *MockRecipeRepositoryMockRecorder) RemoveFavorite(ctx, userID, recipeID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveFavorite", reflect.TypeOf((*MockRecipeRepository)(nil).RemoveFavorite), ctx, userID, recipeID)
}

// RemoveFromShoppingCart mocks base method.
func (m *MockRecipeRepository) RemoveFromShoppingCart(ctx context.Context, userID int64, recipeID int64) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveFromShoppingCart", ctx, userID, recipeID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RemoveFromShoppingCart indicates an expected call of RemoveFromShoppingCart.
func (mr *MockRecipeRepositoryMockRecorder) RemoveFromShoppingCart(ctx, userID, recipeID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveFromShoppingCart", reflect.TypeOf((*MockRecipeRepository)(nil).RemoveFromShoppingCart), ctx, userID, recipeID)
}

// ReplaceRecipe mocks base method.
func (m *MockRecipeRepository) ReplaceRecipe(ctx context.Context, id int64, fields map[string]any, ingredients []*entities.RecipeIngredient, tags []*entities.RecipeTag) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReplaceRecipe", ctx, id, fields, ingredients, tags)
	ret0, _ := ret[0].(error)
	return ret0
}

// ReplaceRecipe indicates an expected call of ReplaceRecipe.
func (mr *MockRecipeRepositoryMockRecorder) ReplaceRecipe(ctx, id, fields, ingredients, tags any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReplaceRecipe", reflect.TypeOf((*MockRecipeRepository)(nil).ReplaceRecipe), ctx, id, fields, ingredients, tags)
}

// UpdateRecipeImage mocks base method.
func (m *MockRecipeRepository) UpdateRecipeImage(ctx context.Context, id int64, imageURL string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateRecipeImage", ctx, id, imageURL)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateRecipeImage indicates an expected call of UpdateRecipeImage.
func (mr *MockRecipeRepositoryMockRecorder) UpdateRecipeImage(ctx, id, imageURL any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateRecipeImage", reflect.TypeOf((*MockRecipeRepository)(nil).UpdateRecipeImage), ctx, id, imageURL)
}
