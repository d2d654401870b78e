package mock

import (
	context "context"
	reflect "reflect"

	domain "foodgram/domain"
	gomock "go.uber.org/mock/gomock"
)

// MockRecipeService is a mock of RecipeService interface.
type MockRecipeService struct {
	ctrl     *gomock.Controller
	recorder *MockRecipeServiceMockRecorder
	isgomock struct{}
}

// MockRecipeServiceMockRecorder is the mock recorder for MockRecipeService.
type MockRecipeServiceMockRecorder struct {
	mock *MockRecipeService
}

// NewMockRecipeService creates a new mock instance.
func NewMockRecipeService(ctrl *gomock.Controller) *MockRecipeService {
	mock := &MockRecipeService{ctrl: ctrl}
	mock.recorder = &MockRecipeServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRecipeService) EXPECT() *MockRecipeServiceMockRecorder {
	return m.recorder
}

// AddFavorite mocks base method.
func (m *MockRecipeService) AddFavorite(ctx context.Context, id int64, viewer domain.Viewer) (domain.RecipeView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddFavorite", ctx, id, viewer)
	ret0, _ := ret[0].(domain.RecipeView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddFavorite indicates an expected call of AddFavorite.
func (mr *MockRecipeServiceMockRecorder) AddFavorite(ctx, id, viewer any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddFavorite", reflect.TypeOf((*MockRecipeService)(nil).AddFavorite), ctx, id, viewer)
}

// AddToShoppingCart mocks base method.
func (m *MockRecipeService) AddToShoppingCart(ctx context.Context, id int64, viewer domain.Viewer) (domain.RecipeView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddToShoppingCart", ctx, id, viewer)
	ret0, _ := ret[0].(domain.RecipeView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddToShoppingCart indicates an expected call of AddToShoppingCart.
func (mr *MockRecipeServiceMockRecorder) AddToShoppingCart(ctx, id, viewer any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddToShoppingCart", reflect.TypeOf((*MockRecipeService)(nil).AddToShoppingCart), ctx, id, viewer)
}

// CreateRecipe mocks base method.
func (m *MockRecipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, viewer domain.Viewer) (domain.RecipeView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateRecipe", ctx, req, viewer)
	ret0, _ := ret[0].(domain.RecipeView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateRecipe indicates an expected call of CreateRecipe.
func (mr *MockRecipeServiceMockRecorder) CreateRecipe(ctx, req, viewer any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateRecipe", reflect.TypeOf((*MockRecipeService)(nil).CreateRecipe), ctx, req, viewer)
}

// DeleteRecipe mocks base method.
func (m *MockRecipeService) DeleteRecipe(ctx context.Context, id int64, viewer domain.Viewer) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteRecipe", ctx, id, viewer)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteRecipe indicates an expected call of DeleteRecipe.
func (mr *MockRecipeServiceMockRecorder) DeleteRecipe(ctx, id, viewer any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteRecipe", reflect.TypeOf((*MockRecipeService)(nil).DeleteRecipe), ctx, id, viewer)
}

// GetRecipeByID mocks base method.
func (m *MockRecipeService) GetRecipeByID(ctx context.Context, id int64, viewer domain.Viewer) (domain.RecipeView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRecipeByID", ctx, id, viewer)
	ret0, _ := ret[0].(domain.RecipeView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRecipeByID indicates an expected call of GetRecipeByID.
func (mr *MockRecipeServiceMockRecorder) GetRecipeByID(ctx, id, viewer any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRecipeByID", reflect.TypeOf((*MockRecipeService)(nil).GetRecipeByID), ctx, id, viewer)
}

// GetRecipes mocks base method.
func (m *MockRecipeService) GetRecipes(ctx context.Context, filter domain.RecipeFilter, viewer domain.Viewer) ([]domain.RecipeView, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRecipes", ctx, filter, viewer)
	ret0, _ := ret[0].([]domain.RecipeView)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetRecipes indicates an expected call of GetRecipes.
func (mr *MockRecipeServiceMockRecorder) GetRecipes(ctx, filter, viewer any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRecipes", reflect.TypeOf((*MockRecipeService)(nil).GetRecipes), ctx, filter, viewer)
}

// GetShoppingList mocks base method.
func (m *MockRecipeService) GetShoppingList(ctx context.Context, viewer domain.Viewer) ([]domain.ShoppingListItem, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetShoppingList", ctx, viewer)
	ret0, _ := ret[0].([]domain.ShoppingListItem)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetShoppingList indicates an expected call of GetShoppingList.
func (mr *MockRecipeServiceMockRecorder) GetShoppingList(ctx, viewer any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetShoppingList", reflect.TypeOf((*MockRecipeService)(nil).GetShoppingList), ctx, viewer)
}

// RemoveFavorite mocks base method.
func (m *MockRecipeService) RemoveFavorite(ctx context.Context, id int64, viewer domain.Viewer) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveFavorite", ctx, id, viewer)
	ret0, _ := ret[0].(error)
	return ret0
}

// RemoveFavorite indicates an expected call of RemoveFavorite.
func (mr *MockRecipeServiceMockRecorder) RemoveFavorite(ctx, id, viewer any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveFavorite", reflect.TypeOf((*MockRecipeService)(nil).RemoveFavorite), ctx, id, viewer)
}

// RemoveFromShoppingCart mocks base method.
func (m *MockRecipeService) RemoveFromShoppingCart(ctx context.Context, id int64, viewer domain.Viewer) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveFromShoppingCart", ctx, id, viewer)
	ret0, _ := ret[0].(error)
	return ret0
}

// RemoveFromShoppingCart indicates an expected call of RemoveFromShoppingCart.
func (mr *MockRecipeServiceMockRecorder) RemoveFromShoppingCart(ctx, id, viewer any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveFromShoppingCart", reflect.TypeOf((*MockRecipeService)(nil).RemoveFromShoppingCart), ctx, id, viewer)
}

// UpdateRecipe mocks base method.
func (m *MockRecipeService) UpdateRecipe(ctx context.Context, id int64, req domain.UpdateRecipeRequest, viewer domain.Viewer) (domain.RecipeView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateRecipe", ctx, id, req, viewer)
	ret0, _ := ret[0].(domain.RecipeView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateRecipe indicates an expected call of UpdateRecipe.
func (mr *MockRecipeServiceMockRecorder) UpdateRecipe(ctx, id, req, viewer any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateRecipe", reflect.TypeOf((*MockRecipeService)(nil).UpdateRecipe), ctx, id, req, viewer)
}

// UploadRecipeImage mocks base method.
func (m *MockRecipeService) UploadRecipeImage(ctx context.Context, id int64, req domain.UploadRecipeImageRequest, viewer domain.Viewer) (domain.RecipeView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UploadRecipeImage", ctx, id, req, viewer)
	ret0, _ := ret[0].(domain.RecipeView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UploadRecipeImage indicates an expected call of UploadRecipeImage.
func (mr *MockRecipeServiceMockRecorder) UploadRecipeImage(ctx, id, req, viewer any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UploadRecipeImage", reflect.TypeOf((*MockRecipeService)(nil).UploadRecipeImage), ctx, id, req, viewer)
}
