package mock

import (
	context "context"
	reflect "reflect"

	entities "foodgram/entities"
	gomock "go.uber.org/mock/gomock"
)

// MockIngredientRepository is a mock of IngredientRepository interface.
type MockIngredientRepository struct {
	ctrl     *gomock.Controller
	recorder *MockIngredientRepositoryMockRecorder
	isgomock struct{}
}

// MockIngredientRepositoryMockRecorder is the mock recorder for MockIngredientRepository.
type MockIngredientRepositoryMockRecorder struct {
	mock *MockIngredientRepository
}

// NewMockIngredientRepository creates a new mock instance.
func NewMockIngredientRepository(ctrl *gomock.Controller) *MockIngredientRepository {
	mock := &MockIngredientRepository{ctrl: ctrl}
	mock.recorder = &MockIngredientRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIngredientRepository) EXPECT() *MockIngredientRepositoryMockRecorder {
	return m.recorder
}

// CountIngredientsByIDs mocks base method.
func (m *MockIngredientRepository) CountIngredientsByIDs(ctx context.Context, ids []int64) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountIngredientsByIDs", ctx, ids)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountIngredientsByIDs indicates an expected call of CountIngredientsByIDs.
func (mr *MockIngredientRepositoryMockRecorder) CountIngredientsByIDs(ctx, ids any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountIngredientsByIDs", reflect.TypeOf((*MockIngredientRepository)(nil).CountIngredientsByIDs), ctx, ids)
}

// CreateIngredient mocks base method.
func (m *MockIngredientRepository) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateIngredient", ctx, ingredient)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateIngredient indicates an expected call of CreateIngredient.
func (mr *MockIngredientRepositoryMockRecorder) CreateIngredient(ctx, ingredient any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateIngredient", reflect.TypeOf((*MockIngredientRepository)(nil).CreateIngredient), ctx, ingredient)
}

// GetIngredientByID mocks base method.
func (m *MockIngredientRepository) GetIngredientByID(ctx context.Context, id int64) (*entities.Ingredient, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetIngredientByID", ctx, id)
	ret0, _ := ret[0].(*entities.Ingredient)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetIngredientByID indicates an expected call of GetIngredientByID.
func (mr *MockIngredientRepositoryMockRecorder) GetIngredientByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetIngredientByID", reflect.TypeOf((*MockIngredientRepository)(nil).GetIngredientByID), ctx, id)
}

// GetIngredients mocks base method.
func (m *MockIngredientRepository) GetIngredients(ctx context.Context, namePrefix string) ([]*entities.Ingredient, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetIngredients", ctx, namePrefix)
	ret0, _ := ret[0].([]*entities.Ingredient)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetIngredients indicates an expected call of GetIngredients.
func (mr *MockIngredientRepositoryMockRecorder) GetIngredients(ctx, namePrefix any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetIngredients", reflect.TypeOf((*MockIngredientRepository)(nil).GetIngredients), ctx, namePrefix)
}
