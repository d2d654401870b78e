package mock

import (
	context "context"
	reflect "reflect"

	domain "foodgram/domain"
	gomock "go.uber.org/mock/gomock"
)

// MockIngredientService is a mock of IngredientService interface.
type MockIngredientService struct {
	ctrl     *gomock.Controller
	recorder *MockIngredientServiceMockRecorder
	isgomock struct{}
}

// MockIngredientServiceMockRecorder is the mock recorder for MockIngredientService.
type MockIngredientServiceMockRecorder struct {
	mock *MockIngredientService
}

// NewMockIngredientService creates a new mock instance.
func NewMockIngredientService(ctrl *gomock.Controller) *MockIngredientService {
	mock := &MockIngredientService{ctrl: ctrl}
	mock.recorder = &MockIngredientServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIngredientService) EXPECT() *MockIngredientServiceMockRecorder {
	return m.recorder
}

// CreateIngredient mocks base method.
func (m *MockIngredientService) CreateIngredient(ctx context.Context, viewer domain.Viewer, req domain.IngredientRequest) (domain.IngredientResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateIngredient", ctx, viewer, req)
	ret0, _ := ret[0].(domain.IngredientResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateIngredient indicates an expected call of CreateIngredient.
func (mr *MockIngredientServiceMockRecorder) CreateIngredient(ctx, viewer, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateIngredient", reflect.TypeOf((*MockIngredientService)(nil).CreateIngredient), ctx, viewer, req)
}

// GetIngredientByID mocks base method.
func (m *MockIngredientService) GetIngredientByID(ctx context.Context, id int64) (domain.IngredientResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetIngredientByID", ctx, id)
	ret0, _ := ret[0].(domain.IngredientResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetIngredientByID indicates an expected call of GetIngredientByID.
func (mr *MockIngredientServiceMockRecorder) GetIngredientByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetIngredientByID", reflect.TypeOf((*MockIngredientService)(nil).GetIngredientByID), ctx, id)
}

// GetIngredients mocks base method.
func (m *MockIngredientService) GetIngredients(ctx context.Context, name string) ([]domain.IngredientResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetIngredients", ctx, name)
	ret0, _ := ret[0].([]domain.IngredientResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetIngredients indicates an expected call of GetIngredients.
func (mr *MockIngredientServiceMockRecorder) GetIngredients(ctx, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetIngredients", reflect.TypeOf((*MockIngredientService)(nil).GetIngredients), ctx, name)
}
