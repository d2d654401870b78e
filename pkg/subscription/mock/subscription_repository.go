package mock

import (
	context "context"
	reflect "reflect"

	domain "foodgram/domain"
	entities "foodgram/entities"
	gomock "go.uber.org/mock/gomock"
)

// MockSubscriptionRepository is a mock of SubscriptionRepository interface.
type MockSubscriptionRepository struct {
	ctrl     *gomock.Controller
	recorder *MockSubscriptionRepositoryMockRecorder
	isgomock struct{}
}

// MockSubscriptionRepositoryMockRecorder is the mock recorder for MockSubscriptionRepository.
type MockSubscriptionRepositoryMockRecorder struct {
	mock *MockSubscriptionRepository
}

// NewMockSubscriptionRepository creates a new mock instance.
func NewMockSubscriptionRepository(ctrl *gomock.Controller) *MockSubscriptionRepository {
	mock := &MockSubscriptionRepository{ctrl: ctrl}
	mock.recorder = &MockSubscriptionRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSubscriptionRepository) EXPECT() *MockSubscriptionRepositoryMockRecorder {
	return m.recorder
}

// CountRecipesByAuthors mocks base method.
func (m *MockSubscriptionRepository) CountRecipesByAuthors(ctx context.Context, authorIDs []int64) (map[int64]int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountRecipesByAuthors", ctx, authorIDs)
	ret0, _ := ret[0].(map[int64]int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountRecipesByAuthors indicates an expected call of CountRecipesByAuthors.
func (mr *MockSubscriptionRepositoryMockRecorder) CountRecipesByAuthors(ctx, authorIDs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountRecipesByAuthors", reflect.TypeOf((*MockSubscriptionRepository)(nil).CountRecipesByAuthors), ctx, authorIDs)
}

// GetRecipePreviews mocks base method.
func (m *MockSubscriptionRepository) GetRecipePreviews(ctx context.Context, authorIDs []int64, limit int) (map[int64][]*entities.Recipe, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRecipePreviews", ctx, authorIDs, limit)
	ret0, _ := ret[0].(map[int64][]*entities.Recipe)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRecipePreviews indicates an expected call of GetRecipePreviews.
func (mr *MockSubscriptionRepositoryMockRecorder) GetRecipePreviews(ctx, authorIDs, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRecipePreviews", reflect.TypeOf((*MockSubscriptionRepository)(nil).GetRecipePreviews), ctx, authorIDs, limit)
}

// GetSubscribedAuthors mocks base method.
func (m *MockSubscriptionRepository) GetSubscribedAuthors(ctx context.Context, userID int64, pagination domain.Pagination) ([]*entities.User, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSubscribedAuthors", ctx, userID, pagination)
	ret0, _ := ret[0].([]*entities.User)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetSubscribedAuthors indicates an expected call of GetSubscribedAuthors.
func (mr *MockSubscriptionRepositoryMockRecorder) GetSubscribedAuthors(ctx, userID, pagination any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSubscribedAuthors", reflect.TypeOf((*MockSubscriptionRepository)(nil).GetSubscribedAuthors), ctx, userID, pagination)
}

// Subscribe mocks base method.
func (m *MockSubscriptionRepository) Subscribe(ctx context.Context, userID int64, authorID int64) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Subscribe", ctx, userID, authorID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Subscribe indicates an expected call of Subscribe.
func (mr *MockSubscriptionRepositoryMockRecorder) Subscribe(ctx, userID, authorID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Subscribe", reflect.TypeOf((*MockSubscriptionRepository)(nil).Subscribe), ctx, userID, authorID)
}

// Unsubscribe mocks base method.
func (m *MockSubscriptionRepository) Unsubscribe(ctx context.Context, userID int64, authorID int64) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Unsubscribe", ctx, userID, authorID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Unsubscribe indicates an expected call of Unsubscribe.
func (mr *MockSubscriptionRepositoryMockRecorder) Unsubscribe(ctx, userID, authorID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Unsubscribe", reflect.TypeOf((*MockSubscriptionRepository)(nil).Unsubscribe), ctx, userID, authorID)
}
