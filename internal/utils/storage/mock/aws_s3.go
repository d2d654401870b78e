package mock

import (
	multipart "mime/multipart"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockAwsS3 is a mock of AwsS3 interface.
type MockAwsS3 struct {
	ctrl     *gomock.Controller
	recorder *MockAwsS3MockRecorder
	isgomock struct{}
}

// MockAwsS3MockRecorder is the mock recorder for MockAwsS3.
type MockAwsS3MockRecorder struct {
	mock *MockAwsS3
}

// NewMockAwsS3 creates a new mock instance.
func NewMockAwsS3(ctrl *gomock.Controller) *MockAwsS3 {
	mock := &MockAwsS3{ctrl: ctrl}
	mock.recorder = &MockAwsS3MockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAwsS3) EXPECT() *MockAwsS3MockRecorder {
	return m.recorder
}

// DeleteFile mocks base method.
func (m *MockAwsS3) DeleteFile(objectKey string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteFile", objectKey)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteFile indicates an expected call of DeleteFile.
func (mr *MockAwsS3MockRecorder) DeleteFile(objectKey any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteFile", reflect.TypeOf((*MockAwsS3)(nil).DeleteFile), objectKey)
}

// GetObjectKeyFromLink mocks base method.
func (m *MockAwsS3) GetObjectKeyFromLink(link string) string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetObjectKeyFromLink", link)
	ret0, _ := ret[0].(string)
	return ret0
}

// GetObjectKeyFromLink indicates an expected call of GetObjectKeyFromLink.
func (mr *MockAwsS3MockRecorder) GetObjectKeyFromLink(link any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetObjectKeyFromLink", reflect.TypeOf((*MockAwsS3)(nil).GetObjectKeyFromLink), link)
}

// GetPublicLinkKey mocks base method.
func (m *MockAwsS3) GetPublicLinkKey(objectKey string) string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPublicLinkKey", objectKey)
	ret0, _ := ret[0].(string)
	return ret0
}

// GetPublicLinkKey indicates an expected call of GetPublicLinkKey.
func (mr *MockAwsS3MockRecorder) GetPublicLinkKey(objectKey any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPublicLinkKey", reflect.TypeOf((*MockAwsS3)(nil).GetPublicLinkKey), objectKey)
}

// UpdateFile mocks base method.
func (m *MockAwsS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowed ...string) (string, error) {
	m.ctrl.T.Helper()
	varargs := []any{objectKey, file}
	for _, a := range allowed {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "UpdateFile", varargs...)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateFile indicates an expected call of UpdateFile.
func (mr *MockAwsS3MockRecorder) UpdateFile(objectKey, file any, allowed ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{objectKey, file}, allowed...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateFile", reflect.TypeOf((*MockAwsS3)(nil).UpdateFile), varargs...)
}

// UploadFile mocks base method.
func (m *MockAwsS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowed ...string) (string, error) {
	m.ctrl.T.Helper()
	varargs := []any{fileName, file, folder}
	for _, a := range allowed {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "UploadFile", varargs...)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UploadFile indicates an expected call of UploadFile.
func (mr *MockAwsS3MockRecorder) UploadFile(fileName, file, folder any, allowed ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{fileName, file, folder}, allowed...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UploadFile", reflect.TypeOf((*MockAwsS3)(nil).UploadFile), varargs...)
}
