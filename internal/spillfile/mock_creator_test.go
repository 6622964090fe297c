package spillfile_test

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"

	"github.com/hatsuno-dev/mpstream/internal/spillfile"
)

// MockCreator is a mock of the Creator interface, hand-written in the
// shape mockgen would produce for it.
type MockCreator struct {
	ctrl     *gomock.Controller
	recorder *MockCreatorMockRecorder
}

// MockCreatorMockRecorder is the mock recorder for MockCreator.
type MockCreatorMockRecorder struct {
	mock *MockCreator
}

// NewMockCreator creates a new mock instance.
func NewMockCreator(ctrl *gomock.Controller) *MockCreator {
	mock := &MockCreator{ctrl: ctrl}
	mock.recorder = &MockCreatorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCreator) EXPECT() *MockCreatorMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockCreator) Create(dir, pattern string) (spillfile.File, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", dir, pattern)
	ret0, _ := ret[0].(spillfile.File)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockCreatorMockRecorder) Create(dir, pattern interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockCreator)(nil).Create), dir, pattern)
}
