package sanitizer

import "github.com/stretchr/testify/mock"

type MockSanitizer struct {
	mock.Mock
}

func (m *MockSanitizer) StripHTML(s string) string {
	return m.Called(s).String(0)
}
