// Package service holds testify mocks of the domain service interfaces.
package service

import (
	"context"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockEventPublisher is a mock of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates a mock whose expectations are asserted on cleanup.
func NewMockEventPublisher(t testingT) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEventPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}

func (m *MockEventPublisher) EXPECT() *MockEventPublisher_Expecter {
	return &MockEventPublisher_Expecter{mock: &m.Mock}
}

type MockEventPublisher_Expecter struct {
	mock *mock.Mock
}

func (e *MockEventPublisher_Expecter) Publish(ctx, event any) *mock.Call {
	return e.mock.On("Publish", ctx, event)
}

func (e *MockEventPublisher_Expecter) Close() *mock.Call {
	return e.mock.On("Close")
}
