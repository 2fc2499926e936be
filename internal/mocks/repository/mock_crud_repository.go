// Package repository holds testify mocks of the domain repository interfaces.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// crudMock implements repository.CrudRepository[T] on a testify mock. The
// typed mocks embed it and add their finders. Method names are passed
// explicitly since caller inference does not see through generic receivers.
type crudMock[T any] struct {
	mock.Mock
}

func (m *crudMock[T]) Save(ctx context.Context, entity *T) (*T, error) {
	ret := m.MethodCalled("Save", ctx, entity)
	if rf, ok := ret.Get(0).(func(context.Context, *T) (*T, error)); ok {
		return rf(ctx, entity)
	}

	return objectOrNil[T](ret, 0), ret.Error(1)
}

func (m *crudMock[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	ret := m.MethodCalled("FindByID", ctx, id)

	return objectOrNil[T](ret, 0), ret.Error(1)
}

func (m *crudMock[T]) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	ret := m.MethodCalled("ExistsByID", ctx, id)

	return ret.Bool(0), ret.Error(1)
}

func (m *crudMock[T]) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return m.MethodCalled("DeleteByID", ctx, id).Error(0)
}

func (m *crudMock[T]) FindAll(ctx context.Context) ([]*T, error) {
	ret := m.MethodCalled("FindAll", ctx)

	return sliceOrNil[T](ret, 0), ret.Error(1)
}

// crudExpecter registers expectations for the embedded CrudRepository methods.
type crudExpecter struct {
	mock *mock.Mock
}

func (e *crudExpecter) Save(ctx, entity any) *mock.Call {
	return e.mock.On("Save", ctx, entity)
}

func (e *crudExpecter) FindByID(ctx, id any) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (e *crudExpecter) ExistsByID(ctx, id any) *mock.Call {
	return e.mock.On("ExistsByID", ctx, id)
}

func (e *crudExpecter) DeleteByID(ctx, id any) *mock.Call {
	return e.mock.On("DeleteByID", ctx, id)
}

func (e *crudExpecter) FindAll(ctx any) *mock.Call {
	return e.mock.On("FindAll", ctx)
}

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func objectOrNil[T any](ret mock.Arguments, i int) *T {
	if v, ok := ret.Get(i).(*T); ok {
		return v
	}

	return nil
}

func sliceOrNil[T any](ret mock.Arguments, i int) []*T {
	if v, ok := ret.Get(i).([]*T); ok {
		return v
	}

	return nil
}

func countOf(ret mock.Arguments, i int) int64 {
	if v, ok := ret.Get(i).(int64); ok {
		return v
	}

	return int64(ret.Int(i))
}
