package employee

import "context"

type Repository interface {
	Create(ctx context.Context, employee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByName(ctx context.Context, name string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, employee Employee) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
