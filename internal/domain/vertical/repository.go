package vertical

import "context"

type Repository interface {
	Save(ctx context.Context, v *Vertical) error
	Update(ctx context.Context, v *Vertical) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Vertical, error)
	List(ctx context.Context) ([]*Vertical, error)
	// CountProjects reports how many projects the vertical owns; deletion is
	// blocked while this is non-zero.
	CountProjects(ctx context.Context, id uint) (int64, error)
}
