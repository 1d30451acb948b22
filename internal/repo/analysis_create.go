// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reportcare/reportcare_backend/internal/repo/analysis"
)

// AnalysisCreate is the builder for creating a Analysis entity.
type AnalysisCreate struct {
	config
	mutation *AnalysisMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalysisCreate) SetCreatedAt(v time.Time) *AnalysisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableCreatedAt(v *time.Time) *AnalysisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLabID sets the "lab_id" field.
func (_c *AnalysisCreate) SetLabID(v int) *AnalysisCreate {
	_c.mutation.SetLabID(v)
	return _c
}

// SetAge sets the "age" field.
func (_c *AnalysisCreate) SetAge(v int) *AnalysisCreate {
	_c.mutation.SetAge(v)
	return _c
}

// SetGender sets the "gender" field.
func (_c *AnalysisCreate) SetGender(v string) *AnalysisCreate {
	_c.mutation.SetGender(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *AnalysisCreate) SetResult(v string) *AnalysisCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *AnalysisCreate) SetAccuracy(v string) *AnalysisCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// Mutation returns the AnalysisMutation object of the builder.
func (_c *AnalysisCreate) Mutation() *AnalysisMutation {
	return _c.mutation
}

// Save creates the Analysis in the database.
func (_c *AnalysisCreate) Save(ctx context.Context) (*Analysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisCreate) SaveX(ctx context.Context) *Analysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analysis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Analysis.created_at"`)}
	}
	if _, ok := _c.mutation.LabID(); !ok {
		return &ValidationError{Name: "lab_id", err: errors.New(`repo: missing required field "Analysis.lab_id"`)}
	}
	if _, ok := _c.mutation.Age(); !ok {
		return &ValidationError{Name: "age", err: errors.New(`repo: missing required field "Analysis.age"`)}
	}
	if _, ok := _c.mutation.Gender(); !ok {
		return &ValidationError{Name: "gender", err: errors.New(`repo: missing required field "Analysis.gender"`)}
	}
	if v, ok := _c.mutation.Gender(); ok {
		if err := analysis.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "Analysis.gender": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Result(); !ok {
		return &ValidationError{Name: "result", err: errors.New(`repo: missing required field "Analysis.result"`)}
	}
	if v, ok := _c.mutation.Result(); ok {
		if err := analysis.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`repo: validator failed for field "Analysis.result": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`repo: missing required field "Analysis.accuracy"`)}
	}
	if v, ok := _c.mutation.Accuracy(); ok {
		if err := analysis.AccuracyValidator(v); err != nil {
			return &ValidationError{Name: "accuracy", err: fmt.Errorf(`repo: validator failed for field "Analysis.accuracy": %w`, err)}
		}
	}
	return nil
}

func (_c *AnalysisCreate) sqlSave(ctx context.Context) (*Analysis, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalysisCreate) createSpec() (*Analysis, *sqlgraph.CreateSpec) {
	var (
		_node = &Analysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysis.Table, sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analysis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LabID(); ok {
		_spec.SetField(analysis.FieldLabID, field.TypeInt, value)
		_node.LabID = value
	}
	if value, ok := _c.mutation.Age(); ok {
		_spec.SetField(analysis.FieldAge, field.TypeInt, value)
		_node.Age = value
	}
	if value, ok := _c.mutation.Gender(); ok {
		_spec.SetField(analysis.FieldGender, field.TypeString, value)
		_node.Gender = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(analysis.FieldResult, field.TypeString, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(analysis.FieldAccuracy, field.TypeString, value)
		_node.Accuracy = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Analysis.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnalysisUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AnalysisCreate) OnConflict(opts ...sql.ConflictOption) *AnalysisUpsertOne {
	_c.conflict = opts
	return &AnalysisUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Analysis.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnalysisCreate) OnConflictColumns(columns ...string) *AnalysisUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnalysisUpsertOne{
		create: _c,
	}
}

type (
	// AnalysisUpsertOne is the builder for "upsert"-ing
	//  one Analysis node.
	AnalysisUpsertOne struct {
		create *AnalysisCreate
	}

	// AnalysisUpsert is the "OnConflict" setter.
	AnalysisUpsert struct {
		*sql.UpdateSet
	}
)

// SetLabID sets the "lab_id" field.
func (u *AnalysisUpsert) SetLabID(v int) *AnalysisUpsert {
	u.Set(analysis.FieldLabID, v)
	return u
}

// UpdateLabID sets the "lab_id" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateLabID() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldLabID)
	return u
}

// AddLabID adds v to the "lab_id" field.
func (u *AnalysisUpsert) AddLabID(v int) *AnalysisUpsert {
	u.Add(analysis.FieldLabID, v)
	return u
}

// SetAge sets the "age" field.
func (u *AnalysisUpsert) SetAge(v int) *AnalysisUpsert {
	u.Set(analysis.FieldAge, v)
	return u
}

// UpdateAge sets the "age" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateAge() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldAge)
	return u
}

// AddAge adds v to the "age" field.
func (u *AnalysisUpsert) AddAge(v int) *AnalysisUpsert {
	u.Add(analysis.FieldAge, v)
	return u
}

// SetGender sets the "gender" field.
func (u *AnalysisUpsert) SetGender(v string) *AnalysisUpsert {
	u.Set(analysis.FieldGender, v)
	return u
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateGender() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldGender)
	return u
}

// SetResult sets the "result" field.
func (u *AnalysisUpsert) SetResult(v string) *AnalysisUpsert {
	u.Set(analysis.FieldResult, v)
	return u
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateResult() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldResult)
	return u
}

// SetAccuracy sets the "accuracy" field.
func (u *AnalysisUpsert) SetAccuracy(v string) *AnalysisUpsert {
	u.Set(analysis.FieldAccuracy, v)
	return u
}

// UpdateAccuracy sets the "accuracy" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateAccuracy() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldAccuracy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Analysis.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AnalysisUpsertOne) UpdateNewValues() *AnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(analysis.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Analysis.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AnalysisUpsertOne) Ignore() *AnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnalysisUpsertOne) DoNothing() *AnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnalysisCreate.OnConflict
// documentation for more info.
func (u *AnalysisUpsertOne) Update(set func(*AnalysisUpsert)) *AnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnalysisUpsert{UpdateSet: update})
	}))
	return u
}

// SetLabID sets the "lab_id" field.
func (u *AnalysisUpsertOne) SetLabID(v int) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetLabID(v)
	})
}

// AddLabID adds v to the "lab_id" field.
func (u *AnalysisUpsertOne) AddLabID(v int) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.AddLabID(v)
	})
}

// UpdateLabID sets the "lab_id" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateLabID() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateLabID()
	})
}

// SetAge sets the "age" field.
func (u *AnalysisUpsertOne) SetAge(v int) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetAge(v)
	})
}

// AddAge adds v to the "age" field.
func (u *AnalysisUpsertOne) AddAge(v int) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.AddAge(v)
	})
}

// UpdateAge sets the "age" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateAge() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateAge()
	})
}

// SetGender sets the "gender" field.
func (u *AnalysisUpsertOne) SetGender(v string) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetGender(v)
	})
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateGender() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateGender()
	})
}

// SetResult sets the "result" field.
func (u *AnalysisUpsertOne) SetResult(v string) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateResult() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateResult()
	})
}

// SetAccuracy sets the "accuracy" field.
func (u *AnalysisUpsertOne) SetAccuracy(v string) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetAccuracy(v)
	})
}

// UpdateAccuracy sets the "accuracy" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateAccuracy() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateAccuracy()
	})
}

// Exec executes the query.
func (u *AnalysisUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AnalysisCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnalysisUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AnalysisUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AnalysisUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AnalysisCreateBulk is the builder for creating many Analysis entities in bulk.
type AnalysisCreateBulk struct {
	config
	err      error
	builders []*AnalysisCreate
	conflict []sql.ConflictOption
}

// Save creates the Analysis entities in the database.
func (_c *AnalysisCreateBulk) Save(ctx context.Context) ([]*Analysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Analysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnalysisCreateBulk) SaveX(ctx context.Context) []*Analysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Analysis.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnalysisUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AnalysisCreateBulk) OnConflict(opts ...sql.ConflictOption) *AnalysisUpsertBulk {
	_c.conflict = opts
	return &AnalysisUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Analysis.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnalysisCreateBulk) OnConflictColumns(columns ...string) *AnalysisUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnalysisUpsertBulk{
		create: _c,
	}
}

// AnalysisUpsertBulk is the builder for "upsert"-ing
// a bulk of Analysis nodes.
type AnalysisUpsertBulk struct {
	create *AnalysisCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Analysis.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AnalysisUpsertBulk) UpdateNewValues() *AnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(analysis.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Analysis.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AnalysisUpsertBulk) Ignore() *AnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnalysisUpsertBulk) DoNothing() *AnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnalysisCreateBulk.OnConflict
// documentation for more info.
func (u *AnalysisUpsertBulk) Update(set func(*AnalysisUpsert)) *AnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnalysisUpsert{UpdateSet: update})
	}))
	return u
}

// SetLabID sets the "lab_id" field.
func (u *AnalysisUpsertBulk) SetLabID(v int) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetLabID(v)
	})
}

// AddLabID adds v to the "lab_id" field.
func (u *AnalysisUpsertBulk) AddLabID(v int) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.AddLabID(v)
	})
}

// UpdateLabID sets the "lab_id" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateLabID() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateLabID()
	})
}

// SetAge sets the "age" field.
func (u *AnalysisUpsertBulk) SetAge(v int) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetAge(v)
	})
}

// AddAge adds v to the "age" field.
func (u *AnalysisUpsertBulk) AddAge(v int) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.AddAge(v)
	})
}

// UpdateAge sets the "age" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateAge() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateAge()
	})
}

// SetGender sets the "gender" field.
func (u *AnalysisUpsertBulk) SetGender(v string) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetGender(v)
	})
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateGender() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateGender()
	})
}

// SetResult sets the "result" field.
func (u *AnalysisUpsertBulk) SetResult(v string) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateResult() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateResult()
	})
}

// SetAccuracy sets the "accuracy" field.
func (u *AnalysisUpsertBulk) SetAccuracy(v string) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetAccuracy(v)
	})
}

// UpdateAccuracy sets the "accuracy" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateAccuracy() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateAccuracy()
	})
}

// Exec executes the query.
func (u *AnalysisUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the AnalysisCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AnalysisCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnalysisUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
