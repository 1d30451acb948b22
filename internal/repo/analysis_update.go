// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reportcare/reportcare_backend/internal/repo/analysis"
	"github.com/reportcare/reportcare_backend/internal/repo/predicate"
)

// AnalysisUpdate is the builder for updating Analysis entities.
type AnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisMutation
}

// Where appends a list predicates to the AnalysisUpdate builder.
func (_u *AnalysisUpdate) Where(ps ...predicate.Analysis) *AnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLabID sets the "lab_id" field.
func (_u *AnalysisUpdate) SetLabID(v int) *AnalysisUpdate {
	_u.mutation.ResetLabID()
	_u.mutation.SetLabID(v)
	return _u
}

// SetNillableLabID sets the "lab_id" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableLabID(v *int) *AnalysisUpdate {
	if v != nil {
		_u.SetLabID(*v)
	}
	return _u
}

// AddLabID adds value to the "lab_id" field.
func (_u *AnalysisUpdate) AddLabID(v int) *AnalysisUpdate {
	_u.mutation.AddLabID(v)
	return _u
}

// SetAge sets the "age" field.
func (_u *AnalysisUpdate) SetAge(v int) *AnalysisUpdate {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableAge(v *int) *AnalysisUpdate {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *AnalysisUpdate) AddAge(v int) *AnalysisUpdate {
	_u.mutation.AddAge(v)
	return _u
}

// SetGender sets the "gender" field.
func (_u *AnalysisUpdate) SetGender(v string) *AnalysisUpdate {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableGender(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *AnalysisUpdate) SetResult(v string) *AnalysisUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableResult(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *AnalysisUpdate) SetAccuracy(v string) *AnalysisUpdate {
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableAccuracy(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// Mutation returns the AnalysisMutation object of the builder.
func (_u *AnalysisUpdate) Mutation() *AnalysisMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisUpdate) check() error {
	if v, ok := _u.mutation.Gender(); ok {
		if err := analysis.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "Analysis.gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Result(); ok {
		if err := analysis.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`repo: validator failed for field "Analysis.result": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Accuracy(); ok {
		if err := analysis.AccuracyValidator(v); err != nil {
			return &ValidationError{Name: "accuracy", err: fmt.Errorf(`repo: validator failed for field "Analysis.accuracy": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysis.Table, analysis.Columns, sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LabID(); ok {
		_spec.SetField(analysis.FieldLabID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLabID(); ok {
		_spec.AddField(analysis.FieldLabID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(analysis.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(analysis.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(analysis.FieldGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(analysis.FieldResult, field.TypeString, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(analysis.FieldAccuracy, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisUpdateOne is the builder for updating a single Analysis entity.
type AnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisMutation
}

// SetLabID sets the "lab_id" field.
func (_u *AnalysisUpdateOne) SetLabID(v int) *AnalysisUpdateOne {
	_u.mutation.ResetLabID()
	_u.mutation.SetLabID(v)
	return _u
}

// SetNillableLabID sets the "lab_id" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableLabID(v *int) *AnalysisUpdateOne {
	if v != nil {
		_u.SetLabID(*v)
	}
	return _u
}

// AddLabID adds value to the "lab_id" field.
func (_u *AnalysisUpdateOne) AddLabID(v int) *AnalysisUpdateOne {
	_u.mutation.AddLabID(v)
	return _u
}

// SetAge sets the "age" field.
func (_u *AnalysisUpdateOne) SetAge(v int) *AnalysisUpdateOne {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableAge(v *int) *AnalysisUpdateOne {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *AnalysisUpdateOne) AddAge(v int) *AnalysisUpdateOne {
	_u.mutation.AddAge(v)
	return _u
}

// SetGender sets the "gender" field.
func (_u *AnalysisUpdateOne) SetGender(v string) *AnalysisUpdateOne {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableGender(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *AnalysisUpdateOne) SetResult(v string) *AnalysisUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableResult(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *AnalysisUpdateOne) SetAccuracy(v string) *AnalysisUpdateOne {
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableAccuracy(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// Mutation returns the AnalysisMutation object of the builder.
func (_u *AnalysisUpdateOne) Mutation() *AnalysisMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalysisUpdate builder.
func (_u *AnalysisUpdateOne) Where(ps ...predicate.Analysis) *AnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisUpdateOne) Select(field string, fields ...string) *AnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Analysis entity.
func (_u *AnalysisUpdateOne) Save(ctx context.Context) (*Analysis, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisUpdateOne) SaveX(ctx context.Context) *Analysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisUpdateOne) check() error {
	if v, ok := _u.mutation.Gender(); ok {
		if err := analysis.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "Analysis.gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Result(); ok {
		if err := analysis.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`repo: validator failed for field "Analysis.result": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Accuracy(); ok {
		if err := analysis.AccuracyValidator(v); err != nil {
			return &ValidationError{Name: "accuracy", err: fmt.Errorf(`repo: validator failed for field "Analysis.accuracy": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisUpdateOne) sqlSave(ctx context.Context) (_node *Analysis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysis.Table, analysis.Columns, sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Analysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysis.FieldID)
		for _, f := range fields {
			if !analysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != analysis.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LabID(); ok {
		_spec.SetField(analysis.FieldLabID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLabID(); ok {
		_spec.AddField(analysis.FieldLabID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(analysis.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(analysis.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(analysis.FieldGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(analysis.FieldResult, field.TypeString, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(analysis.FieldAccuracy, field.TypeString, value)
	}
	_node = &Analysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
