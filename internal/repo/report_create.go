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
	"github.com/reportcare/reportcare_backend/internal/repo/patient"
	"github.com/reportcare/reportcare_backend/internal/repo/report"
)

// ReportCreate is the builder for creating a Report entity.
type ReportCreate struct {
	config
	mutation *ReportMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReportCreate) SetCreatedAt(v time.Time) *ReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReportCreate) SetNillableCreatedAt(v *time.Time) *ReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *ReportCreate) SetPatientID(v int) *ReportCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetPregnancies sets the "pregnancies" field.
func (_c *ReportCreate) SetPregnancies(v int) *ReportCreate {
	_c.mutation.SetPregnancies(v)
	return _c
}

// SetGlucose sets the "glucose" field.
func (_c *ReportCreate) SetGlucose(v float64) *ReportCreate {
	_c.mutation.SetGlucose(v)
	return _c
}

// SetBp sets the "bp" field.
func (_c *ReportCreate) SetBp(v float64) *ReportCreate {
	_c.mutation.SetBp(v)
	return _c
}

// SetSkin sets the "skin" field.
func (_c *ReportCreate) SetSkin(v float64) *ReportCreate {
	_c.mutation.SetSkin(v)
	return _c
}

// SetInsulin sets the "insulin" field.
func (_c *ReportCreate) SetInsulin(v float64) *ReportCreate {
	_c.mutation.SetInsulin(v)
	return _c
}

// SetBmi sets the "bmi" field.
func (_c *ReportCreate) SetBmi(v float64) *ReportCreate {
	_c.mutation.SetBmi(v)
	return _c
}

// SetDpf sets the "dpf" field.
func (_c *ReportCreate) SetDpf(v float64) *ReportCreate {
	_c.mutation.SetDpf(v)
	return _c
}

// SetAge sets the "age" field.
func (_c *ReportCreate) SetAge(v int) *ReportCreate {
	_c.mutation.SetAge(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *ReportCreate) SetResult(v string) *ReportCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *ReportCreate) SetAccuracy(v string) *ReportCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// SetRiskScore sets the "risk_score" field.
func (_c *ReportCreate) SetRiskScore(v float64) *ReportCreate {
	_c.mutation.SetRiskScore(v)
	return _c
}

// SetRemarks sets the "remarks" field.
func (_c *ReportCreate) SetRemarks(v string) *ReportCreate {
	_c.mutation.SetRemarks(v)
	return _c
}

// SetNillableRemarks sets the "remarks" field if the given value is not nil.
func (_c *ReportCreate) SetNillableRemarks(v *string) *ReportCreate {
	if v != nil {
		_c.SetRemarks(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *ReportCreate) SetPatient(v *Patient) *ReportCreate {
	return _c.SetPatientID(v.ID)
}

// Mutation returns the ReportMutation object of the builder.
func (_c *ReportCreate) Mutation() *ReportMutation {
	return _c.mutation
}

// Save creates the Report in the database.
func (_c *ReportCreate) Save(ctx context.Context) (*Report, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReportCreate) SaveX(ctx context.Context) *Report {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReportCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := report.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReportCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Report.created_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Report.patient_id"`)}
	}
	if _, ok := _c.mutation.Pregnancies(); !ok {
		return &ValidationError{Name: "pregnancies", err: errors.New(`repo: missing required field "Report.pregnancies"`)}
	}
	if _, ok := _c.mutation.Glucose(); !ok {
		return &ValidationError{Name: "glucose", err: errors.New(`repo: missing required field "Report.glucose"`)}
	}
	if _, ok := _c.mutation.Bp(); !ok {
		return &ValidationError{Name: "bp", err: errors.New(`repo: missing required field "Report.bp"`)}
	}
	if _, ok := _c.mutation.Skin(); !ok {
		return &ValidationError{Name: "skin", err: errors.New(`repo: missing required field "Report.skin"`)}
	}
	if _, ok := _c.mutation.Insulin(); !ok {
		return &ValidationError{Name: "insulin", err: errors.New(`repo: missing required field "Report.insulin"`)}
	}
	if _, ok := _c.mutation.Bmi(); !ok {
		return &ValidationError{Name: "bmi", err: errors.New(`repo: missing required field "Report.bmi"`)}
	}
	if _, ok := _c.mutation.Dpf(); !ok {
		return &ValidationError{Name: "dpf", err: errors.New(`repo: missing required field "Report.dpf"`)}
	}
	if _, ok := _c.mutation.Age(); !ok {
		return &ValidationError{Name: "age", err: errors.New(`repo: missing required field "Report.age"`)}
	}
	if _, ok := _c.mutation.Result(); !ok {
		return &ValidationError{Name: "result", err: errors.New(`repo: missing required field "Report.result"`)}
	}
	if v, ok := _c.mutation.Result(); ok {
		if err := report.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`repo: validator failed for field "Report.result": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`repo: missing required field "Report.accuracy"`)}
	}
	if v, ok := _c.mutation.Accuracy(); ok {
		if err := report.AccuracyValidator(v); err != nil {
			return &ValidationError{Name: "accuracy", err: fmt.Errorf(`repo: validator failed for field "Report.accuracy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RiskScore(); !ok {
		return &ValidationError{Name: "risk_score", err: errors.New(`repo: missing required field "Report.risk_score"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "Report.patient"`)}
	}
	return nil
}

func (_c *ReportCreate) sqlSave(ctx context.Context) (*Report, error) {
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

func (_c *ReportCreate) createSpec() (*Report, *sqlgraph.CreateSpec) {
	var (
		_node = &Report{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(report.Table, sqlgraph.NewFieldSpec(report.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(report.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Pregnancies(); ok {
		_spec.SetField(report.FieldPregnancies, field.TypeInt, value)
		_node.Pregnancies = value
	}
	if value, ok := _c.mutation.Glucose(); ok {
		_spec.SetField(report.FieldGlucose, field.TypeFloat64, value)
		_node.Glucose = value
	}
	if value, ok := _c.mutation.Bp(); ok {
		_spec.SetField(report.FieldBp, field.TypeFloat64, value)
		_node.Bp = value
	}
	if value, ok := _c.mutation.Skin(); ok {
		_spec.SetField(report.FieldSkin, field.TypeFloat64, value)
		_node.Skin = value
	}
	if value, ok := _c.mutation.Insulin(); ok {
		_spec.SetField(report.FieldInsulin, field.TypeFloat64, value)
		_node.Insulin = value
	}
	if value, ok := _c.mutation.Bmi(); ok {
		_spec.SetField(report.FieldBmi, field.TypeFloat64, value)
		_node.Bmi = value
	}
	if value, ok := _c.mutation.Dpf(); ok {
		_spec.SetField(report.FieldDpf, field.TypeFloat64, value)
		_node.Dpf = value
	}
	if value, ok := _c.mutation.Age(); ok {
		_spec.SetField(report.FieldAge, field.TypeInt, value)
		_node.Age = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(report.FieldResult, field.TypeString, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(report.FieldAccuracy, field.TypeString, value)
		_node.Accuracy = value
	}
	if value, ok := _c.mutation.RiskScore(); ok {
		_spec.SetField(report.FieldRiskScore, field.TypeFloat64, value)
		_node.RiskScore = value
	}
	if value, ok := _c.mutation.Remarks(); ok {
		_spec.SetField(report.FieldRemarks, field.TypeString, value)
		_node.Remarks = value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.PatientTable,
			Columns: []string{report.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Report.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReportUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ReportCreate) OnConflict(opts ...sql.ConflictOption) *ReportUpsertOne {
	_c.conflict = opts
	return &ReportUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Report.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReportCreate) OnConflictColumns(columns ...string) *ReportUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReportUpsertOne{
		create: _c,
	}
}

type (
	// ReportUpsertOne is the builder for "upsert"-ing
	//  one Report node.
	ReportUpsertOne struct {
		create *ReportCreate
	}

	// ReportUpsert is the "OnConflict" setter.
	ReportUpsert struct {
		*sql.UpdateSet
	}
)

// SetPatientID sets the "patient_id" field.
func (u *ReportUpsert) SetPatientID(v int) *ReportUpsert {
	u.Set(report.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *ReportUpsert) UpdatePatientID() *ReportUpsert {
	u.SetExcluded(report.FieldPatientID)
	return u
}

// SetPregnancies sets the "pregnancies" field.
func (u *ReportUpsert) SetPregnancies(v int) *ReportUpsert {
	u.Set(report.FieldPregnancies, v)
	return u
}

// UpdatePregnancies sets the "pregnancies" field to the value that was provided on create.
func (u *ReportUpsert) UpdatePregnancies() *ReportUpsert {
	u.SetExcluded(report.FieldPregnancies)
	return u
}

// AddPregnancies adds v to the "pregnancies" field.
func (u *ReportUpsert) AddPregnancies(v int) *ReportUpsert {
	u.Add(report.FieldPregnancies, v)
	return u
}

// SetGlucose sets the "glucose" field.
func (u *ReportUpsert) SetGlucose(v float64) *ReportUpsert {
	u.Set(report.FieldGlucose, v)
	return u
}

// UpdateGlucose sets the "glucose" field to the value that was provided on create.
func (u *ReportUpsert) UpdateGlucose() *ReportUpsert {
	u.SetExcluded(report.FieldGlucose)
	return u
}

// AddGlucose adds v to the "glucose" field.
func (u *ReportUpsert) AddGlucose(v float64) *ReportUpsert {
	u.Add(report.FieldGlucose, v)
	return u
}

// SetBp sets the "bp" field.
func (u *ReportUpsert) SetBp(v float64) *ReportUpsert {
	u.Set(report.FieldBp, v)
	return u
}

// UpdateBp sets the "bp" field to the value that was provided on create.
func (u *ReportUpsert) UpdateBp() *ReportUpsert {
	u.SetExcluded(report.FieldBp)
	return u
}

// AddBp adds v to the "bp" field.
func (u *ReportUpsert) AddBp(v float64) *ReportUpsert {
	u.Add(report.FieldBp, v)
	return u
}

// SetSkin sets the "skin" field.
func (u *ReportUpsert) SetSkin(v float64) *ReportUpsert {
	u.Set(report.FieldSkin, v)
	return u
}

// UpdateSkin sets the "skin" field to the value that was provided on create.
func (u *ReportUpsert) UpdateSkin() *ReportUpsert {
	u.SetExcluded(report.FieldSkin)
	return u
}

// AddSkin adds v to the "skin" field.
func (u *ReportUpsert) AddSkin(v float64) *ReportUpsert {
	u.Add(report.FieldSkin, v)
	return u
}

// SetInsulin sets the "insulin" field.
func (u *ReportUpsert) SetInsulin(v float64) *ReportUpsert {
	u.Set(report.FieldInsulin, v)
	return u
}

// UpdateInsulin sets the "insulin" field to the value that was provided on create.
func (u *ReportUpsert) UpdateInsulin() *ReportUpsert {
	u.SetExcluded(report.FieldInsulin)
	return u
}

// AddInsulin adds v to the "insulin" field.
func (u *ReportUpsert) AddInsulin(v float64) *ReportUpsert {
	u.Add(report.FieldInsulin, v)
	return u
}

// SetBmi sets the "bmi" field.
func (u *ReportUpsert) SetBmi(v float64) *ReportUpsert {
	u.Set(report.FieldBmi, v)
	return u
}

// UpdateBmi sets the "bmi" field to the value that was provided on create.
func (u *ReportUpsert) UpdateBmi() *ReportUpsert {
	u.SetExcluded(report.FieldBmi)
	return u
}

// AddBmi adds v to the "bmi" field.
func (u *ReportUpsert) AddBmi(v float64) *ReportUpsert {
	u.Add(report.FieldBmi, v)
	return u
}

// SetDpf sets the "dpf" field.
func (u *ReportUpsert) SetDpf(v float64) *ReportUpsert {
	u.Set(report.FieldDpf, v)
	return u
}

// UpdateDpf sets the "dpf" field to the value that was provided on create.
func (u *ReportUpsert) UpdateDpf() *ReportUpsert {
	u.SetExcluded(report.FieldDpf)
	return u
}

// AddDpf adds v to the "dpf" field.
func (u *ReportUpsert) AddDpf(v float64) *ReportUpsert {
	u.Add(report.FieldDpf, v)
	return u
}

// SetAge sets the "age" field.
func (u *ReportUpsert) SetAge(v int) *ReportUpsert {
	u.Set(report.FieldAge, v)
	return u
}

// UpdateAge sets the "age" field to the value that was provided on create.
func (u *ReportUpsert) UpdateAge() *ReportUpsert {
	u.SetExcluded(report.FieldAge)
	return u
}

// AddAge adds v to the "age" field.
func (u *ReportUpsert) AddAge(v int) *ReportUpsert {
	u.Add(report.FieldAge, v)
	return u
}

// SetResult sets the "result" field.
func (u *ReportUpsert) SetResult(v string) *ReportUpsert {
	u.Set(report.FieldResult, v)
	return u
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *ReportUpsert) UpdateResult() *ReportUpsert {
	u.SetExcluded(report.FieldResult)
	return u
}

// SetAccuracy sets the "accuracy" field.
func (u *ReportUpsert) SetAccuracy(v string) *ReportUpsert {
	u.Set(report.FieldAccuracy, v)
	return u
}

// UpdateAccuracy sets the "accuracy" field to the value that was provided on create.
func (u *ReportUpsert) UpdateAccuracy() *ReportUpsert {
	u.SetExcluded(report.FieldAccuracy)
	return u
}

// SetRiskScore sets the "risk_score" field.
func (u *ReportUpsert) SetRiskScore(v float64) *ReportUpsert {
	u.Set(report.FieldRiskScore, v)
	return u
}

// UpdateRiskScore sets the "risk_score" field to the value that was provided on create.
func (u *ReportUpsert) UpdateRiskScore() *ReportUpsert {
	u.SetExcluded(report.FieldRiskScore)
	return u
}

// AddRiskScore adds v to the "risk_score" field.
func (u *ReportUpsert) AddRiskScore(v float64) *ReportUpsert {
	u.Add(report.FieldRiskScore, v)
	return u
}

// SetRemarks sets the "remarks" field.
func (u *ReportUpsert) SetRemarks(v string) *ReportUpsert {
	u.Set(report.FieldRemarks, v)
	return u
}

// UpdateRemarks sets the "remarks" field to the value that was provided on create.
func (u *ReportUpsert) UpdateRemarks() *ReportUpsert {
	u.SetExcluded(report.FieldRemarks)
	return u
}

// ClearRemarks clears the value of the "remarks" field.
func (u *ReportUpsert) ClearRemarks() *ReportUpsert {
	u.SetNull(report.FieldRemarks)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Report.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ReportUpsertOne) UpdateNewValues() *ReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(report.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Report.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReportUpsertOne) Ignore() *ReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReportUpsertOne) DoNothing() *ReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReportCreate.OnConflict
// documentation for more info.
func (u *ReportUpsertOne) Update(set func(*ReportUpsert)) *ReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReportUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *ReportUpsertOne) SetPatientID(v int) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdatePatientID() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdatePatientID()
	})
}

// SetPregnancies sets the "pregnancies" field.
func (u *ReportUpsertOne) SetPregnancies(v int) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetPregnancies(v)
	})
}

// AddPregnancies adds v to the "pregnancies" field.
func (u *ReportUpsertOne) AddPregnancies(v int) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.AddPregnancies(v)
	})
}

// UpdatePregnancies sets the "pregnancies" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdatePregnancies() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdatePregnancies()
	})
}

// SetGlucose sets the "glucose" field.
func (u *ReportUpsertOne) SetGlucose(v float64) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetGlucose(v)
	})
}

// AddGlucose adds v to the "glucose" field.
func (u *ReportUpsertOne) AddGlucose(v float64) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.AddGlucose(v)
	})
}

// UpdateGlucose sets the "glucose" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateGlucose() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateGlucose()
	})
}

// SetBp sets the "bp" field.
func (u *ReportUpsertOne) SetBp(v float64) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetBp(v)
	})
}

// AddBp adds v to the "bp" field.
func (u *ReportUpsertOne) AddBp(v float64) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.AddBp(v)
	})
}

// UpdateBp sets the "bp" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateBp() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateBp()
	})
}

// SetSkin sets the "skin" field.
func (u *ReportUpsertOne) SetSkin(v float64) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetSkin(v)
	})
}

// AddSkin adds v to the "skin" field.
func (u *ReportUpsertOne) AddSkin(v float64) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.AddSkin(v)
	})
}

// UpdateSkin sets the "skin" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateSkin() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateSkin()
	})
}

// SetInsulin sets the "insulin" field.
func (u *ReportUpsertOne) SetInsulin(v float64) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetInsulin(v)
	})
}

// AddInsulin adds v to the "insulin" field.
func (u *ReportUpsertOne) AddInsulin(v float64) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.AddInsulin(v)
	})
}

// UpdateInsulin sets the "insulin" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateInsulin() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateInsulin()
	})
}

// SetBmi sets the "bmi" field.
func (u *ReportUpsertOne) SetBmi(v float64) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetBmi(v)
	})
}

// AddBmi adds v to the "bmi" field.
func (u *ReportUpsertOne) AddBmi(v float64) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.AddBmi(v)
	})
}

// UpdateBmi sets the "bmi" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateBmi() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateBmi()
	})
}

// SetDpf sets the "dpf" field.
func (u *ReportUpsertOne) SetDpf(v float64) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetDpf(v)
	})
}

// AddDpf adds v to the "dpf" field.
func (u *ReportUpsertOne) AddDpf(v float64) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.AddDpf(v)
	})
}

// UpdateDpf sets the "dpf" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateDpf() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateDpf()
	})
}

// SetAge sets the "age" field.
func (u *ReportUpsertOne) SetAge(v int) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetAge(v)
	})
}

// AddAge adds v to the "age" field.
func (u *ReportUpsertOne) AddAge(v int) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.AddAge(v)
	})
}

// UpdateAge sets the "age" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateAge() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateAge()
	})
}

// SetResult sets the "result" field.
func (u *ReportUpsertOne) SetResult(v string) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateResult() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateResult()
	})
}

// SetAccuracy sets the "accuracy" field.
func (u *ReportUpsertOne) SetAccuracy(v string) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetAccuracy(v)
	})
}

// UpdateAccuracy sets the "accuracy" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateAccuracy() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateAccuracy()
	})
}

// SetRiskScore sets the "risk_score" field.
func (u *ReportUpsertOne) SetRiskScore(v float64) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetRiskScore(v)
	})
}

// AddRiskScore adds v to the "risk_score" field.
func (u *ReportUpsertOne) AddRiskScore(v float64) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.AddRiskScore(v)
	})
}

// UpdateRiskScore sets the "risk_score" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateRiskScore() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateRiskScore()
	})
}

// SetRemarks sets the "remarks" field.
func (u *ReportUpsertOne) SetRemarks(v string) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetRemarks(v)
	})
}

// UpdateRemarks sets the "remarks" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateRemarks() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateRemarks()
	})
}

// ClearRemarks clears the value of the "remarks" field.
func (u *ReportUpsertOne) ClearRemarks() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearRemarks()
	})
}

// Exec executes the query.
func (u *ReportUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ReportCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReportUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReportUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReportUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReportCreateBulk is the builder for creating many Report entities in bulk.
type ReportCreateBulk struct {
	config
	err      error
	builders []*ReportCreate
	conflict []sql.ConflictOption
}

// Save creates the Report entities in the database.
func (_c *ReportCreateBulk) Save(ctx context.Context) ([]*Report, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Report, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReportMutation)
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
func (_c *ReportCreateBulk) SaveX(ctx context.Context) []*Report {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Report.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReportUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ReportCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReportUpsertBulk {
	_c.conflict = opts
	return &ReportUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Report.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReportCreateBulk) OnConflictColumns(columns ...string) *ReportUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReportUpsertBulk{
		create: _c,
	}
}

// ReportUpsertBulk is the builder for "upsert"-ing
// a bulk of Report nodes.
type ReportUpsertBulk struct {
	create *ReportCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Report.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ReportUpsertBulk) UpdateNewValues() *ReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(report.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Report.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReportUpsertBulk) Ignore() *ReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReportUpsertBulk) DoNothing() *ReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReportCreateBulk.OnConflict
// documentation for more info.
func (u *ReportUpsertBulk) Update(set func(*ReportUpsert)) *ReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReportUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *ReportUpsertBulk) SetPatientID(v int) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdatePatientID() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdatePatientID()
	})
}

// SetPregnancies sets the "pregnancies" field.
func (u *ReportUpsertBulk) SetPregnancies(v int) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetPregnancies(v)
	})
}

// AddPregnancies adds v to the "pregnancies" field.
func (u *ReportUpsertBulk) AddPregnancies(v int) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.AddPregnancies(v)
	})
}

// UpdatePregnancies sets the "pregnancies" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdatePregnancies() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdatePregnancies()
	})
}

// SetGlucose sets the "glucose" field.
func (u *ReportUpsertBulk) SetGlucose(v float64) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetGlucose(v)
	})
}

// AddGlucose adds v to the "glucose" field.
func (u *ReportUpsertBulk) AddGlucose(v float64) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.AddGlucose(v)
	})
}

// UpdateGlucose sets the "glucose" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateGlucose() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateGlucose()
	})
}

// SetBp sets the "bp" field.
func (u *ReportUpsertBulk) SetBp(v float64) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetBp(v)
	})
}

// AddBp adds v to the "bp" field.
func (u *ReportUpsertBulk) AddBp(v float64) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.AddBp(v)
	})
}

// UpdateBp sets the "bp" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateBp() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateBp()
	})
}

// SetSkin sets the "skin" field.
func (u *ReportUpsertBulk) SetSkin(v float64) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetSkin(v)
	})
}

// AddSkin adds v to the "skin" field.
func (u *ReportUpsertBulk) AddSkin(v float64) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.AddSkin(v)
	})
}

// UpdateSkin sets the "skin" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateSkin() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateSkin()
	})
}

// SetInsulin sets the "insulin" field.
func (u *ReportUpsertBulk) SetInsulin(v float64) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetInsulin(v)
	})
}

// AddInsulin adds v to the "insulin" field.
func (u *ReportUpsertBulk) AddInsulin(v float64) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.AddInsulin(v)
	})
}

// UpdateInsulin sets the "insulin" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateInsulin() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateInsulin()
	})
}

// SetBmi sets the "bmi" field.
func (u *ReportUpsertBulk) SetBmi(v float64) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetBmi(v)
	})
}

// AddBmi adds v to the "bmi" field.
func (u *ReportUpsertBulk) AddBmi(v float64) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.AddBmi(v)
	})
}

// UpdateBmi sets the "bmi" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateBmi() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateBmi()
	})
}

// SetDpf sets the "dpf" field.
func (u *ReportUpsertBulk) SetDpf(v float64) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetDpf(v)
	})
}

// AddDpf adds v to the "dpf" field.
func (u *ReportUpsertBulk) AddDpf(v float64) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.AddDpf(v)
	})
}

// UpdateDpf sets the "dpf" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateDpf() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateDpf()
	})
}

// SetAge sets the "age" field.
func (u *ReportUpsertBulk) SetAge(v int) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetAge(v)
	})
}

// AddAge adds v to the "age" field.
func (u *ReportUpsertBulk) AddAge(v int) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.AddAge(v)
	})
}

// UpdateAge sets the "age" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateAge() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateAge()
	})
}

// SetResult sets the "result" field.
func (u *ReportUpsertBulk) SetResult(v string) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateResult() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateResult()
	})
}

// SetAccuracy sets the "accuracy" field.
func (u *ReportUpsertBulk) SetAccuracy(v string) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetAccuracy(v)
	})
}

// UpdateAccuracy sets the "accuracy" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateAccuracy() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateAccuracy()
	})
}

// SetRiskScore sets the "risk_score" field.
func (u *ReportUpsertBulk) SetRiskScore(v float64) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetRiskScore(v)
	})
}

// AddRiskScore adds v to the "risk_score" field.
func (u *ReportUpsertBulk) AddRiskScore(v float64) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.AddRiskScore(v)
	})
}

// UpdateRiskScore sets the "risk_score" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateRiskScore() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateRiskScore()
	})
}

// SetRemarks sets the "remarks" field.
func (u *ReportUpsertBulk) SetRemarks(v string) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetRemarks(v)
	})
}

// UpdateRemarks sets the "remarks" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateRemarks() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateRemarks()
	})
}

// ClearRemarks clears the value of the "remarks" field.
func (u *ReportUpsertBulk) ClearRemarks() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearRemarks()
	})
}

// Exec executes the query.
func (u *ReportUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ReportCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ReportCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReportUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
