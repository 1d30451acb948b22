// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reportcare/reportcare_backend/internal/repo/patient"
	"github.com/reportcare/reportcare_backend/internal/repo/predicate"
	"github.com/reportcare/reportcare_backend/internal/repo/report"
)

// ReportUpdate is the builder for updating Report entities.
type ReportUpdate struct {
	config
	hooks    []Hook
	mutation *ReportMutation
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdate) Where(ps ...predicate.Report) *ReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *ReportUpdate) SetPatientID(v int) *ReportUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *ReportUpdate) SetNillablePatientID(v *int) *ReportUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetPregnancies sets the "pregnancies" field.
func (_u *ReportUpdate) SetPregnancies(v int) *ReportUpdate {
	_u.mutation.ResetPregnancies()
	_u.mutation.SetPregnancies(v)
	return _u
}

// SetNillablePregnancies sets the "pregnancies" field if the given value is not nil.
func (_u *ReportUpdate) SetNillablePregnancies(v *int) *ReportUpdate {
	if v != nil {
		_u.SetPregnancies(*v)
	}
	return _u
}

// AddPregnancies adds value to the "pregnancies" field.
func (_u *ReportUpdate) AddPregnancies(v int) *ReportUpdate {
	_u.mutation.AddPregnancies(v)
	return _u
}

// SetGlucose sets the "glucose" field.
func (_u *ReportUpdate) SetGlucose(v float64) *ReportUpdate {
	_u.mutation.ResetGlucose()
	_u.mutation.SetGlucose(v)
	return _u
}

// SetNillableGlucose sets the "glucose" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableGlucose(v *float64) *ReportUpdate {
	if v != nil {
		_u.SetGlucose(*v)
	}
	return _u
}

// AddGlucose adds value to the "glucose" field.
func (_u *ReportUpdate) AddGlucose(v float64) *ReportUpdate {
	_u.mutation.AddGlucose(v)
	return _u
}

// SetBp sets the "bp" field.
func (_u *ReportUpdate) SetBp(v float64) *ReportUpdate {
	_u.mutation.ResetBp()
	_u.mutation.SetBp(v)
	return _u
}

// SetNillableBp sets the "bp" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableBp(v *float64) *ReportUpdate {
	if v != nil {
		_u.SetBp(*v)
	}
	return _u
}

// AddBp adds value to the "bp" field.
func (_u *ReportUpdate) AddBp(v float64) *ReportUpdate {
	_u.mutation.AddBp(v)
	return _u
}

// SetSkin sets the "skin" field.
func (_u *ReportUpdate) SetSkin(v float64) *ReportUpdate {
	_u.mutation.ResetSkin()
	_u.mutation.SetSkin(v)
	return _u
}

// SetNillableSkin sets the "skin" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableSkin(v *float64) *ReportUpdate {
	if v != nil {
		_u.SetSkin(*v)
	}
	return _u
}

// AddSkin adds value to the "skin" field.
func (_u *ReportUpdate) AddSkin(v float64) *ReportUpdate {
	_u.mutation.AddSkin(v)
	return _u
}

// SetInsulin sets the "insulin" field.
func (_u *ReportUpdate) SetInsulin(v float64) *ReportUpdate {
	_u.mutation.ResetInsulin()
	_u.mutation.SetInsulin(v)
	return _u
}

// SetNillableInsulin sets the "insulin" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableInsulin(v *float64) *ReportUpdate {
	if v != nil {
		_u.SetInsulin(*v)
	}
	return _u
}

// AddInsulin adds value to the "insulin" field.
func (_u *ReportUpdate) AddInsulin(v float64) *ReportUpdate {
	_u.mutation.AddInsulin(v)
	return _u
}

// SetBmi sets the "bmi" field.
func (_u *ReportUpdate) SetBmi(v float64) *ReportUpdate {
	_u.mutation.ResetBmi()
	_u.mutation.SetBmi(v)
	return _u
}

// SetNillableBmi sets the "bmi" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableBmi(v *float64) *ReportUpdate {
	if v != nil {
		_u.SetBmi(*v)
	}
	return _u
}

// AddBmi adds value to the "bmi" field.
func (_u *ReportUpdate) AddBmi(v float64) *ReportUpdate {
	_u.mutation.AddBmi(v)
	return _u
}

// SetDpf sets the "dpf" field.
func (_u *ReportUpdate) SetDpf(v float64) *ReportUpdate {
	_u.mutation.ResetDpf()
	_u.mutation.SetDpf(v)
	return _u
}

// SetNillableDpf sets the "dpf" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableDpf(v *float64) *ReportUpdate {
	if v != nil {
		_u.SetDpf(*v)
	}
	return _u
}

// AddDpf adds value to the "dpf" field.
func (_u *ReportUpdate) AddDpf(v float64) *ReportUpdate {
	_u.mutation.AddDpf(v)
	return _u
}

// SetAge sets the "age" field.
func (_u *ReportUpdate) SetAge(v int) *ReportUpdate {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableAge(v *int) *ReportUpdate {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *ReportUpdate) AddAge(v int) *ReportUpdate {
	_u.mutation.AddAge(v)
	return _u
}

// SetResult sets the "result" field.
func (_u *ReportUpdate) SetResult(v string) *ReportUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableResult(v *string) *ReportUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *ReportUpdate) SetAccuracy(v string) *ReportUpdate {
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableAccuracy(v *string) *ReportUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *ReportUpdate) SetRiskScore(v float64) *ReportUpdate {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableRiskScore(v *float64) *ReportUpdate {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *ReportUpdate) AddRiskScore(v float64) *ReportUpdate {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetRemarks sets the "remarks" field.
func (_u *ReportUpdate) SetRemarks(v string) *ReportUpdate {
	_u.mutation.SetRemarks(v)
	return _u
}

// SetNillableRemarks sets the "remarks" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableRemarks(v *string) *ReportUpdate {
	if v != nil {
		_u.SetRemarks(*v)
	}
	return _u
}

// ClearRemarks clears the value of the "remarks" field.
func (_u *ReportUpdate) ClearRemarks() *ReportUpdate {
	_u.mutation.ClearRemarks()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *ReportUpdate) SetPatient(v *Patient) *ReportUpdate {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdate) Mutation() *ReportMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *ReportUpdate) ClearPatient() *ReportUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdate) check() error {
	if v, ok := _u.mutation.Result(); ok {
		if err := report.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`repo: validator failed for field "Report.result": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Accuracy(); ok {
		if err := report.AccuracyValidator(v); err != nil {
			return &ValidationError{Name: "accuracy", err: fmt.Errorf(`repo: validator failed for field "Report.accuracy": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Report.patient"`)
	}
	return nil
}

func (_u *ReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Pregnancies(); ok {
		_spec.SetField(report.FieldPregnancies, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPregnancies(); ok {
		_spec.AddField(report.FieldPregnancies, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Glucose(); ok {
		_spec.SetField(report.FieldGlucose, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGlucose(); ok {
		_spec.AddField(report.FieldGlucose, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Bp(); ok {
		_spec.SetField(report.FieldBp, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBp(); ok {
		_spec.AddField(report.FieldBp, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Skin(); ok {
		_spec.SetField(report.FieldSkin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSkin(); ok {
		_spec.AddField(report.FieldSkin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Insulin(); ok {
		_spec.SetField(report.FieldInsulin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedInsulin(); ok {
		_spec.AddField(report.FieldInsulin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Bmi(); ok {
		_spec.SetField(report.FieldBmi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBmi(); ok {
		_spec.AddField(report.FieldBmi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Dpf(); ok {
		_spec.SetField(report.FieldDpf, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDpf(); ok {
		_spec.AddField(report.FieldDpf, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(report.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(report.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(report.FieldResult, field.TypeString, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(report.FieldAccuracy, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(report.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(report.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Remarks(); ok {
		_spec.SetField(report.FieldRemarks, field.TypeString, value)
	}
	if _u.mutation.RemarksCleared() {
		_spec.ClearField(report.FieldRemarks, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportUpdateOne is the builder for updating a single Report entity.
type ReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportMutation
}

// SetPatientID sets the "patient_id" field.
func (_u *ReportUpdateOne) SetPatientID(v int) *ReportUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillablePatientID(v *int) *ReportUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetPregnancies sets the "pregnancies" field.
func (_u *ReportUpdateOne) SetPregnancies(v int) *ReportUpdateOne {
	_u.mutation.ResetPregnancies()
	_u.mutation.SetPregnancies(v)
	return _u
}

// SetNillablePregnancies sets the "pregnancies" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillablePregnancies(v *int) *ReportUpdateOne {
	if v != nil {
		_u.SetPregnancies(*v)
	}
	return _u
}

// AddPregnancies adds value to the "pregnancies" field.
func (_u *ReportUpdateOne) AddPregnancies(v int) *ReportUpdateOne {
	_u.mutation.AddPregnancies(v)
	return _u
}

// SetGlucose sets the "glucose" field.
func (_u *ReportUpdateOne) SetGlucose(v float64) *ReportUpdateOne {
	_u.mutation.ResetGlucose()
	_u.mutation.SetGlucose(v)
	return _u
}

// SetNillableGlucose sets the "glucose" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableGlucose(v *float64) *ReportUpdateOne {
	if v != nil {
		_u.SetGlucose(*v)
	}
	return _u
}

// AddGlucose adds value to the "glucose" field.
func (_u *ReportUpdateOne) AddGlucose(v float64) *ReportUpdateOne {
	_u.mutation.AddGlucose(v)
	return _u
}

// SetBp sets the "bp" field.
func (_u *ReportUpdateOne) SetBp(v float64) *ReportUpdateOne {
	_u.mutation.ResetBp()
	_u.mutation.SetBp(v)
	return _u
}

// SetNillableBp sets the "bp" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableBp(v *float64) *ReportUpdateOne {
	if v != nil {
		_u.SetBp(*v)
	}
	return _u
}

// AddBp adds value to the "bp" field.
func (_u *ReportUpdateOne) AddBp(v float64) *ReportUpdateOne {
	_u.mutation.AddBp(v)
	return _u
}

// SetSkin sets the "skin" field.
func (_u *ReportUpdateOne) SetSkin(v float64) *ReportUpdateOne {
	_u.mutation.ResetSkin()
	_u.mutation.SetSkin(v)
	return _u
}

// SetNillableSkin sets the "skin" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableSkin(v *float64) *ReportUpdateOne {
	if v != nil {
		_u.SetSkin(*v)
	}
	return _u
}

// AddSkin adds value to the "skin" field.
func (_u *ReportUpdateOne) AddSkin(v float64) *ReportUpdateOne {
	_u.mutation.AddSkin(v)
	return _u
}

// SetInsulin sets the "insulin" field.
func (_u *ReportUpdateOne) SetInsulin(v float64) *ReportUpdateOne {
	_u.mutation.ResetInsulin()
	_u.mutation.SetInsulin(v)
	return _u
}

// SetNillableInsulin sets the "insulin" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableInsulin(v *float64) *ReportUpdateOne {
	if v != nil {
		_u.SetInsulin(*v)
	}
	return _u
}

// AddInsulin adds value to the "insulin" field.
func (_u *ReportUpdateOne) AddInsulin(v float64) *ReportUpdateOne {
	_u.mutation.AddInsulin(v)
	return _u
}

// SetBmi sets the "bmi" field.
func (_u *ReportUpdateOne) SetBmi(v float64) *ReportUpdateOne {
	_u.mutation.ResetBmi()
	_u.mutation.SetBmi(v)
	return _u
}

// SetNillableBmi sets the "bmi" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableBmi(v *float64) *ReportUpdateOne {
	if v != nil {
		_u.SetBmi(*v)
	}
	return _u
}

// AddBmi adds value to the "bmi" field.
func (_u *ReportUpdateOne) AddBmi(v float64) *ReportUpdateOne {
	_u.mutation.AddBmi(v)
	return _u
}

// SetDpf sets the "dpf" field.
func (_u *ReportUpdateOne) SetDpf(v float64) *ReportUpdateOne {
	_u.mutation.ResetDpf()
	_u.mutation.SetDpf(v)
	return _u
}

// SetNillableDpf sets the "dpf" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableDpf(v *float64) *ReportUpdateOne {
	if v != nil {
		_u.SetDpf(*v)
	}
	return _u
}

// AddDpf adds value to the "dpf" field.
func (_u *ReportUpdateOne) AddDpf(v float64) *ReportUpdateOne {
	_u.mutation.AddDpf(v)
	return _u
}

// SetAge sets the "age" field.
func (_u *ReportUpdateOne) SetAge(v int) *ReportUpdateOne {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableAge(v *int) *ReportUpdateOne {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *ReportUpdateOne) AddAge(v int) *ReportUpdateOne {
	_u.mutation.AddAge(v)
	return _u
}

// SetResult sets the "result" field.
func (_u *ReportUpdateOne) SetResult(v string) *ReportUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableResult(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *ReportUpdateOne) SetAccuracy(v string) *ReportUpdateOne {
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableAccuracy(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *ReportUpdateOne) SetRiskScore(v float64) *ReportUpdateOne {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableRiskScore(v *float64) *ReportUpdateOne {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *ReportUpdateOne) AddRiskScore(v float64) *ReportUpdateOne {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetRemarks sets the "remarks" field.
func (_u *ReportUpdateOne) SetRemarks(v string) *ReportUpdateOne {
	_u.mutation.SetRemarks(v)
	return _u
}

// SetNillableRemarks sets the "remarks" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableRemarks(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetRemarks(*v)
	}
	return _u
}

// ClearRemarks clears the value of the "remarks" field.
func (_u *ReportUpdateOne) ClearRemarks() *ReportUpdateOne {
	_u.mutation.ClearRemarks()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *ReportUpdateOne) SetPatient(v *Patient) *ReportUpdateOne {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdateOne) Mutation() *ReportMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *ReportUpdateOne) ClearPatient() *ReportUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdateOne) Where(ps ...predicate.Report) *ReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportUpdateOne) Select(field string, fields ...string) *ReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Report entity.
func (_u *ReportUpdateOne) Save(ctx context.Context) (*Report, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdateOne) SaveX(ctx context.Context) *Report {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdateOne) check() error {
	if v, ok := _u.mutation.Result(); ok {
		if err := report.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`repo: validator failed for field "Report.result": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Accuracy(); ok {
		if err := report.AccuracyValidator(v); err != nil {
			return &ValidationError{Name: "accuracy", err: fmt.Errorf(`repo: validator failed for field "Report.accuracy": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Report.patient"`)
	}
	return nil
}

func (_u *ReportUpdateOne) sqlSave(ctx context.Context) (_node *Report, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Report.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, report.FieldID)
		for _, f := range fields {
			if !report.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != report.FieldID {
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
	if value, ok := _u.mutation.Pregnancies(); ok {
		_spec.SetField(report.FieldPregnancies, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPregnancies(); ok {
		_spec.AddField(report.FieldPregnancies, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Glucose(); ok {
		_spec.SetField(report.FieldGlucose, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGlucose(); ok {
		_spec.AddField(report.FieldGlucose, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Bp(); ok {
		_spec.SetField(report.FieldBp, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBp(); ok {
		_spec.AddField(report.FieldBp, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Skin(); ok {
		_spec.SetField(report.FieldSkin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSkin(); ok {
		_spec.AddField(report.FieldSkin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Insulin(); ok {
		_spec.SetField(report.FieldInsulin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedInsulin(); ok {
		_spec.AddField(report.FieldInsulin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Bmi(); ok {
		_spec.SetField(report.FieldBmi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBmi(); ok {
		_spec.AddField(report.FieldBmi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Dpf(); ok {
		_spec.SetField(report.FieldDpf, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDpf(); ok {
		_spec.AddField(report.FieldDpf, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(report.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(report.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(report.FieldResult, field.TypeString, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(report.FieldAccuracy, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(report.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(report.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Remarks(); ok {
		_spec.SetField(report.FieldRemarks, field.TypeString, value)
	}
	if _u.mutation.RemarksCleared() {
		_spec.ClearField(report.FieldRemarks, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Report{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
