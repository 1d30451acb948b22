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
	"github.com/reportcare/reportcare_backend/internal/repo/lab"
	"github.com/reportcare/reportcare_backend/internal/repo/predicate"
)

// LabUpdate is the builder for updating Lab entities.
type LabUpdate struct {
	config
	hooks    []Hook
	mutation *LabMutation
}

// Where appends a list predicates to the LabUpdate builder.
func (_u *LabUpdate) Where(ps ...predicate.Lab) *LabUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LabUpdate) SetUpdatedAt(v time.Time) *LabUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRole sets the "role" field.
func (_u *LabUpdate) SetRole(v lab.Role) *LabUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *LabUpdate) SetNillableRole(v *lab.Role) *LabUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *LabUpdate) SetEmail(v string) *LabUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *LabUpdate) SetNillableEmail(v *string) *LabUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *LabUpdate) SetPasswordHash(v string) *LabUpdate {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *LabUpdate) SetNillablePasswordHash(v *string) *LabUpdate {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *LabUpdate) SetName(v string) *LabUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LabUpdate) SetNillableName(v *string) *LabUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *LabUpdate) SetPhone(v string) *LabUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *LabUpdate) SetNillablePhone(v *string) *LabUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *LabUpdate) ClearPhone() *LabUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetAddress sets the "address" field.
func (_u *LabUpdate) SetAddress(v string) *LabUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *LabUpdate) SetNillableAddress(v *string) *LabUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *LabUpdate) ClearAddress() *LabUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetLicenseNo sets the "license_no" field.
func (_u *LabUpdate) SetLicenseNo(v string) *LabUpdate {
	_u.mutation.SetLicenseNo(v)
	return _u
}

// SetNillableLicenseNo sets the "license_no" field if the given value is not nil.
func (_u *LabUpdate) SetNillableLicenseNo(v *string) *LabUpdate {
	if v != nil {
		_u.SetLicenseNo(*v)
	}
	return _u
}

// ClearLicenseNo clears the value of the "license_no" field.
func (_u *LabUpdate) ClearLicenseNo() *LabUpdate {
	_u.mutation.ClearLicenseNo()
	return _u
}

// SetProfilePic sets the "profile_pic" field.
func (_u *LabUpdate) SetProfilePic(v string) *LabUpdate {
	_u.mutation.SetProfilePic(v)
	return _u
}

// SetNillableProfilePic sets the "profile_pic" field if the given value is not nil.
func (_u *LabUpdate) SetNillableProfilePic(v *string) *LabUpdate {
	if v != nil {
		_u.SetProfilePic(*v)
	}
	return _u
}

// SetSignatureImg sets the "signature_img" field.
func (_u *LabUpdate) SetSignatureImg(v string) *LabUpdate {
	_u.mutation.SetSignatureImg(v)
	return _u
}

// SetNillableSignatureImg sets the "signature_img" field if the given value is not nil.
func (_u *LabUpdate) SetNillableSignatureImg(v *string) *LabUpdate {
	if v != nil {
		_u.SetSignatureImg(*v)
	}
	return _u
}

// ClearSignatureImg clears the value of the "signature_img" field.
func (_u *LabUpdate) ClearSignatureImg() *LabUpdate {
	_u.mutation.ClearSignatureImg()
	return _u
}

// Mutation returns the LabMutation object of the builder.
func (_u *LabUpdate) Mutation() *LabMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LabUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LabUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LabUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lab.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := lab.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "Lab.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := lab.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Lab.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := lab.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Lab.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := lab.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Lab.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LicenseNo(); ok {
		if err := lab.LicenseNoValidator(v); err != nil {
			return &ValidationError{Name: "license_no", err: fmt.Errorf(`repo: validator failed for field "Lab.license_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProfilePic(); ok {
		if err := lab.ProfilePicValidator(v); err != nil {
			return &ValidationError{Name: "profile_pic", err: fmt.Errorf(`repo: validator failed for field "Lab.profile_pic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SignatureImg(); ok {
		if err := lab.SignatureImgValidator(v); err != nil {
			return &ValidationError{Name: "signature_img", err: fmt.Errorf(`repo: validator failed for field "Lab.signature_img": %w`, err)}
		}
	}
	return nil
}

func (_u *LabUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lab.Table, lab.Columns, sqlgraph.NewFieldSpec(lab.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lab.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(lab.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(lab.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(lab.FieldPasswordHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(lab.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(lab.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(lab.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(lab.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(lab.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.LicenseNo(); ok {
		_spec.SetField(lab.FieldLicenseNo, field.TypeString, value)
	}
	if _u.mutation.LicenseNoCleared() {
		_spec.ClearField(lab.FieldLicenseNo, field.TypeString)
	}
	if value, ok := _u.mutation.ProfilePic(); ok {
		_spec.SetField(lab.FieldProfilePic, field.TypeString, value)
	}
	if value, ok := _u.mutation.SignatureImg(); ok {
		_spec.SetField(lab.FieldSignatureImg, field.TypeString, value)
	}
	if _u.mutation.SignatureImgCleared() {
		_spec.ClearField(lab.FieldSignatureImg, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lab.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LabUpdateOne is the builder for updating a single Lab entity.
type LabUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LabMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LabUpdateOne) SetUpdatedAt(v time.Time) *LabUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRole sets the "role" field.
func (_u *LabUpdateOne) SetRole(v lab.Role) *LabUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *LabUpdateOne) SetNillableRole(v *lab.Role) *LabUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *LabUpdateOne) SetEmail(v string) *LabUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *LabUpdateOne) SetNillableEmail(v *string) *LabUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *LabUpdateOne) SetPasswordHash(v string) *LabUpdateOne {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *LabUpdateOne) SetNillablePasswordHash(v *string) *LabUpdateOne {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *LabUpdateOne) SetName(v string) *LabUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LabUpdateOne) SetNillableName(v *string) *LabUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *LabUpdateOne) SetPhone(v string) *LabUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *LabUpdateOne) SetNillablePhone(v *string) *LabUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *LabUpdateOne) ClearPhone() *LabUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetAddress sets the "address" field.
func (_u *LabUpdateOne) SetAddress(v string) *LabUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *LabUpdateOne) SetNillableAddress(v *string) *LabUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *LabUpdateOne) ClearAddress() *LabUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetLicenseNo sets the "license_no" field.
func (_u *LabUpdateOne) SetLicenseNo(v string) *LabUpdateOne {
	_u.mutation.SetLicenseNo(v)
	return _u
}

// SetNillableLicenseNo sets the "license_no" field if the given value is not nil.
func (_u *LabUpdateOne) SetNillableLicenseNo(v *string) *LabUpdateOne {
	if v != nil {
		_u.SetLicenseNo(*v)
	}
	return _u
}

// ClearLicenseNo clears the value of the "license_no" field.
func (_u *LabUpdateOne) ClearLicenseNo() *LabUpdateOne {
	_u.mutation.ClearLicenseNo()
	return _u
}

// SetProfilePic sets the "profile_pic" field.
func (_u *LabUpdateOne) SetProfilePic(v string) *LabUpdateOne {
	_u.mutation.SetProfilePic(v)
	return _u
}

// SetNillableProfilePic sets the "profile_pic" field if the given value is not nil.
func (_u *LabUpdateOne) SetNillableProfilePic(v *string) *LabUpdateOne {
	if v != nil {
		_u.SetProfilePic(*v)
	}
	return _u
}

// SetSignatureImg sets the "signature_img" field.
func (_u *LabUpdateOne) SetSignatureImg(v string) *LabUpdateOne {
	_u.mutation.SetSignatureImg(v)
	return _u
}

// SetNillableSignatureImg sets the "signature_img" field if the given value is not nil.
func (_u *LabUpdateOne) SetNillableSignatureImg(v *string) *LabUpdateOne {
	if v != nil {
		_u.SetSignatureImg(*v)
	}
	return _u
}

// ClearSignatureImg clears the value of the "signature_img" field.
func (_u *LabUpdateOne) ClearSignatureImg() *LabUpdateOne {
	_u.mutation.ClearSignatureImg()
	return _u
}

// Mutation returns the LabMutation object of the builder.
func (_u *LabUpdateOne) Mutation() *LabMutation {
	return _u.mutation
}

// Where appends a list predicates to the LabUpdate builder.
func (_u *LabUpdateOne) Where(ps ...predicate.Lab) *LabUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LabUpdateOne) Select(field string, fields ...string) *LabUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lab entity.
func (_u *LabUpdateOne) Save(ctx context.Context) (*Lab, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabUpdateOne) SaveX(ctx context.Context) *Lab {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LabUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LabUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lab.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := lab.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "Lab.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := lab.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Lab.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := lab.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Lab.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := lab.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Lab.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LicenseNo(); ok {
		if err := lab.LicenseNoValidator(v); err != nil {
			return &ValidationError{Name: "license_no", err: fmt.Errorf(`repo: validator failed for field "Lab.license_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProfilePic(); ok {
		if err := lab.ProfilePicValidator(v); err != nil {
			return &ValidationError{Name: "profile_pic", err: fmt.Errorf(`repo: validator failed for field "Lab.profile_pic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SignatureImg(); ok {
		if err := lab.SignatureImgValidator(v); err != nil {
			return &ValidationError{Name: "signature_img", err: fmt.Errorf(`repo: validator failed for field "Lab.signature_img": %w`, err)}
		}
	}
	return nil
}

func (_u *LabUpdateOne) sqlSave(ctx context.Context) (_node *Lab, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lab.Table, lab.Columns, sqlgraph.NewFieldSpec(lab.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Lab.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lab.FieldID)
		for _, f := range fields {
			if !lab.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != lab.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lab.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(lab.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(lab.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(lab.FieldPasswordHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(lab.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(lab.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(lab.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(lab.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(lab.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.LicenseNo(); ok {
		_spec.SetField(lab.FieldLicenseNo, field.TypeString, value)
	}
	if _u.mutation.LicenseNoCleared() {
		_spec.ClearField(lab.FieldLicenseNo, field.TypeString)
	}
	if value, ok := _u.mutation.ProfilePic(); ok {
		_spec.SetField(lab.FieldProfilePic, field.TypeString, value)
	}
	if value, ok := _u.mutation.SignatureImg(); ok {
		_spec.SetField(lab.FieldSignatureImg, field.TypeString, value)
	}
	if _u.mutation.SignatureImgCleared() {
		_spec.ClearField(lab.FieldSignatureImg, field.TypeString)
	}
	_node = &Lab{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lab.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
