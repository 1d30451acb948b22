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
)

// LabCreate is the builder for creating a Lab entity.
type LabCreate struct {
	config
	mutation *LabMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *LabCreate) SetCreatedAt(v time.Time) *LabCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LabCreate) SetNillableCreatedAt(v *time.Time) *LabCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LabCreate) SetUpdatedAt(v time.Time) *LabCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LabCreate) SetNillableUpdatedAt(v *time.Time) *LabCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetRole sets the "role" field.
func (_c *LabCreate) SetRole(v lab.Role) *LabCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *LabCreate) SetNillableRole(v *lab.Role) *LabCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *LabCreate) SetEmail(v string) *LabCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetPasswordHash sets the "password_hash" field.
func (_c *LabCreate) SetPasswordHash(v string) *LabCreate {
	_c.mutation.SetPasswordHash(v)
	return _c
}

// SetName sets the "name" field.
func (_c *LabCreate) SetName(v string) *LabCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *LabCreate) SetPhone(v string) *LabCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *LabCreate) SetNillablePhone(v *string) *LabCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *LabCreate) SetAddress(v string) *LabCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *LabCreate) SetNillableAddress(v *string) *LabCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetLicenseNo sets the "license_no" field.
func (_c *LabCreate) SetLicenseNo(v string) *LabCreate {
	_c.mutation.SetLicenseNo(v)
	return _c
}

// SetNillableLicenseNo sets the "license_no" field if the given value is not nil.
func (_c *LabCreate) SetNillableLicenseNo(v *string) *LabCreate {
	if v != nil {
		_c.SetLicenseNo(*v)
	}
	return _c
}

// SetProfilePic sets the "profile_pic" field.
func (_c *LabCreate) SetProfilePic(v string) *LabCreate {
	_c.mutation.SetProfilePic(v)
	return _c
}

// SetNillableProfilePic sets the "profile_pic" field if the given value is not nil.
func (_c *LabCreate) SetNillableProfilePic(v *string) *LabCreate {
	if v != nil {
		_c.SetProfilePic(*v)
	}
	return _c
}

// SetSignatureImg sets the "signature_img" field.
func (_c *LabCreate) SetSignatureImg(v string) *LabCreate {
	_c.mutation.SetSignatureImg(v)
	return _c
}

// SetNillableSignatureImg sets the "signature_img" field if the given value is not nil.
func (_c *LabCreate) SetNillableSignatureImg(v *string) *LabCreate {
	if v != nil {
		_c.SetSignatureImg(*v)
	}
	return _c
}

// Mutation returns the LabMutation object of the builder.
func (_c *LabCreate) Mutation() *LabMutation {
	return _c.mutation
}

// Save creates the Lab in the database.
func (_c *LabCreate) Save(ctx context.Context) (*Lab, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LabCreate) SaveX(ctx context.Context) *Lab {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LabCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lab.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := lab.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Role(); !ok {
		v := lab.DefaultRole
		_c.mutation.SetRole(v)
	}
	if _, ok := _c.mutation.ProfilePic(); !ok {
		v := lab.DefaultProfilePic
		_c.mutation.SetProfilePic(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LabCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Lab.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Lab.updated_at"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`repo: missing required field "Lab.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := lab.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "Lab.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`repo: missing required field "Lab.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := lab.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Lab.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PasswordHash(); !ok {
		return &ValidationError{Name: "password_hash", err: errors.New(`repo: missing required field "Lab.password_hash"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Lab.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := lab.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Lab.name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := lab.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Lab.phone": %w`, err)}
		}
	}
	if v, ok := _c.mutation.LicenseNo(); ok {
		if err := lab.LicenseNoValidator(v); err != nil {
			return &ValidationError{Name: "license_no", err: fmt.Errorf(`repo: validator failed for field "Lab.license_no": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProfilePic(); !ok {
		return &ValidationError{Name: "profile_pic", err: errors.New(`repo: missing required field "Lab.profile_pic"`)}
	}
	if v, ok := _c.mutation.ProfilePic(); ok {
		if err := lab.ProfilePicValidator(v); err != nil {
			return &ValidationError{Name: "profile_pic", err: fmt.Errorf(`repo: validator failed for field "Lab.profile_pic": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SignatureImg(); ok {
		if err := lab.SignatureImgValidator(v); err != nil {
			return &ValidationError{Name: "signature_img", err: fmt.Errorf(`repo: validator failed for field "Lab.signature_img": %w`, err)}
		}
	}
	return nil
}

func (_c *LabCreate) sqlSave(ctx context.Context) (*Lab, error) {
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

func (_c *LabCreate) createSpec() (*Lab, *sqlgraph.CreateSpec) {
	var (
		_node = &Lab{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lab.Table, sqlgraph.NewFieldSpec(lab.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lab.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(lab.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(lab.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(lab.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.PasswordHash(); ok {
		_spec.SetField(lab.FieldPasswordHash, field.TypeString, value)
		_node.PasswordHash = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(lab.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(lab.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(lab.FieldAddress, field.TypeString, value)
		_node.Address = &value
	}
	if value, ok := _c.mutation.LicenseNo(); ok {
		_spec.SetField(lab.FieldLicenseNo, field.TypeString, value)
		_node.LicenseNo = &value
	}
	if value, ok := _c.mutation.ProfilePic(); ok {
		_spec.SetField(lab.FieldProfilePic, field.TypeString, value)
		_node.ProfilePic = value
	}
	if value, ok := _c.mutation.SignatureImg(); ok {
		_spec.SetField(lab.FieldSignatureImg, field.TypeString, value)
		_node.SignatureImg = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Lab.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LabUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *LabCreate) OnConflict(opts ...sql.ConflictOption) *LabUpsertOne {
	_c.conflict = opts
	return &LabUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Lab.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LabCreate) OnConflictColumns(columns ...string) *LabUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LabUpsertOne{
		create: _c,
	}
}

type (
	// LabUpsertOne is the builder for "upsert"-ing
	//  one Lab node.
	LabUpsertOne struct {
		create *LabCreate
	}

	// LabUpsert is the "OnConflict" setter.
	LabUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *LabUpsert) SetUpdatedAt(v time.Time) *LabUpsert {
	u.Set(lab.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LabUpsert) UpdateUpdatedAt() *LabUpsert {
	u.SetExcluded(lab.FieldUpdatedAt)
	return u
}

// SetRole sets the "role" field.
func (u *LabUpsert) SetRole(v lab.Role) *LabUpsert {
	u.Set(lab.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *LabUpsert) UpdateRole() *LabUpsert {
	u.SetExcluded(lab.FieldRole)
	return u
}

// SetEmail sets the "email" field.
func (u *LabUpsert) SetEmail(v string) *LabUpsert {
	u.Set(lab.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *LabUpsert) UpdateEmail() *LabUpsert {
	u.SetExcluded(lab.FieldEmail)
	return u
}

// SetPasswordHash sets the "password_hash" field.
func (u *LabUpsert) SetPasswordHash(v string) *LabUpsert {
	u.Set(lab.FieldPasswordHash, v)
	return u
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *LabUpsert) UpdatePasswordHash() *LabUpsert {
	u.SetExcluded(lab.FieldPasswordHash)
	return u
}

// SetName sets the "name" field.
func (u *LabUpsert) SetName(v string) *LabUpsert {
	u.Set(lab.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *LabUpsert) UpdateName() *LabUpsert {
	u.SetExcluded(lab.FieldName)
	return u
}

// SetPhone sets the "phone" field.
func (u *LabUpsert) SetPhone(v string) *LabUpsert {
	u.Set(lab.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *LabUpsert) UpdatePhone() *LabUpsert {
	u.SetExcluded(lab.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *LabUpsert) ClearPhone() *LabUpsert {
	u.SetNull(lab.FieldPhone)
	return u
}

// SetAddress sets the "address" field.
func (u *LabUpsert) SetAddress(v string) *LabUpsert {
	u.Set(lab.FieldAddress, v)
	return u
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *LabUpsert) UpdateAddress() *LabUpsert {
	u.SetExcluded(lab.FieldAddress)
	return u
}

// ClearAddress clears the value of the "address" field.
func (u *LabUpsert) ClearAddress() *LabUpsert {
	u.SetNull(lab.FieldAddress)
	return u
}

// SetLicenseNo sets the "license_no" field.
func (u *LabUpsert) SetLicenseNo(v string) *LabUpsert {
	u.Set(lab.FieldLicenseNo, v)
	return u
}

// UpdateLicenseNo sets the "license_no" field to the value that was provided on create.
func (u *LabUpsert) UpdateLicenseNo() *LabUpsert {
	u.SetExcluded(lab.FieldLicenseNo)
	return u
}

// ClearLicenseNo clears the value of the "license_no" field.
func (u *LabUpsert) ClearLicenseNo() *LabUpsert {
	u.SetNull(lab.FieldLicenseNo)
	return u
}

// SetProfilePic sets the "profile_pic" field.
func (u *LabUpsert) SetProfilePic(v string) *LabUpsert {
	u.Set(lab.FieldProfilePic, v)
	return u
}

// UpdateProfilePic sets the "profile_pic" field to the value that was provided on create.
func (u *LabUpsert) UpdateProfilePic() *LabUpsert {
	u.SetExcluded(lab.FieldProfilePic)
	return u
}

// SetSignatureImg sets the "signature_img" field.
func (u *LabUpsert) SetSignatureImg(v string) *LabUpsert {
	u.Set(lab.FieldSignatureImg, v)
	return u
}

// UpdateSignatureImg sets the "signature_img" field to the value that was provided on create.
func (u *LabUpsert) UpdateSignatureImg() *LabUpsert {
	u.SetExcluded(lab.FieldSignatureImg)
	return u
}

// ClearSignatureImg clears the value of the "signature_img" field.
func (u *LabUpsert) ClearSignatureImg() *LabUpsert {
	u.SetNull(lab.FieldSignatureImg)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Lab.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LabUpsertOne) UpdateNewValues() *LabUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(lab.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Lab.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LabUpsertOne) Ignore() *LabUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LabUpsertOne) DoNothing() *LabUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LabCreate.OnConflict
// documentation for more info.
func (u *LabUpsertOne) Update(set func(*LabUpsert)) *LabUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LabUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LabUpsertOne) SetUpdatedAt(v time.Time) *LabUpsertOne {
	return u.Update(func(s *LabUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LabUpsertOne) UpdateUpdatedAt() *LabUpsertOne {
	return u.Update(func(s *LabUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetRole sets the "role" field.
func (u *LabUpsertOne) SetRole(v lab.Role) *LabUpsertOne {
	return u.Update(func(s *LabUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *LabUpsertOne) UpdateRole() *LabUpsertOne {
	return u.Update(func(s *LabUpsert) {
		s.UpdateRole()
	})
}

// SetEmail sets the "email" field.
func (u *LabUpsertOne) SetEmail(v string) *LabUpsertOne {
	return u.Update(func(s *LabUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *LabUpsertOne) UpdateEmail() *LabUpsertOne {
	return u.Update(func(s *LabUpsert) {
		s.UpdateEmail()
	})
}

// SetPasswordHash sets the "password_hash" field.
func (u *LabUpsertOne) SetPasswordHash(v string) *LabUpsertOne {
	return u.Update(func(s *LabUpsert) {
		s.SetPasswordHash(v)
	})
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *LabUpsertOne) UpdatePasswordHash() *LabUpsertOne {
	return u.Update(func(s *LabUpsert) {
		s.UpdatePasswordHash()
	})
}

// SetName sets the "name" field.
func (u *LabUpsertOne) SetName(v string) *LabUpsertOne {
	return u.Update(func(s *LabUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *LabUpsertOne) UpdateName() *LabUpsertOne {
	return u.Update(func(s *LabUpsert) {
		s.UpdateName()
	})
}

// SetPhone sets the "phone" field.
func (u *LabUpsertOne) SetPhone(v string) *LabUpsertOne {
	return u.Update(func(s *LabUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *LabUpsertOne) UpdatePhone() *LabUpsertOne {
	return u.Update(func(s *LabUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *LabUpsertOne) ClearPhone() *LabUpsertOne {
	return u.Update(func(s *LabUpsert) {
		s.ClearPhone()
	})
}

// SetAddress sets the "address" field.
func (u *LabUpsertOne) SetAddress(v string) *LabUpsertOne {
	return u.Update(func(s *LabUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *LabUpsertOne) UpdateAddress() *LabUpsertOne {
	return u.Update(func(s *LabUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *LabUpsertOne) ClearAddress() *LabUpsertOne {
	return u.Update(func(s *LabUpsert) {
		s.ClearAddress()
	})
}

// SetLicenseNo sets the "license_no" field.
func (u *LabUpsertOne) SetLicenseNo(v string) *LabUpsertOne {
	return u.Update(func(s *LabUpsert) {
		s.SetLicenseNo(v)
	})
}

// UpdateLicenseNo sets the "license_no" field to the value that was provided on create.
func (u *LabUpsertOne) UpdateLicenseNo() *LabUpsertOne {
	return u.Update(func(s *LabUpsert) {
		s.UpdateLicenseNo()
	})
}

// ClearLicenseNo clears the value of the "license_no" field.
func (u *LabUpsertOne) ClearLicenseNo() *LabUpsertOne {
	return u.Update(func(s *LabUpsert) {
		s.ClearLicenseNo()
	})
}

// SetProfilePic sets the "profile_pic" field.
func (u *LabUpsertOne) SetProfilePic(v string) *LabUpsertOne {
	return u.Update(func(s *LabUpsert) {
		s.SetProfilePic(v)
	})
}

// UpdateProfilePic sets the "profile_pic" field to the value that was provided on create.
func (u *LabUpsertOne) UpdateProfilePic() *LabUpsertOne {
	return u.Update(func(s *LabUpsert) {
		s.UpdateProfilePic()
	})
}

// SetSignatureImg sets the "signature_img" field.
func (u *LabUpsertOne) SetSignatureImg(v string) *LabUpsertOne {
	return u.Update(func(s *LabUpsert) {
		s.SetSignatureImg(v)
	})
}

// UpdateSignatureImg sets the "signature_img" field to the value that was provided on create.
func (u *LabUpsertOne) UpdateSignatureImg() *LabUpsertOne {
	return u.Update(func(s *LabUpsert) {
		s.UpdateSignatureImg()
	})
}

// ClearSignatureImg clears the value of the "signature_img" field.
func (u *LabUpsertOne) ClearSignatureImg() *LabUpsertOne {
	return u.Update(func(s *LabUpsert) {
		s.ClearSignatureImg()
	})
}

// Exec executes the query.
func (u *LabUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for LabCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LabUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LabUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LabUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LabCreateBulk is the builder for creating many Lab entities in bulk.
type LabCreateBulk struct {
	config
	err      error
	builders []*LabCreate
	conflict []sql.ConflictOption
}

// Save creates the Lab entities in the database.
func (_c *LabCreateBulk) Save(ctx context.Context) ([]*Lab, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lab, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LabMutation)
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
func (_c *LabCreateBulk) SaveX(ctx context.Context) []*Lab {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Lab.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LabUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *LabCreateBulk) OnConflict(opts ...sql.ConflictOption) *LabUpsertBulk {
	_c.conflict = opts
	return &LabUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Lab.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LabCreateBulk) OnConflictColumns(columns ...string) *LabUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LabUpsertBulk{
		create: _c,
	}
}

// LabUpsertBulk is the builder for "upsert"-ing
// a bulk of Lab nodes.
type LabUpsertBulk struct {
	create *LabCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Lab.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LabUpsertBulk) UpdateNewValues() *LabUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(lab.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Lab.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LabUpsertBulk) Ignore() *LabUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LabUpsertBulk) DoNothing() *LabUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LabCreateBulk.OnConflict
// documentation for more info.
func (u *LabUpsertBulk) Update(set func(*LabUpsert)) *LabUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LabUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LabUpsertBulk) SetUpdatedAt(v time.Time) *LabUpsertBulk {
	return u.Update(func(s *LabUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LabUpsertBulk) UpdateUpdatedAt() *LabUpsertBulk {
	return u.Update(func(s *LabUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetRole sets the "role" field.
func (u *LabUpsertBulk) SetRole(v lab.Role) *LabUpsertBulk {
	return u.Update(func(s *LabUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *LabUpsertBulk) UpdateRole() *LabUpsertBulk {
	return u.Update(func(s *LabUpsert) {
		s.UpdateRole()
	})
}

// SetEmail sets the "email" field.
func (u *LabUpsertBulk) SetEmail(v string) *LabUpsertBulk {
	return u.Update(func(s *LabUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *LabUpsertBulk) UpdateEmail() *LabUpsertBulk {
	return u.Update(func(s *LabUpsert) {
		s.UpdateEmail()
	})
}

// SetPasswordHash sets the "password_hash" field.
func (u *LabUpsertBulk) SetPasswordHash(v string) *LabUpsertBulk {
	return u.Update(func(s *LabUpsert) {
		s.SetPasswordHash(v)
	})
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *LabUpsertBulk) UpdatePasswordHash() *LabUpsertBulk {
	return u.Update(func(s *LabUpsert) {
		s.UpdatePasswordHash()
	})
}

// SetName sets the "name" field.
func (u *LabUpsertBulk) SetName(v string) *LabUpsertBulk {
	return u.Update(func(s *LabUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *LabUpsertBulk) UpdateName() *LabUpsertBulk {
	return u.Update(func(s *LabUpsert) {
		s.UpdateName()
	})
}

// SetPhone sets the "phone" field.
func (u *LabUpsertBulk) SetPhone(v string) *LabUpsertBulk {
	return u.Update(func(s *LabUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *LabUpsertBulk) UpdatePhone() *LabUpsertBulk {
	return u.Update(func(s *LabUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *LabUpsertBulk) ClearPhone() *LabUpsertBulk {
	return u.Update(func(s *LabUpsert) {
		s.ClearPhone()
	})
}

// SetAddress sets the "address" field.
func (u *LabUpsertBulk) SetAddress(v string) *LabUpsertBulk {
	return u.Update(func(s *LabUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *LabUpsertBulk) UpdateAddress() *LabUpsertBulk {
	return u.Update(func(s *LabUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *LabUpsertBulk) ClearAddress() *LabUpsertBulk {
	return u.Update(func(s *LabUpsert) {
		s.ClearAddress()
	})
}

// SetLicenseNo sets the "license_no" field.
func (u *LabUpsertBulk) SetLicenseNo(v string) *LabUpsertBulk {
	return u.Update(func(s *LabUpsert) {
		s.SetLicenseNo(v)
	})
}

// UpdateLicenseNo sets the "license_no" field to the value that was provided on create.
func (u *LabUpsertBulk) UpdateLicenseNo() *LabUpsertBulk {
	return u.Update(func(s *LabUpsert) {
		s.UpdateLicenseNo()
	})
}

// ClearLicenseNo clears the value of the "license_no" field.
func (u *LabUpsertBulk) ClearLicenseNo() *LabUpsertBulk {
	return u.Update(func(s *LabUpsert) {
		s.ClearLicenseNo()
	})
}

// SetProfilePic sets the "profile_pic" field.
func (u *LabUpsertBulk) SetProfilePic(v string) *LabUpsertBulk {
	return u.Update(func(s *LabUpsert) {
		s.SetProfilePic(v)
	})
}

// UpdateProfilePic sets the "profile_pic" field to the value that was provided on create.
func (u *LabUpsertBulk) UpdateProfilePic() *LabUpsertBulk {
	return u.Update(func(s *LabUpsert) {
		s.UpdateProfilePic()
	})
}

// SetSignatureImg sets the "signature_img" field.
func (u *LabUpsertBulk) SetSignatureImg(v string) *LabUpsertBulk {
	return u.Update(func(s *LabUpsert) {
		s.SetSignatureImg(v)
	})
}

// UpdateSignatureImg sets the "signature_img" field to the value that was provided on create.
func (u *LabUpsertBulk) UpdateSignatureImg() *LabUpsertBulk {
	return u.Update(func(s *LabUpsert) {
		s.UpdateSignatureImg()
	})
}

// ClearSignatureImg clears the value of the "signature_img" field.
func (u *LabUpsertBulk) ClearSignatureImg() *LabUpsertBulk {
	return u.Update(func(s *LabUpsert) {
		s.ClearSignatureImg()
	})
}

// Exec executes the query.
func (u *LabUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the LabCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for LabCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LabUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
