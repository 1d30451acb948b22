// Code generated by ent, DO NOT EDIT.

package lab

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/reportcare/reportcare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Lab {
	return predicate.Lab(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Lab {
	return predicate.Lab(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Lab {
	return predicate.Lab(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Lab {
	return predicate.Lab(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Lab {
	return predicate.Lab(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Lab {
	return predicate.Lab(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Lab {
	return predicate.Lab(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Lab {
	return predicate.Lab(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Lab {
	return predicate.Lab(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Lab {
	return predicate.Lab(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Lab {
	return predicate.Lab(sql.FieldEQ(FieldUpdatedAt, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Lab {
	return predicate.Lab(sql.FieldEQ(FieldEmail, v))
}

// PasswordHash applies equality check predicate on the "password_hash" field. It's identical to PasswordHashEQ.
func PasswordHash(v string) predicate.Lab {
	return predicate.Lab(sql.FieldEQ(FieldPasswordHash, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Lab {
	return predicate.Lab(sql.FieldEQ(FieldName, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Lab {
	return predicate.Lab(sql.FieldEQ(FieldPhone, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Lab {
	return predicate.Lab(sql.FieldEQ(FieldAddress, v))
}

// LicenseNo applies equality check predicate on the "license_no" field. It's identical to LicenseNoEQ.
func LicenseNo(v string) predicate.Lab {
	return predicate.Lab(sql.FieldEQ(FieldLicenseNo, v))
}

// ProfilePic applies equality check predicate on the "profile_pic" field. It's identical to ProfilePicEQ.
func ProfilePic(v string) predicate.Lab {
	return predicate.Lab(sql.FieldEQ(FieldProfilePic, v))
}

// SignatureImg applies equality check predicate on the "signature_img" field. It's identical to SignatureImgEQ.
func SignatureImg(v string) predicate.Lab {
	return predicate.Lab(sql.FieldEQ(FieldSignatureImg, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Lab {
	return predicate.Lab(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Lab {
	return predicate.Lab(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Lab {
	return predicate.Lab(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Lab {
	return predicate.Lab(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Lab {
	return predicate.Lab(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Lab {
	return predicate.Lab(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Lab {
	return predicate.Lab(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Lab {
	return predicate.Lab(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Lab {
	return predicate.Lab(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Lab {
	return predicate.Lab(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Lab {
	return predicate.Lab(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Lab {
	return predicate.Lab(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Lab {
	return predicate.Lab(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Lab {
	return predicate.Lab(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Lab {
	return predicate.Lab(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Lab {
	return predicate.Lab(sql.FieldLTE(FieldUpdatedAt, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v Role) predicate.Lab {
	return predicate.Lab(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v Role) predicate.Lab {
	return predicate.Lab(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...Role) predicate.Lab {
	return predicate.Lab(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...Role) predicate.Lab {
	return predicate.Lab(sql.FieldNotIn(FieldRole, vs...))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Lab {
	return predicate.Lab(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Lab {
	return predicate.Lab(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Lab {
	return predicate.Lab(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Lab {
	return predicate.Lab(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Lab {
	return predicate.Lab(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Lab {
	return predicate.Lab(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Lab {
	return predicate.Lab(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Lab {
	return predicate.Lab(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Lab {
	return predicate.Lab(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Lab {
	return predicate.Lab(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Lab {
	return predicate.Lab(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Lab {
	return predicate.Lab(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Lab {
	return predicate.Lab(sql.FieldContainsFold(FieldEmail, v))
}

// PasswordHashEQ applies the EQ predicate on the "password_hash" field.
func PasswordHashEQ(v string) predicate.Lab {
	return predicate.Lab(sql.FieldEQ(FieldPasswordHash, v))
}

// PasswordHashNEQ applies the NEQ predicate on the "password_hash" field.
func PasswordHashNEQ(v string) predicate.Lab {
	return predicate.Lab(sql.FieldNEQ(FieldPasswordHash, v))
}

// PasswordHashIn applies the In predicate on the "password_hash" field.
func PasswordHashIn(vs ...string) predicate.Lab {
	return predicate.Lab(sql.FieldIn(FieldPasswordHash, vs...))
}

// PasswordHashNotIn applies the NotIn predicate on the "password_hash" field.
func PasswordHashNotIn(vs ...string) predicate.Lab {
	return predicate.Lab(sql.FieldNotIn(FieldPasswordHash, vs...))
}

// PasswordHashGT applies the GT predicate on the "password_hash" field.
func PasswordHashGT(v string) predicate.Lab {
	return predicate.Lab(sql.FieldGT(FieldPasswordHash, v))
}

// PasswordHashGTE applies the GTE predicate on the "password_hash" field.
func PasswordHashGTE(v string) predicate.Lab {
	return predicate.Lab(sql.FieldGTE(FieldPasswordHash, v))
}

// PasswordHashLT applies the LT predicate on the "password_hash" field.
func PasswordHashLT(v string) predicate.Lab {
	return predicate.Lab(sql.FieldLT(FieldPasswordHash, v))
}

// PasswordHashLTE applies the LTE predicate on the "password_hash" field.
func PasswordHashLTE(v string) predicate.Lab {
	return predicate.Lab(sql.FieldLTE(FieldPasswordHash, v))
}

// PasswordHashContains applies the Contains predicate on the "password_hash" field.
func PasswordHashContains(v string) predicate.Lab {
	return predicate.Lab(sql.FieldContains(FieldPasswordHash, v))
}

// PasswordHashHasPrefix applies the HasPrefix predicate on the "password_hash" field.
func PasswordHashHasPrefix(v string) predicate.Lab {
	return predicate.Lab(sql.FieldHasPrefix(FieldPasswordHash, v))
}

// PasswordHashHasSuffix applies the HasSuffix predicate on the "password_hash" field.
func PasswordHashHasSuffix(v string) predicate.Lab {
	return predicate.Lab(sql.FieldHasSuffix(FieldPasswordHash, v))
}

// PasswordHashEqualFold applies the EqualFold predicate on the "password_hash" field.
func PasswordHashEqualFold(v string) predicate.Lab {
	return predicate.Lab(sql.FieldEqualFold(FieldPasswordHash, v))
}

// PasswordHashContainsFold applies the ContainsFold predicate on the "password_hash" field.
func PasswordHashContainsFold(v string) predicate.Lab {
	return predicate.Lab(sql.FieldContainsFold(FieldPasswordHash, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Lab {
	return predicate.Lab(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Lab {
	return predicate.Lab(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Lab {
	return predicate.Lab(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Lab {
	return predicate.Lab(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Lab {
	return predicate.Lab(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Lab {
	return predicate.Lab(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Lab {
	return predicate.Lab(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Lab {
	return predicate.Lab(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Lab {
	return predicate.Lab(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Lab {
	return predicate.Lab(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Lab {
	return predicate.Lab(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Lab {
	return predicate.Lab(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Lab {
	return predicate.Lab(sql.FieldContainsFold(FieldName, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Lab {
	return predicate.Lab(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Lab {
	return predicate.Lab(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Lab {
	return predicate.Lab(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Lab {
	return predicate.Lab(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Lab {
	return predicate.Lab(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Lab {
	return predicate.Lab(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Lab {
	return predicate.Lab(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Lab {
	return predicate.Lab(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Lab {
	return predicate.Lab(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Lab {
	return predicate.Lab(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Lab {
	return predicate.Lab(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Lab {
	return predicate.Lab(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Lab {
	return predicate.Lab(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Lab {
	return predicate.Lab(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Lab {
	return predicate.Lab(sql.FieldContainsFold(FieldPhone, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Lab {
	return predicate.Lab(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Lab {
	return predicate.Lab(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Lab {
	return predicate.Lab(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Lab {
	return predicate.Lab(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Lab {
	return predicate.Lab(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Lab {
	return predicate.Lab(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Lab {
	return predicate.Lab(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Lab {
	return predicate.Lab(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Lab {
	return predicate.Lab(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Lab {
	return predicate.Lab(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Lab {
	return predicate.Lab(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.Lab {
	return predicate.Lab(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.Lab {
	return predicate.Lab(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Lab {
	return predicate.Lab(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Lab {
	return predicate.Lab(sql.FieldContainsFold(FieldAddress, v))
}

// LicenseNoEQ applies the EQ predicate on the "license_no" field.
func LicenseNoEQ(v string) predicate.Lab {
	return predicate.Lab(sql.FieldEQ(FieldLicenseNo, v))
}

// LicenseNoNEQ applies the NEQ predicate on the "license_no" field.
func LicenseNoNEQ(v string) predicate.Lab {
	return predicate.Lab(sql.FieldNEQ(FieldLicenseNo, v))
}

// LicenseNoIn applies the In predicate on the "license_no" field.
func LicenseNoIn(vs ...string) predicate.Lab {
	return predicate.Lab(sql.FieldIn(FieldLicenseNo, vs...))
}

// LicenseNoNotIn applies the NotIn predicate on the "license_no" field.
func LicenseNoNotIn(vs ...string) predicate.Lab {
	return predicate.Lab(sql.FieldNotIn(FieldLicenseNo, vs...))
}

// LicenseNoGT applies the GT predicate on the "license_no" field.
func LicenseNoGT(v string) predicate.Lab {
	return predicate.Lab(sql.FieldGT(FieldLicenseNo, v))
}

// LicenseNoGTE applies the GTE predicate on the "license_no" field.
func LicenseNoGTE(v string) predicate.Lab {
	return predicate.Lab(sql.FieldGTE(FieldLicenseNo, v))
}

// LicenseNoLT applies the LT predicate on the "license_no" field.
func LicenseNoLT(v string) predicate.Lab {
	return predicate.Lab(sql.FieldLT(FieldLicenseNo, v))
}

// LicenseNoLTE applies the LTE predicate on the "license_no" field.
func LicenseNoLTE(v string) predicate.Lab {
	return predicate.Lab(sql.FieldLTE(FieldLicenseNo, v))
}

// LicenseNoContains applies the Contains predicate on the "license_no" field.
func LicenseNoContains(v string) predicate.Lab {
	return predicate.Lab(sql.FieldContains(FieldLicenseNo, v))
}

// LicenseNoHasPrefix applies the HasPrefix predicate on the "license_no" field.
func LicenseNoHasPrefix(v string) predicate.Lab {
	return predicate.Lab(sql.FieldHasPrefix(FieldLicenseNo, v))
}

// LicenseNoHasSuffix applies the HasSuffix predicate on the "license_no" field.
func LicenseNoHasSuffix(v string) predicate.Lab {
	return predicate.Lab(sql.FieldHasSuffix(FieldLicenseNo, v))
}

// LicenseNoIsNil applies the IsNil predicate on the "license_no" field.
func LicenseNoIsNil() predicate.Lab {
	return predicate.Lab(sql.FieldIsNull(FieldLicenseNo))
}

// LicenseNoNotNil applies the NotNil predicate on the "license_no" field.
func LicenseNoNotNil() predicate.Lab {
	return predicate.Lab(sql.FieldNotNull(FieldLicenseNo))
}

// LicenseNoEqualFold applies the EqualFold predicate on the "license_no" field.
func LicenseNoEqualFold(v string) predicate.Lab {
	return predicate.Lab(sql.FieldEqualFold(FieldLicenseNo, v))
}

// LicenseNoContainsFold applies the ContainsFold predicate on the "license_no" field.
func LicenseNoContainsFold(v string) predicate.Lab {
	return predicate.Lab(sql.FieldContainsFold(FieldLicenseNo, v))
}

// ProfilePicEQ applies the EQ predicate on the "profile_pic" field.
func ProfilePicEQ(v string) predicate.Lab {
	return predicate.Lab(sql.FieldEQ(FieldProfilePic, v))
}

// ProfilePicNEQ applies the NEQ predicate on the "profile_pic" field.
func ProfilePicNEQ(v string) predicate.Lab {
	return predicate.Lab(sql.FieldNEQ(FieldProfilePic, v))
}

// ProfilePicIn applies the In predicate on the "profile_pic" field.
func ProfilePicIn(vs ...string) predicate.Lab {
	return predicate.Lab(sql.FieldIn(FieldProfilePic, vs...))
}

// ProfilePicNotIn applies the NotIn predicate on the "profile_pic" field.
func ProfilePicNotIn(vs ...string) predicate.Lab {
	return predicate.Lab(sql.FieldNotIn(FieldProfilePic, vs...))
}

// ProfilePicGT applies the GT predicate on the "profile_pic" field.
func ProfilePicGT(v string) predicate.Lab {
	return predicate.Lab(sql.FieldGT(FieldProfilePic, v))
}

// ProfilePicGTE applies the GTE predicate on the "profile_pic" field.
func ProfilePicGTE(v string) predicate.Lab {
	return predicate.Lab(sql.FieldGTE(FieldProfilePic, v))
}

// ProfilePicLT applies the LT predicate on the "profile_pic" field.
func ProfilePicLT(v string) predicate.Lab {
	return predicate.Lab(sql.FieldLT(FieldProfilePic, v))
}

// ProfilePicLTE applies the LTE predicate on the "profile_pic" field.
func ProfilePicLTE(v string) predicate.Lab {
	return predicate.Lab(sql.FieldLTE(FieldProfilePic, v))
}

// ProfilePicContains applies the Contains predicate on the "profile_pic" field.
func ProfilePicContains(v string) predicate.Lab {
	return predicate.Lab(sql.FieldContains(FieldProfilePic, v))
}

// ProfilePicHasPrefix applies the HasPrefix predicate on the "profile_pic" field.
func ProfilePicHasPrefix(v string) predicate.Lab {
	return predicate.Lab(sql.FieldHasPrefix(FieldProfilePic, v))
}

// ProfilePicHasSuffix applies the HasSuffix predicate on the "profile_pic" field.
func ProfilePicHasSuffix(v string) predicate.Lab {
	return predicate.Lab(sql.FieldHasSuffix(FieldProfilePic, v))
}

// ProfilePicEqualFold applies the EqualFold predicate on the "profile_pic" field.
func ProfilePicEqualFold(v string) predicate.Lab {
	return predicate.Lab(sql.FieldEqualFold(FieldProfilePic, v))
}

// ProfilePicContainsFold applies the ContainsFold predicate on the "profile_pic" field.
func ProfilePicContainsFold(v string) predicate.Lab {
	return predicate.Lab(sql.FieldContainsFold(FieldProfilePic, v))
}

// SignatureImgEQ applies the EQ predicate on the "signature_img" field.
func SignatureImgEQ(v string) predicate.Lab {
	return predicate.Lab(sql.FieldEQ(FieldSignatureImg, v))
}

// SignatureImgNEQ applies the NEQ predicate on the "signature_img" field.
func SignatureImgNEQ(v string) predicate.Lab {
	return predicate.Lab(sql.FieldNEQ(FieldSignatureImg, v))
}

// SignatureImgIn applies the In predicate on the "signature_img" field.
func SignatureImgIn(vs ...string) predicate.Lab {
	return predicate.Lab(sql.FieldIn(FieldSignatureImg, vs...))
}

// SignatureImgNotIn applies the NotIn predicate on the "signature_img" field.
func SignatureImgNotIn(vs ...string) predicate.Lab {
	return predicate.Lab(sql.FieldNotIn(FieldSignatureImg, vs...))
}

// SignatureImgGT applies the GT predicate on the "signature_img" field.
func SignatureImgGT(v string) predicate.Lab {
	return predicate.Lab(sql.FieldGT(FieldSignatureImg, v))
}

// SignatureImgGTE applies the GTE predicate on the "signature_img" field.
func SignatureImgGTE(v string) predicate.Lab {
	return predicate.Lab(sql.FieldGTE(FieldSignatureImg, v))
}

// SignatureImgLT applies the LT predicate on the "signature_img" field.
func SignatureImgLT(v string) predicate.Lab {
	return predicate.Lab(sql.FieldLT(FieldSignatureImg, v))
}

// SignatureImgLTE applies the LTE predicate on the "signature_img" field.
func SignatureImgLTE(v string) predicate.Lab {
	return predicate.Lab(sql.FieldLTE(FieldSignatureImg, v))
}

// SignatureImgContains applies the Contains predicate on the "signature_img" field.
func SignatureImgContains(v string) predicate.Lab {
	return predicate.Lab(sql.FieldContains(FieldSignatureImg, v))
}

// SignatureImgHasPrefix applies the HasPrefix predicate on the "signature_img" field.
func SignatureImgHasPrefix(v string) predicate.Lab {
	return predicate.Lab(sql.FieldHasPrefix(FieldSignatureImg, v))
}

// SignatureImgHasSuffix applies the HasSuffix predicate on the "signature_img" field.
func SignatureImgHasSuffix(v string) predicate.Lab {
	return predicate.Lab(sql.FieldHasSuffix(FieldSignatureImg, v))
}

// SignatureImgIsNil applies the IsNil predicate on the "signature_img" field.
func SignatureImgIsNil() predicate.Lab {
	return predicate.Lab(sql.FieldIsNull(FieldSignatureImg))
}

// SignatureImgNotNil applies the NotNil predicate on the "signature_img" field.
func SignatureImgNotNil() predicate.Lab {
	return predicate.Lab(sql.FieldNotNull(FieldSignatureImg))
}

// SignatureImgEqualFold applies the EqualFold predicate on the "signature_img" field.
func SignatureImgEqualFold(v string) predicate.Lab {
	return predicate.Lab(sql.FieldEqualFold(FieldSignatureImg, v))
}

// SignatureImgContainsFold applies the ContainsFold predicate on the "signature_img" field.
func SignatureImgContainsFold(v string) predicate.Lab {
	return predicate.Lab(sql.FieldContainsFold(FieldSignatureImg, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Lab) predicate.Lab {
	return predicate.Lab(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Lab) predicate.Lab {
	return predicate.Lab(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Lab) predicate.Lab {
	return predicate.Lab(sql.NotPredicates(p))
}
