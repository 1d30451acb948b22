// Code generated by ent, DO NOT EDIT.

package lab

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lab type in the database.
	Label = "lab"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPasswordHash holds the string denoting the password_hash field in the database.
	FieldPasswordHash = "password_hash"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldLicenseNo holds the string denoting the license_no field in the database.
	FieldLicenseNo = "license_no"
	// FieldProfilePic holds the string denoting the profile_pic field in the database.
	FieldProfilePic = "profile_pic"
	// FieldSignatureImg holds the string denoting the signature_img field in the database.
	FieldSignatureImg = "signature_img"
	// Table holds the table name of the lab in the database.
	Table = "labs"
)

// Columns holds all SQL columns for lab fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldRole,
	FieldEmail,
	FieldPasswordHash,
	FieldName,
	FieldPhone,
	FieldAddress,
	FieldLicenseNo,
	FieldProfilePic,
	FieldSignatureImg,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	PhoneValidator func(string) error
	// LicenseNoValidator is a validator for the "license_no" field. It is called by the builders before save.
	LicenseNoValidator func(string) error
	// DefaultProfilePic holds the default value on creation for the "profile_pic" field.
	DefaultProfilePic string
	// ProfilePicValidator is a validator for the "profile_pic" field. It is called by the builders before save.
	ProfilePicValidator func(string) error
	// SignatureImgValidator is a validator for the "signature_img" field. It is called by the builders before save.
	SignatureImgValidator func(string) error
)

// Role defines the type for the "role" enum field.
type Role string

// RoleMember is the default value of the Role enum.
const DefaultRole = RoleMember

// Role values.
const (
	RoleLab    Role = "lab"
	RoleMember Role = "member"
)

func (r Role) String() string {
	return string(r)
}

// RoleValidator is a validator for the "role" field enum values. It is called by the builders before save.
func RoleValidator(r Role) error {
	switch r {
	case RoleLab, RoleMember:
		return nil
	default:
		return fmt.Errorf("lab: invalid enum value for role field: %q", r)
	}
}

// OrderOption defines the ordering options for the Lab queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByPasswordHash orders the results by the password_hash field.
func ByPasswordHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPasswordHash, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByLicenseNo orders the results by the license_no field.
func ByLicenseNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLicenseNo, opts...).ToFunc()
}

// ByProfilePic orders the results by the profile_pic field.
func ByProfilePic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfilePic, opts...).ToFunc()
}

// BySignatureImg orders the results by the signature_img field.
func BySignatureImg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignatureImg, opts...).ToFunc()
}
