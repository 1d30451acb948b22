// Code generated by ent, DO NOT EDIT.

package report

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the report type in the database.
	Label = "report"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldPregnancies holds the string denoting the pregnancies field in the database.
	FieldPregnancies = "pregnancies"
	// FieldGlucose holds the string denoting the glucose field in the database.
	FieldGlucose = "glucose"
	// FieldBp holds the string denoting the bp field in the database.
	FieldBp = "bp"
	// FieldSkin holds the string denoting the skin field in the database.
	FieldSkin = "skin"
	// FieldInsulin holds the string denoting the insulin field in the database.
	FieldInsulin = "insulin"
	// FieldBmi holds the string denoting the bmi field in the database.
	FieldBmi = "bmi"
	// FieldDpf holds the string denoting the dpf field in the database.
	FieldDpf = "dpf"
	// FieldAge holds the string denoting the age field in the database.
	FieldAge = "age"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldAccuracy holds the string denoting the accuracy field in the database.
	FieldAccuracy = "accuracy"
	// FieldRiskScore holds the string denoting the risk_score field in the database.
	FieldRiskScore = "risk_score"
	// FieldRemarks holds the string denoting the remarks field in the database.
	FieldRemarks = "remarks"
	// EdgePatient holds the string denoting the patient edge name in mutations.
	EdgePatient = "patient"
	// Table holds the table name of the report in the database.
	Table = "reports"
	// PatientTable is the table that holds the patient relation/edge.
	PatientTable = "reports"
	// PatientInverseTable is the table name for the Patient entity.
	// It exists in this package in order to avoid circular dependency with the "patient" package.
	PatientInverseTable = "patients"
	// PatientColumn is the table column denoting the patient relation/edge.
	PatientColumn = "patient_id"
)

// Columns holds all SQL columns for report fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldPatientID,
	FieldPregnancies,
	FieldGlucose,
	FieldBp,
	FieldSkin,
	FieldInsulin,
	FieldBmi,
	FieldDpf,
	FieldAge,
	FieldResult,
	FieldAccuracy,
	FieldRiskScore,
	FieldRemarks,
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
	// ResultValidator is a validator for the "result" field. It is called by the builders before save.
	ResultValidator func(string) error
	// AccuracyValidator is a validator for the "accuracy" field. It is called by the builders before save.
	AccuracyValidator func(string) error
)

// OrderOption defines the ordering options for the Report queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByPregnancies orders the results by the pregnancies field.
func ByPregnancies(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPregnancies, opts...).ToFunc()
}

// ByGlucose orders the results by the glucose field.
func ByGlucose(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGlucose, opts...).ToFunc()
}

// ByBp orders the results by the bp field.
func ByBp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBp, opts...).ToFunc()
}

// BySkin orders the results by the skin field.
func BySkin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkin, opts...).ToFunc()
}

// ByInsulin orders the results by the insulin field.
func ByInsulin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInsulin, opts...).ToFunc()
}

// ByBmi orders the results by the bmi field.
func ByBmi(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBmi, opts...).ToFunc()
}

// ByDpf orders the results by the dpf field.
func ByDpf(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDpf, opts...).ToFunc()
}

// ByAge orders the results by the age field.
func ByAge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAge, opts...).ToFunc()
}

// ByResult orders the results by the result field.
func ByResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResult, opts...).ToFunc()
}

// ByAccuracy orders the results by the accuracy field.
func ByAccuracy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccuracy, opts...).ToFunc()
}

// ByRiskScore orders the results by the risk_score field.
func ByRiskScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskScore, opts...).ToFunc()
}

// ByRemarks orders the results by the remarks field.
func ByRemarks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRemarks, opts...).ToFunc()
}

// ByPatientField orders the results by patient field.
func ByPatientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPatientStep(), sql.OrderByField(field, opts...))
	}
}
func newPatientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PatientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
	)
}
