// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reportcare/reportcare_backend/internal/repo/patient"
	"github.com/reportcare/reportcare_backend/internal/repo/report"
)

// Report is the model entity for the Report schema.
type Report struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → patients.id
	PatientID int `json:"patient_id,omitempty"`
	// Pregnancies holds the value of the "pregnancies" field.
	Pregnancies int `json:"pregnancies,omitempty"`
	// Glucose holds the value of the "glucose" field.
	Glucose float64 `json:"glucose,omitempty"`
	// Bp holds the value of the "bp" field.
	Bp float64 `json:"bp,omitempty"`
	// Skin holds the value of the "skin" field.
	Skin float64 `json:"skin,omitempty"`
	// Insulin holds the value of the "insulin" field.
	Insulin float64 `json:"insulin,omitempty"`
	// Bmi holds the value of the "bmi" field.
	Bmi float64 `json:"bmi,omitempty"`
	// Dpf holds the value of the "dpf" field.
	Dpf float64 `json:"dpf,omitempty"`
	// Patient age at test time; the patient row may change later
	Age int `json:"age,omitempty"`
	// Classifier label: Diabetic | Normal
	Result string `json:"result,omitempty"`
	// Display confidence string, e.g. "98.73%"
	Accuracy string `json:"accuracy,omitempty"`
	// True probability of the positive class, as a percentage
	RiskScore float64 `json:"risk_score,omitempty"`
	// Remarks holds the value of the "remarks" field.
	Remarks string `json:"remarks,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReportQuery when eager-loading is set.
	Edges        ReportEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReportEdges holds the relations/edges for other nodes in the graph.
type ReportEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReportEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Report) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case report.FieldGlucose, report.FieldBp, report.FieldSkin, report.FieldInsulin, report.FieldBmi, report.FieldDpf, report.FieldRiskScore:
			values[i] = new(sql.NullFloat64)
		case report.FieldID, report.FieldPatientID, report.FieldPregnancies, report.FieldAge:
			values[i] = new(sql.NullInt64)
		case report.FieldResult, report.FieldAccuracy, report.FieldRemarks:
			values[i] = new(sql.NullString)
		case report.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Report fields.
func (_m *Report) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case report.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case report.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case report.FieldPatientID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value.Valid {
				_m.PatientID = int(value.Int64)
			}
		case report.FieldPregnancies:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pregnancies", values[i])
			} else if value.Valid {
				_m.Pregnancies = int(value.Int64)
			}
		case report.FieldGlucose:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field glucose", values[i])
			} else if value.Valid {
				_m.Glucose = value.Float64
			}
		case report.FieldBp:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field bp", values[i])
			} else if value.Valid {
				_m.Bp = value.Float64
			}
		case report.FieldSkin:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field skin", values[i])
			} else if value.Valid {
				_m.Skin = value.Float64
			}
		case report.FieldInsulin:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field insulin", values[i])
			} else if value.Valid {
				_m.Insulin = value.Float64
			}
		case report.FieldBmi:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field bmi", values[i])
			} else if value.Valid {
				_m.Bmi = value.Float64
			}
		case report.FieldDpf:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field dpf", values[i])
			} else if value.Valid {
				_m.Dpf = value.Float64
			}
		case report.FieldAge:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field age", values[i])
			} else if value.Valid {
				_m.Age = int(value.Int64)
			}
		case report.FieldResult:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value.Valid {
				_m.Result = value.String
			}
		case report.FieldAccuracy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field accuracy", values[i])
			} else if value.Valid {
				_m.Accuracy = value.String
			}
		case report.FieldRiskScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field risk_score", values[i])
			} else if value.Valid {
				_m.RiskScore = value.Float64
			}
		case report.FieldRemarks:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field remarks", values[i])
			} else if value.Valid {
				_m.Remarks = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Report.
// This includes values selected through modifiers, order, etc.
func (_m *Report) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the Report entity.
func (_m *Report) QueryPatient() *PatientQuery {
	return NewReportClient(_m.config).QueryPatient(_m)
}

// Update returns a builder for updating this Report.
// Note that you need to call Report.Unwrap() before calling this method if this Report
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Report) Update() *ReportUpdateOne {
	return NewReportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Report entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Report) Unwrap() *Report {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Report is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Report) String() string {
	var builder strings.Builder
	builder.WriteString("Report(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("pregnancies=")
	builder.WriteString(fmt.Sprintf("%v", _m.Pregnancies))
	builder.WriteString(", ")
	builder.WriteString("glucose=")
	builder.WriteString(fmt.Sprintf("%v", _m.Glucose))
	builder.WriteString(", ")
	builder.WriteString("bp=")
	builder.WriteString(fmt.Sprintf("%v", _m.Bp))
	builder.WriteString(", ")
	builder.WriteString("skin=")
	builder.WriteString(fmt.Sprintf("%v", _m.Skin))
	builder.WriteString(", ")
	builder.WriteString("insulin=")
	builder.WriteString(fmt.Sprintf("%v", _m.Insulin))
	builder.WriteString(", ")
	builder.WriteString("bmi=")
	builder.WriteString(fmt.Sprintf("%v", _m.Bmi))
	builder.WriteString(", ")
	builder.WriteString("dpf=")
	builder.WriteString(fmt.Sprintf("%v", _m.Dpf))
	builder.WriteString(", ")
	builder.WriteString("age=")
	builder.WriteString(fmt.Sprintf("%v", _m.Age))
	builder.WriteString(", ")
	builder.WriteString("result=")
	builder.WriteString(_m.Result)
	builder.WriteString(", ")
	builder.WriteString("accuracy=")
	builder.WriteString(_m.Accuracy)
	builder.WriteString(", ")
	builder.WriteString("risk_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskScore))
	builder.WriteString(", ")
	builder.WriteString("remarks=")
	builder.WriteString(_m.Remarks)
	builder.WriteByte(')')
	return builder.String()
}

// Reports is a parsable slice of Report.
type Reports []*Report
