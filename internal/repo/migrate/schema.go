// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysesColumns holds the columns for the "analyses" table.
	AnalysesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "lab_id", Type: field.TypeInt},
		{Name: "age", Type: field.TypeInt},
		{Name: "gender", Type: field.TypeString, Size: 20},
		{Name: "result", Type: field.TypeString, Size: 10},
		{Name: "accuracy", Type: field.TypeString, Size: 10},
	}
	// AnalysesTable holds the schema information for the "analyses" table.
	AnalysesTable = &schema.Table{
		Name:       "analyses",
		Columns:    AnalysesColumns,
		PrimaryKey: []*schema.Column{AnalysesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analysis_lab_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysesColumns[2], AnalysesColumns[1]},
			},
		},
	}
	// LabsColumns holds the columns for the "labs" table.
	LabsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"lab", "member"}, Default: "member"},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "address", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "license_no", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "profile_pic", Type: field.TypeString, Size: 500, Default: "default_user.png"},
		{Name: "signature_img", Type: field.TypeString, Nullable: true, Size: 500},
	}
	// LabsTable holds the schema information for the "labs" table.
	LabsTable = &schema.Table{
		Name:       "labs",
		Columns:    LabsColumns,
		PrimaryKey: []*schema.Column{LabsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lab_email",
				Unique:  false,
				Columns: []*schema.Column{LabsColumns[4]},
			},
			{
				Name:    "lab_role",
				Unique:  false,
				Columns: []*schema.Column{LabsColumns[3]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "lab_id", Type: field.TypeInt},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "age", Type: field.TypeInt},
		{Name: "gender", Type: field.TypeString, Size: 20},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "patient_lab_id",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[2]},
			},
			{
				Name:    "patient_lab_id_name",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[2], PatientsColumns[3]},
			},
		},
	}
	// ReportsColumns holds the columns for the "reports" table.
	ReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "pregnancies", Type: field.TypeInt},
		{Name: "glucose", Type: field.TypeFloat64},
		{Name: "bp", Type: field.TypeFloat64},
		{Name: "skin", Type: field.TypeFloat64},
		{Name: "insulin", Type: field.TypeFloat64},
		{Name: "bmi", Type: field.TypeFloat64},
		{Name: "dpf", Type: field.TypeFloat64},
		{Name: "age", Type: field.TypeInt},
		{Name: "result", Type: field.TypeString, Size: 100},
		{Name: "accuracy", Type: field.TypeString, Size: 20},
		{Name: "risk_score", Type: field.TypeFloat64},
		{Name: "remarks", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "patient_id", Type: field.TypeInt},
	}
	// ReportsTable holds the schema information for the "reports" table.
	ReportsTable = &schema.Table{
		Name:       "reports",
		Columns:    ReportsColumns,
		PrimaryKey: []*schema.Column{ReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reports_patients_reports",
				Columns:    []*schema.Column{ReportsColumns[14]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "report_patient_id",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[14]},
			},
			{
				Name:    "report_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysesTable,
		LabsTable,
		PatientsTable,
		ReportsTable,
	}
)

func init() {
	ReportsTable.ForeignKeys[0].RefTable = PatientsTable
}
