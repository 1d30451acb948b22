// Code generated by ent, DO NOT EDIT.

package report

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/reportcare/reportcare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCreatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldPatientID, v))
}

// Pregnancies applies equality check predicate on the "pregnancies" field. It's identical to PregnanciesEQ.
func Pregnancies(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldPregnancies, v))
}

// Glucose applies equality check predicate on the "glucose" field. It's identical to GlucoseEQ.
func Glucose(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldGlucose, v))
}

// Bp applies equality check predicate on the "bp" field. It's identical to BpEQ.
func Bp(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldBp, v))
}

// Skin applies equality check predicate on the "skin" field. It's identical to SkinEQ.
func Skin(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldSkin, v))
}

// Insulin applies equality check predicate on the "insulin" field. It's identical to InsulinEQ.
func Insulin(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldInsulin, v))
}

// Bmi applies equality check predicate on the "bmi" field. It's identical to BmiEQ.
func Bmi(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldBmi, v))
}

// Dpf applies equality check predicate on the "dpf" field. It's identical to DpfEQ.
func Dpf(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldDpf, v))
}

// Age applies equality check predicate on the "age" field. It's identical to AgeEQ.
func Age(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldAge, v))
}

// Result applies equality check predicate on the "result" field. It's identical to ResultEQ.
func Result(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldResult, v))
}

// Accuracy applies equality check predicate on the "accuracy" field. It's identical to AccuracyEQ.
func Accuracy(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldAccuracy, v))
}

// RiskScore applies equality check predicate on the "risk_score" field. It's identical to RiskScoreEQ.
func RiskScore(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldRiskScore, v))
}

// Remarks applies equality check predicate on the "remarks" field. It's identical to RemarksEQ.
func Remarks(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldRemarks, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldCreatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldPatientID, vs...))
}

// PregnanciesEQ applies the EQ predicate on the "pregnancies" field.
func PregnanciesEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldPregnancies, v))
}

// PregnanciesNEQ applies the NEQ predicate on the "pregnancies" field.
func PregnanciesNEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldPregnancies, v))
}

// PregnanciesIn applies the In predicate on the "pregnancies" field.
func PregnanciesIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldPregnancies, vs...))
}

// PregnanciesNotIn applies the NotIn predicate on the "pregnancies" field.
func PregnanciesNotIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldPregnancies, vs...))
}

// PregnanciesGT applies the GT predicate on the "pregnancies" field.
func PregnanciesGT(v int) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldPregnancies, v))
}

// PregnanciesGTE applies the GTE predicate on the "pregnancies" field.
func PregnanciesGTE(v int) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldPregnancies, v))
}

// PregnanciesLT applies the LT predicate on the "pregnancies" field.
func PregnanciesLT(v int) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldPregnancies, v))
}

// PregnanciesLTE applies the LTE predicate on the "pregnancies" field.
func PregnanciesLTE(v int) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldPregnancies, v))
}

// GlucoseEQ applies the EQ predicate on the "glucose" field.
func GlucoseEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldGlucose, v))
}

// GlucoseNEQ applies the NEQ predicate on the "glucose" field.
func GlucoseNEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldGlucose, v))
}

// GlucoseIn applies the In predicate on the "glucose" field.
func GlucoseIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldGlucose, vs...))
}

// GlucoseNotIn applies the NotIn predicate on the "glucose" field.
func GlucoseNotIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldGlucose, vs...))
}

// GlucoseGT applies the GT predicate on the "glucose" field.
func GlucoseGT(v float64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldGlucose, v))
}

// GlucoseGTE applies the GTE predicate on the "glucose" field.
func GlucoseGTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldGlucose, v))
}

// GlucoseLT applies the LT predicate on the "glucose" field.
func GlucoseLT(v float64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldGlucose, v))
}

// GlucoseLTE applies the LTE predicate on the "glucose" field.
func GlucoseLTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldGlucose, v))
}

// BpEQ applies the EQ predicate on the "bp" field.
func BpEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldBp, v))
}

// BpNEQ applies the NEQ predicate on the "bp" field.
func BpNEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldBp, v))
}

// BpIn applies the In predicate on the "bp" field.
func BpIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldBp, vs...))
}

// BpNotIn applies the NotIn predicate on the "bp" field.
func BpNotIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldBp, vs...))
}

// BpGT applies the GT predicate on the "bp" field.
func BpGT(v float64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldBp, v))
}

// BpGTE applies the GTE predicate on the "bp" field.
func BpGTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldBp, v))
}

// BpLT applies the LT predicate on the "bp" field.
func BpLT(v float64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldBp, v))
}

// BpLTE applies the LTE predicate on the "bp" field.
func BpLTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldBp, v))
}

// SkinEQ applies the EQ predicate on the "skin" field.
func SkinEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldSkin, v))
}

// SkinNEQ applies the NEQ predicate on the "skin" field.
func SkinNEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldSkin, v))
}

// SkinIn applies the In predicate on the "skin" field.
func SkinIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldSkin, vs...))
}

// SkinNotIn applies the NotIn predicate on the "skin" field.
func SkinNotIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldSkin, vs...))
}

// SkinGT applies the GT predicate on the "skin" field.
func SkinGT(v float64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldSkin, v))
}

// SkinGTE applies the GTE predicate on the "skin" field.
func SkinGTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldSkin, v))
}

// SkinLT applies the LT predicate on the "skin" field.
func SkinLT(v float64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldSkin, v))
}

// SkinLTE applies the LTE predicate on the "skin" field.
func SkinLTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldSkin, v))
}

// InsulinEQ applies the EQ predicate on the "insulin" field.
func InsulinEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldInsulin, v))
}

// InsulinNEQ applies the NEQ predicate on the "insulin" field.
func InsulinNEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldInsulin, v))
}

// InsulinIn applies the In predicate on the "insulin" field.
func InsulinIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldInsulin, vs...))
}

// InsulinNotIn applies the NotIn predicate on the "insulin" field.
func InsulinNotIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldInsulin, vs...))
}

// InsulinGT applies the GT predicate on the "insulin" field.
func InsulinGT(v float64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldInsulin, v))
}

// InsulinGTE applies the GTE predicate on the "insulin" field.
func InsulinGTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldInsulin, v))
}

// InsulinLT applies the LT predicate on the "insulin" field.
func InsulinLT(v float64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldInsulin, v))
}

// InsulinLTE applies the LTE predicate on the "insulin" field.
func InsulinLTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldInsulin, v))
}

// BmiEQ applies the EQ predicate on the "bmi" field.
func BmiEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldBmi, v))
}

// BmiNEQ applies the NEQ predicate on the "bmi" field.
func BmiNEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldBmi, v))
}

// BmiIn applies the In predicate on the "bmi" field.
func BmiIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldBmi, vs...))
}

// BmiNotIn applies the NotIn predicate on the "bmi" field.
func BmiNotIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldBmi, vs...))
}

// BmiGT applies the GT predicate on the "bmi" field.
func BmiGT(v float64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldBmi, v))
}

// BmiGTE applies the GTE predicate on the "bmi" field.
func BmiGTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldBmi, v))
}

// BmiLT applies the LT predicate on the "bmi" field.
func BmiLT(v float64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldBmi, v))
}

// BmiLTE applies the LTE predicate on the "bmi" field.
func BmiLTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldBmi, v))
}

// DpfEQ applies the EQ predicate on the "dpf" field.
func DpfEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldDpf, v))
}

// DpfNEQ applies the NEQ predicate on the "dpf" field.
func DpfNEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldDpf, v))
}

// DpfIn applies the In predicate on the "dpf" field.
func DpfIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldDpf, vs...))
}

// DpfNotIn applies the NotIn predicate on the "dpf" field.
func DpfNotIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldDpf, vs...))
}

// DpfGT applies the GT predicate on the "dpf" field.
func DpfGT(v float64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldDpf, v))
}

// DpfGTE applies the GTE predicate on the "dpf" field.
func DpfGTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldDpf, v))
}

// DpfLT applies the LT predicate on the "dpf" field.
func DpfLT(v float64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldDpf, v))
}

// DpfLTE applies the LTE predicate on the "dpf" field.
func DpfLTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldDpf, v))
}

// AgeEQ applies the EQ predicate on the "age" field.
func AgeEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldAge, v))
}

// AgeNEQ applies the NEQ predicate on the "age" field.
func AgeNEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldAge, v))
}

// AgeIn applies the In predicate on the "age" field.
func AgeIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldAge, vs...))
}

// AgeNotIn applies the NotIn predicate on the "age" field.
func AgeNotIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldAge, vs...))
}

// AgeGT applies the GT predicate on the "age" field.
func AgeGT(v int) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldAge, v))
}

// AgeGTE applies the GTE predicate on the "age" field.
func AgeGTE(v int) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldAge, v))
}

// AgeLT applies the LT predicate on the "age" field.
func AgeLT(v int) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldAge, v))
}

// AgeLTE applies the LTE predicate on the "age" field.
func AgeLTE(v int) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldAge, v))
}

// ResultEQ applies the EQ predicate on the "result" field.
func ResultEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldResult, v))
}

// ResultNEQ applies the NEQ predicate on the "result" field.
func ResultNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldResult, v))
}

// ResultIn applies the In predicate on the "result" field.
func ResultIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldResult, vs...))
}

// ResultNotIn applies the NotIn predicate on the "result" field.
func ResultNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldResult, vs...))
}

// ResultGT applies the GT predicate on the "result" field.
func ResultGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldResult, v))
}

// ResultGTE applies the GTE predicate on the "result" field.
func ResultGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldResult, v))
}

// ResultLT applies the LT predicate on the "result" field.
func ResultLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldResult, v))
}

// ResultLTE applies the LTE predicate on the "result" field.
func ResultLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldResult, v))
}

// ResultContains applies the Contains predicate on the "result" field.
func ResultContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldResult, v))
}

// ResultHasPrefix applies the HasPrefix predicate on the "result" field.
func ResultHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldResult, v))
}

// ResultHasSuffix applies the HasSuffix predicate on the "result" field.
func ResultHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldResult, v))
}

// ResultEqualFold applies the EqualFold predicate on the "result" field.
func ResultEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldResult, v))
}

// ResultContainsFold applies the ContainsFold predicate on the "result" field.
func ResultContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldResult, v))
}

// AccuracyEQ applies the EQ predicate on the "accuracy" field.
func AccuracyEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldAccuracy, v))
}

// AccuracyNEQ applies the NEQ predicate on the "accuracy" field.
func AccuracyNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldAccuracy, v))
}

// AccuracyIn applies the In predicate on the "accuracy" field.
func AccuracyIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldAccuracy, vs...))
}

// AccuracyNotIn applies the NotIn predicate on the "accuracy" field.
func AccuracyNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldAccuracy, vs...))
}

// AccuracyGT applies the GT predicate on the "accuracy" field.
func AccuracyGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldAccuracy, v))
}

// AccuracyGTE applies the GTE predicate on the "accuracy" field.
func AccuracyGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldAccuracy, v))
}

// AccuracyLT applies the LT predicate on the "accuracy" field.
func AccuracyLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldAccuracy, v))
}

// AccuracyLTE applies the LTE predicate on the "accuracy" field.
func AccuracyLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldAccuracy, v))
}

// AccuracyContains applies the Contains predicate on the "accuracy" field.
func AccuracyContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldAccuracy, v))
}

// AccuracyHasPrefix applies the HasPrefix predicate on the "accuracy" field.
func AccuracyHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldAccuracy, v))
}

// AccuracyHasSuffix applies the HasSuffix predicate on the "accuracy" field.
func AccuracyHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldAccuracy, v))
}

// AccuracyEqualFold applies the EqualFold predicate on the "accuracy" field.
func AccuracyEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldAccuracy, v))
}

// AccuracyContainsFold applies the ContainsFold predicate on the "accuracy" field.
func AccuracyContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldAccuracy, v))
}

// RiskScoreEQ applies the EQ predicate on the "risk_score" field.
func RiskScoreEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldRiskScore, v))
}

// RiskScoreNEQ applies the NEQ predicate on the "risk_score" field.
func RiskScoreNEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldRiskScore, v))
}

// RiskScoreIn applies the In predicate on the "risk_score" field.
func RiskScoreIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldRiskScore, vs...))
}

// RiskScoreNotIn applies the NotIn predicate on the "risk_score" field.
func RiskScoreNotIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldRiskScore, vs...))
}

// RiskScoreGT applies the GT predicate on the "risk_score" field.
func RiskScoreGT(v float64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldRiskScore, v))
}

// RiskScoreGTE applies the GTE predicate on the "risk_score" field.
func RiskScoreGTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldRiskScore, v))
}

// RiskScoreLT applies the LT predicate on the "risk_score" field.
func RiskScoreLT(v float64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldRiskScore, v))
}

// RiskScoreLTE applies the LTE predicate on the "risk_score" field.
func RiskScoreLTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldRiskScore, v))
}

// RemarksEQ applies the EQ predicate on the "remarks" field.
func RemarksEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldRemarks, v))
}

// RemarksNEQ applies the NEQ predicate on the "remarks" field.
func RemarksNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldRemarks, v))
}

// RemarksIn applies the In predicate on the "remarks" field.
func RemarksIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldRemarks, vs...))
}

// RemarksNotIn applies the NotIn predicate on the "remarks" field.
func RemarksNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldRemarks, vs...))
}

// RemarksGT applies the GT predicate on the "remarks" field.
func RemarksGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldRemarks, v))
}

// RemarksGTE applies the GTE predicate on the "remarks" field.
func RemarksGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldRemarks, v))
}

// RemarksLT applies the LT predicate on the "remarks" field.
func RemarksLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldRemarks, v))
}

// RemarksLTE applies the LTE predicate on the "remarks" field.
func RemarksLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldRemarks, v))
}

// RemarksContains applies the Contains predicate on the "remarks" field.
func RemarksContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldRemarks, v))
}

// RemarksHasPrefix applies the HasPrefix predicate on the "remarks" field.
func RemarksHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldRemarks, v))
}

// RemarksHasSuffix applies the HasSuffix predicate on the "remarks" field.
func RemarksHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldRemarks, v))
}

// RemarksIsNil applies the IsNil predicate on the "remarks" field.
func RemarksIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldRemarks))
}

// RemarksNotNil applies the NotNil predicate on the "remarks" field.
func RemarksNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldRemarks))
}

// RemarksEqualFold applies the EqualFold predicate on the "remarks" field.
func RemarksEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldRemarks, v))
}

// RemarksContainsFold applies the ContainsFold predicate on the "remarks" field.
func RemarksContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldRemarks, v))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Report) predicate.Report {
	return predicate.Report(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Report) predicate.Report {
	return predicate.Report(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Report) predicate.Report {
	return predicate.Report(sql.NotPredicates(p))
}
