// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/reportcare/reportcare_backend/internal/repo/analysis"
	"github.com/reportcare/reportcare_backend/internal/repo/lab"
	"github.com/reportcare/reportcare_backend/internal/repo/patient"
	"github.com/reportcare/reportcare_backend/internal/repo/report"
	"github.com/reportcare/reportcare_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysisMixin := schema.Analysis{}.Mixin()
	analysisMixinFields0 := analysisMixin[0].Fields()
	_ = analysisMixinFields0
	analysisFields := schema.Analysis{}.Fields()
	_ = analysisFields
	// analysisDescCreatedAt is the schema descriptor for created_at field.
	analysisDescCreatedAt := analysisMixinFields0[0].Descriptor()
	// analysis.DefaultCreatedAt holds the default value on creation for the created_at field.
	analysis.DefaultCreatedAt = analysisDescCreatedAt.Default.(func() time.Time)
	// analysisDescGender is the schema descriptor for gender field.
	analysisDescGender := analysisFields[2].Descriptor()
	// analysis.GenderValidator is a validator for the "gender" field. It is called by the builders before save.
	analysis.GenderValidator = analysisDescGender.Validators[0].(func(string) error)
	// analysisDescResult is the schema descriptor for result field.
	analysisDescResult := analysisFields[3].Descriptor()
	// analysis.ResultValidator is a validator for the "result" field. It is called by the builders before save.
	analysis.ResultValidator = analysisDescResult.Validators[0].(func(string) error)
	// analysisDescAccuracy is the schema descriptor for accuracy field.
	analysisDescAccuracy := analysisFields[4].Descriptor()
	// analysis.AccuracyValidator is a validator for the "accuracy" field. It is called by the builders before save.
	analysis.AccuracyValidator = analysisDescAccuracy.Validators[0].(func(string) error)
	labMixin := schema.Lab{}.Mixin()
	labMixinFields0 := labMixin[0].Fields()
	_ = labMixinFields0
	labFields := schema.Lab{}.Fields()
	_ = labFields
	// labDescCreatedAt is the schema descriptor for created_at field.
	labDescCreatedAt := labMixinFields0[0].Descriptor()
	// lab.DefaultCreatedAt holds the default value on creation for the created_at field.
	lab.DefaultCreatedAt = labDescCreatedAt.Default.(func() time.Time)
	// labDescUpdatedAt is the schema descriptor for updated_at field.
	labDescUpdatedAt := labMixinFields0[1].Descriptor()
	// lab.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lab.DefaultUpdatedAt = labDescUpdatedAt.Default.(func() time.Time)
	// lab.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lab.UpdateDefaultUpdatedAt = labDescUpdatedAt.UpdateDefault.(func() time.Time)
	// labDescEmail is the schema descriptor for email field.
	labDescEmail := labFields[1].Descriptor()
	// lab.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	lab.EmailValidator = func() func(string) error {
		validators := labDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// labDescName is the schema descriptor for name field.
	labDescName := labFields[3].Descriptor()
	// lab.NameValidator is a validator for the "name" field. It is called by the builders before save.
	lab.NameValidator = func() func(string) error {
		validators := labDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// labDescPhone is the schema descriptor for phone field.
	labDescPhone := labFields[4].Descriptor()
	// lab.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	lab.PhoneValidator = labDescPhone.Validators[0].(func(string) error)
	// labDescLicenseNo is the schema descriptor for license_no field.
	labDescLicenseNo := labFields[6].Descriptor()
	// lab.LicenseNoValidator is a validator for the "license_no" field. It is called by the builders before save.
	lab.LicenseNoValidator = labDescLicenseNo.Validators[0].(func(string) error)
	// labDescProfilePic is the schema descriptor for profile_pic field.
	labDescProfilePic := labFields[7].Descriptor()
	// lab.DefaultProfilePic holds the default value on creation for the profile_pic field.
	lab.DefaultProfilePic = labDescProfilePic.Default.(string)
	// lab.ProfilePicValidator is a validator for the "profile_pic" field. It is called by the builders before save.
	lab.ProfilePicValidator = labDescProfilePic.Validators[0].(func(string) error)
	// labDescSignatureImg is the schema descriptor for signature_img field.
	labDescSignatureImg := labFields[8].Descriptor()
	// lab.SignatureImgValidator is a validator for the "signature_img" field. It is called by the builders before save.
	lab.SignatureImgValidator = labDescSignatureImg.Validators[0].(func(string) error)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields0[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescName is the schema descriptor for name field.
	patientDescName := patientFields[1].Descriptor()
	// patient.NameValidator is a validator for the "name" field. It is called by the builders before save.
	patient.NameValidator = func() func(string) error {
		validators := patientDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// patientDescGender is the schema descriptor for gender field.
	patientDescGender := patientFields[3].Descriptor()
	// patient.GenderValidator is a validator for the "gender" field. It is called by the builders before save.
	patient.GenderValidator = patientDescGender.Validators[0].(func(string) error)
	// patientDescPhone is the schema descriptor for phone field.
	patientDescPhone := patientFields[4].Descriptor()
	// patient.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	patient.PhoneValidator = patientDescPhone.Validators[0].(func(string) error)
	reportMixin := schema.Report{}.Mixin()
	reportMixinFields0 := reportMixin[0].Fields()
	_ = reportMixinFields0
	reportFields := schema.Report{}.Fields()
	_ = reportFields
	// reportDescCreatedAt is the schema descriptor for created_at field.
	reportDescCreatedAt := reportMixinFields0[0].Descriptor()
	// report.DefaultCreatedAt holds the default value on creation for the created_at field.
	report.DefaultCreatedAt = reportDescCreatedAt.Default.(func() time.Time)
	// reportDescResult is the schema descriptor for result field.
	reportDescResult := reportFields[9].Descriptor()
	// report.ResultValidator is a validator for the "result" field. It is called by the builders before save.
	report.ResultValidator = reportDescResult.Validators[0].(func(string) error)
	// reportDescAccuracy is the schema descriptor for accuracy field.
	reportDescAccuracy := reportFields[10].Descriptor()
	// report.AccuracyValidator is a validator for the "accuracy" field. It is called by the builders before save.
	report.AccuracyValidator = reportDescAccuracy.Validators[0].(func(string) error)
}
