package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Report is one immutable classification event. Rows are append-only:
// no update path exists anywhere in the API, and the schema carries no
// updated_at.
type Report struct {
	ent.Schema
}

func (Report) Mixin() []ent.Mixin {
	return []ent.Mixin{
		CreatedAtMixin{},
	}
}

func (Report) Fields() []ent.Field {
	return []ent.Field{
		field.Int("patient_id").
			Comment("FK → patients.id"),

		// The eight measurement fields, stored as classified.
		field.Int("pregnancies"),
		field.Float("glucose"),
		field.Float("bp"),
		field.Float("skin"),
		field.Float("insulin"),
		field.Float("bmi"),
		field.Float("dpf"),
		field.Int("age").
			Comment("Patient age at test time; the patient row may change later"),

		field.String("result").
			MaxLen(100).
			Comment("Classifier label: Diabetic | Normal"),

		field.String("accuracy").
			MaxLen(20).
			Comment("Display confidence string, e.g. \"98.73%\""),

		field.Float("risk_score").
			Comment("True probability of the positive class, as a percentage"),

		field.Text("remarks").
			Optional(),
	}
}

func (Report) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("reports").
			Unique().
			Required().
			Field("patient_id"),
	}
}

func (Report) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id"),
		index.Fields("created_at"),
	}
}
