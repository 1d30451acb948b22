package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Patient is a screened individual. The integer ID is the basis of the
// public PAT-### identifier, so it stays an auto-increment int.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		CreatedAtMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lab_id").
			Comment("Owning lab account; assigned at creation, never reassigned"),

		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.Int("age"),

		field.String("gender").
			MaxLen(20),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),
	}
}

func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		// Deleting a patient removes its reports at the database level;
		// orphan reports are never permitted.
		edge.To("reports", Report.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lab_id"),
		index.Fields("lab_id", "name"),
	}
}
