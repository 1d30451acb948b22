package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Analysis is the per-caller prediction history trail. It deliberately
// carries no foreign keys: the ledger survives patient deletion and is
// never joined against Report.
type Analysis struct {
	ent.Schema
}

func (Analysis) Mixin() []ent.Mixin {
	return []ent.Mixin{
		CreatedAtMixin{},
	}
}

func (Analysis) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lab_id").
			Comment("Caller account; plain column, not an edge"),

		field.Int("age"),

		field.String("gender").
			MaxLen(20),

		field.String("result").
			MaxLen(10),

		field.String("accuracy").
			MaxLen(10),
	}
}

func (Analysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lab_id", "created_at"),
	}
}
