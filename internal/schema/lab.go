package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lab is an account. Diagnostic labs carry a license number and a
// signature image; plain member accounts only use the history trail.
type Lab struct {
	ent.Schema
}

func (Lab) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeStampedMixin{},
	}
}

func (Lab) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("role").
			Values("lab", "member").
			Default("member"),

		field.String("email").
			MaxLen(255).
			NotEmpty().
			Unique(),

		field.String("password_hash").
			Sensitive(),

		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.Text("address").
			Optional().
			Nillable(),

		field.String("license_no").
			Optional().
			Nillable().
			MaxLen(100).
			Comment("Lab accounts only; normalized to upper case, LAB- prefix"),

		field.String("profile_pic").
			Default("default_user.png").
			MaxLen(500).
			Comment("S3 key for the avatar image"),

		field.String("signature_img").
			Optional().
			Nillable().
			MaxLen(500).
			Comment("S3 key for the signature printed on reports"),
	}
}

func (Lab) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
		index.Fields("role"),
	}
}
