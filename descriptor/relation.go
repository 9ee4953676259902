package descriptor

// RelationKind identifies one of the closed set of recognized model relation
// types. Kind comparison is nominal: a morph kind is a subtype of its
// non-morph parent, so filtering on HasMany also matches MorphMany.
type RelationKind string

const (
	HasOne         RelationKind = "has_one"
	HasMany        RelationKind = "has_many"
	HasManyThrough RelationKind = "has_many_through"
	BelongsTo      RelationKind = "belongs_to"
	BelongsToMany  RelationKind = "belongs_to_many"
	MorphOne       RelationKind = "morph_one"
	MorphMany      RelationKind = "morph_many"
	MorphTo        RelationKind = "morph_to"
	MorphToMany    RelationKind = "morph_to_many"
)

// KnownRelationKinds lists every recognized relation kind.
var KnownRelationKinds = []RelationKind{
	HasOne, HasMany, HasManyThrough,
	BelongsTo, BelongsToMany,
	MorphOne, MorphMany, MorphTo, MorphToMany,
}

// relationParents maps each kind to its direct supertype.
var relationParents = map[RelationKind]RelationKind{
	MorphOne:    HasOne,
	MorphMany:   HasMany,
	MorphTo:     BelongsTo,
	MorphToMany: BelongsToMany,
}

// IsA reports whether k is the given kind or a subtype of it.
func (k RelationKind) IsA(kind RelationKind) bool {
	for cur := k; ; {
		if cur == kind {
			return true
		}
		parent, ok := relationParents[cur]
		if !ok {
			return false
		}
		cur = parent
	}
}

// Known reports whether k belongs to the recognized set.
func (k RelationKind) Known() bool {
	for _, kind := range KnownRelationKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// String returns the serialized kind name.
func (k RelationKind) String() string {
	return string(k)
}
