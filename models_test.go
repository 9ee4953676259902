package introspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-lang/introspect/descriptor"
)

func modelFixtures() ModelProvider {
	return ModelProviderFunc(func() ([]descriptor.Model, error) {
		return []descriptor.Model{
			{
				Name:   "User",
				Table:  "users",
				Traits: []string{"Notifiable", "HasApiTokens"},
				Relations: []descriptor.Relation{
					{Name: "posts", Kind: descriptor.HasMany, Target: "Post"},
					{Name: "profile", Kind: descriptor.HasOne, Target: "Profile"},
				},
			},
			{
				Name:       "Post",
				Table:      "posts",
				Implements: []string{"Feedable"},
				Relations: []descriptor.Relation{
					{Name: "author", Kind: descriptor.BelongsTo, Target: "User"},
					{Name: "tags", Kind: descriptor.MorphToMany, Target: "Tag"},
				},
			},
			{
				Name:  "Comment",
				Table: "comments",
				Relations: []descriptor.Relation{
					{Name: "commentable", Kind: descriptor.MorphTo, Target: ""},
					{Name: "reactions", Kind: descriptor.MorphMany, Target: "Reaction"},
				},
			},
		}, nil
	})
}

func TestModelsQuery_WhereName(t *testing.T) {
	models, err := Models(modelFixtures()).WhereName("P*").Get()
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, "Post", models[0].Name)
}

func TestModelsQuery_WhereTable(t *testing.T) {
	models, err := Models(modelFixtures()).WhereTable("users").Get()
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, "User", models[0].Name)
}

func TestModelsQuery_WhereUsesTrait(t *testing.T) {
	models, err := Models(modelFixtures()).WhereUsesTrait("Notifiable").Get()
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, "User", models[0].Name)

	none, err := Models(modelFixtures()).WhereUsesTrait("SoftDeletes").Get()
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestModelsQuery_WhereDoesntUseTrait(t *testing.T) {
	models, err := Models(modelFixtures()).WhereDoesntUseTrait("Notifiable").Get()
	require.NoError(t, err)
	assert.Len(t, models, 2)
}

func TestModelsQuery_RelationKindHierarchy(t *testing.T) {
	// MorphMany is a subtype of HasMany, so filtering on HasMany matches
	// both User (has_many) and Comment (morph_many).
	models, err := Models(modelFixtures()).
		WhereHasRelationKind(descriptor.HasMany).
		Get()
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, "User", models[0].Name)
	assert.Equal(t, "Comment", models[1].Name)

	// The exact morph kind matches only its carrier.
	morphs, err := Models(modelFixtures()).
		WhereHasRelationKind(descriptor.MorphMany).
		Get()
	require.NoError(t, err)
	require.Len(t, morphs, 1)
	assert.Equal(t, "Comment", morphs[0].Name)
}

func TestModelsQuery_WhereHasRelationTo(t *testing.T) {
	models, err := Models(modelFixtures()).WhereHasRelationTo("User").Get()
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, "Post", models[0].Name)
}

func TestModelsQuery_WhereImplements(t *testing.T) {
	models, err := Models(modelFixtures()).WhereImplements("Feedable").Get()
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, "Post", models[0].Name)
}

func TestModelsQuery_Or(t *testing.T) {
	models, err := Models(modelFixtures()).
		WhereUsesTrait("Notifiable").
		Or(func(q *ModelsQuery) {
			q.WhereHasRelationKind(descriptor.MorphTo)
		}).
		Get()
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, "User", models[0].Name)
	assert.Equal(t, "Comment", models[1].Name)
}

func TestModelsQuery_Terminals(t *testing.T) {
	q := Models(modelFixtures()).WhereHasRelation("posts")

	count, err := q.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	first, err := q.First()
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "User", first.Name)

	exists, err := Models(modelFixtures()).WhereHasRelation("nothing").Exists()
	require.NoError(t, err)
	assert.False(t, exists)
}
