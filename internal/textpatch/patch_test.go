package textpatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertUniqueLine_AfterLastAnchor(t *testing.T) {
	content := "include(\"common\")\nrootProject.name = 'mymod'\n"

	got := InsertUniqueLine(content, "include(\"fabric\")", "include(", "rootProject.name")
	assert.Equal(t, "include(\"common\")\ninclude(\"fabric\")\nrootProject.name = 'mymod'\n", got)
}

func TestInsertUniqueLine_BeforeFallbackAnchor(t *testing.T) {
	content := "rootProject.name = 'mymod'\n"

	got := InsertUniqueLine(content, "include(\"fabric\")", "include(", "rootProject.name")
	assert.Equal(t, "include(\"fabric\")\nrootProject.name = 'mymod'\n", got)
}

func TestInsertUniqueLine_AppendWhenNoAnchor(t *testing.T) {
	content := "// settings\n"

	got := InsertUniqueLine(content, "include(\"fabric\")", "include(", "rootProject.name")
	assert.Equal(t, "// settings\ninclude(\"fabric\")\n", got)
}

func TestInsertUniqueLine_Idempotent(t *testing.T) {
	content := "include(\"common\")\nrootProject.name = 'mymod'\n"

	once := InsertUniqueLine(content, "include(\"fabric\")", "include(", "rootProject.name")
	twice := InsertUniqueLine(once, "include(\"fabric\")", "include(", "rootProject.name")
	assert.Equal(t, once, twice)
}

// Insertion order is preserved, not sorted.
func TestInsertUniqueLine_OrderPreserved(t *testing.T) {
	content := "include(\"common\")\nrootProject.name = 'mymod'\n"

	ab := InsertUniqueLine(content, "include(\"a\")", "include(", "rootProject.name")
	ab = InsertUniqueLine(ab, "include(\"b\")", "include(", "rootProject.name")
	assert.Equal(t, "include(\"common\")\ninclude(\"a\")\ninclude(\"b\")\nrootProject.name = 'mymod'\n", ab)

	ba := InsertUniqueLine(content, "include(\"b\")", "include(", "rootProject.name")
	ba = InsertUniqueLine(ba, "include(\"a\")", "include(", "rootProject.name")
	assert.Equal(t, "include(\"common\")\ninclude(\"b\")\ninclude(\"a\")\nrootProject.name = 'mymod'\n", ba)
}

func TestInsertUniqueLine_NoTrailingNewline(t *testing.T) {
	content := "include(\"common\")\nrootProject.name = 'mymod'"

	got := InsertUniqueLine(content, "include(\"fabric\")", "include(", "rootProject.name")
	assert.Equal(t, "include(\"common\")\ninclude(\"fabric\")\nrootProject.name = 'mymod'", got)
}

func TestUpsertKey_ReplacesFirstMatchOnly(t *testing.T) {
	content := "a=1\nmod_language=java\nb=2\n"

	got := UpsertKey(content, "mod_language", "kotlin")
	assert.Equal(t, "a=1\nmod_language=kotlin\nb=2\n", got)
}

func TestUpsertKey_ReplacesCommentedVariant(t *testing.T) {
	content := "a=1\n# kotlin_version=1.9.0\nb=2\n"

	got := UpsertKey(content, "kotlin_version", "2.1.0")
	assert.Equal(t, "a=1\nkotlin_version=2.1.0\nb=2\n", got)
}

func TestUpsertKey_AppendsWhenAbsent(t *testing.T) {
	content := "a=1\nb=2\n"

	got := UpsertKey(content, "mod_language", "kotlin")
	assert.Equal(t, "a=1\nb=2\nmod_language=kotlin\n", got)
}

func TestUpsertKey_PreservesOtherKeysAndOrder(t *testing.T) {
	content := "z=26\na=1\nmod_language=java\nm=13\n"

	got := UpsertKey(content, "mod_language", "kotlin")
	assert.Equal(t, "z=26\na=1\nmod_language=kotlin\nm=13\n", got)
}

func TestUpsertKey_NoTrailingNewline(t *testing.T) {
	content := "a=1"

	got := UpsertKey(content, "b", "2")
	assert.Equal(t, "a=1\nb=2", got)
}

func TestUpsertListKey_AddsToken(t *testing.T) {
	content := "enabled_platforms=fabric\nother=1\n"

	got := UpsertListKey(content, "enabled_platforms", "neoforge")
	assert.Equal(t, "enabled_platforms=fabric,neoforge\nother=1\n", got)
}

func TestUpsertListKey_TokenAlreadyPresent(t *testing.T) {
	content := "enabled_platforms=neoforge,fabric\n"

	got := UpsertListKey(content, "enabled_platforms", "fabric")
	assert.Equal(t, content, got)
}

func TestUpsertListKey_PreservesTokenOrder(t *testing.T) {
	content := "enabled_platforms=neoforge\n"

	got := UpsertListKey(content, "enabled_platforms", "fabric")
	assert.Equal(t, "enabled_platforms=neoforge,fabric\n", got)
}

func TestUpsertListKey_EmptyValue(t *testing.T) {
	content := "enabled_platforms=\n"

	got := UpsertListKey(content, "enabled_platforms", "fabric")
	assert.Equal(t, "enabled_platforms=fabric\n", got)
}

func TestUpsertListKey_MissingKeyAppends(t *testing.T) {
	content := "other=1\n"

	got := UpsertListKey(content, "enabled_platforms", "fabric")
	assert.Equal(t, "other=1\nenabled_platforms=fabric\n", got)
}

func TestEmptyContent(t *testing.T) {
	assert.Equal(t, "key=value", UpsertKey("", "key", "value"))
	assert.Equal(t, "line", InsertUniqueLine("", "line", "", ""))
}
