package answers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathcheck/internal/catalog"
)

func TestAnswer_Accessors(t *testing.T) {
	n := Number(7)
	assert.True(t, n.IsNumber())
	v, ok := n.Float()
	assert.True(t, ok)
	assert.Equal(t, 7.0, v)
	_, ok = n.Text()
	assert.False(t, ok)
	assert.Equal(t, "7", n.String())

	s := Text("Agree")
	assert.False(t, s.IsNumber())
	txt, ok := s.Text()
	assert.True(t, ok)
	assert.Equal(t, "Agree", txt)
	_, ok = s.Float()
	assert.False(t, ok)

	assert.Equal(t, "7.5", Number(7.5).String())
	assert.False(t, Text("7").Equal(Number(7)))
}

func TestAnswer_JSON(t *testing.T) {
	tests := []struct {
		in   string
		want Answer
	}{
		{`"Agree"`, Text("Agree")},
		{`8`, Number(8)},
		{`-1.5`, Number(-1.5)},
		{`"8"`, Text("8")},
	}
	for _, tt := range tests {
		var got Answer
		require.NoError(t, json.Unmarshal([]byte(tt.in), &got), tt.in)
		assert.Equal(t, tt.want, got, tt.in)

		out, err := json.Marshal(got)
		require.NoError(t, err)
		assert.JSONEq(t, tt.in, string(out))
	}

	for _, bad := range []string{`true`, `null`, `{}`, `[1]`} {
		var a Answer
		assert.Error(t, json.Unmarshal([]byte(bad), &a), bad)
	}
}

func TestSets_PutGetOverwrite(t *testing.T) {
	var s Sets
	s.Put(catalog.SectionTechnical, "balance-sheet", Text("Revenue and expenses"))
	s.Put(catalog.SectionTechnical, "balance-sheet", Text("Financial position at a point in time"))
	s.Put("bogus", "x", Number(1))

	a, ok := s.Get(catalog.SectionTechnical, "balance-sheet")
	require.True(t, ok)
	assert.Equal(t, Text("Financial position at a point in time"), a)
	assert.Equal(t, 1, s.Len())
	assert.Nil(t, s.Section("bogus"))
}

func TestSets_CloneIsDeep(t *testing.T) {
	var s Sets
	s.Put(catalog.SectionWISCAR, "will-motivation", Number(9))
	c := s.Clone()
	c.Put(catalog.SectionWISCAR, "will-motivation", Number(1))

	a, _ := s.Get(catalog.SectionWISCAR, "will-motivation")
	assert.Equal(t, Number(9), a)
}

func TestSets_Unknown(t *testing.T) {
	var s Sets
	s.Put(catalog.SectionPsychometric, "growth-mindset", Text("Agree"))
	s.Put(catalog.SectionPsychometric, "balance-sheet", Text("x"))
	s.Put(catalog.SectionWISCAR, "made-up", Number(3))

	assert.Equal(t, []string{"psychometric/balance-sheet", "wiscar/made-up"}, s.Unknown())
}

func TestSet_IDsSorted(t *testing.T) {
	s := Set{"c": Number(1), "a": Number(2), "b": Text("x")}
	assert.Equal(t, []string{"a", "b", "c"}, s.IDs())
	assert.Empty(t, Set(nil).IDs())
}
