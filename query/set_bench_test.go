package query

import (
	"fmt"
	"testing"
)

func BenchmarkPatternMatch(b *testing.B) {
	p := CompilePattern("admin.*.edit")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Match("admin.users.edit")
	}
}

func BenchmarkSetMatches(b *testing.B) {
	s := NewSet[record]()
	s.Put("prefix", nameHasPrefix("admin."))
	s.Put("tag", hasTag("auth"))
	s.Branch().Put("tag", hasTag("public"))

	r := record{name: "admin.users", tags: []string{"auth"}}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Matches(r)
	}
}

func BenchmarkFilter(b *testing.B) {
	records := make([]record, 1000)
	for i := range records {
		records[i] = record{name: fmt.Sprintf("admin.resource%d", i), tags: []string{"auth"}}
	}
	s := NewSet[record]()
	s.Put("prefix", nameHasPrefix("admin."))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Filter(records, s)
	}
}
