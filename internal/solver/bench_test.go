package solver

import (
	"context"
	"testing"

	"github.com/gridworks/kropki/pkg/kropki/constraint"
)

func BenchmarkSearchClassic(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s, err := New(WithConstraints(constraint.ClassicGroups()...))
		if err != nil {
			b.Fatal(err)
		}
		if err := s.LoadGivens(classicPuzzle); err != nil {
			b.Fatal(err)
		}
		found, err := s.Search(context.Background())
		if err != nil || !found {
			b.Fatalf("found=%v err=%v", found, err)
		}
	}
}

func BenchmarkPropagateGivens(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s, err := New(WithConstraints(constraint.ClassicGroups()...))
		if err != nil {
			b.Fatal(err)
		}
		if err := s.LoadGivens(classicPuzzle); err != nil {
			b.Fatal(err)
		}
	}
}
