package store

import "testing"

func BenchmarkDualStackPush(b *testing.B) {
	d := NewDualStack(DefaultCapacity)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d.Push(Side(i&1), 'x')
	}
}

func BenchmarkSplitPush(b *testing.B) {
	s := NewSplit(DefaultCapacity)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Push(Side(i&1), 'x')
	}
}

func BenchmarkDualStackShuttle(b *testing.B) {
	d := NewDualStack(DefaultCapacity)
	for i := 0; i < 4096; i++ {
		d.Push(Left, 'x')
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		from := Left
		if (i/4096)&1 == 1 {
			from = Right
		}
		ch, err := d.Pop(from)
		if err != nil {
			b.Fatal(err)
		}
		d.Push(from.Opposite(), ch)
	}
}

func BenchmarkDualStackRun(b *testing.B) {
	d := NewDualStack(DefaultCapacity)
	for i := 0; i < 4096; i++ {
		d.Push(Left, 'x')
		d.Push(Right, 'y')
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.Run(Left, 4096, true, false)
	}
}
