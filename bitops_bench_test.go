package bitops_test

import (
	"testing"

	bitops "github.com/ThenTech/Bit-Operations"
	"github.com/ThenTech/Bit-Operations/testutil"
)

var (
	sinkUint64 uint64
	sinkInt    int
	sinkString string
)

func BenchmarkReverse(b *testing.B) {
	v := testutil.NewRNG(4711).Uint64()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkUint64 = bitops.Reverse(v)
	}
}

func BenchmarkRotateLeft(b *testing.B) {
	v := testutil.NewRNG(4711).Uint64()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkUint64 = bitops.RotateLeft(v, 17)
	}
}

func BenchmarkCount1(b *testing.B) {
	v := testutil.NewRNG(4711).Uint64()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkInt = bitops.Count1(v)
	}
}

func BenchmarkToStringBinMSB(b *testing.B) {
	v := testutil.NewRNG(4711).Uint64()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkString = bitops.ToStringBinMSB(v)
	}
}

func BenchmarkFromStringMSB(b *testing.B) {
	s := bitops.ToStringBinMSB(testutil.NewRNG(4711).Uint64())

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkUint64 = bitops.FromStringMSB[uint64](s)
	}
}
