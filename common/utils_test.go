package common

import "testing"

func TestSliceToBytesLength(t *testing.T) {
	data := []float32{1, 2, 3}
	b := SliceToBytes(data)
	if len(b) != 12 {
		t.Fatalf("length: got %d want 12", len(b))
	}
	if SliceToBytes([]float32(nil)) != nil {
		t.Fatalf("empty slice should yield nil")
	}
}

func TestSliceToBytesSharesMemory(t *testing.T) {
	data := []uint32{0}
	b := SliceToBytes(data)
	data[0] = 0xFFFFFFFF
	if b[0] != 0xFF {
		t.Fatalf("byte view does not alias the source slice")
	}
}

func TestStructToBytesLength(t *testing.T) {
	type vec struct{ X, Y, Z, W float32 }
	v := vec{}
	if got := len(StructToBytes(&v)); got != 16 {
		t.Fatalf("length: got %d want 16", got)
	}
}
