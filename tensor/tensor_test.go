package tensor

import "testing"

func TestNewShape(t *testing.T) {
	t1 := New(2, 3)
	if len(t1.Data) != 6 {
		t.Fatalf("expected 6 elements, got %d", len(t1.Data))
	}
	if len(t1.Shape) != 2 || t1.Shape[0] != 2 || t1.Shape[1] != 3 {
		t.Fatalf("unexpected shape: %v", t1.Shape)
	}
}

func TestAtSet(t *testing.T) {
	t1 := New(2, 3)
	t1.Set(7, 1, 2)
	if got := t1.At(1, 2); got != 7 {
		t.Fatalf("got %f, want 7", got)
	}
	if t1.Data[5] != 7 {
		t.Fatalf("expected row-major layout, data: %v", t1.Data)
	}
}

func TestReshape(t *testing.T) {
	t1 := NewWithData([]float64{1, 2, 3, 4, 5, 6})
	t2, err := t1.Reshape(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if t2.At(1, 0) != 4 {
		t.Fatalf("got %f, want 4", t2.At(1, 0))
	}
	// shares backing data
	t1.Data[3] = 9
	if t2.At(1, 0) != 9 {
		t.Fatalf("reshape should share data, got %f", t2.At(1, 0))
	}
	if _, err := t1.Reshape(4, 2); err == nil {
		t.Fatal("expected error for mismatched element count")
	}
}

func TestClone(t *testing.T) {
	t1 := NewWithData([]float64{1, 2, 3})
	t2 := t1.Clone()
	t2.Data[0] = 5
	if t1.Data[0] != 1 {
		t.Fatalf("clone must not alias, got %f", t1.Data[0])
	}
}
