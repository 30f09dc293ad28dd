package util

import (
	"testing"
)

func TestIfThenElse(t *testing.T) {
	if IfThenElse(true, 1, 2) != 1 {
		t.Error("IfThenElse(true, 1, 2) should be 1")
	}
	if IfThenElse(false, "a", "b") != "b" {
		t.Error("IfThenElse(false, 'a', 'b') should be 'b'")
	}
}

func TestMakeMatrix3D(t *testing.T) {
	m := MakeMatrix3D[float32](2, 3, 4)
	if len(m) != 2 {
		t.Errorf("Expected 2 depth, got %d", len(m))
	}
	for i := range m {
		if len(m[i]) != 3 {
			t.Errorf("Depth %d: expected 3 rows, got %d", i, len(m[i]))
		}
		for j := range m[i] {
			if len(m[i][j]) != 4 {
				t.Errorf("Depth %d, row %d: expected 4 columns, got %d", i, j, len(m[i][j]))
			}
		}
	}
}

func TestMatrixView(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	m := NewMatrixView(2, 3, data)
	if m.Get(1, 2) != 6 {
		t.Errorf("Get(1,2) = %f, want 6", m.Get(1, 2))
	}
	m.Set(0, 1, 20)
	if data[1] != 20 {
		t.Errorf("view did not write through, got %f", data[1])
	}
	if len(m.Data) != 6 {
		t.Errorf("view should be trimmed to 6 values, got %d", len(m.Data))
	}
}

func TestMatrixSetRow(t *testing.T) {
	m := New2DMatrix[int32](2, 2)
	m.SetRow(1, []int32{9, 8})
	if m.Get(1, 0) != 9 || m.Get(1, 1) != 8 || m.Get(0, 0) != 0 {
		t.Errorf("SetRow failed: %v", m.Data)
	}
}
