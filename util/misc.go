package util

func IfThenElse[T any](condition bool, a T, b T) T {
	if condition {
		return a
	}
	return b
}

func MakeMatrix3D[T any](a int, b int, c int) [][][]T {
	matrix := make([][][]T, a)
	for i := range matrix {
		matrix[i] = make([][]T, b)
		for j := range matrix[i] {
			matrix[i][j] = make([]T, c)
		}
	}
	return matrix
}
