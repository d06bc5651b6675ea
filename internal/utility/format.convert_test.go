package utility

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các handler dùng trực tiếp giá trị trả về của String2ObjectID,
// chuỗi không hợp lệ phải cho NilObjectID chứ không được panic.
func TestString2ObjectID(t *testing.T) {
	valid := primitive.NewObjectID()
	got := String2ObjectID(valid.Hex())
	if got != valid {
		t.Errorf("String2ObjectID(%q) = %s, muốn %s", valid.Hex(), got.Hex(), valid.Hex())
	}

	for _, bad := range []string{"", "abc", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		if got := String2ObjectID(bad); got != primitive.NilObjectID {
			t.Errorf("String2ObjectID(%q) = %s, muốn NilObjectID", bad, got.Hex())
		}
	}
}

func TestRoundTo(t *testing.T) {
	cases := []struct {
		value  float64
		places int
		want   float64
	}{
		{2.5, 0, 3},
		{1.25, 1, 1.3},
		{-1.25, 1, -1.3},
		{123.456, 2, 123.46},
		{100, 2, 100},
	}
	for _, c := range cases {
		if got := RoundTo(c.value, c.places); got != c.want {
			t.Errorf("RoundTo(%v, %d) = %v, muốn %v", c.value, c.places, got, c.want)
		}
	}
}
