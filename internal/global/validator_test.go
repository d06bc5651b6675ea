// Package global - Test custom validator "vin".
package global

import "testing"

func TestValidateVin(t *testing.T) {
	InitValidator()

	cases := []struct {
		name  string
		vin   string
		valid bool
	}{
		{"vin hợp lệ", "1HGCM82633A004352", true},
		{"vin hợp lệ chữ thường", "1hgcm82633a004352", true},
		{"thiếu ký tự", "1HGCM82633A00435", false},
		{"thừa ký tự", "1HGCM82633A0043521", false},
		{"chứa I", "IHGCM82633A004352", false},
		{"chứa O", "1HGCM82633A0O4352", false},
		{"chứa Q", "1HGCM82633A004Q52", false},
		{"ký tự đặc biệt", "1HGCM82633A00435-", false},
		{"rỗng = optional", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate.Var(tc.vin, "vin")
			if tc.valid && err != nil {
				t.Errorf("VIN %q phải hợp lệ, nhận lỗi: %v", tc.vin, err)
			}
			if !tc.valid && err == nil {
				t.Errorf("VIN %q phải bị từ chối", tc.vin)
			}
		})
	}
}
