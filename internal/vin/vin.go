// Package vin giải mã Vehicle Identification Number (VIN) thành thông số xe.
// Decoder mặc định chạy offline, deterministic: năm sản xuất từ ký tự vị trí 10,
// hãng xe từ bảng WMI (3 ký tự đầu). Tra cứu NHTSA thật cắm qua interface Decoder.
package vin

import (
	"context"
	"strings"

	"github.com/Whointhefkisthatguy/trade-up/internal/common"
)

// Specs chứa thông số xe giải mã được từ VIN.
type Specs struct {
	Vin             string `json:"vin" bson:"vin"`
	Year            int    `json:"year" bson:"year"`
	Make            string `json:"make,omitempty" bson:"make,omitempty"`
	Model           string `json:"model,omitempty" bson:"model,omitempty"`
	Trim            string `json:"trim,omitempty" bson:"trim,omitempty"`
	BodyClass       string `json:"bodyClass,omitempty" bson:"bodyClass,omitempty"`
	DriveType       string `json:"driveType,omitempty" bson:"driveType,omitempty"`
	EngineCylinders int    `json:"engineCylinders,omitempty" bson:"engineCylinders,omitempty"`
	FuelType        string `json:"fuelType,omitempty" bson:"fuelType,omitempty"`
	Transmission    string `json:"transmission,omitempty" bson:"transmission,omitempty"`
	Doors           int    `json:"doors,omitempty" bson:"doors,omitempty"`
	PlantCountry    string `json:"plantCountry,omitempty" bson:"plantCountry,omitempty"`
}

// Decoder giải mã VIN thành Specs. Cài đặt thật (NHTSA vPIC...) cắm qua interface này.
type Decoder interface {
	Decode(ctx context.Context, vin string) (*Specs, error)
}

// yearCodes map ký tự vị trí 10 của VIN sang năm sản xuất (chuẩn VIN).
var yearCodes = map[byte]int{
	'A': 2010, 'B': 2011, 'C': 2012, 'D': 2013, 'E': 2014,
	'F': 2015, 'G': 2016, 'H': 2017, 'J': 2018, 'K': 2019,
	'L': 2020, 'M': 2021, 'N': 2022, 'P': 2023, 'R': 2024,
	'S': 2025, 'T': 2026, 'V': 2027, 'W': 2028, 'X': 2029,
	'Y': 2030,
	'1': 2031, '2': 2032, '3': 2033, '4': 2034, '5': 2035,
	'6': 2036, '7': 2037, '8': 2038, '9': 2039,
}

// wmiMakes map World Manufacturer Identifier (3 ký tự đầu VIN) sang hãng xe.
var wmiMakes = map[string]string{
	"1HG": "Honda", "2HG": "Honda", "JHM": "Honda",
	"1FA": "Ford", "1FT": "Ford", "3FA": "Ford",
	"1G1": "Chevrolet", "1GC": "Chevrolet", "2G1": "Chevrolet",
	"1C4": "Jeep", "1C6": "Ram",
	"2T1": "Toyota", "4T1": "Toyota", "5TD": "Toyota", "JTD": "Toyota",
	"1N4": "Nissan", "JN1": "Nissan",
	"5NP": "Hyundai", "KMH": "Hyundai",
	"KNA": "Kia", "KND": "Kia",
	"WBA": "BMW", "WBS": "BMW",
	"WDB": "Mercedes-Benz", "WDD": "Mercedes-Benz",
	"WAU": "Audi", "WVW": "Volkswagen",
	"5YJ": "Tesla", "7SA": "Tesla",
	"JM1": "Mazda", "4S3": "Subaru", "JF1": "Subaru",
}

// DefaultYear dùng khi ký tự năm không nằm trong bảng chuẩn.
const DefaultYear = 2020

// ModelYear trả về năm sản xuất từ ký tự vị trí 10 của VIN (0-indexed: 9).
// VIN không hợp lệ hoặc ký tự lạ trả về DefaultYear.
func ModelYear(vin string) int {
	if len(vin) < 10 {
		return DefaultYear
	}
	code := strings.ToUpper(vin)[9]
	if year, ok := yearCodes[code]; ok {
		return year
	}
	return DefaultYear
}

// OfflineDecoder giải mã VIN offline, không gọi API ngoài.
// Cùng một VIN luôn cho cùng một kết quả.
type OfflineDecoder struct{}

// NewOfflineDecoder tạo OfflineDecoder mới.
func NewOfflineDecoder() *OfflineDecoder {
	return &OfflineDecoder{}
}

// Decode giải mã VIN thành Specs. VIN sai định dạng trả về lỗi.
func (d *OfflineDecoder) Decode(ctx context.Context, vinStr string) (*Specs, error) {
	if !IsValid(vinStr) {
		return nil, common.ErrInvalidVin
	}
	upper := strings.ToUpper(vinStr)
	specs := &Specs{
		Vin:  upper,
		Year: ModelYear(upper),
	}
	if make, ok := wmiMakes[upper[:3]]; ok {
		specs.Make = make
	}
	// Ký tự đầu WMI cho biết nước sản xuất
	switch upper[0] {
	case '1', '4', '5', '7':
		specs.PlantCountry = "United States"
	case '2':
		specs.PlantCountry = "Canada"
	case '3':
		specs.PlantCountry = "Mexico"
	case 'J':
		specs.PlantCountry = "Japan"
	case 'K':
		specs.PlantCountry = "South Korea"
	case 'W':
		specs.PlantCountry = "Germany"
	}
	return specs, nil
}

// IsValid kiểm tra định dạng VIN: đúng 17 ký tự alphanumeric, không chứa I/O/Q.
func IsValid(vin string) bool {
	if len(vin) != 17 {
		return false
	}
	for _, ch := range strings.ToUpper(vin) {
		switch {
		case ch >= '0' && ch <= '9':
		case ch >= 'A' && ch <= 'Z':
			if ch == 'I' || ch == 'O' || ch == 'Q' {
				return false
			}
		default:
			return false
		}
	}
	return true
}
