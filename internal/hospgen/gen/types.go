// Package gen contains the entity generators: Patients, Admissions, Labs,
// Diagnostics, Medications and the derived Occupancy and Revenue tables.
// Rows are immutable once generated; cross-entity references (patient_id,
// admission_id) are always drawn from an already generated parent.
package gen

import "time"

// DateLayout is the calendar-date encoding used in every row.
const DateLayout = "2006-01-02"

type Patient struct {
	PatientID string `csv:"patient_id" json:"patient_id" parquet:"patient_id"`
	Name      string `csv:"name" json:"name" parquet:"name"`
	Gender    string `csv:"gender" json:"gender" parquet:"gender"`
	DOB       string `csv:"dob" json:"dob" parquet:"dob"`
	City      string `csv:"city" json:"city" parquet:"city"`
	CNIC      string `csv:"cnic" json:"cnic" parquet:"cnic"`
	Phone     string `csv:"phone" json:"phone" parquet:"phone"`
	Email     string `csv:"email" json:"email" parquet:"email"`
	Panel     bool   `csv:"panel" json:"panel" parquet:"panel"`
	PanelName string `csv:"panel_name" json:"panel_name,omitempty" parquet:"panel_name,optional"`
}

type Admission struct {
	AdmissionID   string `csv:"admission_id" json:"admission_id" parquet:"admission_id"`
	PatientID     string `csv:"patient_id" json:"patient_id" parquet:"patient_id"`
	AdmitDate     string `csv:"admit_dt" json:"admit_dt" parquet:"admit_dt"`
	DischargeDate string `csv:"discharge_dt" json:"discharge_dt" parquet:"discharge_dt"`
	Department    string `csv:"department" json:"department" parquet:"department"`
	WardType      string `csv:"ward_type" json:"ward_type,omitempty" parquet:"ward_type,optional"`
	Outcome       string `csv:"outcome" json:"outcome" parquet:"outcome"`
}

type Lab struct {
	LabID       string  `csv:"lab_id" json:"lab_id" parquet:"lab_id"`
	AdmissionID string  `csv:"admission_id" json:"admission_id" parquet:"admission_id"`
	PatientID   string  `csv:"patient_id" json:"patient_id" parquet:"patient_id"`
	TestName    string  `csv:"test_name" json:"test_name" parquet:"test_name"`
	OrderedDate string  `csv:"ordered_dt" json:"ordered_dt" parquet:"ordered_dt"`
	ResultValue float64 `csv:"result_value" json:"result_value" parquet:"result_value"`
	Unit        string  `csv:"unit" json:"unit" parquet:"unit"`
	PricePKR    int     `csv:"price_pkr" json:"price_pkr" parquet:"price_pkr"`
}

type Diagnostic struct {
	DiagnosticID  string `csv:"diagnostic_id" json:"diagnostic_id" parquet:"diagnostic_id"`
	AdmissionID   string `csv:"admission_id" json:"admission_id" parquet:"admission_id"`
	PatientID     string `csv:"patient_id" json:"patient_id" parquet:"patient_id"`
	Modality      string `csv:"modality" json:"modality" parquet:"modality"`
	PerformedDate string `csv:"performed_dt" json:"performed_dt" parquet:"performed_dt"`
	PricePKR      int    `csv:"price_pkr" json:"price_pkr" parquet:"price_pkr"`
}

type MedicationOrder struct {
	MedID         string `csv:"med_id" json:"med_id" parquet:"med_id"`
	AdmissionID   string `csv:"admission_id" json:"admission_id" parquet:"admission_id"`
	PatientID     string `csv:"patient_id" json:"patient_id" parquet:"patient_id"`
	DrugName      string `csv:"drug_name" json:"drug_name" parquet:"drug_name"`
	Quantity      int    `csv:"qty" json:"qty" parquet:"qty"`
	UnitPricePKR  int    `csv:"unit_price_pkr" json:"unit_price_pkr" parquet:"unit_price_pkr"`
	TotalPricePKR int    `csv:"total_price_pkr" json:"total_price_pkr" parquet:"total_price_pkr"`
}

type Occupancy struct {
	Date         string `csv:"date" json:"date" parquet:"date"`
	Department   string `csv:"department" json:"department" parquet:"department"`
	WardType     string `csv:"ward_type" json:"ward_type" parquet:"ward_type"`
	BedsOccupied int    `csv:"beds_occupied" json:"beds_occupied" parquet:"beds_occupied"`
}

type Revenue struct {
	AdmissionID    string `csv:"admission_id" json:"admission_id" parquet:"admission_id"`
	PatientID      string `csv:"patient_id" json:"patient_id" parquet:"patient_id"`
	WardType       string `csv:"ward_type" json:"ward_type" parquet:"ward_type"`
	LOSDays        int    `csv:"los_days" json:"los_days" parquet:"los_days"`
	RoomRevPKR     int    `csv:"room_rev_pkr" json:"room_rev_pkr" parquet:"room_rev_pkr"`
	LabRevPKR      int    `csv:"lab_rev_pkr" json:"lab_rev_pkr" parquet:"lab_rev_pkr"`
	DiagRevPKR     int    `csv:"diag_rev_pkr" json:"diag_rev_pkr" parquet:"diag_rev_pkr"`
	PharmacyRevPKR int    `csv:"pharmacy_rev_pkr" json:"pharmacy_rev_pkr" parquet:"pharmacy_rev_pkr"`
	TotalRevPKR    int    `csv:"total_rev_pkr" json:"total_rev_pkr" parquet:"total_rev_pkr"`
}

// mustDate parses a date string produced by this package. Rows never carry
// anything but DateLayout, so a parse failure is a programming error.
func mustDate(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic("gen: malformed date " + s)
	}
	return t
}
