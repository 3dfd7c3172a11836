// Package catalog holds the static reference tables the generators draw
// from: cities, departments, ward rates, insurer panels, surname weights and
// the priced lab/diagnostic/medication catalogs. The data is versionable and
// decoupled from the sampling logic that consumes it; an optional YAML file
// can override any table (see Load).
package catalog

import "github.com/amc-dataeng/hospgen/internal/hospgen/sampler"

// Medication is a drug with its per-unit price in PKR.
type Medication struct {
	Name      string
	UnitPrice int
}

// Catalog bundles every reference table for one generation run.
type Catalog struct {
	Cities      []string
	Departments []string

	// Reduced tables used by live ticks.
	LiveCities      []string
	LiveDepartments []string

	// Ward admission weights and daily room rates (PKR).
	WardTypes       []sampler.Weighted[string]
	WardRates       map[string]int
	DefaultWardRate int

	Panels   []string
	Surnames []sampler.Weighted[string]

	LabTests       []sampler.Weighted[string]
	LabRates       map[string]int
	DefaultLabRate int

	Diagnostics           []sampler.Weighted[string]
	DiagnosticRates       map[string]int
	DefaultDiagnosticRate int

	Medications []Medication
}

// Outcomes are the possible admission outcomes.
var Outcomes = []string{"Discharged", "Referred", "Expired"}

// Default returns the built-in reference tables for the fictitious
// Rawalpindi hospital.
func Default() *Catalog {
	return &Catalog{
		Cities:          pkCities,
		Departments:     pkDepartments,
		LiveCities:      pkCities[:12],
		LiveDepartments: liveDepartments,
		WardTypes: []sampler.Weighted[string]{
			{Item: "General", Weight: 40},
			{Item: "Semi-private", Weight: 25},
			{Item: "Private", Weight: 20},
			{Item: "Executive", Weight: 5},
			{Item: "ICU", Weight: 10},
		},
		WardRates: map[string]int{
			"General":      4500,
			"Semi-private": 6000,
			"Private":      7500,
			"Executive":    10000,
			"ICU":          18000,
		},
		DefaultWardRate: 4500,
		Panels: []string{
			"IGI Life", "TPL Life", "EFU Allianz", "State Life", "Adabjee",
			"Abbott", "Qatar Takaful", "Government Org",
		},
		Surnames: []sampler.Weighted[string]{
			{Item: "Raja", Weight: 30},
			{Item: "Satti", Weight: 20},
			{Item: "Abbasi", Weight: 15},
			{Item: "Khan", Weight: 10},
			{Item: "Bhatti", Weight: 10},
			{Item: "Mughal", Weight: 10},
			{Item: "Sardar", Weight: 5},
		},
		LabTests:              labTests,
		LabRates:              labRates,
		DefaultLabRate:        800,
		Diagnostics:           diagnostics,
		DiagnosticRates:       diagnosticRates,
		DefaultDiagnosticRate: 1500,
		Medications:           medications,
	}
}

var pkCities = []string{
	"Karachi", "Lahore", "Islamabad", "Rawalpindi", "Faisalabad", "Multan",
	"Peshawar", "Quetta", "Sialkot", "Hyderabad", "Gujranwala", "Sukkur",
	"Bahawalpur", "Mardan", "Abbottabad", "Jhelum", "Murree", "Sahiwal",
	"Okara", "Sheikhupura", "Rahim Yar Khan", "Gujrat", "Kasur", "Mianwali",
	"Sargodha", "Chiniot", "Kot Addu", "Hafizabad", "Kohat", "Jacobabad",
	"Shikarpur", "Muzaffargarh", "Khanpur", "Hala", "Kandhkot", "Bhakkar",
	"Zhob", "Dera Ismail Khan", "Pakpattan", "Tando Allahyar", "Ahmadpur East",
	"Kamalia", "Khuzdar", "Vihari", "New Mirpur", "Dadu", "Gojra",
	"Mandi Bahauddin", "Hassan Abdal", "Muzaffarabad", "Eminabad", "Nankana Sahib",
	"Larkana", "Chakwal", "Toba Tek Singh", "Khanewal", "Attock",
	"Arifwala", "Shahkot", "Mian Channu", "Layyah", "Chishtian", "Hasilpur",
	"Ahmadpur Sial", "Burewala", "Jalalpur Jattan", "Haroonabad", "Kahror Pakka",
	"Tandlianwala", "Dera Ghazi Khan", "Shujaabad", "Kabirwala", "Mansehra",
	"Nowshera", "Charsadda", "Qila Abdullah", "Swabi", "Tank", "Dera Bugti",
	"Kohlu", "Mastung", "Kalat", "Nushki", "Panjgur", "Turbat", "Gwadar",
	"Pasni", "Ormara", "Jiwani", "Kech", "Awaran", "Kharan", "Washuk",
	"Lasbela", "Killa Saifullah", "Sherani", "Barkhan", "Musakhel",
	"Killa Abdullah", "Pishin",
}

var pkDepartments = []string{
	"Internal Medicine", "General Surgery", "Pediatrics", "ICU", "Cardiology",
	"Orthopedics & Trauma", "Gynecology & Obstetrics", "ENT", "Neurology",
	"Dermatology", "Ophthalmology", "Urology", "Nephrology", "Gastroenterology",
	"Pulmonology", "Endocrinology", "Hematology", "Oncology", "Psychiatry",
	"Radiology", "Pathology", "Anesthesiology", "Emergency Medicine", "Plastic Surgery",
	"Neurosurgery", "Cardiothoracic Surgery", "Vascular Surgery", "Pediatric Surgery",
	"Maxillofacial Surgery", "Burn Unit", "NICU", "PICU", "CCU", "HDU",
	"Dialysis Unit", "Chemotherapy Unit", "Radiotherapy Unit", "Blood Bank",
	"Pharmacy", "Physiotherapy", "Occupational Therapy", "Speech Therapy",
	"Nutrition & Dietetics", "Social Services", "Medical Records", "Quality Assurance",
}

var liveDepartments = []string{
	"Medicine", "Surgery", "Pediatrics", "ICU", "Cardiology", "Orthopedics",
	"Gynecology", "ENT", "Neurology",
}

var labTests = []sampler.Weighted[string]{
	// Basic tests (high frequency)
	{Item: "CBC", Weight: 0.15}, {Item: "LFT", Weight: 0.08}, {Item: "KFT", Weight: 0.08},
	{Item: "CRP", Weight: 0.06}, {Item: "Glucose Fasting", Weight: 0.05},
	{Item: "HbA1c", Weight: 0.04}, {Item: "Lipid Profile", Weight: 0.04},
	{Item: "Urine R/E", Weight: 0.05}, {Item: "Thyroid Profile", Weight: 0.04},
	{Item: "D-Dimer", Weight: 0.03}, {Item: "PT/INR", Weight: 0.03},
	{Item: "COVID PCR", Weight: 0.02}, {Item: "Malaria ICT", Weight: 0.02},
	// Extended lab tests
	{Item: "ESR", Weight: 0.03}, {Item: "Blood Group", Weight: 0.02},
	{Item: "Hepatitis B Surface Ag", Weight: 0.02}, {Item: "Hepatitis C Antibody", Weight: 0.02},
	{Item: "HIV Screening", Weight: 0.01}, {Item: "VDRL", Weight: 0.01},
	{Item: "Stool R/E", Weight: 0.02}, {Item: "Sputum AFB", Weight: 0.01},
	{Item: "Blood Culture", Weight: 0.02}, {Item: "Urine Culture", Weight: 0.02},
	{Item: "Widal Test", Weight: 0.01}, {Item: "Dengue NS1", Weight: 0.01},
	{Item: "Dengue IgG/IgM", Weight: 0.01}, {Item: "Chikungunya", Weight: 0.01},
	{Item: "Troponin I", Weight: 0.02}, {Item: "CK-MB", Weight: 0.02},
	{Item: "BNP", Weight: 0.01}, {Item: "Ferritin", Weight: 0.02},
	{Item: "Vitamin B12", Weight: 0.02}, {Item: "Vitamin D", Weight: 0.02},
	{Item: "PSA", Weight: 0.01}, {Item: "CA-125", Weight: 0.01},
	{Item: "CEA", Weight: 0.01}, {Item: "AFP", Weight: 0.01},
	{Item: "Hb Electrophoresis", Weight: 0.01}, {Item: "G6PD", Weight: 0.01},
	{Item: "Coomb's Test", Weight: 0.01}, {Item: "Cross Match", Weight: 0.01},
	{Item: "Bone Marrow Aspiration", Weight: 0.005}, {Item: "Lumbar Puncture", Weight: 0.005},
	{Item: "Pleural Fluid Analysis", Weight: 0.005}, {Item: "Ascitic Fluid Analysis", Weight: 0.005},
	{Item: "CSF Analysis", Weight: 0.005}, {Item: "Synovial Fluid Analysis", Weight: 0.005},
}

var labRates = map[string]int{
	"CBC": 600, "LFT": 1200, "KFT": 1200, "CRP": 900, "Glucose Fasting": 350,
	"HbA1c": 1400, "Lipid Profile": 1800, "Urine R/E": 500, "Thyroid Profile": 2200,
	"D-Dimer": 2500, "PT/INR": 1000, "COVID PCR": 2500, "Malaria ICT": 700,
	"ESR": 400, "Blood Group": 300, "Hepatitis B Surface Ag": 800, "Hepatitis C Antibody": 800,
	"HIV Screening": 1200, "VDRL": 600, "Stool R/E": 400, "Sputum AFB": 500,
	"Blood Culture": 1500, "Urine Culture": 1000, "Widal Test": 600, "Dengue NS1": 1200,
	"Dengue IgG/IgM": 1000, "Chikungunya": 1000, "Troponin I": 2000, "CK-MB": 1500,
	"BNP": 3000, "Ferritin": 1000, "Vitamin B12": 1200, "Vitamin D": 1500,
	"PSA": 1000, "CA-125": 2000, "CEA": 1500, "AFP": 1500,
	"Hb Electrophoresis": 2000, "G6PD": 800, "Coomb's Test": 1000, "Cross Match": 800,
	"Bone Marrow Aspiration": 5000, "Lumbar Puncture": 3000, "Pleural Fluid Analysis": 1500,
	"Ascitic Fluid Analysis": 1500, "CSF Analysis": 2000, "Synovial Fluid Analysis": 1500,
}

var diagnostics = []sampler.Weighted[string]{
	// Common imaging
	{Item: "X-Ray", Weight: 0.25}, {Item: "Ultrasound", Weight: 0.20},
	{Item: "CT Scan", Weight: 0.10}, {Item: "MRI", Weight: 0.06},
	{Item: "Echo", Weight: 0.08}, {Item: "ECG", Weight: 0.08},
	{Item: "Stress Test", Weight: 0.03}, {Item: "Holter Monitor", Weight: 0.02},
	// Specialized imaging
	{Item: "Mammography", Weight: 0.02}, {Item: "Bone Densitometry", Weight: 0.01},
	{Item: "PET Scan", Weight: 0.005}, {Item: "Nuclear Medicine Scan", Weight: 0.01},
	{Item: "Angiography", Weight: 0.01}, {Item: "Colonoscopy", Weight: 0.01},
	{Item: "Endoscopy", Weight: 0.02}, {Item: "Bronchoscopy", Weight: 0.01},
	{Item: "Cystoscopy", Weight: 0.01}, {Item: "Laparoscopy", Weight: 0.01},
	{Item: "Arthroscopy", Weight: 0.005}, {Item: "ERCP", Weight: 0.005},
	// Cardiac procedures
	{Item: "Cardiac Catheterization", Weight: 0.005}, {Item: "Pacemaker Check", Weight: 0.01},
	{Item: "Echocardiogram", Weight: 0.03}, {Item: "TEE", Weight: 0.01},
	{Item: "Stress Echo", Weight: 0.01}, {Item: "Carotid Doppler", Weight: 0.01},
	// Other procedures
	{Item: "Biopsy", Weight: 0.01}, {Item: "Fine Needle Aspiration", Weight: 0.01},
	{Item: "Pleural Tap", Weight: 0.005}, {Item: "Ascitic Tap", Weight: 0.005},
	{Item: "Lumbar Puncture", Weight: 0.005}, {Item: "Bone Marrow Biopsy", Weight: 0.005},
}

var diagnosticRates = map[string]int{
	"X-Ray": 1200, "Ultrasound": 2500, "CT Scan": 7000, "MRI": 12000, "Echo": 3500, "ECG": 800,
	"Stress Test": 5000, "Holter Monitor": 3000, "Mammography": 4000, "Bone Densitometry": 3000,
	"PET Scan": 25000, "Nuclear Medicine Scan": 8000, "Angiography": 15000, "Colonoscopy": 8000,
	"Endoscopy": 6000, "Bronchoscopy": 8000, "Cystoscopy": 5000, "Laparoscopy": 12000,
	"Arthroscopy": 15000, "ERCP": 10000, "Cardiac Catheterization": 20000, "Pacemaker Check": 2000,
	"Echocardiogram": 4000, "TEE": 6000, "Stress Echo": 6000, "Carotid Doppler": 3000,
	"Biopsy": 3000, "Fine Needle Aspiration": 2000, "Pleural Tap": 2000, "Ascitic Tap": 2000,
	"Lumbar Puncture": 3000, "Bone Marrow Biopsy": 5000,
}

var medications = []Medication{
	// Common medications (Pakistani market), price per unit in PKR
	{"Paracetamol 500mg", 12}, {"Amoxicillin 500mg", 35}, {"Ceftriaxone 1g", 180},
	{"Omeprazole 20mg", 25}, {"Metformin 500mg", 18}, {"Losartan 50mg", 30},
	{"Atorvastatin 20mg", 45}, {"Azithromycin 500mg", 90}, {"Insulin 10ml", 550},
	// Antibiotics
	{"Ciprofloxacin 500mg", 40}, {"Levofloxacin 500mg", 60}, {"Clarithromycin 500mg", 80},
	{"Doxycycline 100mg", 25}, {"Cefixime 200mg", 120}, {"Cefuroxime 250mg", 100},
	{"Vancomycin 500mg", 300}, {"Meropenem 1g", 800}, {"Imipenem 500mg", 600},
	// Cardiovascular
	{"Amlodipine 5mg", 20}, {"Enalapril 5mg", 15}, {"Bisoprolol 5mg", 25},
	{"Digoxin 0.25mg", 8}, {"Warfarin 5mg", 12}, {"Clopidogrel 75mg", 35},
	{"Aspirin 75mg", 5}, {"Nitroglycerin 0.5mg", 15}, {"Furosemide 40mg", 10},
	// Diabetes
	{"Glibenclamide 5mg", 8}, {"Gliclazide 80mg", 12}, {"Pioglitazone 15mg", 25},
	{"Sitagliptin 50mg", 45}, {"Empagliflozin 10mg", 60}, {"Dapagliflozin 10mg", 55},
	// Respiratory
	{"Salbutamol Inhaler", 120}, {"Budesonide Inhaler", 200}, {"Theophylline 200mg", 20},
	{"Montelukast 10mg", 30}, {"Prednisolone 5mg", 8}, {"Dexamethasone 0.5mg", 5},
	// Gastrointestinal
	{"Ranitidine 150mg", 15}, {"Pantoprazole 40mg", 35}, {"Domperidone 10mg", 12},
	{"Ondansetron 4mg", 25}, {"Loperamide 2mg", 8}, {"Lactulose 10ml", 20},
	// Pain management
	{"Ibuprofen 400mg", 15}, {"Diclofenac 50mg", 12}, {"Tramadol 50mg", 20},
	{"Morphine 10mg", 25}, {"Pethidine 50mg", 30}, {"Ketorolac 10mg", 18},
	// Psychiatric
	{"Fluoxetine 20mg", 25}, {"Sertraline 50mg", 30}, {"Amitriptyline 25mg", 15},
	{"Lorazepam 1mg", 20}, {"Diazepam 5mg", 18}, {"Haloperidol 5mg", 12},
	// Other specialties
	{"Levothyroxine 50mcg", 20}, {"Allopurinol 100mg", 15},
	{"Colchicine 0.5mg", 25}, {"Methotrexate 2.5mg", 30}, {"Hydroxychloroquine 200mg", 35},
}
