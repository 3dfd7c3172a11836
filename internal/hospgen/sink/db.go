package sink

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"

	"github.com/amc-dataeng/hospgen/internal/hospgen/config"
	"github.com/amc-dataeng/hospgen/internal/hospgen/gen"
	"github.com/amc-dataeng/hospgen/internal/hospgen/logger"
)

// DB mirrors generated tables into MySQL or Postgres. Connections are probed
// once at run start; callers treat a failed probe as "no database" and skip
// all mirroring for the rest of the run.
type DB struct {
	conn   *sql.DB
	driver string

	// URL is the display DSN with the password elided, for status reporting.
	URL string
}

// BuildDSN constructs a driver DSN for postgres/mysql.
func BuildDSN(cfg config.DBCfg) string {
	if cfg.Driver == "postgres" {
		return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database)
}

// DisplayURL is the DSN shown in status output, without the password.
func DisplayURL(cfg config.DBCfg) string {
	return fmt.Sprintf("%s://%s@%s:%d/%s", cfg.Driver, cfg.User, cfg.Host, cfg.Port, cfg.Database)
}

// Connect opens and probes a database connection.
func Connect(ctx context.Context, cfg config.DBCfg) (*DB, error) {
	conn, err := sql.Open(cfg.Driver, BuildDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}
	var one int
	if err := conn.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		conn.Close()
		return nil, fmt.Errorf("probe %s: %w", cfg.Driver, err)
	}
	logger.L().Infow("database connected", "driver", cfg.Driver, "host", cfg.Host, "database", cfg.Database)
	return &DB{conn: conn, driver: cfg.Driver, URL: DisplayURL(cfg)}, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

// ph returns the placeholder for parameter i (1-based) in this driver's
// dialect.
func (d *DB) ph(i int) string {
	if d.driver == "postgres" {
		return fmt.Sprintf("$%d", i)
	}
	return "?"
}

func (d *DB) placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = d.ph(i + 1)
	}
	return strings.Join(parts, ", ")
}

var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS patients (
		patient_id VARCHAR(32) PRIMARY KEY,
		name VARCHAR(128),
		gender VARCHAR(1),
		dob DATE,
		city VARCHAR(64),
		cnic VARCHAR(20),
		phone VARCHAR(24),
		email VARCHAR(128),
		panel BOOLEAN,
		panel_name VARCHAR(128)
	)`,
	`CREATE TABLE IF NOT EXISTS admissions (
		admission_id VARCHAR(32) PRIMARY KEY,
		patient_id VARCHAR(32),
		admit_dt DATE,
		discharge_dt DATE,
		department VARCHAR(64),
		ward_type VARCHAR(32),
		outcome VARCHAR(32)
	)`,
	`CREATE TABLE IF NOT EXISTS labs (
		lab_id VARCHAR(40) PRIMARY KEY,
		admission_id VARCHAR(32),
		patient_id VARCHAR(32),
		test_name VARCHAR(64),
		ordered_dt DATE,
		result_value DOUBLE PRECISION,
		unit VARCHAR(16),
		price_pkr INT
	)`,
	`CREATE TABLE IF NOT EXISTS diagnostics (
		diagnostic_id VARCHAR(40) PRIMARY KEY,
		admission_id VARCHAR(32),
		patient_id VARCHAR(32),
		modality VARCHAR(64),
		performed_dt DATE,
		price_pkr INT
	)`,
	`CREATE TABLE IF NOT EXISTS medications (
		med_id VARCHAR(40) PRIMARY KEY,
		admission_id VARCHAR(32),
		patient_id VARCHAR(32),
		drug_name VARCHAR(64),
		qty INT,
		unit_price_pkr INT,
		total_price_pkr INT
	)`,
	`CREATE TABLE IF NOT EXISTS revenue (
		admission_id VARCHAR(32) PRIMARY KEY,
		patient_id VARCHAR(32),
		ward_type VARCHAR(32),
		los_days INT,
		room_rev_pkr INT,
		lab_rev_pkr INT,
		diag_rev_pkr INT,
		pharmacy_rev_pkr INT,
		total_rev_pkr INT
	)`,
}

// EnsureSchema creates the mirror tables if they do not exist.
func (d *DB) EnsureSchema(ctx context.Context) error {
	for _, ddl := range schemaDDL {
		if _, err := d.conn.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// insertBatch runs one INSERT per row inside a single transaction using a
// prepared statement.
func (d *DB) insertBatch(ctx context.Context, query string, n int, args func(i int) []interface{}) error {
	tx, err := d.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare: %w", err)
	}
	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(ctx, args(i)...); err != nil {
			stmt.Close()
			tx.Rollback()
			return fmt.Errorf("insert row %d: %w", i, err)
		}
	}
	stmt.Close()
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (d *DB) InsertPatients(ctx context.Context, rows []gen.Patient) error {
	q := fmt.Sprintf(`INSERT INTO patients
		(patient_id, name, gender, dob, city, cnic, phone, email, panel, panel_name)
		VALUES (%s)`, d.placeholders(10))
	return d.insertBatch(ctx, q, len(rows), func(i int) []interface{} {
		r := rows[i]
		return []interface{}{r.PatientID, r.Name, r.Gender, r.DOB, r.City, r.CNIC, r.Phone, r.Email, r.Panel, r.PanelName}
	})
}

func (d *DB) InsertAdmissions(ctx context.Context, rows []gen.Admission) error {
	q := fmt.Sprintf(`INSERT INTO admissions
		(admission_id, patient_id, admit_dt, discharge_dt, department, ward_type, outcome)
		VALUES (%s)`, d.placeholders(7))
	return d.insertBatch(ctx, q, len(rows), func(i int) []interface{} {
		r := rows[i]
		return []interface{}{r.AdmissionID, r.PatientID, r.AdmitDate, r.DischargeDate, r.Department, r.WardType, r.Outcome}
	})
}

func (d *DB) InsertLabs(ctx context.Context, rows []gen.Lab) error {
	q := fmt.Sprintf(`INSERT INTO labs
		(lab_id, admission_id, patient_id, test_name, ordered_dt, result_value, unit, price_pkr)
		VALUES (%s)`, d.placeholders(8))
	return d.insertBatch(ctx, q, len(rows), func(i int) []interface{} {
		r := rows[i]
		return []interface{}{r.LabID, r.AdmissionID, r.PatientID, r.TestName, r.OrderedDate, r.ResultValue, r.Unit, r.PricePKR}
	})
}

func (d *DB) InsertDiagnostics(ctx context.Context, rows []gen.Diagnostic) error {
	q := fmt.Sprintf(`INSERT INTO diagnostics
		(diagnostic_id, admission_id, patient_id, modality, performed_dt, price_pkr)
		VALUES (%s)`, d.placeholders(6))
	return d.insertBatch(ctx, q, len(rows), func(i int) []interface{} {
		r := rows[i]
		return []interface{}{r.DiagnosticID, r.AdmissionID, r.PatientID, r.Modality, r.PerformedDate, r.PricePKR}
	})
}

func (d *DB) InsertMedications(ctx context.Context, rows []gen.MedicationOrder) error {
	q := fmt.Sprintf(`INSERT INTO medications
		(med_id, admission_id, patient_id, drug_name, qty, unit_price_pkr, total_price_pkr)
		VALUES (%s)`, d.placeholders(7))
	return d.insertBatch(ctx, q, len(rows), func(i int) []interface{} {
		r := rows[i]
		return []interface{}{r.MedID, r.AdmissionID, r.PatientID, r.DrugName, r.Quantity, r.UnitPricePKR, r.TotalPricePKR}
	})
}

func (d *DB) InsertRevenue(ctx context.Context, rows []gen.Revenue) error {
	q := fmt.Sprintf(`INSERT INTO revenue
		(admission_id, patient_id, ward_type, los_days, room_rev_pkr, lab_rev_pkr, diag_rev_pkr, pharmacy_rev_pkr, total_rev_pkr)
		VALUES (%s)`, d.placeholders(9))
	return d.insertBatch(ctx, q, len(rows), func(i int) []interface{} {
		r := rows[i]
		return []interface{}{r.AdmissionID, r.PatientID, r.WardType, r.LOSDays, r.RoomRevPKR, r.LabRevPKR, r.DiagRevPKR, r.PharmacyRevPKR, r.TotalRevPKR}
	})
}
