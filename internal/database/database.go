package database

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// CaseRecord is one processed emergency report. Created per request, never
// mutated afterwards; the pipeline treats it as an audit entry, not case state.
type CaseRecord struct {
	ID            string    `gorm:"type:char(36);primaryKey" json:"id"`
	Report        string    `json:"report"`
	EmergencyType string    `gorm:"index:idx_case_records_emergency_type" json:"emergency_type"`
	Priority      string    `gorm:"index:idx_case_records_priority" json:"priority"`
	Urgency       string    `json:"urgency"`
	Location      string    `gorm:"index:idx_case_records_location" json:"location"`
	CitizenName   string    `json:"citizen_name"`
	CitizenAge    int       `json:"citizen_age"`
	CitizenPhone  string    `json:"citizen_phone"`
	Confidence    float64   `json:"confidence"`
	SystemMode    string    `json:"system_mode"`
	Status        string    `gorm:"index:idx_case_records_status" json:"status"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (CaseRecord) TableName() string {
	return "case_records"
}

func (c *CaseRecord) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = generateUUIDv4()
	}
	return nil
}

// HistoricalRequest is a prior emergency request used by enhanced triage for
// the pattern signal.
type HistoricalRequest struct {
	ID            string    `gorm:"type:char(36);primaryKey" json:"id"`
	Symptoms      string    `json:"symptoms"`
	EmergencyType string    `json:"emergency_type"`
	Location      string    `json:"location"`
	Priority      string    `gorm:"index:idx_historical_requests_priority" json:"priority"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (HistoricalRequest) TableName() string {
	return "historical_requests"
}

func (h *HistoricalRequest) BeforeCreate(_ *gorm.DB) error {
	if h.ID == "" {
		h.ID = generateUUIDv4()
	}
	return nil
}

// Hospital is mock facility data used for medical service matching.
type Hospital struct {
	ID               string `gorm:"type:char(36);primaryKey" json:"id"`
	Name             string `json:"name"`
	City             string `gorm:"index:idx_hospitals_city" json:"city"`
	EmergencyContact string `json:"emergency_contact"`
	BedsAvailable    int    `json:"beds_available"`
	Specialties      string `gorm:"type:json" json:"specialties"`
}

func (Hospital) TableName() string {
	return "hospitals"
}

func (h *Hospital) BeforeCreate(_ *gorm.DB) error {
	if h.ID == "" {
		h.ID = generateUUIDv4()
	}
	return nil
}

// Service represents a service that interacts with a database.
type Service interface {
	// Health returns a map of health status information.
	Health() map[string]string

	// CreateCase persists a processed emergency case.
	CreateCase(ctx context.Context, record *CaseRecord) error

	// ListCases returns cases matching the filters, newest first.
	ListCases(ctx context.Context, filters CaseFilters) ([]CaseRecord, error)

	// ListHistorical returns the historical request corpus for pattern triage.
	ListHistorical(ctx context.Context) ([]HistoricalRequest, error)

	// HospitalsByCity returns hospitals in the given city.
	HospitalsByCity(ctx context.Context, city string) ([]Hospital, error)

	// Close terminates the database connection.
	Close() error
}

type service struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

var (
	dburl      = os.Getenv("FRONTLINE_DB_URL")
	dbInstance *service
	dbMu       sync.Mutex
)

func New() Service {
	dbMu.Lock()
	defer dbMu.Unlock()

	if dbInstance != nil {
		return dbInstance
	}

	svc, err := newSQLiteService(dburl)
	if err != nil {
		log.Fatal(err)
	}

	dbInstance = svc
	return dbInstance
}

func NewSQLiteAdapter(dsn string) (Service, error) {
	return newSQLiteService(dsn)
}

func newSQLiteService(dsn string) (*service, error) {
	if dsn == "" {
		dsn = "./frontline.db"
	}

	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := gormDB.AutoMigrate(&CaseRecord{}, &HistoricalRequest{}, &Hospital{}); err != nil {
		return nil, err
	}

	if err := seedReferenceData(gormDB); err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	return &service{db: gormDB, sqlDB: sqlDB}, nil
}

// Health checks the health of the database connection by pinging the database.
func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := make(map[string]string)

	err := s.sqlDB.PingContext(ctx)
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "It's healthy"

	dbStats := s.sqlDB.Stats()
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	stats["wait_count"] = strconv.FormatInt(dbStats.WaitCount, 10)
	stats["wait_duration"] = dbStats.WaitDuration.String()

	if dbStats.OpenConnections > 40 {
		stats["message"] = "The database is experiencing heavy load."
	}
	if dbStats.WaitCount > 1000 {
		stats["message"] = "The database has a high number of wait events, indicating potential bottlenecks."
	}

	return stats
}

// Close closes the database connection.
func (s *service) Close() error {
	log.Printf("Disconnected from database: %s", dburl)
	return s.sqlDB.Close()
}

func generateUUIDv4() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}

	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80

	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		b[0:4],
		b[4:6],
		b[6:8],
		b[8:10],
		b[10:16],
	)
}
