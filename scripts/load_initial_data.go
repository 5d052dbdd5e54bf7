package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"capstone-backend/internal/auth"
	"capstone-backend/internal/config"
	"capstone-backend/internal/database"
	"capstone-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Email     string `yaml:"email"`
	FullName  string `yaml:"full_name"`
	StudentNo string `yaml:"student_no,omitempty"`
	Role      string `yaml:"role"`
}

type TermData struct {
	AcademicYear int    `yaml:"academic_year"`
	Semester     int    `yaml:"semester"`
	StartDate    string `yaml:"start_date"`
	EndDate      string `yaml:"end_date"`
}

type SectionData struct {
	Code         string   `yaml:"code"`
	CourseType   string   `yaml:"course_type"`
	StudyType    string   `yaml:"study_type,omitempty"`
	AcademicYear int      `yaml:"academic_year"`
	Semester     int      `yaml:"semester"`
	MinTeamSize  int      `yaml:"min_team_size"`
	MaxTeamSize  int      `yaml:"max_team_size"`
	Students     []string `yaml:"students,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type TermsFile struct {
	Terms []TermData `yaml:"terms"`
}

type SectionsFile struct {
	Sections []SectionData `yaml:"sections"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	admins, err := loadDataFromYAMLFiles(db, cfg.SeedDataDir)
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	// Tokens are normally issued by the identity provider; print some for local work
	if cfg.IsDevelopment() {
		printDevTokens(cfg, admins)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}

		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) ([]models.User, error) {
	var users UsersFile
	if err := loadYAML(dataDir, "users", &users); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	var terms TermsFile
	if err := loadYAML(dataDir, "terms", &terms); err != nil {
		return nil, fmt.Errorf("failed to load terms: %w", err)
	}
	var sections SectionsFile
	if err := loadYAML(dataDir, "sections", &sections); err != nil {
		return nil, fmt.Errorf("failed to load sections: %w", err)
	}

	var admins []models.User
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users.Users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[strings.ToLower(userData.Email)] = user
		if created {
			userCreated++
		}
		if user.Role == models.UserRoleAdmin {
			admins = append(admins, *user)
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(users.Users))

	termMap := make(map[string]*models.Term)
	termCreated := 0
	for _, termData := range terms.Terms {
		term, created, err := createTerm(db, termData)
		if err != nil {
			return nil, fmt.Errorf("failed to create term %d-%d: %w", termData.AcademicYear, termData.Semester, err)
		}
		termMap[term.Label()] = term
		if created {
			termCreated++
		}
	}
	log.Printf("Terms: %d created, %d total", termCreated, len(terms.Terms))

	sectionCreated := 0
	var enrolled int64
	for _, sectionData := range sections.Sections {
		section, created, err := createSection(db, sectionData, termMap)
		if err != nil {
			return nil, fmt.Errorf("failed to create section %s: %w", sectionData.Code, err)
		}
		if created {
			sectionCreated++
		}

		n, err := enrollStudents(db, section, sectionData.Students, userMap)
		if err != nil {
			log.Printf("Warning: failed to enroll students in %s: %v", sectionData.Code, err)
			continue
		}
		enrolled += n
	}
	log.Printf("Sections: %d created, %d total; %d enrollments created", sectionCreated, len(sections.Sections), enrolled)

	return admins, nil
}

// loadYAML merges every <name>*.yaml file under dataDir into out
func loadYAML(dataDir, name string, out interface{}) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		base := filepath.Base(path)
		if d.IsDir() || !strings.HasPrefix(base, name) || !strings.HasSuffix(base, ".yaml") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return nil
	})
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	email := strings.ToLower(userData.Email)
	if err := db.Where("email = ?", email).First(&user).Error; err == nil {
		return &user, false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	role := models.UserRole(strings.ToUpper(userData.Role))
	if !role.IsValid() {
		return nil, false, fmt.Errorf("unknown role %q", userData.Role)
	}
	user = models.User{
		Email:     email,
		FullName:  userData.FullName,
		StudentNo: userData.StudentNo,
		Role:      role,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, false, err
	}
	return &user, true, nil
}

func createTerm(db *gorm.DB, termData TermData) (*models.Term, bool, error) {
	var term models.Term
	err := db.Where("academic_year = ? AND semester = ?", termData.AcademicYear, termData.Semester).First(&term).Error
	if err == nil {
		return &term, false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	start, err := time.Parse(time.DateOnly, termData.StartDate)
	if err != nil {
		return nil, false, fmt.Errorf("invalid start_date: %w", err)
	}
	end, err := time.Parse(time.DateOnly, termData.EndDate)
	if err != nil {
		return nil, false, fmt.Errorf("invalid end_date: %w", err)
	}

	term = models.Term{
		AcademicYear: termData.AcademicYear,
		Semester:     termData.Semester,
		StartDate:    start,
		EndDate:      end,
	}
	if err := db.Create(&term).Error; err != nil {
		return nil, false, err
	}
	return &term, true, nil
}

func createSection(db *gorm.DB, sectionData SectionData, termMap map[string]*models.Term) (*models.Section, bool, error) {
	key := models.Term{AcademicYear: sectionData.AcademicYear, Semester: sectionData.Semester}.Label()
	term, ok := termMap[key]
	if !ok {
		return nil, false, fmt.Errorf("term %s not found", key)
	}

	var section models.Section
	err := db.Where("code = ? AND term_id = ?", sectionData.Code, term.ID).First(&section).Error
	if err == nil {
		return &section, false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	courseType := models.CourseType(sectionData.CourseType)
	if !courseType.IsValid() {
		return nil, false, fmt.Errorf("unknown course type %q", sectionData.CourseType)
	}
	section = models.Section{
		Code:        sectionData.Code,
		CourseType:  courseType,
		StudyType:   sectionData.StudyType,
		TermID:      term.ID,
		MinTeamSize: sectionData.MinTeamSize,
		MaxTeamSize: sectionData.MaxTeamSize,
	}
	if err := db.Create(&section).Error; err != nil {
		return nil, false, err
	}
	return &section, true, nil
}

func enrollStudents(db *gorm.DB, section *models.Section, emails []string, userMap map[string]*models.User) (int64, error) {
	if len(emails) == 0 {
		return 0, nil
	}

	enrollments := make([]models.Enrollment, 0, len(emails))
	for _, email := range emails {
		user, ok := userMap[strings.ToLower(email)]
		if !ok {
			return 0, fmt.Errorf("user %s not found", email)
		}
		enrollments = append(enrollments, models.Enrollment{UserID: user.ID, SectionID: section.ID})
	}

	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&enrollments)
	return result.RowsAffected, result.Error
}

func printDevTokens(cfg *config.Config, admins []models.User) {
	authService, err := auth.NewAuthService(cfg.JWTSecret, cfg.JWTIssuer)
	if err != nil {
		log.Printf("Warning: cannot mint development tokens: %v", err)
		return
	}
	for _, admin := range admins {
		token, err := authService.GenerateJWT(admin.ID, admin.Role)
		if err != nil {
			log.Printf("Warning: cannot mint token for %s: %v", admin.Email, err)
			continue
		}
		log.Printf("Development token for %s: %s", admin.Email, token)
	}
}
