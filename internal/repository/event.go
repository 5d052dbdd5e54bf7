package repository

import (
	"capstone-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventRepository handles database operations for events
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event
func (r *EventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// ListIDsBySection returns the IDs of every event in a section
func (r *EventRepository) ListIDsBySection(sectionID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Event{}).Where("section_id = ?", sectionID).Pluck("id", &ids).Error
	return ids, err
}

// SubmissionRepository handles database operations for submissions
type SubmissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// CreateBatch inserts submission rows
func (r *SubmissionRepository) CreateBatch(submissions []models.Submission) error {
	if len(submissions) == 0 {
		return nil
	}
	return r.db.Create(&submissions).Error
}

// GetByID retrieves a submission with its event
func (r *SubmissionRepository) GetByID(id uuid.UUID) (*models.Submission, error) {
	var submission models.Submission
	err := r.db.Preload("Event").First(&submission, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// ListByEvent retrieves every submission of an event
func (r *SubmissionRepository) ListByEvent(eventID uuid.UUID) ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.Where("event_id = ?", eventID).Find(&submissions).Error
	return submissions, err
}

// Save writes every column of a submission
func (r *SubmissionRepository) Save(submission *models.Submission) error {
	return r.db.Omit("Event", "Team").Save(submission).Error
}
