package models

import (
	"time"

	"lifecover/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents users table
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns a UUID when none is set
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// ToDomain returns the public account (without the hash)
func (u *User) ToDomain() *domain.UserAccount {
	return &domain.UserAccount{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// Submission represents submissions table.
// Rows are historical records and are never updated.
type Submission struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	UserID         *string   `gorm:"size:36;index" json:"userId,omitempty"`
	Age            int       `gorm:"not null" json:"age"`
	Income         float64   `gorm:"not null" json:"income"`
	Dependents     int       `gorm:"not null" json:"dependents"`
	RiskTolerance  string    `gorm:"size:10;not null" json:"riskTolerance"`
	CoverageAmount int64     `gorm:"not null" json:"coverageAmount"`
	TermYears      int       `gorm:"not null" json:"termYears"`
	Recommendation string    `gorm:"size:255;not null" json:"recommendation"`
	Explanation    string    `gorm:"type:text;not null" json:"explanation"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
}

func (Submission) TableName() string {
	return "submissions"
}

// BeforeCreate assigns a UUID when none is set
func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// NewSubmission builds a row from a computed recommendation
func NewSubmission(rec *domain.Recommendation) *Submission {
	return &Submission{
		ID:             rec.ID,
		UserID:         rec.UserID,
		Age:            rec.Profile.Age,
		Income:         rec.Profile.AnnualIncome,
		Dependents:     rec.Profile.Dependents,
		RiskTolerance:  string(rec.Profile.RiskTolerance),
		CoverageAmount: rec.CoverageAmount,
		TermYears:      rec.TermYears,
		Recommendation: rec.RecommendationText,
		Explanation:    rec.ExplanationText,
		CreatedAt:      rec.CreatedAt,
	}
}

// ToDomain converts the row back into a recommendation
func (s *Submission) ToDomain() *domain.Recommendation {
	return &domain.Recommendation{
		ID:     s.ID,
		UserID: s.UserID,
		Profile: domain.ApplicantProfile{
			Age:           s.Age,
			AnnualIncome:  s.Income,
			Dependents:    s.Dependents,
			RiskTolerance: domain.RiskTolerance(s.RiskTolerance),
		},
		CoverageAmount:     s.CoverageAmount,
		TermYears:          s.TermYears,
		RecommendationText: s.Recommendation,
		ExplanationText:    s.Explanation,
		CreatedAt:          s.CreatedAt,
	}
}

// AutoMigrate creates or updates the tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Submission{},
	)
}
