// Package testing provides test utilities and database setup for testing the release scheduling system
package testing

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/nagasrivarun/global-stream-main/models"
	"github.com/nagasrivarun/global-stream-main/utils"
)

// TestFixtures provides helper methods for creating test data
type TestFixtures struct {
	DB *TestDB
}

// NewTestFixtures creates a new test fixtures instance
func NewTestFixtures(db *TestDB) *TestFixtures {
	return &TestFixtures{DB: db}
}

// CreateTestContent creates a content row with randomized title and year
func (tf *TestFixtures) CreateTestContent(contentType models.ContentType) (*models.Content, error) {
	suffix := rand.Intn(1000000)
	description := "A test title for the regional release catalog"
	poster := fmt.Sprintf("https://cdn.example.com/posters/%d.jpg", suffix)

	content := &models.Content{
		UUID:        uuid.New(),
		Title:       fmt.Sprintf("Test Content %d", suffix),
		Type:        contentType,
		Description: &description,
		PosterURL:   &poster,
		ReleaseYear: utils.ToPtr(2020 + rand.Intn(6)),
	}

	if err := tf.DB.DB.Create(content).Error; err != nil {
		return nil, fmt.Errorf("failed to create test content: %w", err)
	}

	return content, nil
}

// CreateTestAvailability creates a release intent for the content in one region
func (tf *TestFixtures) CreateTestAvailability(contentID uint, region string, releaseDate time.Time) (*models.RegionalAvailability, error) {
	entry := &models.RegionalAvailability{
		ContentID:   contentID,
		Region:      region,
		ReleaseDate: utils.TruncateToDate(releaseDate),
	}

	if err := tf.DB.DB.Create(entry).Error; err != nil {
		return nil, fmt.Errorf("failed to create test availability: %w", err)
	}

	return entry, nil
}

// CreateTestVisibility creates an effective visibility row for the content in one region
func (tf *TestFixtures) CreateTestVisibility(contentID uint, region string, isVisible bool) (*models.RegionalVisibility, error) {
	row := &models.RegionalVisibility{
		ContentID: contentID,
		Region:    region,
		IsVisible: isVisible,
	}

	if err := tf.DB.DB.Create(row).Error; err != nil {
		return nil, fmt.Errorf("failed to create test visibility: %w", err)
	}

	return row, nil
}
