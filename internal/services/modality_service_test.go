package services

import (
	"testing"

	"academy_backend/internal/apperrors"
	"academy_backend/internal/models"
	"academy_backend/internal/repositories"
	"academy_backend/test/fixtures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModalityService_ListActive_PublicProjection(t *testing.T) {
	t.Parallel()

	db := fixtures.NewTestDB(t)
	svc := NewModalityService(repositories.NewModalityRepository(db))

	require.NoError(t, db.Create(&models.Modality{
		Name:        "Jiu-Jitsu",
		Description: "Arte suave",
		Image:       "/img/jiujitsu.jpg",
		VideoURL:    "https://youtube.com/watch?v=abc",
		Benefits:    "Disciplina, condicionamento",
		MinAge:      4,
		Duration:    "60 min",
		Active:      true,
	}).Error)
	boxe := &models.Modality{Name: "Boxe"}
	require.NoError(t, db.Create(boxe).Error)
	// Колонка active имеет default:true, поэтому выключаем отдельным апдейтом
	require.NoError(t, db.Model(boxe).Update("active", false).Error)

	summaries, err := svc.ListActive()
	require.NoError(t, err)

	// Неактивные модальности не попадают на витрину
	require.Len(t, summaries, 1)
	s := summaries[0]
	assert.Equal(t, "Jiu-Jitsu", s.Name)
	assert.Equal(t, "Arte suave", s.Description)
	assert.Equal(t, "/img/jiujitsu.jpg", s.Image)
	assert.Equal(t, 4, s.MinAge)
	assert.Equal(t, "60 min", s.Duration)
	assert.NotEmpty(t, s.ID)
}

func TestModalityService_GetByID(t *testing.T) {
	t.Parallel()

	db := fixtures.NewTestDB(t)
	svc := NewModalityService(repositories.NewModalityRepository(db))

	_, err := svc.GetByID("nao-existe")
	assert.ErrorIs(t, err, apperrors.ErrModalityNotFound)

	created := fixtures.CreateModality(t, db, "Muay Thai")
	modality, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Muay Thai", modality.Name)
}
