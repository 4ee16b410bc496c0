package repositories

import (
	"testing"

	"academy_backend/internal/models"
	"academy_backend/test/fixtures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Sentinels(t *testing.T) {
	t.Parallel()

	db := fixtures.NewTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.FindByID("nao-existe")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.FindByEmail("ninguem@test.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	user := fixtures.CreateUser(t, db, &models.User{Name: "Maria", Email: "maria@test.com"})

	// Повторная вставка того же email блокируется до обращения к БД
	err = repo.Create(&models.User{Name: "Outra", Email: "maria@test.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	found, err := repo.FindByEmail("maria@test.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

func TestUserRepository_FindByID_PreloadsProfile(t *testing.T) {
	t.Parallel()

	db := fixtures.NewTestDB(t)
	repo := NewUserRepository(db)

	user := fixtures.CreateUser(t, db, &models.User{Name: "Pedro", Email: "pedro@test.com"})
	require.NoError(t, db.Create(&models.Profile{UserID: user.ID, Phone: "(11) 90000-0000"}).Error)

	found, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Profile)
	assert.Equal(t, "(11) 90000-0000", found.Profile.Phone)
}

func TestUserRepository_FindStudents_SkipsInactiveAndStaff(t *testing.T) {
	t.Parallel()

	db := fixtures.NewTestDB(t)
	repo := NewUserRepository(db)

	fixtures.CreateUser(t, db, &models.User{Name: "Admin", Email: "admin@test.com", Role: models.UserRoleAdmin})
	fixtures.CreateUser(t, db, &models.User{Name: "Aluno", Email: "aluno@test.com"})
	inactive := fixtures.CreateUser(t, db, &models.User{Name: "Ex-aluno", Email: "ex@test.com"})
	require.NoError(t, db.Model(inactive).Update("active", false).Error)

	students, err := repo.FindStudents()
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "aluno@test.com", students[0].Email)
}
