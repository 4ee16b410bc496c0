package fixtures

import (
	"testing"

	"academy_backend/database"
	"academy_backend/internal/auth"
	"academy_backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB поднимает изолированную in-memory SQLite базу со схемой
// приложения. Одно соединение, иначе каждый коннект пула получит
// свою пустую базу.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Не удалось открыть тестовую БД: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Не удалось получить *sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Не удалось выполнить миграцию: %v", err)
	}

	return db
}

// CreateUser создает пользователя с автоматическим хешированием пароля
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) *models.User {
	t.Helper()

	if user.PasswordHash == "" {
		user.PasswordHash = "password123"
	}
	// Низкая стоимость bcrypt, чтобы тесты не тормозили
	hashed, err := auth.HashPassword(user.PasswordHash, 4)
	if err != nil {
		t.Fatalf("Не удалось хешировать пароль: %v", err)
	}
	user.PasswordHash = hashed

	if user.Role == "" {
		user.Role = models.UserRoleStudent
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Не удалось создать пользователя %s: %v", user.Email, err)
	}
	return user
}

// CreateModality создает активную модальность
func CreateModality(t *testing.T, db *gorm.DB, name string) *models.Modality {
	t.Helper()

	modality := &models.Modality{
		Name:        name,
		Description: "Modalidade de teste",
		MinAge:      4,
		Active:      true,
	}
	if err := db.Create(modality).Error; err != nil {
		t.Fatalf("Не удалось создать модальность %s: %v", name, err)
	}
	return modality
}
