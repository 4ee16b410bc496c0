package services

import (
	"context"
	"path/filepath"
	"strings"

	"academy_backend/internal/apperrors"
	"academy_backend/internal/logger"
	"academy_backend/internal/models"
	"academy_backend/internal/repositories"
	"academy_backend/internal/services/dto"
	"academy_backend/internal/storage"
)

// Допустимые расширения по типу медиа
var (
	imageExtensions = map[string]bool{
		".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
	}
	videoExtensions = map[string]bool{
		".mp4": true, ".avi": true, ".mov": true, ".wmv": true, ".flv": true, ".webm": true,
	}
)

type MediaService interface {
	Upload(ctx context.Context, uploaderID string, req *dto.UploadMediaRequest) (*dto.MediaResponse, error)
	AddByURL(ctx context.Context, uploaderID string, req *dto.AddMediaByURLRequest) (*dto.MediaResponse, error)
	List(ctx context.Context, query *dto.MediaListQuery) (*dto.MediaListResponse, error)
	ListByModality(ctx context.Context, modalityID string, query *dto.MediaListQuery) (*dto.MediaListResponse, error)
	GetByID(ctx context.Context, id string) (*dto.MediaResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateMediaRequest) (*dto.MediaResponse, error)
	Delete(ctx context.Context, id string) error
}

type MediaServiceImpl struct {
	mediaRepo    repositories.MediaRepository
	modalityRepo repositories.ModalityRepository
	userRepo     repositories.UserRepository
	store        storage.Storage
	maxFileSize  int64
	// Email пользователя, на которого записываются анонимные загрузки
	fallbackUploaderEmail string
}

func NewMediaService(
	mediaRepo repositories.MediaRepository,
	modalityRepo repositories.ModalityRepository,
	userRepo repositories.UserRepository,
	store storage.Storage,
	maxFileSize int64,
	fallbackUploaderEmail string,
) MediaService {
	return &MediaServiceImpl{
		mediaRepo:             mediaRepo,
		modalityRepo:          modalityRepo,
		userRepo:              userRepo,
		store:                 store,
		maxFileSize:           maxFileSize,
		fallbackUploaderEmail: fallbackUploaderEmail,
	}
}

// classifyExtension определяет тип медиа по расширению имени файла
func classifyExtension(fileName string) (models.MediaType, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch {
	case imageExtensions[ext]:
		return models.MediaTypeImage, nil
	case videoExtensions[ext]:
		return models.MediaTypeVideo, nil
	default:
		return "", apperrors.ErrUnsupportedFileType
	}
}

// resolveUploader возвращает идентификатор загрузившего: либо
// аутентифицированного пользователя, либо служебный fallback-аккаунт,
// либо, если тот не заведен, первого администратора
func (s *MediaServiceImpl) resolveUploader(uploaderID string) (string, error) {
	if uploaderID != "" {
		return uploaderID, nil
	}

	fallback, err := s.userRepo.FindByEmail(s.fallbackUploaderEmail)
	if err == nil {
		return fallback.ID, nil
	}
	if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return "", apperrors.InternalError(err)
	}

	// Отсутствие и служебного аккаунта, и администратора -
	// ошибка конфигурации, не клиента
	admin, err := s.userRepo.FindFirstByRole(models.UserRoleAdmin)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return admin.ID, nil
}

// Upload принимает бинарный файл: все проверки выполняются до записи
// файла, запись в БД - после; при сбое БД файл удаляется
func (s *MediaServiceImpl) Upload(ctx context.Context, uploaderID string, req *dto.UploadMediaRequest) (*dto.MediaResponse, error) {
	if req.File == nil {
		return nil, apperrors.ErrFileMissing
	}
	if req.File.Size > s.maxFileSize {
		return nil, apperrors.ErrFileTooLarge
	}

	fileType, err := classifyExtension(req.File.Filename)
	if err != nil {
		return nil, err
	}

	if _, err := s.modalityRepo.FindByID(req.ModalityID); err != nil {
		if apperrors.Is(err, repositories.ErrModalityNotFound) {
			return nil, apperrors.ErrModalityNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	resolvedUploader, err := s.resolveUploader(uploaderID)
	if err != nil {
		return nil, err
	}

	src, err := req.File.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	storedName := storage.GenerateName(req.File.Filename)
	if err := s.store.Save(ctx, storedName, src); err != nil {
		return nil, apperrors.InternalError(err)
	}

	media := &models.Media{
		ModalityID:  req.ModalityID,
		UploadedBy:  resolvedUploader,
		Title:       req.Title,
		Description: req.Description,
		FileURL:     s.store.URL(storedName),
		FileType:    fileType,
		FileSize:    req.File.Size,
		FileName:    storedName,
		Active:      true,
	}

	if err := s.mediaRepo.Create(media); err != nil {
		// Откатываем файл, чтобы не плодить сирот на диске
		if delErr := s.store.Delete(ctx, storedName); delErr != nil {
			logger.CtxWarn(ctx, "failed to remove orphaned upload",
				"file", storedName, "error", delErr)
		}
		return nil, apperrors.InternalError(err)
	}

	return s.GetByID(ctx, media.ID)
}

// AddByURL регистрирует внешне размещенный файл без загрузки
func (s *MediaServiceImpl) AddByURL(ctx context.Context, uploaderID string, req *dto.AddMediaByURLRequest) (*dto.MediaResponse, error) {
	if _, err := s.modalityRepo.FindByID(req.ModalityID); err != nil {
		if apperrors.Is(err, repositories.ErrModalityNotFound) {
			return nil, apperrors.ErrModalityNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	resolvedUploader, err := s.resolveUploader(uploaderID)
	if err != nil {
		return nil, err
	}

	media := &models.Media{
		ModalityID:  req.ModalityID,
		UploadedBy:  resolvedUploader,
		Title:       req.Title,
		Description: req.Description,
		FileURL:     req.FileURL,
		FileType:    req.FileType,
		FileSize:    req.FileSize,
		FileName:    req.FileName,
		Active:      true,
	}

	if err := s.mediaRepo.Create(media); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.GetByID(ctx, media.ID)
}

// List возвращает страницу активных медиа с учетом фильтров
func (s *MediaServiceImpl) List(ctx context.Context, query *dto.MediaListQuery) (*dto.MediaListResponse, error) {
	filter := repositories.MediaFilter{
		ModalityID: query.ModalityID,
		Type:       query.Type,
		Page:       query.Page,
		Limit:      query.Limit,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	media, total, err := s.mediaRepo.FindWithFilter(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.MediaResponse, 0, len(media))
	for i := range media {
		items = append(items, *toMediaResponse(&media[i]))
	}

	return &dto.MediaListResponse{
		Media: items,
		Pagination: dto.Pagination{
			Page:       filter.Page,
			Limit:      filter.Limit,
			Total:      total,
			TotalPages: totalPages(total, filter.Limit),
		},
	}, nil
}

// ListByModality - та же выборка, но несуществующая модальность - 404,
// а не пустая страница
func (s *MediaServiceImpl) ListByModality(ctx context.Context, modalityID string, query *dto.MediaListQuery) (*dto.MediaListResponse, error) {
	if _, err := s.modalityRepo.FindByID(modalityID); err != nil {
		if apperrors.Is(err, repositories.ErrModalityNotFound) {
			return nil, apperrors.ErrModalityNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	scoped := *query
	scoped.ModalityID = modalityID
	return s.List(ctx, &scoped)
}

func (s *MediaServiceImpl) GetByID(ctx context.Context, id string) (*dto.MediaResponse, error) {
	media, err := s.mediaRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMediaNotFound) {
			return nil, apperrors.ErrMediaNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return toMediaResponse(media), nil
}

// Update - частичное обновление метаданных, файл не затрагивается
func (s *MediaServiceImpl) Update(ctx context.Context, id string, req *dto.UpdateMediaRequest) (*dto.MediaResponse, error) {
	media, err := s.mediaRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMediaNotFound) {
			return nil, apperrors.ErrMediaNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Title != nil {
		media.Title = *req.Title
	}
	if req.Description != nil {
		media.Description = *req.Description
	}
	if req.Active != nil {
		media.Active = *req.Active
	}

	if err := s.mediaRepo.Update(media); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return toMediaResponse(media), nil
}

// Delete удаляет запись; локальный файл удаляется по возможности,
// сбой удаления файла не мешает удалению записи
func (s *MediaServiceImpl) Delete(ctx context.Context, id string) error {
	media, err := s.mediaRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMediaNotFound) {
			return apperrors.ErrMediaNotFound
		}
		return apperrors.InternalError(err)
	}

	// Внешние URL не трогаем, чистим только свои файлы
	if strings.HasPrefix(media.FileURL, "/") {
		name := filepath.Base(media.FileURL)
		if err := s.store.Delete(ctx, name); err != nil {
			logger.CtxWarn(ctx, "failed to remove media file",
				"file", name, "error", err)
		}
	}

	if err := s.mediaRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrMediaNotFound) {
			return apperrors.ErrMediaNotFound
		}
		return apperrors.InternalError(err)
	}

	return nil
}

func toMediaResponse(m *models.Media) *dto.MediaResponse {
	resp := &dto.MediaResponse{
		ID:          m.ID,
		ModalityID:  m.ModalityID,
		UploadedBy:  m.UploadedBy,
		Title:       m.Title,
		Description: m.Description,
		FileURL:     m.FileURL,
		FileType:    m.FileType,
		FileSize:    m.FileSize,
		FileName:    m.FileName,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
	}
	if m.Modality != nil {
		resp.Modality = m.Modality.Ref()
	}
	if m.Uploader != nil {
		resp.User = &dto.UserRef{ID: m.Uploader.ID, Name: m.Uploader.Name}
	}
	return resp
}

func totalPages(total int64, limit int) int {
	if limit < 1 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return int(pages)
}
