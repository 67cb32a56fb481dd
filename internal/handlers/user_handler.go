package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/Rodrigojesussilva/Sem-errar-sub001/internal/models"
	"github.com/Rodrigojesussilva/Sem-errar-sub001/internal/services"
	"github.com/Rodrigojesussilva/Sem-errar-sub001/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	maxPhotoSizeBytes = 5 * 1024 * 1024
	photoFolder       = "usuarios/fotos"
	uniqueViolation   = "23505"
)

type userStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context, offset, limit int) ([]models.User, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id int64) error
	UpdatePhoto(ctx context.Context, id int64, photoURL *string) (*models.User, error)
}

type UserHandler struct {
	userRepo       userStore
	storageService services.StorageService
	signPhotos     bool
}

func NewUserHandler(userRepo userStore, storageService services.StorageService) *UserHandler {
	return &UserHandler{
		userRepo:       userRepo,
		storageService: storageService,
	}
}

// SignPhotoURLs makes Get and UploadPhoto answer with short-lived signed
// photo URLs, for buckets that are not publicly readable.
func (h *UserHandler) SignPhotoURLs() {
	h.signPhotos = true
}

func (h *UserHandler) presentUser(ctx context.Context, user *models.User) fiber.Map {
	response := userResponse(user)
	if !h.signPhotos || h.storageService == nil || user.PhotoURL == nil || *user.PhotoURL == "" {
		return response
	}
	signed, err := h.storageService.GetSignedURL(ctx, *user.PhotoURL)
	if err != nil {
		log.Printf("sign photo for user %d: %v", user.ID, err)
		response["foto_url"] = nil
		return response
	}
	response["foto_url"] = signed
	return response
}

type createUserRequest struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if validationErr := validateCreateUserRequest(&req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": validationErr})
	}

	existing, err := h.userRepo.GetByEmail(c.Context(), req.Email)
	if err == nil && existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Email already exists"})
	}
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to check email"})
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to hash password"})
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
	}
	if err := h.userRepo.CreateUser(c.Context(), user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Email already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create user"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": userResponse(user)})
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	page := parsePositiveInt(c.Query("page"), 1)
	limit := parsePositiveInt(c.Query("limit"), defaultPageLimit)
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	total, err := h.userRepo.Count(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to count users"})
	}
	users, err := h.userRepo.List(c.Context(), (page-1)*limit, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to list users"})
	}

	return c.JSON(fiber.Map{
		"users":      users,
		"pagination": buildPaginationMeta(page, limit, total),
	})
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid user id"})
	}
	if !canManage(c, id) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Forbidden"})
	}

	user, err := h.userRepo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch user"})
	}

	return c.JSON(fiber.Map{"user": h.presentUser(c.Context(), user)})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid user id"})
	}
	if !canManage(c, id) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Forbidden"})
	}

	user, err := h.userRepo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch user"})
	}

	if err := h.userRepo.Delete(c.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to delete user"})
	}

	if h.storageService != nil && user.PhotoURL != nil && *user.PhotoURL != "" {
		if err := h.storageService.DeleteFile(c.Context(), *user.PhotoURL); err != nil {
			log.Printf("delete photo for user %d: %v", id, err)
		}
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *UserHandler) UploadPhoto(c *fiber.Ctx) error {
	if h.storageService == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "Storage service is not configured"})
	}

	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid user id"})
	}
	if !canManage(c, id) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Forbidden"})
	}

	fileHeader, err := c.FormFile("foto")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "foto file is required"})
	}
	if fileHeader.Size <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "foto file is empty"})
	}
	if fileHeader.Size > maxPhotoSizeBytes {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "foto file exceeds 5MB limit"})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "foto must be a jpg, jpeg, png, or webp file"})
	}

	current, err := h.userRepo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch user"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to open foto file"})
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to read foto file"})
	}

	photoURL, err := h.storageService.UploadFile(c.Context(), content, services.PhotoObjectName(id, fileHeader.Filename), photoFolder)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "Failed to upload foto"})
	}

	user, err := h.userRepo.UpdatePhoto(c.Context(), id, &photoURL)
	if err != nil {
		if delErr := h.storageService.DeleteFile(c.Context(), photoURL); delErr != nil {
			log.Printf("delete orphaned photo for user %d: %v", id, delErr)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update user"})
	}

	// the row no longer references the old object
	if current.PhotoURL != nil && *current.PhotoURL != "" && *current.PhotoURL != photoURL {
		if err := h.storageService.DeleteFile(c.Context(), *current.PhotoURL); err != nil {
			log.Printf("delete previous photo for user %d: %v", id, err)
		}
	}

	response := h.presentUser(c.Context(), user)
	return c.JSON(fiber.Map{
		"foto_url": response["foto_url"],
		"user":     response,
	})
}
