package handlers

import (
	"context"
	"sort"
	"strings"

	"github.com/Rodrigojesussilva/Sem-errar-sub001/internal/models"
	"github.com/Rodrigojesussilva/Sem-errar-sub001/pkg/utils"
	"github.com/jackc/pgx/v5"
)

type stubUserStore struct {
	users     map[int64]*models.User
	nextID    int64
	createErr error
	lookupErr error
	updateErr error
	deleted   []int64
}

func newStubUserStore(users ...*models.User) *stubUserStore {
	store := &stubUserStore{users: map[int64]*models.User{}}
	for _, user := range users {
		store.users[user.ID] = user
		if user.ID > store.nextID {
			store.nextID = user.ID
		}
	}
	return store
}

func mustUser(id int64, name, email, password string, admin bool) *models.User {
	hash, err := utils.HashPassword(password)
	if err != nil {
		panic(err)
	}
	return &models.User{ID: id, Name: name, Email: email, PasswordHash: hash, Admin: admin}
}

func (s *stubUserStore) CreateUser(_ context.Context, user *models.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.nextID++
	user.ID = s.nextID
	s.users[user.ID] = user
	return nil
}

func (s *stubUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	for _, user := range s.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *stubUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	if user, ok := s.users[id]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *stubUserStore) List(_ context.Context, offset, limit int) ([]models.User, error) {
	ids := make([]int64, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := []models.User{}
	for i := offset; i < len(ids) && len(out) < limit; i++ {
		out = append(out, *s.users[ids[i]])
	}
	return out, nil
}

func (s *stubUserStore) Count(_ context.Context) (int, error) {
	return len(s.users), nil
}

func (s *stubUserStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(s.users, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubUserStore) UpdatePhoto(_ context.Context, id int64, photoURL *string) (*models.User, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	user, ok := s.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	user.PhotoURL = photoURL
	return user, nil
}

type stubStorageService struct {
	uploadedFolder   string
	uploadedFilename string
	uploadedContent  []byte
	uploadedURL      string
	deletedURLs      []string
	signErr          error
}

func (s *stubStorageService) UploadFile(_ context.Context, content []byte, filename string, folder string) (string, error) {
	s.uploadedFilename = filename
	s.uploadedFolder = folder
	s.uploadedContent = content
	if s.uploadedURL == "" {
		s.uploadedURL = "https://storage.example/foto.png"
	}
	return s.uploadedURL, nil
}

func (s *stubStorageService) DeleteFile(_ context.Context, fileURL string) error {
	s.deletedURLs = append(s.deletedURLs, fileURL)
	return nil
}

func (s *stubStorageService) GetSignedURL(_ context.Context, fileURL string) (string, error) {
	if s.signErr != nil {
		return "", s.signErr
	}
	return fileURL + "?token=signed", nil
}
