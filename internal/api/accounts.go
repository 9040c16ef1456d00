package api

import (
	"errors"
	"log/slog"
	"net/http"

	"gorm.io/gorm"

	"sanctomind-backend/internal/database"
	"sanctomind-backend/pkg/api"
)

func (s *BackendService) CreateAccount(r *http.Request) (any, error) {
	req, err := ParseRequest[api.CreateAccountRequest](r)
	if err != nil {
		return nil, err
	}

	if req.Username == "" || req.EmailPhone == "" || req.Password == "" {
		return nil, CodedErrorf(http.StatusBadRequest, "All fields are required.")
	}

	user := database.User{
		Username:     req.Username,
		EmailPhone:   req.EmailPhone,
		PasswordHash: req.Password,
	}

	if err := s.db.WithContext(r.Context()).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, CodedErrorf(http.StatusBadRequest, "Email/Phone already exists.")
		}
		slog.Error("error creating account", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "Failed to create account.")
	}

	return api.MessageResponse{Message: "Account created successfully!"}, nil
}

// Login reports the same message for an unknown username and a wrong
// password so the response does not reveal which factor failed.
func (s *BackendService) Login(r *http.Request) (any, error) {
	req, err := ParseRequest[api.LoginRequest](r)
	if err != nil {
		return nil, err
	}

	if req.Username == "" || req.Password == "" {
		return nil, CodedErrorf(http.StatusBadRequest, "Username and password are required.")
	}

	var user database.User
	err = s.db.WithContext(r.Context()).
		Where(`"Username" = ?`, req.Username).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, CodedErrorf(http.StatusUnauthorized, "Invalid username or password.")
		}
		slog.Error("error querying user", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "Failed to login.")
	}

	if user.PasswordHash != req.Password {
		return nil, CodedErrorf(http.StatusUnauthorized, "Invalid username or password.")
	}

	return api.LoginResponse{Success: true, Message: "Login successful!", UserID: user.UserID}, nil
}
