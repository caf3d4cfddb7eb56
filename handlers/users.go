package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/testvar-app/testvar-api/apperr"
	"github.com/testvar-app/testvar-api/auth"
	"github.com/testvar-app/testvar-api/models"
	"github.com/testvar-app/testvar-api/utils"
	"gorm.io/gorm"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup creates a new account. Uniqueness is enforced by the database
// constraint on insert, not a lookup first, so two concurrent signups
// for the same username cannot both succeed.
func (db *DBHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apperr.Validation("Username and password are required"))
		return
	}

	if req.Username == "" || req.Password == "" {
		WriteError(w, apperr.Validation("Username and password are required"))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("Signup: hashing failed: %v", err)
		WriteError(w, apperr.Storage("Failed to create user"))
		return
	}

	user := models.User{Username: req.Username, PasswordHash: hash}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			WriteError(w, apperr.Conflict("Username already exists"))
			return
		}
		log.Printf("Signup: create failed: %v", err)
		WriteError(w, apperr.Storage("Failed to create user"))
		return
	}

	WriteJSON(w, http.StatusCreated, user)
}

// Login verifies credentials and issues a signed one-hour token.
func (db *DBHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apperr.Validation("Username and password are required"))
		return
	}

	if req.Username == "" || req.Password == "" {
		WriteError(w, apperr.Validation("Username and password are required"))
		return
	}

	var user models.User
	result := db.Where("username = ?", req.Username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			WriteError(w, apperr.BadCredentials())
			return
		}
		log.Printf("Login: lookup failed: %v", result.Error)
		WriteError(w, apperr.Storage("Database error during login"))
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		WriteError(w, apperr.BadCredentials())
		return
	}

	token, err := auth.CreateToken(db.Secret, user.ID, user.Username)
	if err != nil {
		log.Printf("Login: token generation failed: %v", err)
		WriteError(w, apperr.Storage("Failed to generate token"))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"user":  user,
		"token": token,
	})
}

// Me returns the authenticated user's profile, re-read from storage so a
// deleted account does not keep answering from stale claims.
func (db *DBHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaims(r)
	if !ok {
		WriteError(w, apperr.Unauthorized("Access Denied"))
		return
	}

	var user models.User
	if err := db.First(&user, claims.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			WriteError(w, apperr.NotFound("User not found"))
			return
		}
		log.Printf("Me: lookup failed: %v", err)
		WriteError(w, apperr.Storage("Database error during fetching user"))
		return
	}

	WriteJSON(w, http.StatusOK, user)
}
