package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/testvar-app/testvar-api/apperr"
	"github.com/testvar-app/testvar-api/models"
	"gorm.io/gorm"
)

// ListSets returns every set in insertion order.
func (db *DBHandler) ListSets(w http.ResponseWriter, r *http.Request) {
	sets := []models.Set{}
	if err := db.Order("id").Find(&sets).Error; err != nil {
		log.Printf("ListSets: query failed: %v", err)
		WriteError(w, apperr.Storage(err.Error()))
		return
	}

	WriteJSON(w, http.StatusOK, sets)
}

func (db *DBHandler) CreateSet(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		WriteError(w, apperr.Validation("Set name is required"))
		return
	}

	set := models.Set{Name: req.Name}
	if err := db.Create(&set).Error; err != nil {
		log.Printf("CreateSet: create failed: %v", err)
		WriteError(w, apperr.Storage(err.Error()))
		return
	}

	WriteJSON(w, http.StatusCreated, set)
}

// DeleteSet removes a set and all flashcards referencing it in one
// transaction. If the set row is missing, the flashcard deletes roll
// back too; deleting zero flashcards on its own is not an error.
func (db *DBHandler) DeleteSet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		WriteError(w, apperr.NotFound("Set not found"))
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("set_id = ?", id).Delete(&models.Flashcard{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Set{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperr.NotFound("Set not found")
		}
		return nil
	})
	if err != nil {
		var appErr *apperr.Error
		if !errors.As(err, &appErr) {
			log.Printf("DeleteSet: id=%d: %v", id, err)
		}
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Set and associated flashcards deleted successfully.",
		"id":      id,
	})
}
