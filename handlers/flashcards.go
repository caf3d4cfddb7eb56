package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/testvar-app/testvar-api/apperr"
	"github.com/testvar-app/testvar-api/models"
)

// ListFlashcards returns every flashcard joined with its set's name.
// set_name is null for unassigned cards.
func (db *DBHandler) ListFlashcards(w http.ResponseWriter, r *http.Request) {
	type flashcardRow struct {
		ID       uint    `json:"id"`
		Question string  `json:"question"`
		Answer   string  `json:"answer"`
		SetID    *uint   `json:"set_id"`
		SetName  *string `json:"set_name"`
	}

	rows := []flashcardRow{}
	err := db.Model(&models.Flashcard{}).
		Select("flashcards.id, flashcards.question, flashcards.answer, flashcards.set_id, sets.name AS set_name").
		Joins("LEFT JOIN sets ON sets.id = flashcards.set_id").
		Order("flashcards.id").
		Scan(&rows).Error
	if err != nil {
		log.Printf("ListFlashcards: query failed: %v", err)
		WriteError(w, apperr.Storage(err.Error()))
		return
	}

	WriteJSON(w, http.StatusOK, rows)
}

// CreateFlashcard inserts a card. set_id is optional and stored as null
// when absent or zero; no existence check is made against sets.
func (db *DBHandler) CreateFlashcard(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
		SetID    *uint  `json:"set_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Question == "" || req.Answer == "" {
		WriteError(w, apperr.Validation("Both question and answer are required."))
		return
	}

	flashcard := models.Flashcard{Question: req.Question, Answer: req.Answer}
	if req.SetID != nil && *req.SetID != 0 {
		flashcard.SetID = req.SetID
	}

	if err := db.Create(&flashcard).Error; err != nil {
		log.Printf("CreateFlashcard: create failed: %v", err)
		WriteError(w, apperr.Storage(err.Error()))
		return
	}

	WriteJSON(w, http.StatusOK, flashcard)
}

func (db *DBHandler) DeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		WriteError(w, apperr.NotFound("Flashcard not found."))
		return
	}

	result := db.Delete(&models.Flashcard{}, id)
	if result.Error != nil {
		log.Printf("DeleteFlashcard: id=%d: %v", id, result.Error)
		WriteError(w, apperr.Storage(result.Error.Error()))
		return
	}
	if result.RowsAffected == 0 {
		WriteError(w, apperr.NotFound("Flashcard not found."))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Flashcard deleted successfully.",
		"id":      id,
	})
}
