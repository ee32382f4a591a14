package authentication

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"jobboard-backend/config"
	"jobboard-backend/models/users"
)

// GetProfile: анкета текущего пользователя по токену
func GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, err := ValidateToken(r)
	if err != nil {
		http.Error(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
		return
	}

	var user users.User
	if err := config.DB.Preload("Profile").First(&user, claims.UserID).Error; err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

// CompleteProfile: заполнение или обновление анкеты после регистрации
func CompleteProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	claims, err := ValidateToken(r)
	if err != nil {
		http.Error(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
		return
	}

	var input users.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	var profile users.UserProfile
	err = config.DB.Where("user_id = ?", claims.UserID).First(&profile).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		input.UserID = claims.UserID
		input.Role = claims.Role
		if err := config.DB.Create(&input).Error; err != nil {
			http.Error(w, "Error creating profile", http.StatusInternalServerError)
			return
		}
		profile = input
	case err != nil:
		http.Error(w, "Error loading profile", http.StatusInternalServerError)
		return
	default:
		profile.FullName = input.FullName
		profile.Location = input.Location
		profile.CompanyName = input.CompanyName
		profile.Skills = input.Skills
		profile.Bio = input.Bio
		profile.ExperienceYears = input.ExperienceYears
		profile.Certification = input.Certification
		profile.SalaryRange = input.SalaryRange
		if err := config.DB.Save(&profile).Error; err != nil {
			http.Error(w, "Error updating profile", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}
