package jobs

import (
	"encoding/json"
	"net/http"

	"jobboard-backend/config"
	"jobboard-backend/controllers/authentication"
	jobmodels "jobboard-backend/models/jobs"
	"jobboard-backend/models/users"
)

// ListJobs: все открытые вакансии для вкладки поиска
func ListJobs(w http.ResponseWriter, r *http.Request) {
	all, err := jobmodels.ListOpenJobs()
	if err != nil {
		http.Error(w, "Failed to fetch jobs", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(all)
}

// PostJob: публикация вакансии компанией
func PostJob(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	claims, err := authentication.ValidateToken(r)
	if err != nil {
		http.Error(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
		return
	}

	if claims.Role != users.RoleCompany {
		http.Error(w, "Only companies can post jobs", http.StatusForbidden)
		return
	}

	profile, err := users.GetProfileByUserID(claims.UserID)
	if err != nil {
		http.Error(w, "Complete your company profile first", http.StatusBadRequest)
		return
	}

	var job jobmodels.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	job.EmployerID = claims.UserID
	job.Company = profile.CompanyName
	if job.Requirements == "" {
		job.Requirements = "vacant for now"
	}

	if err := config.DB.Create(&job).Error; err != nil {
		http.Error(w, "Error creating job", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(job)
}

// CompanyDashboard: вакансии работодателя, новые сверху
func CompanyDashboard(w http.ResponseWriter, r *http.Request) {
	claims, err := authentication.ValidateToken(r)
	if err != nil {
		http.Error(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
		return
	}

	posted, err := jobmodels.ListByEmployer(claims.UserID)
	if err != nil {
		http.Error(w, "Failed to fetch jobs", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"jobs": posted,
	})
}

// ApplyJob: отклик на вакансию с защитой от повторной подачи
func ApplyJob(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	claims, err := authentication.ValidateToken(r)
	if err != nil {
		http.Error(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
		return
	}

	var input jobmodels.Application
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if _, err := jobmodels.GetJobByID(input.JobID); err != nil {
		http.Error(w, "Job not found", http.StatusNotFound)
		return
	}

	var existing jobmodels.Application
	if err := config.DB.Where("user_id = ? AND job_id = ?", claims.UserID, input.JobID).
		First(&existing).Error; err == nil {
		http.Error(w, "You have already applied to this job", http.StatusConflict)
		return
	}

	application := jobmodels.Application{
		UserID:      claims.UserID,
		JobID:       input.JobID,
		MatchScore:  90.0,
		CoverLetter: input.CoverLetter,
		ResumeURL:   input.ResumeURL,
	}

	if err := config.DB.Create(&application).Error; err != nil {
		http.Error(w, "Failed to submit application", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"message": "Application submitted successfully"})
}

// ListApplications: отклики текущего пользователя
func ListApplications(w http.ResponseWriter, r *http.Request) {
	claims, err := authentication.ValidateToken(r)
	if err != nil {
		http.Error(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
		return
	}

	var applications []jobmodels.Application
	if err := config.DB.Preload("Job").
		Where("user_id = ?", claims.UserID).
		Order("applied_at DESC").
		Find(&applications).Error; err != nil {
		http.Error(w, "Failed to fetch applications", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(applications)
}
