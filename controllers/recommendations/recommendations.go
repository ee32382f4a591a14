package recommendations

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"jobboard-backend/controllers/authentication"
	"jobboard-backend/services/recommender"
)

type dashboardResponse struct {
	Status             string                       `json:"status"`
	Message            string                       `json:"message,omitempty"`
	HasRecommendations bool                         `json:"has_recommendations"`
	Recommendations    []recommender.DashboardEntry `json:"recommendations"`
}

// JobRecommendations обрабатывает дашборд рекомендаций: POST запускает
// генерацию, GET только показывает сохранённый набор. Сбой генерации —
// нефатальное уведомление, прежний набор остаётся на экране.
func JobRecommendations(w http.ResponseWriter, r *http.Request, svc *recommender.Service, pres *recommender.Presenter) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	claims, err := authentication.ValidateToken(r)
	if err != nil {
		http.Error(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
		return
	}

	status := "success"
	message := ""

	if r.Method == http.MethodPost {
		_, genErr := svc.Generate(r.Context(), claims.UserID)
		status, message = generationNotice(genErr)

		if genErr != nil && errors.Is(genErr, gorm.ErrRecordNotFound) {
			http.Error(w, "Complete your profile to get recommendations", http.StatusNotFound)
			return
		}
	}

	view, err := pres.BuildDashboard(claims.UserID)
	if err != nil {
		http.Error(w, "Failed to load recommendations", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dashboardResponse{
		Status:             status,
		Message:            message,
		HasRecommendations: view.HasRecommendations,
		Recommendations:    view.Recommendations,
	})
}

// generationNotice переводит типизированные ошибки конвейера в уведомления
func generationNotice(err error) (status, message string) {
	var formatErr *recommender.ResponseFormatError
	var transportErr *recommender.TransportError
	var persistErr *recommender.PersistenceError

	switch {
	case err == nil:
		return "success", "Job recommendations generated successfully!"
	case errors.Is(err, recommender.ErrNoJobs):
		return "warning", "No jobs available for recommendations"
	case errors.As(err, &transportErr):
		return "warning", "Recommendation service is unavailable, please try again later"
	case errors.As(err, &formatErr):
		return "error", "Error parsing AI response"
	case errors.As(err, &persistErr):
		return "error", "Failed to save recommendations, please try again"
	default:
		return "error", "Error generating recommendations"
	}
}
