package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"jobboard-backend/config"
	"jobboard-backend/controllers/authentication"
	"jobboard-backend/controllers/httpCors"
	jobhandlers "jobboard-backend/controllers/jobs"
	"jobboard-backend/controllers/recommendations"
	"jobboard-backend/models/jobs"
	"jobboard-backend/models/recommend"
	"jobboard-backend/models/users"
	"jobboard-backend/services/recommender"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // Порт по умолчанию
	}

	// Инициализируем базу данных
	if err := config.InitDB(); err != nil {
		log.Fatalf("Ошибка инициализации базы данных: %v", err)
	}

	// Выполняем миграцию базы данных
	err := config.DB.AutoMigrate(
		&users.User{},
		&users.UserProfile{},
		&jobs.Job{},
		&jobs.Application{},
		&recommend.JobRecommendation{},
	)
	if err != nil {
		log.Fatalf("Ошибка миграции базы данных: %v", err)
	}

	logger, err := config.NewLogger(os.Getenv("DEBUG") == "true")
	if err != nil {
		log.Fatalf("Ошибка инициализации логгера: %v", err)
	}
	defer logger.Sync()

	// Собираем конвейер рекомендаций
	store := recommender.NewStore(config.DB)
	client := recommender.NewAnthropicClient(os.Getenv("ANTHROPIC_API_KEY"))
	service := recommender.NewService(store, client, logger)
	presenter := recommender.NewPresenter(store)

	mux := http.NewServeMux()

	mux.HandleFunc("/register", authentication.Register)
	mux.HandleFunc("/login", authentication.Login)
	mux.HandleFunc("/logout", authentication.Logout)
	mux.HandleFunc("/profile", authentication.GetProfile)
	mux.HandleFunc("/profile/update", authentication.CompleteProfile)

	mux.HandleFunc("/jobs", jobhandlers.ListJobs)
	mux.HandleFunc("/api/post-job", jobhandlers.PostJob)
	mux.HandleFunc("/company/dashboard", jobhandlers.CompanyDashboard)
	mux.HandleFunc("/apply-job", jobhandlers.ApplyJob)
	mux.HandleFunc("/applications", jobhandlers.ListApplications)

	mux.HandleFunc("/job-recommendation", func(w http.ResponseWriter, r *http.Request) {
		recommendations.JobRecommendations(w, r, service, presenter)
	})

	handler := httpCors.CorsSettings().Handler(mux)

	// Запускаем сервер
	log.Printf("Сервер запущен на порту %s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
