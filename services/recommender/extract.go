package recommender

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"jobboard-backend/models/recommend"
)

// decodePayload разбирает сырой текст модели, перебирая стратегии по порядку:
// весь текст как JSON, срез между первой '{' и последней '}', fenced-блок.
func decodePayload(raw string) (map[string]any, error) {
	trimmed := strings.TrimSpace(raw)

	if data, ok := tryParse(trimmed); ok {
		return data, nil
	}

	if sliced := braceSlice(trimmed); sliced != "" {
		if data, ok := tryParse(sliced); ok {
			return data, nil
		}
	}

	if fenced := fencedBlock(trimmed); fenced != "" {
		if data, ok := tryParse(fenced); ok {
			return data, nil
		}
	}

	return nil, &ResponseFormatError{Reason: "response is not parseable JSON"}
}

func tryParse(s string) (map[string]any, bool) {
	var data map[string]any
	if err := json.Unmarshal([]byte(s), &data); err != nil {
		return nil, false
	}
	return data, true
}

// braceSlice отсекает комментарии модели до и после объекта
func braceSlice(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return ""
	}
	return s[start : end+1]
}

// fencedBlock достаёт содержимое блока ``` или ```json
func fencedBlock(s string) string {
	start := strings.Index(s, "```")
	if start == -1 {
		return ""
	}
	rest := s[start+3:]
	rest = strings.TrimPrefix(rest, "json")
	end := strings.Index(rest, "```")
	if end == -1 {
		return ""
	}
	return strings.TrimSpace(rest[:end])
}

// parseRecommendations валидирует полезную нагрузку: элементы без job_id или
// match_score пропускаются, нулевой остаток оставляет прежний набор нетронутым
func parseRecommendations(raw string, logger *zap.Logger) ([]recommend.JobRecommendation, error) {
	data, err := decodePayload(raw)
	if err != nil {
		return nil, err
	}

	list, ok := data["recommendations"].([]any)
	if !ok {
		return nil, &ResponseFormatError{Reason: "missing recommendations field"}
	}

	recs := make([]recommend.JobRecommendation, 0, len(list))
	skipped := 0

	for i, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			skipped++
			logger.Warn("skipping malformed recommendation entry", zap.Int("index", i))
			continue
		}

		jobID, okID := coerceUint(entry["job_id"])
		matchScore, okScore := coerceFloat(entry["match_score"])
		if !okID || !okScore {
			skipped++
			logger.Warn("skipping recommendation entry without job_id or match_score",
				zap.Int("index", i),
				zap.Bool("has_job_id", okID),
				zap.Bool("has_match_score", okScore),
			)
			continue
		}

		recs = append(recs, recommend.JobRecommendation{
			JobID:                jobID,
			MatchScore:           matchScore,
			SkillMatchScore:      optionalFloat(entry["skill_match_score"]),
			LocationMatchScore:   optionalFloat(entry["location_match_score"]),
			SalaryMatchScore:     optionalFloat(entry["salary_match_score"]),
			ExperienceMatchScore: optionalFloat(entry["experience_match_score"]),
			MatchReasons:         marshalBlob(entry["match_reasons"]),
			MissingSkills:        marshalBlob(entry["missing_skills"]),
		})
	}

	if len(recs) == 0 {
		return nil, &ResponseFormatError{Reason: "no valid recommendations in response"}
	}

	if skipped > 0 {
		logger.Warn("dropped invalid recommendation entries",
			zap.Int("skipped", skipped),
			zap.Int("kept", len(recs)),
		)
	}

	return recs, nil
}

func coerceFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Дробный job_id — это вакансия, которую модель не называла: пропускаем
func coerceUint(v any) (uint, bool) {
	f, ok := coerceFloat(v)
	if !ok || f < 0 || f != math.Trunc(f) {
		return 0, false
	}
	return uint(f), true
}

func optionalFloat(v any) *float64 {
	if f, ok := coerceFloat(v); ok {
		return &f
	}
	return nil
}

func marshalBlob(v any) datatypes.JSON {
	if v == nil {
		return nil
	}
	blob, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(blob)
}
