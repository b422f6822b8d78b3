package domain

import "time"

// MaturityLevel is the discrete label derived from a maturity score.
type MaturityLevel string

const (
	LevelBeginner     MaturityLevel = "Beginner"
	LevelDeveloping   MaturityLevel = "Developing"
	LevelIntermediate MaturityLevel = "Intermediate"
	LevelAdvanced     MaturityLevel = "Advanced"
)

// AssessmentResponse is one answered question. Score is expected on a 0-4
// scale; QuestionID and Answer are stored as sent.
type AssessmentResponse struct {
	QuestionID any     `json:"question_id,omitempty" bson:"question_id,omitempty"`
	Question   string  `json:"question,omitempty" bson:"question,omitempty"`
	Answer     any     `json:"answer,omitempty" bson:"answer,omitempty"`
	Score      float64 `json:"score" bson:"score"`
}

// AssessmentRecord is a completed AI-maturity self-assessment.
type AssessmentRecord struct {
	ID              string               `json:"id" bson:"id"`
	CompanyName     string               `json:"company_name,omitempty" bson:"company_name,omitempty"`
	Industry        string               `json:"industry,omitempty" bson:"industry,omitempty"`
	CompanySize     string               `json:"company_size,omitempty" bson:"company_size,omitempty"`
	CurrentAIUsage  string               `json:"current_ai_usage,omitempty" bson:"current_ai_usage,omitempty"`
	Email           string               `json:"email" bson:"email"`
	Responses       []AssessmentResponse `json:"responses" bson:"responses"`
	Score           float64              `json:"score" bson:"score"`
	Level           MaturityLevel        `json:"level" bson:"level"`
	Recommendations []string             `json:"recommendations" bson:"recommendations"`
	CompletedAt     time.Time            `json:"completed_at" bson:"completed_at"`
	Source          string               `json:"source" bson:"source"`
}
