package domain

import "time"

// ScoreType classifies an assessment.
type ScoreType string

const (
	ScoreExam       ScoreType = "exam"
	ScoreQuiz       ScoreType = "quiz"
	ScoreAssignment ScoreType = "assignment"
	ScoreProject    ScoreType = "project"
)

// Score records one assessment result for a student.
type Score struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	StudentID string    `json:"student_id" bson:"student_id"`
	Subject   string    `json:"subject" bson:"subject"`
	Value     float64   `json:"score_value" bson:"score_value"`
	MaxScore  float64   `json:"max_score" bson:"max_score"`
	Type      ScoreType `json:"score_type" bson:"score_type"`
	Date      time.Time `json:"date" bson:"date"`
	TeacherID string    `json:"teacher_id" bson:"teacher_id"`
	Comments  string    `json:"comments,omitempty" bson:"comments,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
