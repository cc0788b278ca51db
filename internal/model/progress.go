package model

import "time"

// Progress tracks one user's state in one course. The composite index
// guarantees at most one row per (user, course) pair. QuizScore and
// TotalQuestions stay nil until the first quiz submission.
type Progress struct {
	UUIDBase
	UserID         uint      `gorm:"uniqueIndex:idx_user_course;not null" json:"userId"`
	CourseID       string    `gorm:"uniqueIndex:idx_user_course;type:varchar(36);not null" json:"courseId"`
	VideoViewed    bool      `gorm:"default:false" json:"videoViewed"`
	QuizScore      *int      `json:"quizScore"`
	TotalQuestions *int      `json:"totalQuestions"`
	LastAccessed   time.Time `json:"lastAccessed"`
}

func (Progress) TableName() string {
	return "progress"
}

// ProgressEntry is the listing shape: a progress row enriched with the
// linked course's title and category.
type ProgressEntry struct {
	ID             string    `json:"id"`
	CourseID       string    `json:"courseId"`
	CourseTitle    string    `json:"courseTitle"`
	CourseCategory string    `json:"courseCategory"`
	VideoViewed    bool      `json:"videoViewed"`
	QuizScore      *int      `json:"quizScore"`
	TotalQuestions *int      `json:"totalQuestions"`
	LastAccessed   time.Time `json:"lastAccessed"`
}
