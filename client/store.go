// Package client is the data-access layer used by the terminal UI. It
// exposes one Store interface with two implementations: Remote talks to
// the HTTP API, Local keeps a sqlite mirror seeded with the bundled
// course catalog. Fallback composes the two so the UI keeps working
// when the server is unreachable.
package client

import (
	"context"

	"codista_lms/internal/model"
)

// Credentials for the auth endpoints.
type SignupParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CourseParams struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoURL    string `json:"videoUrl"`
	Category    string `json:"category"`
}

type QuizResult struct {
	CourseID string `json:"courseId"`
	Score    int    `json:"score"`
	Total    int    `json:"total"`
}

// Session is what a successful signup or login yields.
type Session struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}

// Store is the read/write surface shared by the remote API and the
// local mirror. Every method maps to exactly one API operation.
type Store interface {
	Signup(ctx context.Context, params SignupParams) (*Session, error)
	Login(ctx context.Context, params LoginParams) (*Session, error)

	Courses(ctx context.Context) ([]model.Course, error)
	CreateCourse(ctx context.Context, params CourseParams) (*model.Course, error)

	Progress(ctx context.Context) ([]model.ProgressEntry, error)
	MarkVideoViewed(ctx context.Context, courseID string) (*model.Progress, error)
	SaveQuizScore(ctx context.Context, result QuizResult) (*model.Progress, error)

	Questions(ctx context.Context, courseID string) ([]model.Question, error)
	AskQuestion(ctx context.Context, courseID, text string) (*model.Question, error)
	ReplyToQuestion(ctx context.Context, questionID, text string) (*model.Reply, error)
}
