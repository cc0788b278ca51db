package client

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"codista_lms/internal/model"
	"codista_lms/pkg/logger"
)

// Fallback is the connectivity-aware strategy: every call goes to the
// remote API first, and only a transport failure switches the call to
// the local mirror. A response the server actually produced, including
// rejections like a failed login, is surfaced unchanged.
//
// The mirror is a one-way convenience. Records fabricated offline stay
// local; nothing reconciles them with the server later.
type Fallback struct {
	Remote *Remote
	Local  *Local
}

func NewFallback(remote *Remote, local *Local) *Fallback {
	return &Fallback{Remote: remote, Local: local}
}

// IsConnectivityError reports whether err means the server was never
// reached, as opposed to an API rejection.
func IsConnectivityError(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *APIError
	return !errors.As(err, &apiErr)
}

func fallback[T any](remote func() (T, error), local func() (T, error)) (T, error) {
	result, err := remote()
	if err == nil || !IsConnectivityError(err) {
		return result, err
	}
	logger.Log.Debug("server unreachable, using local mirror", zap.Error(err))
	return local()
}

func (f *Fallback) Signup(ctx context.Context, params SignupParams) (*Session, error) {
	session, err := fallback(
		func() (*Session, error) { return f.Remote.Signup(ctx, params) },
		func() (*Session, error) { return f.Local.Signup(ctx, params) },
	)
	if err == nil {
		f.Local.SetUser(&session.User)
	}
	return session, err
}

func (f *Fallback) Login(ctx context.Context, params LoginParams) (*Session, error) {
	session, err := fallback(
		func() (*Session, error) { return f.Remote.Login(ctx, params) },
		func() (*Session, error) { return f.Local.Login(ctx, params) },
	)
	if err == nil {
		f.Local.SetUser(&session.User)
	}
	return session, err
}

// Resume restores a previously saved session on both sides.
func (f *Fallback) Resume(session *Session) {
	f.Remote.SetToken(session.Token)
	f.Local.SetUser(&session.User)
}

func (f *Fallback) Courses(ctx context.Context) ([]model.Course, error) {
	return fallback(
		func() ([]model.Course, error) { return f.Remote.Courses(ctx) },
		func() ([]model.Course, error) { return f.Local.Courses(ctx) },
	)
}

func (f *Fallback) CreateCourse(ctx context.Context, params CourseParams) (*model.Course, error) {
	return fallback(
		func() (*model.Course, error) { return f.Remote.CreateCourse(ctx, params) },
		func() (*model.Course, error) { return f.Local.CreateCourse(ctx, params) },
	)
}

func (f *Fallback) Progress(ctx context.Context) ([]model.ProgressEntry, error) {
	return fallback(
		func() ([]model.ProgressEntry, error) { return f.Remote.Progress(ctx) },
		func() ([]model.ProgressEntry, error) { return f.Local.Progress(ctx) },
	)
}

func (f *Fallback) MarkVideoViewed(ctx context.Context, courseID string) (*model.Progress, error) {
	return fallback(
		func() (*model.Progress, error) { return f.Remote.MarkVideoViewed(ctx, courseID) },
		func() (*model.Progress, error) { return f.Local.MarkVideoViewed(ctx, courseID) },
	)
}

func (f *Fallback) SaveQuizScore(ctx context.Context, result QuizResult) (*model.Progress, error) {
	return fallback(
		func() (*model.Progress, error) { return f.Remote.SaveQuizScore(ctx, result) },
		func() (*model.Progress, error) { return f.Local.SaveQuizScore(ctx, result) },
	)
}

func (f *Fallback) Questions(ctx context.Context, courseID string) ([]model.Question, error) {
	return fallback(
		func() ([]model.Question, error) { return f.Remote.Questions(ctx, courseID) },
		func() ([]model.Question, error) { return f.Local.Questions(ctx, courseID) },
	)
}

func (f *Fallback) AskQuestion(ctx context.Context, courseID, text string) (*model.Question, error) {
	return fallback(
		func() (*model.Question, error) { return f.Remote.AskQuestion(ctx, courseID, text) },
		func() (*model.Question, error) { return f.Local.AskQuestion(ctx, courseID, text) },
	)
}

func (f *Fallback) ReplyToQuestion(ctx context.Context, questionID, text string) (*model.Reply, error) {
	return fallback(
		func() (*model.Reply, error) { return f.Remote.ReplyToQuestion(ctx, questionID, text) },
		func() (*model.Reply, error) { return f.Local.ReplyToQuestion(ctx, questionID, text) },
	)
}
