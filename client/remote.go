package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"codista_lms/internal/model"
)

// APIError is a response the server actually produced: a 4xx or 5xx
// with a {message} body. Anything else returned by a Remote method is
// a transport failure and means the server was never reached.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Remote implements Store against the HTTP API.
type Remote struct {
	BaseURL    string
	HTTPClient *http.Client

	token string
}

func NewRemote(baseURL string) *Remote {
	return &Remote{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken attaches a bearer token to every subsequent request.
func (r *Remote) SetToken(token string) {
	r.token = token
}

func (r *Remote) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errBody struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err != nil || errBody.Message == "" {
			errBody.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: errBody.Message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (r *Remote) Signup(ctx context.Context, params SignupParams) (*Session, error) {
	var session Session
	if err := r.do(ctx, http.MethodPost, "/api/auth/signup", params, &session); err != nil {
		return nil, err
	}
	r.SetToken(session.Token)
	return &session, nil
}

func (r *Remote) Login(ctx context.Context, params LoginParams) (*Session, error) {
	var session Session
	if err := r.do(ctx, http.MethodPost, "/api/auth/login", params, &session); err != nil {
		return nil, err
	}
	r.SetToken(session.Token)
	return &session, nil
}

func (r *Remote) Courses(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	if err := r.do(ctx, http.MethodGet, "/api/courses", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *Remote) CreateCourse(ctx context.Context, params CourseParams) (*model.Course, error) {
	var course model.Course
	if err := r.do(ctx, http.MethodPost, "/api/courses", params, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *Remote) Progress(ctx context.Context) ([]model.ProgressEntry, error) {
	var entries []model.ProgressEntry
	if err := r.do(ctx, http.MethodGet, "/api/progress", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *Remote) MarkVideoViewed(ctx context.Context, courseID string) (*model.Progress, error) {
	var progress model.Progress
	body := map[string]string{"courseId": courseID}
	if err := r.do(ctx, http.MethodPost, "/api/progress/video", body, &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *Remote) SaveQuizScore(ctx context.Context, result QuizResult) (*model.Progress, error) {
	var progress model.Progress
	if err := r.do(ctx, http.MethodPost, "/api/progress/quiz", result, &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *Remote) Questions(ctx context.Context, courseID string) ([]model.Question, error) {
	var questions []model.Question
	if err := r.do(ctx, http.MethodGet, "/api/questions/"+courseID, nil, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *Remote) AskQuestion(ctx context.Context, courseID, text string) (*model.Question, error) {
	var question model.Question
	body := map[string]string{"courseId": courseID, "text": text}
	if err := r.do(ctx, http.MethodPost, "/api/questions", body, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *Remote) ReplyToQuestion(ctx context.Context, questionID, text string) (*model.Reply, error) {
	var reply model.Reply
	body := map[string]string{"text": text}
	if err := r.do(ctx, http.MethodPost, "/api/questions/"+questionID+"/reply", body, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
