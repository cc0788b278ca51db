package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"codista_lms/internal/model"
	"codista_lms/pkg/database"
)

// Local implements Store against a sqlite mirror under the user's home
// directory. It is seeded with the bundled course catalog on first
// open, so offline reads show the same demo content the server would.
// Records created here are never pushed back to the server.
type Local struct {
	db   *gorm.DB
	user *model.User
}

// DataDir is where the mirror database and the saved session live.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".codista")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

func NewLocal(path string) (*Local, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Progress{},
		&model.Question{},
		&model.Reply{},
	); err != nil {
		return nil, err
	}

	local := &Local{db: db}
	if err := local.seed(); err != nil {
		return nil, err
	}
	return local, nil
}

// seed inserts the bundled catalog once, spacing creation times so the
// newest-first ordering matches the server's.
func (l *Local) seed() error {
	var count int64
	if err := l.db.Model(&model.Course{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	base := time.Now().Add(-time.Duration(len(database.SeedCourses)) * time.Second)
	for i, seed := range database.SeedCourses {
		course := seed
		course.ID = model.GenerateUUID()
		course.CreatedAt = base.Add(time.Duration(i) * time.Second)
		course.UpdatedAt = course.CreatedAt
		if err := l.db.Create(&course).Error; err != nil {
			return err
		}
	}
	return nil
}

// SetUser tells the mirror who the caller is. Progress and question
// writes need it; reads of the catalog do not.
func (l *Local) SetUser(user *model.User) {
	l.user = user
}

func (l *Local) currentUser() (*model.User, error) {
	if l.user == nil {
		return nil, errors.New("no local session")
	}
	return l.user, nil
}

func (l *Local) Signup(ctx context.Context, params SignupParams) (*Session, error) {
	var existing model.User
	err := l.db.WithContext(ctx).Where("email = ?", params.Email).First(&existing).Error
	if err == nil {
		return nil, errors.New("User already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Name:     params.Name,
		Email:    params.Email,
		Password: string(hashed),
		Role:     model.UserRole(params.Role),
	}
	if err := l.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}

	l.user = &user
	return &Session{User: user, Token: localToken()}, nil
}

// Login verifies against locally stored accounts, and fabricates a
// student account for unknown emails so the demo works with no state.
func (l *Local) Login(ctx context.Context, params LoginParams) (*Session, error) {
	var user model.User
	err := l.db.WithContext(ctx).Where("email = ?", params.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hashed, hashErr := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			return nil, hashErr
		}
		user = model.User{
			Name:     nameFromEmail(params.Email),
			Email:    params.Email,
			Password: string(hashed),
			Role:     model.Student,
		}
		if err := l.db.WithContext(ctx).Create(&user).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	} else if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(params.Password)) != nil {
		return nil, errors.New("Invalid credentials")
	}

	l.user = &user
	return &Session{User: user, Token: localToken()}, nil
}

func (l *Local) Courses(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	err := l.db.WithContext(ctx).Order("created_at DESC").Find(&courses).Error
	return courses, err
}

func (l *Local) CreateCourse(ctx context.Context, params CourseParams) (*model.Course, error) {
	user, err := l.currentUser()
	if err != nil {
		return nil, err
	}

	course := model.Course{
		Title:          params.Title,
		Description:    params.Description,
		VideoURL:       params.VideoURL,
		Category:       params.Category,
		InstructorID:   user.ID,
		InstructorName: user.Name,
	}
	if err := l.db.WithContext(ctx).Create(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (l *Local) Progress(ctx context.Context) ([]model.ProgressEntry, error) {
	user, err := l.currentUser()
	if err != nil {
		return nil, err
	}

	var rows []model.Progress
	if err := l.db.WithContext(ctx).
		Where("user_id = ?", user.ID).
		Order("last_accessed DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]model.ProgressEntry, 0, len(rows))
	for _, row := range rows {
		var course model.Course
		if err := l.db.WithContext(ctx).First(&course, "id = ?", row.CourseID).Error; err != nil {
			continue
		}
		entries = append(entries, model.ProgressEntry{
			ID:             row.ID,
			CourseID:       row.CourseID,
			CourseTitle:    course.Title,
			CourseCategory: course.Category,
			VideoViewed:    row.VideoViewed,
			QuizScore:      row.QuizScore,
			TotalQuestions: row.TotalQuestions,
			LastAccessed:   row.LastAccessed,
		})
	}
	return entries, nil
}

func (l *Local) MarkVideoViewed(ctx context.Context, courseID string) (*model.Progress, error) {
	return l.upsertProgress(ctx, courseID, func(p *model.Progress) {
		p.VideoViewed = true
	})
}

func (l *Local) SaveQuizScore(ctx context.Context, result QuizResult) (*model.Progress, error) {
	return l.upsertProgress(ctx, result.CourseID, func(p *model.Progress) {
		score, total := result.Score, result.Total
		p.QuizScore = &score
		p.TotalQuestions = &total
	})
}

func (l *Local) upsertProgress(ctx context.Context, courseID string, apply func(*model.Progress)) (*model.Progress, error) {
	user, err := l.currentUser()
	if err != nil {
		return nil, err
	}

	var progress model.Progress
	err = l.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", user.ID, courseID).
		First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = model.Progress{UserID: user.ID, CourseID: courseID}
	} else if err != nil {
		return nil, err
	}

	apply(&progress)
	progress.LastAccessed = time.Now()
	if err := l.db.WithContext(ctx).Save(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

func (l *Local) Questions(ctx context.Context, courseID string) ([]model.Question, error) {
	questions := []model.Question{}
	err := l.db.WithContext(ctx).
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("course_id = ?", courseID).
		Order("created_at DESC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	for i := range questions {
		if questions[i].Replies == nil {
			questions[i].Replies = []model.Reply{}
		}
	}
	return questions, nil
}

func (l *Local) AskQuestion(ctx context.Context, courseID, text string) (*model.Question, error) {
	user, err := l.currentUser()
	if err != nil {
		return nil, err
	}

	question := model.Question{
		CourseID: courseID,
		UserID:   user.ID,
		UserName: user.Name,
		Text:     text,
		Replies:  []model.Reply{},
	}
	if err := l.db.WithContext(ctx).Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// ReplyToQuestion mirrors the server's role gate so a student cannot
// fabricate an instructor reply offline.
func (l *Local) ReplyToQuestion(ctx context.Context, questionID, text string) (*model.Reply, error) {
	user, err := l.currentUser()
	if err != nil {
		return nil, err
	}
	if user.Role != model.Instructor {
		return nil, errors.New("Only instructors can reply to questions.")
	}

	var question model.Question
	if err := l.db.WithContext(ctx).First(&question, "id = ?", questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("Question not found")
		}
		return nil, err
	}

	reply := model.Reply{
		QuestionID: question.ID,
		UserID:     user.ID,
		UserName:   user.Name,
		UserRole:   user.Role,
		Text:       text,
	}
	if err := l.db.WithContext(ctx).Create(&reply).Error; err != nil {
		return nil, err
	}
	return &reply, nil
}

func localToken() string {
	return "local-" + model.GenerateUUID()
}

func nameFromEmail(email string) string {
	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}
	return fmt.Sprintf("%s (offline)", name)
}
