// codista-cli is a terminal client for the Codista LMS API. It drives
// the same data-access layer the web client uses, so it keeps working
// against the bundled offline mirror when the server is down.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"codista_lms/client"
	"codista_lms/internal/model"
	"codista_lms/internal/quiz"
)

type cli struct {
	store   *client.Fallback
	scanner *bufio.Scanner
	session *client.Session

	// last listed courses and questions, for index-based commands
	courses   []model.Course
	questions []model.Question
}

func main() {
	server := flag.String("server", "http://localhost:5000", "API base URL")
	flag.Parse()

	dir, err := client.DataDir()
	if err != nil {
		log.Fatalf("Failed to prepare data directory: %v", err)
	}
	local, err := client.NewLocal(filepath.Join(dir, "local.db"))
	if err != nil {
		log.Fatalf("Failed to open local mirror: %v", err)
	}

	app := &cli{
		store:   client.NewFallback(client.NewRemote(*server), local),
		scanner: bufio.NewScanner(os.Stdin),
	}

	if session, err := client.LoadSession(); err == nil && session != nil {
		app.session = session
		app.store.Resume(session)
		fmt.Printf("Welcome back, %s.\n", session.User.Name)
	}

	fmt.Println("Codista LMS. Type 'help' for commands.")
	app.loop()
}

func (c *cli) loop() {
	for {
		fmt.Print("> ")
		if !c.scanner.Scan() {
			return
		}
		fields := strings.Fields(c.scanner.Text())
		if len(fields) == 0 {
			continue
		}

		ctx := context.Background()
		cmd, args := fields[0], fields[1:]
		switch cmd {
		case "help":
			c.printHelp()
		case "signup":
			c.signup(ctx)
		case "login":
			c.login(ctx)
		case "logout":
			c.logout()
		case "whoami":
			c.whoami()
		case "courses":
			c.listCourses(ctx)
		case "watch":
			c.watch(ctx, args)
		case "quiz":
			c.quiz(ctx, args)
		case "questions":
			c.listQuestions(ctx, args)
		case "ask":
			c.ask(ctx, args)
		case "reply":
			c.reply(ctx, args)
		case "progress":
			c.progress(ctx)
		case "create":
			c.createCourse(ctx)
		case "quit", "exit":
			return
		default:
			fmt.Printf("Unknown command %q. Type 'help'.\n", cmd)
		}
	}
}

func (c *cli) printHelp() {
	fmt.Print(`Commands:
  signup            register a new account
  login             sign in
  logout            drop the saved session
  whoami            show the current user
  courses           list the catalog
  watch N           mark course N's video as viewed
  quiz N            take the quiz for course N
  questions N       show the Q&A thread for course N
  ask N             post a question to course N
  reply N           reply to question N of the last thread (instructors)
  progress          show your progress
  create            add a course (instructors)
  quit              exit
`)
}

func (c *cli) prompt(label string) string {
	fmt.Printf("%s: ", label)
	if !c.scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(c.scanner.Text())
}

func (c *cli) signup(ctx context.Context) {
	params := client.SignupParams{
		Name:     c.prompt("Name"),
		Email:    c.prompt("Email"),
		Password: c.prompt("Password"),
		Role:     c.prompt("Role (student/instructor)"),
	}
	session, err := c.store.Signup(ctx, params)
	if err != nil {
		fmt.Println("Signup failed:", err)
		return
	}
	c.saveSession(session)
	fmt.Printf("Welcome, %s.\n", session.User.Name)
}

func (c *cli) login(ctx context.Context) {
	params := client.LoginParams{
		Email:    c.prompt("Email"),
		Password: c.prompt("Password"),
	}
	session, err := c.store.Login(ctx, params)
	if err != nil {
		fmt.Println("Login failed:", err)
		return
	}
	c.saveSession(session)
	fmt.Printf("Welcome, %s.\n", session.User.Name)
}

func (c *cli) saveSession(session *client.Session) {
	c.session = session
	if err := client.SaveSession(session); err != nil {
		fmt.Println("Warning: could not save session:", err)
	}
}

func (c *cli) logout() {
	c.session = nil
	if err := client.ClearSession(); err != nil {
		fmt.Println("Warning:", err)
	}
	fmt.Println("Logged out.")
}

func (c *cli) whoami() {
	if c.session == nil {
		fmt.Println("Not logged in.")
		return
	}
	user := c.session.User
	fmt.Printf("%s <%s> (%s)\n", user.Name, user.Email, user.Role)
}

func (c *cli) listCourses(ctx context.Context) {
	courses, err := c.store.Courses(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	c.courses = courses
	for i, course := range courses {
		fmt.Printf("%2d. [%s] %s by %s\n", i+1, course.Category, course.Title, course.InstructorName)
	}
}

// courseAt resolves a 1-based index into the last listed catalog,
// fetching the catalog first if needed.
func (c *cli) courseAt(ctx context.Context, args []string) (*model.Course, bool) {
	if len(c.courses) == 0 {
		courses, err := c.store.Courses(ctx)
		if err != nil {
			fmt.Println("Error:", err)
			return nil, false
		}
		c.courses = courses
	}
	if len(args) == 0 {
		fmt.Println("Which course? Give its number from 'courses'.")
		return nil, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(c.courses) {
		fmt.Println("No such course number.")
		return nil, false
	}
	return &c.courses[n-1], true
}

func (c *cli) watch(ctx context.Context, args []string) {
	course, ok := c.courseAt(ctx, args)
	if !ok {
		return
	}
	fmt.Printf("Video: %s\n", course.VideoURL)
	if _, err := c.store.MarkVideoViewed(ctx, course.ID); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Marked as viewed.")
}

func (c *cli) quiz(ctx context.Context, args []string) {
	course, ok := c.courseAt(ctx, args)
	if !ok {
		return
	}

	questions := quiz.ForCourse(course.Category, course.Title)
	answers := make(map[int]string, len(questions))
	for _, q := range questions {
		fmt.Printf("\n%s\n", q.Question)
		for i, option := range q.Options {
			fmt.Printf("  %d) %s\n", i+1, option)
		}
		pick := c.prompt("Answer (1-4)")
		if n, err := strconv.Atoi(pick); err == nil && n >= 1 && n <= len(q.Options) {
			answers[q.ID] = q.Options[n-1]
		}
	}

	score := quiz.Grade(questions, answers)
	fmt.Printf("\nYou scored %d/%d.\n", score, len(questions))

	result := client.QuizResult{CourseID: course.ID, Score: score, Total: len(questions)}
	if _, err := c.store.SaveQuizScore(ctx, result); err != nil {
		fmt.Println("Could not record the score:", err)
	}
}

func (c *cli) listQuestions(ctx context.Context, args []string) {
	course, ok := c.courseAt(ctx, args)
	if !ok {
		return
	}
	questions, err := c.store.Questions(ctx, course.ID)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	c.questions = questions
	if len(questions) == 0 {
		fmt.Println("No questions yet.")
		return
	}
	for i, q := range questions {
		fmt.Printf("%2d. %s asks: %s\n", i+1, q.UserName, q.Text)
		for _, reply := range q.Replies {
			fmt.Printf("      ↳ %s (%s): %s\n", reply.UserName, reply.UserRole, reply.Text)
		}
	}
}

func (c *cli) ask(ctx context.Context, args []string) {
	course, ok := c.courseAt(ctx, args)
	if !ok {
		return
	}
	text := c.prompt("Question")
	if text == "" {
		return
	}
	if _, err := c.store.AskQuestion(ctx, course.ID, text); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Posted.")
}

func (c *cli) reply(ctx context.Context, args []string) {
	if len(c.questions) == 0 {
		fmt.Println("List a thread with 'questions N' first.")
		return
	}
	if len(args) == 0 {
		fmt.Println("Which question? Give its number from the last thread.")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(c.questions) {
		fmt.Println("No such question number.")
		return
	}
	text := c.prompt("Reply")
	if text == "" {
		return
	}
	if _, err := c.store.ReplyToQuestion(ctx, c.questions[n-1].ID, text); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Replied.")
}

func (c *cli) progress(ctx context.Context) {
	entries, err := c.store.Progress(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if len(entries) == 0 {
		fmt.Println("No progress yet. Watch a video or take a quiz.")
		return
	}
	for _, entry := range entries {
		status := "not watched"
		if entry.VideoViewed {
			status = "watched"
		}
		score := "no quiz yet"
		if entry.QuizScore != nil && entry.TotalQuestions != nil {
			score = fmt.Sprintf("quiz %d/%d", *entry.QuizScore, *entry.TotalQuestions)
		}
		fmt.Printf("- %s [%s]: video %s, %s\n", entry.CourseTitle, entry.CourseCategory, status, score)
	}
}

func (c *cli) createCourse(ctx context.Context) {
	params := client.CourseParams{
		Title:       c.prompt("Title"),
		Description: c.prompt("Description"),
		VideoURL:    c.prompt("Video URL"),
		Category:    c.prompt("Category"),
	}
	course, err := c.store.CreateCourse(ctx, params)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Created %q (id %s).\n", course.Title, course.ID)
}
