package services

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/sayalimunde/mini-lms/internal/models"
	"github.com/sayalimunde/mini-lms/internal/ordering"
	repo "github.com/sayalimunde/mini-lms/internal/repository"
	"github.com/sayalimunde/mini-lms/internal/session"
)

// In-memory repository fakes. Batch operations hit these concurrently, so
// every method locks.

type fakeCourses struct {
	mu      sync.Mutex
	seq     int
	courses map[string]models.Course
}

func newFakeCourses() *fakeCourses {
	return &fakeCourses{courses: map[string]models.Course{}}
}

func (f *fakeCourses) Create(_ context.Context, c models.Course) (models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	c.ID = "c" + strconv.Itoa(f.seq)
	c.CreatedAt = int64(f.seq)
	c.UpdatedAt = c.CreatedAt
	f.courses[c.ID] = c
	return c, nil
}

func (f *fakeCourses) Get(_ context.Context, id string) (models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.courses[id]
	if !ok {
		return models.Course{}, repo.ErrNotFound
	}
	return c, nil
}

func (f *fakeCourses) ListByInstructor(_ context.Context, instructorID string) ([]models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Course{}
	for _, c := range f.courses {
		if c.CreatedBy == instructorID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (f *fakeCourses) ListAll(_ context.Context) ([]models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Course{}
	for _, c := range f.courses {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCourses) Update(_ context.Context, id string, p models.CoursePatch) (models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.courses[id]
	if !ok {
		return models.Course{}, repo.ErrNotFound
	}
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Category != nil {
		c.Category = *p.Category
	}
	c.UpdatedAt = time.Now().UnixMilli()
	f.courses[id] = c
	return c, nil
}

func (f *fakeCourses) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.courses[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.courses, id)
	return nil
}

type fakeLessons struct {
	mu      sync.Mutex
	seq     int
	lessons map[string]models.Lesson

	failDelete map[string]error // lesson id -> injected delete error
	failOrder  map[string]error // lesson id -> injected UpdateOrder error
	listErr    error
}

func newFakeLessons() *fakeLessons {
	return &fakeLessons{
		lessons:    map[string]models.Lesson{},
		failDelete: map[string]error{},
		failOrder:  map[string]error{},
	}
}

func (f *fakeLessons) Create(_ context.Context, l models.Lesson) (models.Lesson, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	l.ID = "l" + strconv.Itoa(f.seq)
	l.CreatedAt = int64(f.seq)
	l.UpdatedAt = l.CreatedAt
	f.lessons[l.ID] = l
	return l, nil
}

func (f *fakeLessons) Get(_ context.Context, id string) (models.Lesson, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.lessons[id]
	if !ok {
		return models.Lesson{}, repo.ErrNotFound
	}
	return l, nil
}

func (f *fakeLessons) ListByCourse(_ context.Context, courseID string) ([]models.Lesson, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []models.Lesson{}
	for _, l := range f.lessons {
		if l.CourseID == courseID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeLessons) Update(_ context.Context, id string, p models.LessonPatch) (models.Lesson, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.lessons[id]
	if !ok {
		return models.Lesson{}, repo.ErrNotFound
	}
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.VideoURL != nil {
		l.VideoURL = *p.VideoURL
	}
	if p.Content != nil {
		l.Content = *p.Content
	}
	l.UpdatedAt = time.Now().UnixMilli()
	f.lessons[id] = l
	return l, nil
}

func (f *fakeLessons) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failDelete[id]; err != nil {
		return err
	}
	if _, ok := f.lessons[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.lessons, id)
	return nil
}

func (f *fakeLessons) UpdateOrder(_ context.Context, a ordering.Assignment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failOrder[a.ID]; err != nil {
		return err
	}
	l, ok := f.lessons[a.ID]
	if !ok {
		return repo.ErrNotFound
	}
	l.Order = a.Order
	l.UpdatedAt = time.Now().UnixMilli()
	f.lessons[a.ID] = l
	return nil
}

type fakeUsers struct {
	mu    sync.Mutex
	seq   int
	users map[string]models.User // by id
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[string]models.User{}}
}

func (f *fakeUsers) Create(_ context.Context, email, displayName, passwordHash string, role models.Role) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	u := models.User{
		ID:           "u" + strconv.Itoa(f.seq),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now().UnixMilli(),
	}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return models.User{}, repo.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repo.ErrNotFound
}

type fakeSessions struct {
	mu     sync.Mutex
	tokens map[string]string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{tokens: map[string]string{}}
}

func (f *fakeSessions) Save(_ context.Context, token, userID string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[token] = userID
	return nil
}

func (f *fakeSessions) Check(_ context.Context, token string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	uid, ok := f.tokens[token]
	if !ok {
		return "", session.ErrNotFound
	}
	return uid, nil
}

func (f *fakeSessions) Delete(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tokens, token)
	return nil
}
