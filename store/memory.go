package store

import (
	"sync"

	"exam-question-categorizer/models"
)

// Memory keeps every table in process memory. Records are copied in and out
// so callers never share state with the store.
type Memory struct {
	mu        sync.RWMutex
	years     []models.Year
	examTypes []models.ExamType
	subjects  []models.Subject
	keywords  []models.Keyword
	questions []models.Question
	users     []models.User
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) AddYear(year *models.Year) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	year.Id = int64(len(m.years) + 1)
	m.years = append(m.years, *year)
	return nil
}

func (m *Memory) AddExamType(examType *models.ExamType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	examType.Id = int64(len(m.examTypes) + 1)
	m.examTypes = append(m.examTypes, *examType)
	return nil
}

func (m *Memory) AddSubject(subject *models.Subject) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	subject.Id = int64(len(m.subjects) + 1)
	m.subjects = append(m.subjects, *subject)
	return nil
}

func (m *Memory) AddKeyword(keyword *models.Keyword) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	keyword.Id = int64(len(m.keywords) + 1)
	m.keywords = append(m.keywords, *keyword)
	return nil
}

func (m *Memory) AddQuestion(question *models.Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	question.Id = int64(len(m.questions) + 1)
	m.questions = append(m.questions, *question)
	return nil
}

func (m *Memory) AddUser(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == user.Username {
			return ErrDuplicate
		}
	}
	user.Id = int64(len(m.users) + 1)
	m.users = append(m.users, *user)
	return nil
}

func (m *Memory) Years() ([]models.Year, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append(make([]models.Year, 0, len(m.years)), m.years...), nil
}

func (m *Memory) ExamTypes() ([]models.ExamType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append(make([]models.ExamType, 0, len(m.examTypes)), m.examTypes...), nil
}

func (m *Memory) Subjects() ([]models.Subject, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append(make([]models.Subject, 0, len(m.subjects)), m.subjects...), nil
}

func (m *Memory) Keywords() ([]models.Keyword, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append(make([]models.Keyword, 0, len(m.keywords)), m.keywords...), nil
}

// Ids are assigned sequentially from 1, so a record's Id is its position plus one.
func (m *Memory) Question(id int64) (*models.Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if id <= 0 || id > int64(len(m.questions)) {
		return nil, ErrNotFound
	}
	question := m.questions[id-1]
	return &question, nil
}

func (m *Memory) UserByName(username string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}
