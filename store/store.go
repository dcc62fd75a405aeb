// Package store persists the exam reference data.
package store

import (
	"errors"

	"exam-question-categorizer/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// Store is the storage collaborator of the HTTP layer. Every Add method
// fills in the Id of the record it receives. List methods return full
// snapshots ordered by Id.
type Store interface {
	AddYear(year *models.Year) error
	AddExamType(examType *models.ExamType) error
	AddSubject(subject *models.Subject) error
	AddKeyword(keyword *models.Keyword) error
	AddQuestion(question *models.Question) error
	AddUser(user *models.User) error

	Years() ([]models.Year, error)
	ExamTypes() ([]models.ExamType, error)
	Subjects() ([]models.Subject, error)
	Keywords() ([]models.Keyword, error)

	Question(id int64) (*models.Question, error)
	UserByName(username string) (*models.User, error)
}
