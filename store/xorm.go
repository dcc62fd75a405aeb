package store

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/go-xorm/xorm"

	"exam-question-categorizer/models"
)

// mysql ER_DUP_ENTRY
const errDupEntry = 1062

type Xorm struct {
	engine *xorm.Engine
}

func NewXorm(engine *xorm.Engine) *Xorm {
	return &Xorm{engine: engine}
}

// Tables lists the rows Sync2 creates.
func Tables() []interface{} {
	return []interface{}{
		new(models.Year),
		new(models.ExamType),
		new(models.Subject),
		new(models.Keyword),
		new(models.Question),
		new(models.User),
	}
}

func (x *Xorm) insert(table string, bean interface{}) error {
	if _, err := x.engine.Insert(bean); err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

func (x *Xorm) AddYear(year *models.Year) error {
	return x.insert("Year", year)
}

func (x *Xorm) AddExamType(examType *models.ExamType) error {
	return x.insert("ExamType", examType)
}

func (x *Xorm) AddSubject(subject *models.Subject) error {
	return x.insert("Subject", subject)
}

func (x *Xorm) AddKeyword(keyword *models.Keyword) error {
	return x.insert("Keyword", keyword)
}

func (x *Xorm) AddQuestion(question *models.Question) error {
	return x.insert("Question", question)
}

func (x *Xorm) AddUser(user *models.User) error {
	exists, err := x.engine.Exist(&models.User{Username: user.Username})
	if err != nil {
		return fmt.Errorf("lookup User: %w", err)
	}
	if exists {
		return ErrDuplicate
	}
	// a concurrent registration can still win the unique index
	if err := x.insert("User", user); isDuplicateKey(err) {
		return ErrDuplicate
	} else if err != nil {
		return err
	}
	return nil
}

func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == errDupEntry
}

func (x *Xorm) Years() ([]models.Year, error) {
	years := make([]models.Year, 0)
	if err := x.engine.Asc("Id").Find(&years); err != nil {
		return nil, fmt.Errorf("find Year: %w", err)
	}
	return years, nil
}

func (x *Xorm) ExamTypes() ([]models.ExamType, error) {
	examTypes := make([]models.ExamType, 0)
	if err := x.engine.Asc("Id").Find(&examTypes); err != nil {
		return nil, fmt.Errorf("find ExamType: %w", err)
	}
	return examTypes, nil
}

func (x *Xorm) Subjects() ([]models.Subject, error) {
	subjects := make([]models.Subject, 0)
	if err := x.engine.Asc("Id").Find(&subjects); err != nil {
		return nil, fmt.Errorf("find Subject: %w", err)
	}
	return subjects, nil
}

func (x *Xorm) Keywords() ([]models.Keyword, error) {
	keywords := make([]models.Keyword, 0)
	if err := x.engine.Asc("Id").Find(&keywords); err != nil {
		return nil, fmt.Errorf("find Keyword: %w", err)
	}
	return keywords, nil
}

func (x *Xorm) Question(id int64) (*models.Question, error) {
	var question models.Question
	has, err := x.engine.ID(id).Get(&question)
	if err != nil {
		return nil, fmt.Errorf("get Question %d: %w", id, err)
	}
	if !has {
		return nil, ErrNotFound
	}
	return &question, nil
}

func (x *Xorm) UserByName(username string) (*models.User, error) {
	user := models.User{Username: username}
	has, err := x.engine.Get(&user)
	if err != nil {
		return nil, fmt.Errorf("get User %q: %w", username, err)
	}
	if !has {
		return nil, ErrNotFound
	}
	return &user, nil
}
