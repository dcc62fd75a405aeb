package controllers

import (
	"strings"
	"unicode/utf8"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/mvc"
	"github.com/sirupsen/logrus"

	"exam-question-categorizer/models"
)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (c *Controller) created(table string, id int64, bean interface{}) mvc.Result {
	c.Log.WithFields(logrus.Fields{"table": table, "id": id}).Info("record added")
	return success(iris.StatusCreated, bean)
}

func (c *Controller) AddYear() mvc.Result {
	var year models.Year
	if err := c.Context.ReadJSON(&year); err != nil || utf8.RuneCountInString(year.YearValue) != 4 {
		return failure(iris.StatusBadRequest, models.Retry)
	}
	year.Id = 0
	if err := c.Store.AddYear(&year); err != nil {
		return c.retry(err, "add year")
	}
	return c.created("Year", year.Id, year)
}

func (c *Controller) AddExamType() mvc.Result {
	var examType models.ExamType
	if err := c.Context.ReadJSON(&examType); err != nil || blank(examType.Name) {
		return failure(iris.StatusBadRequest, models.Retry)
	}
	examType.Id = 0
	if err := c.Store.AddExamType(&examType); err != nil {
		return c.retry(err, "add exam type")
	}
	return c.created("ExamType", examType.Id, examType)
}

func (c *Controller) AddSubject() mvc.Result {
	var subject models.Subject
	if err := c.Context.ReadJSON(&subject); err != nil || subject.Name == "" {
		return failure(iris.StatusBadRequest, models.Retry)
	}
	subject.Id = 0
	if err := c.Store.AddSubject(&subject); err != nil {
		return c.retry(err, "add subject")
	}
	return c.created("Subject", subject.Id, subject)
}

// Keywords may reference a subject that does not exist; such keywords are
// stored but never matched.
func (c *Controller) AddKeyword() mvc.Result {
	var keyword models.Keyword
	if err := c.Context.ReadJSON(&keyword); err != nil || keyword.Value == "" {
		return failure(iris.StatusBadRequest, models.Retry)
	}
	keyword.Id = 0
	if err := c.Store.AddKeyword(&keyword); err != nil {
		return c.retry(err, "add keyword")
	}
	return c.created("Keyword", keyword.Id, keyword)
}

func (c *Controller) AddQuestion() mvc.Result {
	var question models.Question
	err := c.Context.ReadJSON(&question)
	if err != nil || blank(question.Text) || question.ExamYearId <= 0 || question.ExamTypeId <= 0 {
		return failure(iris.StatusBadRequest, models.Retry)
	}
	if utf8.RuneCountInString(question.Text) > 200 {
		return failure(iris.StatusBadRequest, models.Retry)
	}
	question.Id = 0
	if err := c.Store.AddQuestion(&question); err != nil {
		return c.retry(err, "add question")
	}
	return c.created("Question", question.Id, question)
}

func (c *Controller) YearList() mvc.Result {
	years, err := c.Store.Years()
	if err != nil {
		return c.retry(err, "list years")
	}
	return mvc.Response{Object: years}
}

func (c *Controller) ExamTypeList() mvc.Result {
	examTypes, err := c.Store.ExamTypes()
	if err != nil {
		return c.retry(err, "list exam types")
	}
	return mvc.Response{Object: examTypes}
}

func (c *Controller) SubjectList() mvc.Result {
	subjects, err := c.Store.Subjects()
	if err != nil {
		return c.retry(err, "list subjects")
	}
	return mvc.Response{Object: subjects}
}

func (c *Controller) KeywordList() mvc.Result {
	keywords, err := c.Store.Keywords()
	if err != nil {
		return c.retry(err, "list keywords")
	}
	return mvc.Response{Object: keywords}
}
