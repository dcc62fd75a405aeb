package controllers

import (
	"errors"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/mvc"
	"github.com/sirupsen/logrus"

	"exam-question-categorizer/classifier"
	"exam-question-categorizer/models"
	"exam-question-categorizer/store"
)

// Categorize matches the stored question against the current subjects and
// keywords. An unknown question or an empty match is reported as 404.
func (c *Controller) Categorize() mvc.Result {
	id, err := c.Context.Params().GetInt64("id")
	if err != nil {
		return failure(iris.StatusBadRequest, models.Retry)
	}

	cls := c.Classifier
	if name := c.Context.URLParam("strategy"); name != "" {
		strategy, err := classifier.NewStrategy(name)
		if err != nil {
			return failure(iris.StatusBadRequest, err.Error())
		}
		cls = classifier.New(strategy)
	}

	question, err := c.Store.Question(id)
	if errors.Is(err, store.ErrNotFound) {
		return failure(iris.StatusNotFound, models.QuestionNotFound)
	}
	if err != nil {
		return c.retry(err, "get question")
	}
	subjects, err := c.Store.Subjects()
	if err != nil {
		return c.retry(err, "list subjects")
	}
	keywords, err := c.Store.Keywords()
	if err != nil {
		return c.retry(err, "list keywords")
	}

	categories := cls.Classify(question.Text, models.ClassifierSubjects(subjects), models.ClassifierKeywords(keywords))
	c.Log.WithFields(logrus.Fields{
		"question":   id,
		"strategy":   cls.Strategy().Name(),
		"categories": len(categories),
	}).Debug("question categorized")
	if len(categories) == 0 {
		return failure(iris.StatusNotFound, models.NoCategories)
	}
	return success(iris.StatusOK, models.CategorizeResult{
		QuestionId:   question.Id,
		QuestionText: question.Text,
		Categories:   categories,
	})
}
